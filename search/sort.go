package search

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SortKey names one of the supported orderings.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortAreaAsc   SortKey = "area_asc"
	SortAreaDesc  SortKey = "area_desc"
)

// ParseSortKey maps a query-string value to a SortKey, defaulting to
// newest-first.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortOldest, SortPriceAsc, SortPriceDesc, SortAreaAsc, SortAreaDesc:
		return SortKey(value)
	default:
		return SortNewest
	}
}

func sortRecords(records []Record, key SortKey) {
	var less func(a, b Record) bool
	switch key {
	case SortOldest:
		less = func(a, b Record) bool {
			return CreationTime(a.Created).Before(CreationTime(b.Created))
		}
	case SortPriceAsc:
		less = func(a, b Record) bool { return a.Source.Price < b.Source.Price }
	case SortPriceDesc:
		less = func(a, b Record) bool { return a.Source.Price > b.Source.Price }
	case SortAreaAsc:
		less = func(a, b Record) bool { return a.Source.Area < b.Source.Area }
	case SortAreaDesc:
		less = func(a, b Record) bool { return a.Source.Area > b.Source.Area }
	default: // newest
		less = func(a, b Record) bool {
			return CreationTime(a.Created).After(CreationTime(b.Created))
		}
	}
	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

// Accepted layouts for textual creation dates, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreationTime parses a creation date that may arrive as an epoch-like
// numeric string (seconds or milliseconds) or as an ISO date string. It
// never fails: unparseable input yields the zero epoch.
func CreationTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Unix(0, 0)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		// Heuristic: values this large are milliseconds.
		if n > 1e12 {
			return time.UnixMilli(n)
		}
		return time.Unix(n, 0)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Unix(0, 0)
}
