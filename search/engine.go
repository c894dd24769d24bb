package search

import (
	"math"
	"strings"

	"github.com/spacemen100/house-haven-market-sub000/models"
)

// Record wraps one fetched listing for the filter pipeline. Created keeps
// the creation date in its raw wire form because the hosted store has
// returned both epoch-like numeric strings and ISO dates; the recency
// comparator parses it tolerantly.
type Record struct {
	Source  *models.Property
	Created string
}

// Wrap builds the engine's view of a fetched listing set.
func Wrap(properties []models.Property) []Record {
	records := make([]Record, len(properties))
	for i := range properties {
		records[i] = Record{
			Source:  &properties[i],
			Created: properties[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return records
}

// FilterState is the complete set of active predicates plus the sort key on
// the listings page. Every mutation recomputes the full filtered+sorted
// output; the state itself is ephemeral per page view.
type FilterState struct {
	Query         string   `json:"query"`
	PropertyTypes []string `json:"property_types"`
	ListingTypes  []string `json:"listing_types"`

	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
	BedsMin  int     `json:"beds_min"`
	BathsMin int     `json:"baths_min"`
	AreaMin  float64 `json:"area_min"`
	AreaMax  float64 `json:"area_max"`

	// Active boolean flag filters by wire name; each requires the
	// corresponding record flag to be set.
	Flags []string `json:"flags"`

	Conditions        []string `json:"conditions"`
	FurnitureTypes    []string `json:"furniture_types"`
	HeatingTypes      []string `json:"heating_types"`
	ParkingTypes      []string `json:"parking_types"`
	BuildingMaterials []string `json:"building_materials"`
	KitchenTypes      []string `json:"kitchen_types"`

	Sort SortKey `json:"sort"`
}

// DefaultFilterState returns a state whose predicates pass every record.
func DefaultFilterState() FilterState {
	return FilterState{
		PriceMax: math.MaxFloat64,
		AreaMax:  math.MaxFloat64,
		Sort:     SortNewest,
	}
}

// Apply runs the conjunctive predicate pipeline over records and sorts the
// survivors. All predicates are independent, so toggling order never
// changes the result. The input slice is not mutated.
func (f FilterState) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	sortRecords(out, f.Sort)
	return out
}

func (f FilterState) matches(r Record) bool {
	p := r.Source
	return f.matchesQuery(p) &&
		inSet(p.PropertyType, f.PropertyTypes) &&
		inSet(p.ListingType, f.ListingTypes) &&
		p.Price >= f.PriceMin && p.Price <= f.effectivePriceMax() &&
		p.Beds >= f.BedsMin &&
		p.Baths >= f.BathsMin &&
		p.Area >= f.AreaMin && p.Area <= f.effectiveAreaMax() &&
		f.matchesFlags(p) &&
		inSet(p.Condition, f.Conditions) &&
		inSet(p.FurnitureType, f.FurnitureTypes) &&
		inSet(p.HeatingType, f.HeatingTypes) &&
		inSet(p.ParkingType, f.ParkingTypes) &&
		inSet(p.BuildingMaterial, f.BuildingMaterials) &&
		inSet(p.KitchenType, f.KitchenTypes)
}

// matchesQuery does a case-insensitive substring match against the title
// and address fields; the record passes if ANY field contains the query.
func (f FilterState) matchesQuery(p *models.Property) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	for _, field := range []string{p.Title, p.Street, p.City, p.State, p.Zip} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// matchesFlags requires every active flag to be set on the record; inactive
// flags impose no constraint.
func (f FilterState) matchesFlags(p *models.Property) bool {
	for _, name := range f.Flags {
		if !p.Flag(name) {
			return false
		}
	}
	return true
}

// A zero max bound means "unbounded" so that zero-valued query params do
// not filter everything out.
func (f FilterState) effectivePriceMax() float64 {
	if f.PriceMax <= 0 {
		return math.MaxFloat64
	}
	return f.PriceMax
}

func (f FilterState) effectiveAreaMax() float64 {
	if f.AreaMax <= 0 {
		return math.MaxFloat64
	}
	return f.AreaMax
}

// inSet implements the multi-select rule: an empty selection is no
// constraint.
func inSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
