package models

// FilterMetadata aggregates the bounds and counts the listings page needs to
// render its filter panel.
type FilterMetadata struct {
	PriceRange *RangeData     `json:"priceRange"`
	AreaRange  *RangeData     `json:"areaRange"`
	TypeCounts map[string]int `json:"typeCounts"`
}

// RangeData represents the minimum and maximum of a numeric listing field.
type RangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
