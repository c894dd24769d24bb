package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Each categorical multi-value list on a listing lives in its own side table,
// one row per label, linked to the core property row by foreign key. Lists
// are replaced wholesale on edit (delete-all-then-insert), never diffed.

// FeatureRow is the common shape of every auxiliary category row.
type FeatureRow struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;not null;index"`
	Label      string    `json:"label" gorm:"type:varchar(100);not null"`
}

func (r *FeatureRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type PropertyAmenity struct{ FeatureRow }
type PropertyEquipment struct{ FeatureRow }
type PropertyInternetTV struct{ FeatureRow }
type PropertyStorage struct{ FeatureRow }
type PropertySecurity struct{ FeatureRow }
type PropertyNearbyPlace struct{ FeatureRow }
type PropertyOnlineService struct{ FeatureRow }

func (PropertyAmenity) TableName() string       { return "property_amenities" }
func (PropertyEquipment) TableName() string     { return "property_equipment" }
func (PropertyInternetTV) TableName() string    { return "property_internet_tv" }
func (PropertyStorage) TableName() string       { return "property_storage" }
func (PropertySecurity) TableName() string      { return "property_security" }
func (PropertyNearbyPlace) TableName() string   { return "property_nearby_places" }
func (PropertyOnlineService) TableName() string { return "property_online_services" }

// Category names used as keys in draft payloads and by the submit pipeline.
const (
	CategoryAmenities      = "amenities"
	CategoryEquipment      = "equipment"
	CategoryInternetTV     = "internet_tv"
	CategoryStorage        = "storage"
	CategorySecurity       = "security"
	CategoryNearbyPlaces   = "nearby_places"
	CategoryOnlineServices = "online_services"
)

// CategoryNames lists every auxiliary category in a stable order.
var CategoryNames = []string{
	CategoryAmenities,
	CategoryEquipment,
	CategoryInternetTV,
	CategoryStorage,
	CategorySecurity,
	CategoryNearbyPlaces,
	CategoryOnlineServices,
}

// CategoryTable maps a category name to its side table.
var CategoryTable = map[string]string{
	CategoryAmenities:      "property_amenities",
	CategoryEquipment:      "property_equipment",
	CategoryInternetTV:     "property_internet_tv",
	CategoryStorage:        "property_storage",
	CategorySecurity:       "property_security",
	CategoryNearbyPlaces:   "property_nearby_places",
	CategoryOnlineServices: "property_online_services",
}

// CategoryLists carries the free-text label sets for every auxiliary
// category of one listing, keyed by category name.
type CategoryLists map[string][]string

// Labels returns the labels for a category, never nil.
func (c CategoryLists) Labels(category string) []string {
	if c == nil {
		return []string{}
	}
	if labels, ok := c[category]; ok {
		return labels
	}
	return []string{}
}
