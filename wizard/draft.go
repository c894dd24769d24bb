package wizard

import (
	"github.com/spacemen100/house-haven-market-sub000/models"
)

// Draft is the in-progress listing accumulated across wizard steps. It is
// only ever produced by reducing the validated step outputs in fixed step
// order, so every field's origin step stays traceable.
type Draft struct {
	RefNumber string `json:"ref_number"`

	ListingType  string `json:"listing_type"`
	PropertyType string `json:"property_type"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`

	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Beds          int     `json:"beds"`
	Baths         int     `json:"baths"`
	Rooms         int     `json:"rooms"`
	Area          float64 `json:"area"`
	TerraceArea   float64 `json:"terrace_area"`
	YearBuilt     int     `json:"year_built"`
	CeilingHeight float64 `json:"ceiling_height"`
	FloorLevel    int     `json:"floor_level"`
	TotalFloors   int     `json:"total_floors"`

	Condition        string `json:"condition"`
	FurnitureType    string `json:"furniture_type"`
	HeatingType      string `json:"heating_type"`
	ParkingType      string `json:"parking_type"`
	BuildingMaterial string `json:"building_material"`
	KitchenType      string `json:"kitchen_type"`

	Street   string  `json:"street"`
	District string  `json:"district"`
	City     string  `json:"city"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`

	Flags      models.PropertyFlags `json:"flags"`
	Categories models.CategoryLists `json:"categories"`
}

// StepOutput is the validated result of one wizard step. Each concrete
// output type knows which step produced it and how to merge itself into the
// draft (shallow, last-write-wins per field).
type StepOutput interface {
	Step() Step
	apply(d *Draft)
}

// Reduce folds step outputs into a fresh draft in fixed step order,
// regardless of the order they were produced in. refNumber is owned by the
// wizard, not any step, and is stamped here.
func Reduce(refNumber string, outputs map[Step]StepOutput) Draft {
	d := Draft{RefNumber: refNumber}
	for _, step := range stepOrder {
		if out, ok := outputs[step]; ok {
			out.apply(&d)
		}
	}
	return d
}

// TypeSelectionOutput carries the classification chosen in the first step.
type TypeSelectionOutput struct {
	ListingType  string `json:"listing_type"`
	PropertyType string `json:"property_type"`
}

func (TypeSelectionOutput) Step() Step { return StepTypeSelection }

func (o TypeSelectionOutput) apply(d *Draft) {
	d.ListingType = o.ListingType
	d.PropertyType = o.PropertyType
}

// ContactInfoOutput carries the advertiser contact details.
type ContactInfoOutput struct {
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

func (ContactInfoOutput) Step() Step { return StepContactInfo }

func (o ContactInfoOutput) apply(d *Draft) {
	d.ContactName = o.ContactName
	d.ContactPhone = o.ContactPhone
}

// BasicInfoOutput carries title, terms and physical attributes.
type BasicInfoOutput struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Beds          int     `json:"beds"`
	Baths         int     `json:"baths"`
	Rooms         int     `json:"rooms"`
	Area          float64 `json:"area"`
	TerraceArea   float64 `json:"terrace_area"`
	YearBuilt     int     `json:"year_built"`
	CeilingHeight float64 `json:"ceiling_height"`
	FloorLevel    int     `json:"floor_level"`
	TotalFloors   int     `json:"total_floors"`
}

func (BasicInfoOutput) Step() Step { return StepBasicInfo }

func (o BasicInfoOutput) apply(d *Draft) {
	d.Title = o.Title
	d.Description = o.Description
	d.Price = o.Price
	d.Currency = o.Currency
	d.Beds = o.Beds
	d.Baths = o.Baths
	d.Rooms = o.Rooms
	d.Area = o.Area
	d.TerraceArea = o.TerraceArea
	d.YearBuilt = o.YearBuilt
	d.CeilingHeight = o.CeilingHeight
	d.FloorLevel = o.FloorLevel
	d.TotalFloors = o.TotalFloors
}

// FeaturesAndAddressOutput carries the address cascade result, condition and
// status enumerations, boolean flags and the categorical label lists.
type FeaturesAndAddressOutput struct {
	Street   string  `json:"street"`
	District string  `json:"district"`
	City     string  `json:"city"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`

	Condition        string `json:"condition"`
	FurnitureType    string `json:"furniture_type"`
	HeatingType      string `json:"heating_type"`
	ParkingType      string `json:"parking_type"`
	BuildingMaterial string `json:"building_material"`
	KitchenType      string `json:"kitchen_type"`

	Flags      models.PropertyFlags `json:"flags"`
	Categories models.CategoryLists `json:"categories"`
}

func (FeaturesAndAddressOutput) Step() Step { return StepFeaturesAndAddress }

func (o FeaturesAndAddressOutput) apply(d *Draft) {
	d.Street = o.Street
	d.District = o.District
	d.City = o.City
	d.Lat = o.Lat
	d.Lng = o.Lng
	d.Condition = o.Condition
	d.FurnitureType = o.FurnitureType
	d.HeatingType = o.HeatingType
	d.ParkingType = o.ParkingType
	d.BuildingMaterial = o.BuildingMaterial
	d.KitchenType = o.KitchenType
	d.Flags = o.Flags
	d.Categories = o.Categories
}

// MediaAndPublishOutput closes the wizard. Images are staged separately via
// the image batch endpoint; this output only records the chosen cover.
type MediaAndPublishOutput struct {
	CoverIndex int `json:"cover_index"`
}

func (MediaAndPublishOutput) Step() Step { return StepMediaAndPublish }

func (o MediaAndPublishOutput) apply(d *Draft) {}
