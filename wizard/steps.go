package wizard

import (
	"fmt"

	"github.com/spacemen100/house-haven-market-sub000/locations"
	"github.com/spacemen100/house-haven-market-sub000/models"
)

// Step identifies one wizard state. The sequence is strictly linear;
// StepSubmitted is the only terminal state.
type Step int

const (
	StepTypeSelection Step = iota
	StepContactInfo
	StepBasicInfo
	StepFeaturesAndAddress
	StepMediaAndPublish
	StepSubmitted
)

var stepOrder = []Step{
	StepTypeSelection,
	StepContactInfo,
	StepBasicInfo,
	StepFeaturesAndAddress,
	StepMediaAndPublish,
}

var stepNames = map[Step]string{
	StepTypeSelection:      "type_selection",
	StepContactInfo:        "contact_info",
	StepBasicInfo:          "basic_info",
	StepFeaturesAndAddress: "features_and_address",
	StepMediaAndPublish:    "media_and_publish",
	StepSubmitted:          "submitted",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Numeric bounds enforced by step validation.
const (
	CeilingHeightMin = 2.0
	CeilingHeightMax = 7.0
)

// validate checks one step output against its schema and returns field-level
// messages. Message values are i18n keys resolved at the API boundary.
// Validation never mutates the accumulated draft.
func validate(out StepOutput, catalog *locations.Catalog) models.FieldErrors {
	switch o := out.(type) {
	case TypeSelectionOutput:
		return validateTypeSelection(o)
	case ContactInfoOutput:
		return validateContactInfo(o)
	case BasicInfoOutput:
		return validateBasicInfo(o)
	case FeaturesAndAddressOutput:
		return validateFeaturesAndAddress(o, catalog)
	case MediaAndPublishOutput:
		return validateMediaAndPublish(o)
	}
	return models.FieldErrors{"step": "error.step.unknown"}
}

func validateTypeSelection(o TypeSelectionOutput) models.FieldErrors {
	errs := models.FieldErrors{}
	if !models.IsValidListingType(o.ListingType) {
		errs["listing_type"] = "error.listing_type.invalid"
	}
	if !models.IsValidPropertyType(o.PropertyType) {
		errs["property_type"] = "error.property_type.invalid"
	}
	return errs
}

func validateContactInfo(o ContactInfoOutput) models.FieldErrors {
	errs := models.FieldErrors{}
	if o.ContactName == "" {
		errs["contact_name"] = "error.contact_name.required"
	}
	if o.ContactPhone == "" {
		errs["contact_phone"] = "error.contact_phone.required"
	}
	return errs
}

func validateBasicInfo(o BasicInfoOutput) models.FieldErrors {
	errs := models.FieldErrors{}
	if o.Title == "" {
		errs["title"] = "error.title.required"
	}
	if o.Price <= 0 {
		errs["price"] = "error.price.positive"
	}
	if !models.IsValidCurrency(o.Currency) {
		errs["currency"] = "error.currency.invalid"
	}
	if o.Area <= 0 {
		errs["area"] = "error.area.positive"
	}
	if o.TerraceArea < 0 {
		errs["terrace_area"] = "error.terrace_area.negative"
	}
	if o.Beds < 0 {
		errs["beds"] = "error.beds.negative"
	}
	if o.Baths < 0 {
		errs["baths"] = "error.baths.negative"
	}
	if o.Rooms < 0 {
		errs["rooms"] = "error.rooms.negative"
	}
	// Ceiling height is optional; zero means "not provided".
	if o.CeilingHeight != 0 && (o.CeilingHeight < CeilingHeightMin || o.CeilingHeight > CeilingHeightMax) {
		errs["ceiling_height"] = "error.ceiling_height.range"
	}
	if o.FloorLevel < 0 {
		errs["floor_level"] = "error.floor_level.negative"
	}
	if o.TotalFloors < 0 {
		errs["total_floors"] = "error.total_floors.negative"
	}
	if o.TotalFloors > 0 && o.FloorLevel > o.TotalFloors {
		errs["floor_level"] = "error.floor_level.exceeds_total"
	}
	return errs
}

func validateFeaturesAndAddress(o FeaturesAndAddressOutput, catalog *locations.Catalog) models.FieldErrors {
	errs := models.FieldErrors{}
	if o.City == "" {
		errs["city"] = "error.city.required"
	}
	// District and street are optional, but a set value must belong to the
	// parent's registered set. No default is ever substituted.
	if o.District != "" && !containsString(catalog.DistrictsFor(o.City), o.District) {
		errs["district"] = "error.district.not_in_city"
	}
	if o.Street != "" {
		if o.District == "" {
			errs["street"] = "error.street.requires_district"
		} else if !containsString(catalog.StreetsFor(o.City, o.District), o.Street) {
			errs["street"] = "error.street.not_in_district"
		}
	}
	if !models.IsValidCategorical(o.Condition, models.Conditions) {
		errs["condition"] = "error.condition.invalid"
	}
	if !models.IsValidCategorical(o.FurnitureType, models.FurnitureTypes) {
		errs["furniture_type"] = "error.furniture_type.invalid"
	}
	if !models.IsValidCategorical(o.HeatingType, models.HeatingTypes) {
		errs["heating_type"] = "error.heating_type.invalid"
	}
	if !models.IsValidCategorical(o.ParkingType, models.ParkingTypes) {
		errs["parking_type"] = "error.parking_type.invalid"
	}
	if !models.IsValidCategorical(o.BuildingMaterial, models.BuildingMaterials) {
		errs["building_material"] = "error.building_material.invalid"
	}
	if !models.IsValidCategorical(o.KitchenType, models.KitchenTypes) {
		errs["kitchen_type"] = "error.kitchen_type.invalid"
	}
	for category := range o.Categories {
		if _, known := models.CategoryTable[category]; !known {
			errs["categories"] = "error.categories.unknown"
		}
	}
	return errs
}

func validateMediaAndPublish(o MediaAndPublishOutput) models.FieldErrors {
	errs := models.FieldErrors{}
	if o.CoverIndex < 0 {
		errs["cover_index"] = "error.cover_index.negative"
	}
	return errs
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
