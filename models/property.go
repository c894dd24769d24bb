package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Enumerations
// ═══════════════════════════════════════════════════════════

const (
	ListingSale      = "sale"
	ListingRent      = "rent"
	ListingRentByDay = "rent_by_day"
	ListingLease     = "lease"
)

const (
	PropertyHouse      = "house"
	PropertyApartment  = "apartment"
	PropertyLand       = "land"
	PropertyCommercial = "commercial"
)

const (
	CurrencyGEL = "GEL"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

var (
	ListingTypes  = []string{ListingSale, ListingRent, ListingRentByDay, ListingLease}
	PropertyTypes = []string{PropertyHouse, PropertyApartment, PropertyLand, PropertyCommercial}
	Currencies    = []string{CurrencyGEL, CurrencyUSD, CurrencyEUR}

	Conditions        = []string{"newly_renovated", "renovated", "under_renovation", "white_frame", "black_frame", "old_renovated"}
	FurnitureTypes    = []string{"furnished", "semi_furnished", "unfurnished"}
	HeatingTypes      = []string{"central", "gas", "electric", "floor", "none"}
	ParkingTypes      = []string{"garage", "yard", "underground", "street", "none"}
	BuildingMaterials = []string{"brick", "block", "panel", "wood", "combined"}
	KitchenTypes      = []string{"open", "closed", "island"}
)

func oneOf(value string, set []string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func IsValidListingType(v string) bool  { return oneOf(v, ListingTypes) }
func IsValidPropertyType(v string) bool { return oneOf(v, PropertyTypes) }
func IsValidCurrency(v string) bool     { return oneOf(v, Currencies) }

// IsValidCategorical reports whether v belongs to set; empty means "not set",
// which is always allowed for optional categorical fields.
func IsValidCategorical(v string, set []string) bool {
	return v == "" || oneOf(v, set)
}

// ═══════════════════════════════════════════════════════════
// Boolean amenity / utility / security / proximity flags
// ═══════════════════════════════════════════════════════════

// PropertyFlags holds every independent boolean feature flag. All default to
// false; each is an independent filter predicate on the listings page.
type PropertyFlags struct {
	// Utilities
	HasNaturalGas      bool `json:"has_natural_gas" gorm:"default:false"`
	HasElectricity     bool `json:"has_electricity" gorm:"default:false"`
	HasWater           bool `json:"has_water" gorm:"default:false"`
	HasSewage          bool `json:"has_sewage" gorm:"default:false"`
	HasHotWater        bool `json:"has_hot_water" gorm:"default:false"`
	HasAirConditioning bool `json:"has_air_conditioning" gorm:"default:false"`
	HasInternet        bool `json:"has_internet" gorm:"default:false"`
	HasCableTV         bool `json:"has_cable_tv" gorm:"default:false"`
	HasPhoneLine       bool `json:"has_phone_line" gorm:"default:false"`
	HasGenerator       bool `json:"has_generator" gorm:"default:false"`
	HasSolarPanels     bool `json:"has_solar_panels" gorm:"default:false"`

	// Amenities
	HasElevator       bool `json:"has_elevator" gorm:"default:false"`
	HasBalcony        bool `json:"has_balcony" gorm:"default:false"`
	HasLoggia         bool `json:"has_loggia" gorm:"default:false"`
	HasVeranda        bool `json:"has_veranda" gorm:"default:false"`
	HasBasement       bool `json:"has_basement" gorm:"default:false"`
	HasAttic          bool `json:"has_attic" gorm:"default:false"`
	HasGarage         bool `json:"has_garage" gorm:"default:false"`
	HasYard           bool `json:"has_yard" gorm:"default:false"`
	HasSwimmingPool   bool `json:"has_swimming_pool" gorm:"default:false"`
	HasSauna          bool `json:"has_sauna" gorm:"default:false"`
	HasFireplace      bool `json:"has_fireplace" gorm:"default:false"`
	HasFurniture      bool `json:"has_furniture" gorm:"default:false"`
	HasDishwasher     bool `json:"has_dishwasher" gorm:"default:false"`
	HasWashingMachine bool `json:"has_washing_machine" gorm:"default:false"`
	HasRefrigerator   bool `json:"has_refrigerator" gorm:"default:false"`
	HasOven           bool `json:"has_oven" gorm:"default:false"`
	HasStorageRoom    bool `json:"has_storage_room" gorm:"default:false"`
	HasWineCellar     bool `json:"has_wine_cellar" gorm:"default:false"`
	HasBarbecue       bool `json:"has_barbecue" gorm:"default:false"`
	HasGym            bool `json:"has_gym" gorm:"default:false"`
	HasJacuzzi        bool `json:"has_jacuzzi" gorm:"default:false"`
	HasSmartHome      bool `json:"has_smart_home" gorm:"default:false"`

	// Security
	HasAlarm           bool `json:"has_alarm" gorm:"default:false"`
	HasSecurityCameras bool `json:"has_security_cameras" gorm:"default:false"`
	HasIntercom        bool `json:"has_intercom" gorm:"default:false"`
	HasConcierge       bool `json:"has_concierge" gorm:"default:false"`
	HasSecurityDoor    bool `json:"has_security_door" gorm:"default:false"`
	HasFence           bool `json:"has_fence" gorm:"default:false"`
	HasGatedEntry      bool `json:"has_gated_entry" gorm:"default:false"`
	HasFireAlarm       bool `json:"has_fire_alarm" gorm:"default:false"`
	HasCodeLock        bool `json:"has_code_lock" gorm:"default:false"`

	// Proximity
	NearMetro        bool `json:"near_metro" gorm:"default:false"`
	NearBusStop      bool `json:"near_bus_stop" gorm:"default:false"`
	NearSchool       bool `json:"near_school" gorm:"default:false"`
	NearKindergarten bool `json:"near_kindergarten" gorm:"default:false"`
	NearHospital     bool `json:"near_hospital" gorm:"default:false"`
	NearPharmacy     bool `json:"near_pharmacy" gorm:"default:false"`
	NearSupermarket  bool `json:"near_supermarket" gorm:"default:false"`
	NearPark         bool `json:"near_park" gorm:"default:false"`
	NearCityCenter   bool `json:"near_city_center" gorm:"default:false"`
	NearGreenArea    bool `json:"near_green_area" gorm:"default:false"`
}

// flagGetters maps the wire name of every flag to its accessor. The listing
// filter engine resolves active flag filters through this table so that
// adding a flag is a two-line change (field + entry).
var flagGetters = map[string]func(*PropertyFlags) bool{
	"has_natural_gas":      func(f *PropertyFlags) bool { return f.HasNaturalGas },
	"has_electricity":      func(f *PropertyFlags) bool { return f.HasElectricity },
	"has_water":            func(f *PropertyFlags) bool { return f.HasWater },
	"has_sewage":           func(f *PropertyFlags) bool { return f.HasSewage },
	"has_hot_water":        func(f *PropertyFlags) bool { return f.HasHotWater },
	"has_air_conditioning": func(f *PropertyFlags) bool { return f.HasAirConditioning },
	"has_internet":         func(f *PropertyFlags) bool { return f.HasInternet },
	"has_cable_tv":         func(f *PropertyFlags) bool { return f.HasCableTV },
	"has_phone_line":       func(f *PropertyFlags) bool { return f.HasPhoneLine },
	"has_generator":        func(f *PropertyFlags) bool { return f.HasGenerator },
	"has_solar_panels":     func(f *PropertyFlags) bool { return f.HasSolarPanels },
	"has_elevator":         func(f *PropertyFlags) bool { return f.HasElevator },
	"has_balcony":          func(f *PropertyFlags) bool { return f.HasBalcony },
	"has_loggia":           func(f *PropertyFlags) bool { return f.HasLoggia },
	"has_veranda":          func(f *PropertyFlags) bool { return f.HasVeranda },
	"has_basement":         func(f *PropertyFlags) bool { return f.HasBasement },
	"has_attic":            func(f *PropertyFlags) bool { return f.HasAttic },
	"has_garage":           func(f *PropertyFlags) bool { return f.HasGarage },
	"has_yard":             func(f *PropertyFlags) bool { return f.HasYard },
	"has_swimming_pool":    func(f *PropertyFlags) bool { return f.HasSwimmingPool },
	"has_sauna":            func(f *PropertyFlags) bool { return f.HasSauna },
	"has_fireplace":        func(f *PropertyFlags) bool { return f.HasFireplace },
	"has_furniture":        func(f *PropertyFlags) bool { return f.HasFurniture },
	"has_dishwasher":       func(f *PropertyFlags) bool { return f.HasDishwasher },
	"has_washing_machine":  func(f *PropertyFlags) bool { return f.HasWashingMachine },
	"has_refrigerator":     func(f *PropertyFlags) bool { return f.HasRefrigerator },
	"has_oven":             func(f *PropertyFlags) bool { return f.HasOven },
	"has_storage_room":     func(f *PropertyFlags) bool { return f.HasStorageRoom },
	"has_wine_cellar":      func(f *PropertyFlags) bool { return f.HasWineCellar },
	"has_barbecue":         func(f *PropertyFlags) bool { return f.HasBarbecue },
	"has_gym":              func(f *PropertyFlags) bool { return f.HasGym },
	"has_jacuzzi":          func(f *PropertyFlags) bool { return f.HasJacuzzi },
	"has_smart_home":       func(f *PropertyFlags) bool { return f.HasSmartHome },
	"has_alarm":            func(f *PropertyFlags) bool { return f.HasAlarm },
	"has_security_cameras": func(f *PropertyFlags) bool { return f.HasSecurityCameras },
	"has_intercom":         func(f *PropertyFlags) bool { return f.HasIntercom },
	"has_concierge":        func(f *PropertyFlags) bool { return f.HasConcierge },
	"has_security_door":    func(f *PropertyFlags) bool { return f.HasSecurityDoor },
	"has_fence":            func(f *PropertyFlags) bool { return f.HasFence },
	"has_gated_entry":      func(f *PropertyFlags) bool { return f.HasGatedEntry },
	"has_fire_alarm":       func(f *PropertyFlags) bool { return f.HasFireAlarm },
	"has_code_lock":        func(f *PropertyFlags) bool { return f.HasCodeLock },
	"near_metro":           func(f *PropertyFlags) bool { return f.NearMetro },
	"near_bus_stop":        func(f *PropertyFlags) bool { return f.NearBusStop },
	"near_school":          func(f *PropertyFlags) bool { return f.NearSchool },
	"near_kindergarten":    func(f *PropertyFlags) bool { return f.NearKindergarten },
	"near_hospital":        func(f *PropertyFlags) bool { return f.NearHospital },
	"near_pharmacy":        func(f *PropertyFlags) bool { return f.NearPharmacy },
	"near_supermarket":     func(f *PropertyFlags) bool { return f.NearSupermarket },
	"near_park":            func(f *PropertyFlags) bool { return f.NearPark },
	"near_city_center":     func(f *PropertyFlags) bool { return f.NearCityCenter },
	"near_green_area":      func(f *PropertyFlags) bool { return f.NearGreenArea },
}

// Flag resolves a flag by its wire name. Unknown names read as false so an
// unrecognized filter key imposes an unsatisfiable constraint instead of a
// crash.
func (f *PropertyFlags) Flag(name string) bool {
	if getter, ok := flagGetters[name]; ok {
		return getter(f)
	}
	return false
}

// KnownFlag reports whether name is a registered flag.
func KnownFlag(name string) bool {
	_, ok := flagGetters[name]
	return ok
}

// FlagNames returns the wire names of all registered flags.
func FlagNames() []string {
	names := make([]string, 0, len(flagGetters))
	for name := range flagGetters {
		names = append(names, name)
	}
	return names
}

// ═══════════════════════════════════════════════════════════
// Main Property Model (GORM)
// ═══════════════════════════════════════════════════════════

type Property struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	RefNumber   string    `json:"ref_number" gorm:"type:varchar(7);uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text"`

	ListingType  string  `json:"listing_type" gorm:"type:varchar(20);not null;index"`
	PropertyType string  `json:"property_type" gorm:"type:varchar(20);not null;index"`
	Price        float64 `json:"price" gorm:"type:numeric(14,2);not null;check:price > 0"`
	Currency     string  `json:"currency" gorm:"type:varchar(3);not null;default:'GEL'"`

	Beds          int     `json:"beds" gorm:"default:0"`
	Baths         int     `json:"baths" gorm:"default:0"`
	Rooms         int     `json:"rooms" gorm:"default:0"`
	Area          float64 `json:"area" gorm:"type:numeric(10,2);not null;check:area > 0"`
	TerraceArea   float64 `json:"terrace_area" gorm:"type:numeric(10,2);default:0"`
	YearBuilt     int     `json:"year_built" gorm:"default:0"`
	CeilingHeight float64 `json:"ceiling_height" gorm:"type:numeric(4,2);default:0"`
	FloorLevel    int     `json:"floor_level" gorm:"default:0"`
	TotalFloors   int     `json:"total_floors" gorm:"default:0"`

	Condition        string `json:"condition" gorm:"type:varchar(30);index"`
	FurnitureType    string `json:"furniture_type" gorm:"type:varchar(30);index"`
	HeatingType      string `json:"heating_type" gorm:"type:varchar(30);index"`
	ParkingType      string `json:"parking_type" gorm:"type:varchar(30);index"`
	BuildingMaterial string `json:"building_material" gorm:"type:varchar(30);index"`
	KitchenType      string `json:"kitchen_type" gorm:"type:varchar(30);index"`

	ContactName  string `json:"contact_name" gorm:"type:varchar(100)"`
	ContactPhone string `json:"contact_phone" gorm:"type:varchar(50)"`

	Street   string  `json:"street" gorm:"type:varchar(255)"`
	District string  `json:"district" gorm:"type:varchar(100);index"`
	City     string  `json:"city" gorm:"type:varchar(100);index"`
	State    string  `json:"state" gorm:"type:varchar(100)"`
	Zip      string  `json:"zip" gorm:"type:varchar(20)"`
	Lat      float64 `json:"lat" gorm:"type:numeric(10,7)"`
	Lng      float64 `json:"lng" gorm:"type:numeric(10,7)"`

	// Raw reverse-geocode response captured when the map point was picked.
	GeocodeSnapshot datatypes.JSON `json:"geocode_snapshot,omitempty" gorm:"type:jsonb"`

	PropertyFlags `gorm:"embedded"`

	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Views     int       `json:"views" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Images         []PropertyImage         `json:"images,omitempty" gorm:"foreignKey:PropertyID"`
	Amenities      []PropertyAmenity       `json:"amenities,omitempty" gorm:"foreignKey:PropertyID"`
	Equipment      []PropertyEquipment     `json:"equipment,omitempty" gorm:"foreignKey:PropertyID"`
	InternetTV     []PropertyInternetTV    `json:"internet_tv,omitempty" gorm:"foreignKey:PropertyID"`
	Storage        []PropertyStorage       `json:"storage,omitempty" gorm:"foreignKey:PropertyID"`
	Security       []PropertySecurity      `json:"security,omitempty" gorm:"foreignKey:PropertyID"`
	NearbyPlaces   []PropertyNearbyPlace   `json:"nearby_places,omitempty" gorm:"foreignKey:PropertyID"`
	OnlineServices []PropertyOnlineService `json:"online_services,omitempty" gorm:"foreignKey:PropertyID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Property) TableName() string {
	return "properties"
}
