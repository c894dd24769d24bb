package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

func TestPropertyFromDraftMapsEveryField(t *testing.T) {
	draft := wizard.Draft{
		RefNumber:        "AB12CD3",
		ListingType:      "sale",
		PropertyType:     "apartment",
		ContactName:      "Nino Beridze",
		ContactPhone:     "+995555123456",
		Title:            "Sunny two-bedroom in Vake",
		Description:      "Renovated, quiet courtyard",
		Price:            185000,
		Currency:         "USD",
		Beds:             2,
		Baths:            1,
		Rooms:            3,
		Area:             78.5,
		TerraceArea:      12,
		YearBuilt:        2014,
		CeilingHeight:    2.9,
		FloorLevel:       4,
		TotalFloors:      9,
		Condition:        "newly_renovated",
		FurnitureType:    "furnished",
		HeatingType:      "central",
		ParkingType:      "garage",
		BuildingMaterial: "brick",
		KitchenType:      "open",
		Street:           "Chavchavadze Avenue",
		District:         "Vake",
		City:             "Tbilissi",
		Lat:              41.708,
		Lng:              44.76,
		Flags:            models.PropertyFlags{HasElevator: true, HasBalcony: true},
	}
	id := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	p := propertyFromDraft(&draft, id, userID)

	if p.ID != id {
		t.Errorf("ID = %v, want %v", p.ID, id)
	}
	if p.UserID != userID {
		t.Errorf("UserID = %v, want %v", p.UserID, userID)
	}
	if p.Status != "active" {
		t.Errorf("Status = %q, want %q", p.Status, "active")
	}

	stringFields := []struct {
		name string
		got  string
		want string
	}{
		{"RefNumber", p.RefNumber, draft.RefNumber},
		{"ListingType", p.ListingType, draft.ListingType},
		{"PropertyType", p.PropertyType, draft.PropertyType},
		{"ContactName", p.ContactName, draft.ContactName},
		{"ContactPhone", p.ContactPhone, draft.ContactPhone},
		{"Title", p.Title, draft.Title},
		{"Description", p.Description, draft.Description},
		{"Currency", p.Currency, draft.Currency},
		{"Condition", p.Condition, draft.Condition},
		{"FurnitureType", p.FurnitureType, draft.FurnitureType},
		{"HeatingType", p.HeatingType, draft.HeatingType},
		{"ParkingType", p.ParkingType, draft.ParkingType},
		{"BuildingMaterial", p.BuildingMaterial, draft.BuildingMaterial},
		{"KitchenType", p.KitchenType, draft.KitchenType},
		{"Street", p.Street, draft.Street},
		{"District", p.District, draft.District},
		{"City", p.City, draft.City},
	}
	for _, f := range stringFields {
		if f.got != f.want {
			t.Errorf("%s = %q, want %q", f.name, f.got, f.want)
		}
	}

	numberFields := []struct {
		name string
		got  float64
		want float64
	}{
		{"Price", p.Price, draft.Price},
		{"Beds", float64(p.Beds), float64(draft.Beds)},
		{"Baths", float64(p.Baths), float64(draft.Baths)},
		{"Rooms", float64(p.Rooms), float64(draft.Rooms)},
		{"Area", p.Area, draft.Area},
		{"TerraceArea", p.TerraceArea, draft.TerraceArea},
		{"YearBuilt", float64(p.YearBuilt), float64(draft.YearBuilt)},
		{"CeilingHeight", p.CeilingHeight, draft.CeilingHeight},
		{"FloorLevel", float64(p.FloorLevel), float64(draft.FloorLevel)},
		{"TotalFloors", float64(p.TotalFloors), float64(draft.TotalFloors)},
		{"Lat", p.Lat, draft.Lat},
		{"Lng", p.Lng, draft.Lng},
	}
	for _, f := range numberFields {
		if f.got != f.want {
			t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
		}
	}

	if p.PropertyFlags != draft.Flags {
		t.Errorf("PropertyFlags = %+v, want %+v", p.PropertyFlags, draft.Flags)
	}
}

func TestPropertyFromDraftKeepsEmptyAddressPartsEmpty(t *testing.T) {
	// A listing outside any registered district keeps those fields blank
	// instead of inheriting a stale or default value.
	draft := wizard.Draft{
		RefNumber:   "ZZ99XY0",
		ListingType: "rent",
		City:        "Koutaissi",
	}

	p := propertyFromDraft(&draft, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))

	if p.District != "" {
		t.Errorf("District = %q, want empty", p.District)
	}
	if p.Street != "" {
		t.Errorf("Street = %q, want empty", p.Street)
	}
	if p.City != "Koutaissi" {
		t.Errorf("City = %q, want %q", p.City, "Koutaissi")
	}
}
