package locations

import "testing"

func TestDefaultCatalogCities(t *testing.T) {
	catalog := DefaultCatalog()

	cities := catalog.Cities()
	if len(cities) == 0 {
		t.Fatal("expected at least one city")
	}
	if cities[0] != "Tbilissi" {
		t.Errorf("expected capital first, got %q", cities[0])
	}
}

func TestDistrictsForUnknownCity(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name string
		city string
	}{
		{"unknown city", "Atlantis"},
		{"empty city", ""},
		{"case mismatch", "tbilissi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			districts := catalog.DistrictsFor(tt.city)
			if len(districts) != 0 {
				t.Errorf("DistrictsFor(%q) = %v, want empty", tt.city, districts)
			}
		})
	}
}

func TestStreetsForInvalidPair(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name     string
		city     string
		district string
	}{
		{"district from another city", "Batumi", "Vake"},
		{"unknown district", "Tbilissi", "Nowhere"},
		{"unknown city with real district", "Atlantis", "Vake"},
		{"empty district", "Tbilissi", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streets := catalog.StreetsFor(tt.city, tt.district)
			if len(streets) != 0 {
				t.Errorf("StreetsFor(%q, %q) = %v, want empty", tt.city, tt.district, streets)
			}
		})
	}
}

func TestStreetsForValidPair(t *testing.T) {
	catalog := DefaultCatalog()

	streets := catalog.StreetsFor("Tbilissi", "Vake")
	if len(streets) == 0 {
		t.Fatal("expected streets for Tbilissi/Vake")
	}

	found := false
	for _, s := range streets {
		if s == "Chavchavadze Avenue" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Chavchavadze Avenue in %v", streets)
	}
}

func TestCenter(t *testing.T) {
	catalog := DefaultCatalog()

	lat, lng, ok := catalog.Center("Tbilissi")
	if !ok {
		t.Fatal("expected a center for the capital")
	}
	if lat != 41.7151 || lng != 44.8271 {
		t.Errorf("Center(Tbilissi) = (%v, %v), want (41.7151, 44.8271)", lat, lng)
	}

	if _, _, ok := catalog.Center("Atlantis"); ok {
		t.Error("expected no center for an unknown city")
	}
}
