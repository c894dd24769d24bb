package locations

import "testing"

func TestCityChangeClearsInvalidChildren(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	s.SetCity("Tbilissi")
	s.SetDistrict("Vake")
	s.SetStreet("Chavchavadze Avenue")

	// Batumi has no Vake, so both children must clear
	sel := s.SetCity("Batumi")
	if sel.City != "Batumi" {
		t.Errorf("city = %q, want Batumi", sel.City)
	}
	if sel.District != "" {
		t.Errorf("district = %q, want cleared", sel.District)
	}
	if sel.Street != "" {
		t.Errorf("street = %q, want cleared", sel.Street)
	}
	if !s.Valid() {
		t.Error("selection should be valid after cascade reset")
	}
}

func TestEmptyCityClearsEverything(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	s.SetCity("Tbilissi")
	s.SetDistrict("Saburtalo")
	s.SetStreet("Kazbegi Avenue")

	sel := s.SetCity("")
	if sel.City != "" || sel.District != "" || sel.Street != "" {
		t.Errorf("expected all slots cleared, got %+v", sel)
	}
}

func TestDistrictChangeClearsForeignStreet(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	s.SetCity("Tbilissi")
	s.SetDistrict("Vake")
	s.SetStreet("Chavchavadze Avenue")

	// Chavchavadze Avenue is not in Saburtalo
	sel := s.SetDistrict("Saburtalo")
	if sel.District != "Saburtalo" {
		t.Errorf("district = %q, want Saburtalo", sel.District)
	}
	if sel.Street != "" {
		t.Errorf("street = %q, want cleared", sel.Street)
	}
}

func TestEmptyDistrictClearsStreet(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	s.SetCity("Tbilissi")
	s.SetDistrict("Vera")
	s.SetStreet("Kostava Street")

	sel := s.SetDistrict("")
	if sel.Street != "" {
		t.Errorf("street = %q, want cleared", sel.Street)
	}
}

func TestRestoreDropsStaleValues(t *testing.T) {
	tests := []struct {
		name string
		in   Selection
		want Selection
	}{
		{
			name: "fully valid selection survives",
			in:   Selection{City: "Tbilissi", District: "Vake", Street: "Abashidze Street"},
			want: Selection{City: "Tbilissi", District: "Vake", Street: "Abashidze Street"},
		},
		{
			name: "district from another city drops district and street",
			in:   Selection{City: "Batumi", District: "Vake", Street: "Abashidze Street"},
			want: Selection{City: "Batumi"},
		},
		{
			name: "street from another district drops street only",
			in:   Selection{City: "Tbilissi", District: "Vake", Street: "Kazbegi Avenue"},
			want: Selection{City: "Tbilissi", District: "Vake"},
		},
		{
			name: "unknown city keeps city but nothing else",
			in:   Selection{City: "Atlantis", District: "Vake", Street: "Abashidze Street"},
			want: Selection{City: "Atlantis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(DefaultCatalog())
			got := s.Restore(tt.in)
			if got != tt.want {
				t.Errorf("Restore(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
