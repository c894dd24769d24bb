package locations

// Selector keeps the City → District → Street selection slots mutually
// consistent. District's domain is a function of City; Street's domain is a
// function of (City, District). Any parent change that invalidates a child's
// current value clears the child; values are never silently substituted.
type Selector struct {
	catalog  *Catalog
	city     string
	district string
	street   string
}

// Selection is a snapshot of the three slots. Empty string means
// "no selection".
type Selection struct {
	City     string `json:"city"`
	District string `json:"district"`
	Street   string `json:"street"`
}

func NewSelector(catalog *Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Selection returns the current slot values.
func (s *Selector) Selection() Selection {
	return Selection{City: s.city, District: s.district, Street: s.street}
}

// SetCity changes the city slot. An empty value clears all three slots. A
// district that is no longer in the new city's list is cleared together with
// the street; a district that survives still has its street rechecked
// against the new (city, district) street set.
func (s *Selector) SetCity(city string) Selection {
	s.city = city
	if city == "" {
		s.district = ""
		s.street = ""
		return s.Selection()
	}
	if !contains(s.catalog.DistrictsFor(city), s.district) {
		s.district = ""
		s.street = ""
		return s.Selection()
	}
	if !contains(s.catalog.StreetsFor(s.city, s.district), s.street) {
		s.street = ""
	}
	return s.Selection()
}

// SetDistrict changes the district slot. An empty value clears the street as
// well. A street not registered for the new (city, district) pair is cleared.
func (s *Selector) SetDistrict(district string) Selection {
	s.district = district
	if district == "" {
		s.street = ""
		return s.Selection()
	}
	if !contains(s.catalog.StreetsFor(s.city, district), s.street) {
		s.street = ""
	}
	return s.Selection()
}

// SetStreet changes the street slot.
func (s *Selector) SetStreet(street string) Selection {
	s.street = street
	return s.Selection()
}

// Restore seeds the slots from a stored selection, applying the same cascade
// rules so a stale stored value cannot resurrect an invalid combination.
func (s *Selector) Restore(sel Selection) Selection {
	s.SetCity(sel.City)
	if s.city != "" && contains(s.catalog.DistrictsFor(s.city), sel.District) {
		s.SetDistrict(sel.District)
		if contains(s.catalog.StreetsFor(s.city, s.district), sel.Street) {
			s.SetStreet(sel.Street)
		}
	}
	return s.Selection()
}

// Valid reports whether the current selection is internally consistent: a
// set district belongs to the city and a set street belongs to the pair.
func (s *Selector) Valid() bool {
	if s.district != "" && !contains(s.catalog.DistrictsFor(s.city), s.district) {
		return false
	}
	if s.street != "" && !contains(s.catalog.StreetsFor(s.city, s.district), s.street) {
		return false
	}
	return true
}

func contains(list []string, value string) bool {
	if value == "" {
		return false
	}
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
