package locations

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog holds the registered City → District → Street hierarchy. Lookups
// never fail: unknown cities or (city, district) pairs yield empty lists.
type Catalog struct {
	cities []CityEntry
	index  map[string]*CityEntry
}

// CityEntry is one city with its center coordinate and districts, in
// registration order.
type CityEntry struct {
	Name      string          `yaml:"name"`
	Lat       float64         `yaml:"lat"`
	Lng       float64         `yaml:"lng"`
	Districts []DistrictEntry `yaml:"districts"`
}

// DistrictEntry is one district with its registered streets.
type DistrictEntry struct {
	Name    string   `yaml:"name"`
	Streets []string `yaml:"streets"`
}

type catalogFile struct {
	Cities []CityEntry `yaml:"cities"`
}

// DefaultCatalog parses the embedded catalog. The data is validated at build
// of the binary's first use; a broken embedded file is a programming error.
func DefaultCatalog() *Catalog {
	catalog, err := parseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded location catalog is invalid: %v", err))
	}
	return catalog
}

// LoadCatalog reads a catalog from a YAML file, falling back to the embedded
// default when the file does not exist.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read location catalog: %w", err)
	}
	catalog, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location catalog: %w", err)
	}
	return catalog, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	catalog := &Catalog{
		cities: file.Cities,
		index:  make(map[string]*CityEntry, len(file.Cities)),
	}
	for i := range catalog.cities {
		catalog.index[catalog.cities[i].Name] = &catalog.cities[i]
	}
	return catalog, nil
}

// Cities returns the registered city names in catalog order.
func (c *Catalog) Cities() []string {
	names := make([]string, len(c.cities))
	for i, city := range c.cities {
		names[i] = city.Name
	}
	return names
}

// DistrictsFor returns the ordered district list for city. Unknown cities
// yield an empty list, never an error.
func (c *Catalog) DistrictsFor(city string) []string {
	entry, ok := c.index[city]
	if !ok {
		return []string{}
	}
	names := make([]string, len(entry.Districts))
	for i, d := range entry.Districts {
		names[i] = d.Name
	}
	return names
}

// StreetsFor returns the ordered street list registered for (city, district).
// An unregistered pair yields an empty list.
func (c *Catalog) StreetsFor(city, district string) []string {
	entry, ok := c.index[city]
	if !ok {
		return []string{}
	}
	for _, d := range entry.Districts {
		if d.Name == district {
			streets := make([]string, len(d.Streets))
			copy(streets, d.Streets)
			return streets
		}
	}
	return []string{}
}

// Center returns the city-center coordinate used as the default map point.
func (c *Catalog) Center(city string) (lat, lng float64, ok bool) {
	entry, found := c.index[city]
	if !found {
		return 0, 0, false
	}
	return entry.Lat, entry.Lng, true
}
