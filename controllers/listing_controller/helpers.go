package listing_controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/search"
	"gorm.io/gorm"
)

// relationPreloads lists every association loaded for a full listing view.
var relationPreloads = []string{
	"Images", "Amenities", "Equipment", "InternetTV", "Storage",
	"Security", "NearbyPlaces", "OnlineServices",
}

func preloadAll(db *gorm.DB) *gorm.DB {
	for _, rel := range relationPreloads {
		db = db.Preload(rel)
	}
	return db
}

// filterStateFromQuery maps the listings-page query string onto the filter
// engine's state. Absent params leave the defaults, which pass everything.
func filterStateFromQuery(c *gin.Context) search.FilterState {
	f := search.DefaultFilterState()

	f.Query = c.Query("q")
	f.PropertyTypes = splitCSV(c.Query("property_types"))
	f.ListingTypes = splitCSV(c.Query("listing_types"))
	f.Flags = splitCSV(c.Query("flags"))
	f.Conditions = splitCSV(c.Query("conditions"))
	f.FurnitureTypes = splitCSV(c.Query("furniture_types"))
	f.HeatingTypes = splitCSV(c.Query("heating_types"))
	f.ParkingTypes = splitCSV(c.Query("parking_types"))
	f.BuildingMaterials = splitCSV(c.Query("building_materials"))
	f.KitchenTypes = splitCSV(c.Query("kitchen_types"))

	f.PriceMin = queryFloat(c, "price_min")
	if max := queryFloat(c, "price_max"); max > 0 {
		f.PriceMax = max
	}
	f.AreaMin = queryFloat(c, "area_min")
	if max := queryFloat(c, "area_max"); max > 0 {
		f.AreaMax = max
	}
	f.BedsMin = queryInt(c, "beds_min")
	f.BathsMin = queryInt(c, "baths_min")

	f.Sort = search.ParseSortKey(c.Query("sort"))
	return f
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func queryFloat(c *gin.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.Query(name), 64)
	return v
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}
