package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/locations"
	"github.com/spacemen100/house-haven-market-sub000/models"
)

// Catalog is the location catalog the handlers serve from; main wires it at
// startup.
var Catalog *locations.Catalog

// GetCities godoc
// @Summary List cities
// @Description Returns all cities of the location catalog, in catalog order.
// @Tags Locations
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Router /locations/cities [get]
func GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cities fetched", Catalog.Cities()))
}
