package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
)

// GetStreets godoc
// @Summary List streets of a district
// @Description Returns the streets of the given city/district pair. A pair that does not exist in the catalog yields an empty list, never an error.
// @Tags Locations
// @Produce json
// @Param city query string true "City name"
// @Param district query string true "District name"
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Router /locations/streets [get]
func GetStreets(c *gin.Context) {
	city := c.Query("city")
	district := c.Query("district")
	streets := Catalog.StreetsFor(city, district)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Streets fetched", streets))
}
