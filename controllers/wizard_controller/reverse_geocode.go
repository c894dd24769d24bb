package wizard_controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/services"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// ReverseGeocode godoc
// @Summary Resolve the draft's map point to an address
// @Description Resolves a latitude/longitude pair to address fields for map pin placement and snapshots the raw result on the draft session; final submission persists that snapshot instead of geocoding again. Lookup is best-effort: when no provider answers, the fields come back empty rather than failing.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} models.ApiResponse{data=services.GeocodeResult}
// @Failure 400 {object} models.ApiResponse "Missing or invalid coordinates"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft not found or expired"
// @Router /wizard/{token}/geocode [get]
func ReverseGeocode(c *gin.Context) {
	withOwnedSession(c, func(s *wizard.Session) {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid coordinates"))
			return
		}

		result := Geocoder.ReverseGeocode(c.Request.Context(), lat, lng)
		if result != (services.GeocodeResult{}) {
			if raw, err := json.Marshal(result); err == nil {
				s.Wizard.GeocodeSnapshot = raw
			}
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Address resolved", result))
	})
}
