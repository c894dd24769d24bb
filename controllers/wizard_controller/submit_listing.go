package wizard_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	filter_cache "github.com/spacemen100/house-haven-market-sub000/cache"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/services"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
	"gorm.io/datatypes"
)

// SubmitListing godoc
// @Summary Submit the completed draft
// @Description Persists the draft: staged images are uploaded first, then the core record is written and awaited, then the categorical lists are written concurrently. Auxiliary failures leave already-persisted writes in place and the operation is reported as failed; only a core write failure preserves the draft for retry.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Success 201 {object} models.ApiResponse{data=models.Property}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft not found or expired"
// @Failure 409 {object} models.ApiResponse "Draft not ready for submission"
// @Failure 500 {object} models.ApiResponse "Core write failed, draft preserved"
// @Failure 502 {object} models.ApiResponse "Submitted with partial failures"
// @Router /wizard/{token}/submit [post]
func SubmitListing(c *gin.Context) {
	token := c.Param("token")
	spent := false
	withOwnedSession(c, func(s *wizard.Session) {
		ctx := c.Request.Context()

		// The geocode snapshot was captured when the map point was resolved;
		// an empty one is fine.
		snapshot := datatypes.JSON(s.Wizard.GeocodeSnapshot)

		property, issues, err := Submitter.Submit(ctx, s.Wizard, s.UserID, snapshot)
		if err != nil {
			if errors.Is(err, services.ErrNotReady) {
				c.JSON(http.StatusConflict, models.ErrorResponse(c, "Draft is not ready for submission"))
				return
			}
			// Core write failed: the draft stays on the final step so the
			// user can retry.
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save the listing"))
			return
		}

		// The core record is persisted either way; the session is spent.
		s.Wizard.Finish()
		spent = true
		filter_cache.Invalidate()

		if issues.Any() {
			c.JSON(http.StatusBadGateway, models.ApiResponse{
				Message: "Listing saved with partial failures",
				Error:   true,
				Data: gin.H{
					"listing": property,
					"issues":  issues,
				},
			})
		} else {
			c.JSON(http.StatusCreated, models.SuccessResponse(c, "Listing published", property))
		}
	})
	if spent {
		Store.Delete(token)
	}
}
