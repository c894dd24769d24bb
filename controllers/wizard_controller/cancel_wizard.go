package wizard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// CancelWizard godoc
// @Summary Discard a draft
// @Description Drops the wizard session and every staged image with it. Nothing was persisted, so there is nothing to clean up remotely.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft not found or expired"
// @Router /wizard/{token} [delete]
func CancelWizard(c *gin.Context) {
	token := c.Param("token")
	owned := false
	withOwnedSession(c, func(s *wizard.Session) {
		owned = true
	})
	if owned {
		Store.Delete(token)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Draft discarded", nil))
	}
}
