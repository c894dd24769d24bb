package wizard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// GetWizardState godoc
// @Summary Get the current draft state
// @Description Returns the active step, reference number, accumulated draft and staged image count of a wizard session.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft not found or expired"
// @Router /wizard/{token} [get]
func GetWizardState(c *gin.Context) {
	withOwnedSession(c, func(s *wizard.Session) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Draft state", viewOf(s, c.Param("token"))))
	})
}
