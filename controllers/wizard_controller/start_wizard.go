package wizard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/middleware"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// StartWizard godoc
// @Summary Start a new listing draft
// @Description Opens a wizard session for the authenticated user. The reference number is generated here, once, and never changes for the life of the draft.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /wizard [post]
func StartWizard(c *gin.Context) {
	userID, ok := middleware.GetUserUUIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	w := wizard.New(Catalog)
	token := Store.Create(w, userID)

	log.Printf("✅ Draft %s started (ref %s)", token, w.RefNumber())

	Store.With(token, func(s *wizard.Session) {
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Draft started", viewOf(s, token)))
	})
}
