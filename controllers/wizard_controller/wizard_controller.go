// Package wizard_controller exposes the multi-step listing form over HTTP.
// Sessions are server-side; the client holds only an opaque token.
package wizard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/i18n"
	"github.com/spacemen100/house-haven-market-sub000/locations"
	"github.com/spacemen100/house-haven-market-sub000/middleware"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/services"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// Wiring set by main at startup.
var (
	Store      *wizard.Store
	Catalog    *locations.Catalog
	Submitter  *services.SubmitService
	Geocoder   *services.GeocodeService
	Translator *i18n.Translator
)

// requestLang resolves the response language for validation messages.
func requestLang(c *gin.Context) string {
	return i18n.Pick(c.Query("lang"), c.GetHeader("Accept-Language"))
}

// withOwnedSession runs fn on the session behind the :token param after
// checking that it belongs to the authenticated user. It writes the error
// response itself when the session is missing or foreign.
func withOwnedSession(c *gin.Context, fn func(s *wizard.Session)) {
	userID, ok := middleware.GetUserUUIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	token := c.Param("token")
	found := Store.With(token, func(s *wizard.Session) {
		if s.UserID != userID {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Not your draft"))
			return
		}
		fn(s)
	})
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Draft not found or expired"))
	}
}

// stateView is the wire shape of a wizard session snapshot.
type stateView struct {
	Token      string       `json:"token,omitempty"`
	Step       string       `json:"step"`
	RefNumber  string       `json:"ref_number"`
	Draft      wizard.Draft `json:"draft"`
	ImageCount int          `json:"image_count"`
	Editing    bool         `json:"editing"`
}

func viewOf(s *wizard.Session, token string) stateView {
	return stateView{
		Token:      token,
		Step:       s.Wizard.Current().String(),
		RefNumber:  s.Wizard.RefNumber(),
		Draft:      s.Wizard.Draft(),
		ImageCount: s.Wizard.ImageCount(),
		Editing:    s.Wizard.EditingID != nil,
	}
}
