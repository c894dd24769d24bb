package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/config"
)

// GithubLogin godoc
// @Summary Redirect to GitHub OAuth
// @Description Starts the GitHub OAuth flow by generating a state token, storing it in a secure cookie, and redirecting the user to GitHub's authorization page.
// @Tags Auth - GitHub OAuth
// @Produce json
// @Success 307 "Temporary redirect to GitHub OAuth"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/github/login [get]
func GithubLogin(c *gin.Context) {
	// Generate state token
	state := uuid.New().String()

	c.SetCookie(
		"oauth_state", // name
		state,         // value
		3600,          // maxAge (1 hour)
		"/",           // path
		"",            // domain (empty = current domain)
		false,         // secure (false for localhost)
		true,          // httpOnly
	)
	c.SetSameSite(http.SameSiteLaxMode)

	url := config.GithubOAuthConfig.AuthCodeURL(state)

	log.Printf("🔗 Redirecting to GitHub: %s", url)
	c.Redirect(http.StatusTemporaryRedirect, url)
}
