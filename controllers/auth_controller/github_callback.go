package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/utils"
)

// GithubCallback godoc
// @Summary GitHub OAuth callback
// @Description Handles the callback from GitHub OAuth. Verifies the state token, exchanges the authorization code, retrieves user info (falling back to the emails endpoint when the profile email is private), creates/updates the user in the database, issues a JWT cookie, and redirects the user back to the frontend.
// @Tags Auth - GitHub OAuth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/github/callback [get]
func GithubCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ State mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ No code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GithubOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ Exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	client := config.GithubOAuthConfig.Client(context.Background(), token)
	githubUser, err := fetchGithubUser(client)
	if err != nil {
		log.Printf("❌ Failed to get user info: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}

	// GitHub hides the email when the user made it private; the dedicated
	// emails endpoint still returns it with the user:email scope.
	if githubUser.Email == "" {
		email, err := fetchPrimaryEmail(client)
		if err != nil {
			log.Printf("❌ Failed to get user email: %v", err)
			redirectToFrontendWithError(c, "Failed to get user email")
			return
		}
		githubUser.Email = email
	}
	if githubUser.Email == "" {
		redirectToFrontendWithError(c, "No verified email on the GitHub account")
		return
	}

	log.Printf("✅ Got user: %s (GitHub ID: %d)", githubUser.Email, githubUser.ID)

	user, err := createOrUpdateUser(githubUser)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		redirectToFrontendWithError(c, fmt.Sprintf("Database error: %v", err))
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}
	setAuthCookie(c, jwtToken)

	// Set temporary cookie with user data (for popup to read)
	isProd := os.Getenv("ENV") == "production"
	userJSON, _ := json.Marshal(user.ToResponse())
	c.SetCookie(
		"user_data",
		string(userJSON),
		60, // 1 minute (just for transfer)
		"/",
		"",
		isProd,
		false, // NOT httpOnly (popup needs to read it)
	)

	log.Printf("✅ Login successful: %s", user.Email)

	// Redirect to frontend callback (NO token in URL)
	frontendURL := config.GetFrontendURL()
	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s/auth-popup", frontendURL))
}

func fetchGithubUser(client *http.Client) (*models.GithubUserInfo, error) {
	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var githubUser models.GithubUserInfo
	if err := json.Unmarshal(body, &githubUser); err != nil {
		return nil, err
	}
	if githubUser.ID == 0 {
		return nil, fmt.Errorf("GitHub ID not found in response")
	}
	// Some accounts never set a display name
	if githubUser.Name == "" {
		githubUser.Name = githubUser.Login
	}
	return &githubUser, nil
}

func fetchPrimaryEmail(client *http.Client) (string, error) {
	resp, err := client.Get("https://api.github.com/user/emails")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var emails []models.GithubEmail
	if err := json.Unmarshal(body, &emails); err != nil {
		return "", err
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}
