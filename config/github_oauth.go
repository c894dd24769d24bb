package config

import (
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

var GithubOAuthConfig *oauth2.Config

// InitGithubOAuth initializes the GitHub OAuth configuration
func InitGithubOAuth() {
	clientID := os.Getenv("GITHUB_CLIENT_ID")
	clientSecret := os.Getenv("GITHUB_CLIENT_SECRET")
	redirectURL := os.Getenv("GITHUB_REDIRECT_URL")

	if clientID == "" || clientSecret == "" {
		log.Fatal("❌ GITHUB_CLIENT_ID and GITHUB_CLIENT_SECRET must be set in .env")
	}

	if redirectURL == "" {
		redirectURL = "http://localhost:8080/api/v1/auth/github/callback"
		log.Printf("⚠️  GITHUB_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	GithubOAuthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     github.Endpoint,
	}

	log.Println("✅ GitHub OAuth initialized successfully")
}

// GetFrontendURL returns frontend URL from environment
func GetFrontendURL() string {
	urlFromEnv := os.Getenv("FRONTEND_URL")
	if urlFromEnv == "" {
		defaultURL := "http://localhost:3000"
		log.Printf("⚠️  FRONTEND_URL not set, using default: %s", defaultURL)
		return defaultURL
	}
	return urlFromEnv
}
