// @title House Haven Market API
// @version 1.0
// @description Real estate marketplace backend API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/controllers/listing_controller"
	"github.com/spacemen100/house-haven-market-sub000/controllers/location_controller"
	"github.com/spacemen100/house-haven-market-sub000/controllers/wizard_controller"
	"github.com/spacemen100/house-haven-market-sub000/i18n"
	"github.com/spacemen100/house-haven-market-sub000/locations"
	"github.com/spacemen100/house-haven-market-sub000/routes"
	"github.com/spacemen100/house-haven-market-sub000/services"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	// JWT secret is required; everything auth'd depends on it
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	storage, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}
	log.Println("✅ Cloudinary service initialized")

	// ✅ Initialize GitHub OAuth
	config.InitGithubOAuth()

	// Location catalog: an external file can override the embedded one
	catalog, err := locations.LoadCatalog(os.Getenv("LOCATION_CATALOG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load location catalog: %v", err)
	}

	// Wizard sessions, submission pipeline and geocoding
	store := wizard.NewStore()
	submitter := services.NewSubmitService(config.Gorm, storage)
	geocoder := services.NewGeocodeService(nil, services.GeocodeConfig{})
	translator := i18n.NewTranslator()

	wizard_controller.Store = store
	wizard_controller.Catalog = catalog
	wizard_controller.Submitter = submitter
	wizard_controller.Geocoder = geocoder
	wizard_controller.Translator = translator
	location_controller.Catalog = catalog
	listing_controller.Storage = storage

	// Hourly cleanup of abandoned drafts
	cleanup := services.NewCleanupService(store)
	if err := cleanup.Start(); err != nil {
		log.Fatalf("Failed to start cleanup scheduler: %v", err)
	}
	defer cleanup.Stop()

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	routes.SetupAuthRoutes(api)
	routes.SetupLocationRoutes(api)
	routes.SetupListingRoutes(api)
	routes.SetupWizardRoutes(api)
	log.Println("✅ Routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
