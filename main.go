package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/evergreenlots/treestore-api/catalog"
	"github.com/evergreenlots/treestore-api/config"
	"github.com/evergreenlots/treestore-api/geocode"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/evergreenlots/treestore-api/routes"
	"github.com/evergreenlots/treestore-api/square"
)

func main() {
	log.Println("✅ Starting application...")

	cfg := config.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate session cart tables
	if err := db.AutoMigrate(
		&models.CartSession{},
		&models.CartSessionItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// External collaborators
	squareClient := square.NewClient(cfg.SquareAccessToken, cfg.SquareEnv)
	geocoder := geocode.NewClient(cfg.GoogleMapsAPIKey)
	cache := catalog.NewCache(config.MustInitRedis(cfg))
	loader := catalog.NewLoader(squareClient, cache, cfg.Store)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Loader:   loader,
		Geocoder: geocoder,
		Payments: squareClient,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
