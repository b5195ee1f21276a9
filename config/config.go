package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Store holds the static storefront configuration: the single product
// category the shop sells from, the reserved delivery-fee item naming,
// physical locations, and opening hours.
type Store struct {
	TargetCategoryID   string
	DeliveryItemPrefix string
	Locations          []StoreLocation
	Hours              StoreHours
	MaxDeliveryMiles   float64
}

type StoreLocation struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	SquareLocationID string  `json:"-"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	Address          string  `json:"address"`
}

type StoreHours struct {
	Open  int // opening hour, 24h clock
	Close int
}

// Location returns the store location with the given id.
func (s Store) Location(id string) (StoreLocation, bool) {
	for _, loc := range s.Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return StoreLocation{}, false
}

// Config is the full application configuration, loaded once in main
// and passed explicitly into every controller.
type Config struct {
	Port string

	SquareAccessToken string
	SquareEnv         string // "production" or "sandbox"
	BaseURL           string
	GoogleMapsAPIKey  string
	JWTSecret         string
	AdminAPIKey       string

	RedisAddr string

	Store Store
}

// Load reads .env (if present) and assembles the Config. Credential
// presence is not enforced here; each endpoint checks what it needs so
// the catalog can still be browsed when, say, the geocode key is absent.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		SquareAccessToken: os.Getenv("SQUARE_ACCESS_TOKEN"),
		SquareEnv:         getEnv("SQUARE_ENV", "sandbox"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:3000"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminAPIKey:       os.Getenv("ADMIN_API_KEY"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		Store:             defaultStore(),
	}

	if cfg.SquareAccessToken == "" {
		log.Println("⚠️ SQUARE_ACCESS_TOKEN is not set; catalog and checkout will fail")
	}
	return cfg
}

func defaultStore() Store {
	return Store{
		TargetCategoryID:   getEnv("TREES_CATEGORY_ID", "IQ6T2GWVZQBH33LUA7NLBG46"),
		DeliveryItemPrefix: "DELIVERY-",
		Locations: []StoreLocation{
			{
				ID:               "los-angeles",
				Name:             "Los Angeles",
				SquareLocationID: getEnv("SQUARE_LOCATION_ID_LA", "L5BQY108WBHK4"),
				Lat:              34.044227,
				Lng:              -118.272217,
				Address:          "1360 S Figueroa St, Los Angeles, CA 90015",
			},
			{
				ID:               "altadena",
				Name:             "Altadena",
				SquareLocationID: getEnv("SQUARE_LOCATION_ID_ALTADENA", "LR7THQ45Q4P0V"),
				Lat:              34.190141,
				Lng:              -118.158531,
				Address:          "2308 N. Lincoln Ave, Altadena, CA 91001",
			},
		},
		Hours:            StoreHours{Open: 9, Close: 21},
		MaxDeliveryMiles: 8,
	}
}

// MustInitRedis connects the catalog cache. Returns nil when REDIS_ADDR
// is unset so the cache can be skipped entirely in small deployments.
func MustInitRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	return client
}

// DatabaseDSN builds the postgres DSN from DATABASE_URL or the
// individual DB_* variables.
func DatabaseDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
