package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"voice-assistant-backend/internal/config"
	"voice-assistant-backend/internal/database"
	"voice-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RestaurantData struct {
	Name         string   `yaml:"name"`
	APIKey       string   `yaml:"api_key,omitempty"`
	PhoneNumbers []string `yaml:"phone_numbers,omitempty"`
}

type RestaurantsFile struct {
	Restaurants []RestaurantData `yaml:"restaurants"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	restaurants, err := loadRestaurants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load restaurants: %w", err)
	}

	created, mapped := 0, 0
	for _, data := range restaurants {
		restaurant, err := upsertRestaurant(db, data)
		if err != nil {
			return fmt.Errorf("failed to upsert restaurant %q: %w", data.Name, err)
		}
		if restaurant != nil {
			created++
		}

		n, err := claimPhoneNumbers(db, data)
		if err != nil {
			return fmt.Errorf("failed to map phone numbers for %q: %w", data.Name, err)
		}
		mapped += n
	}

	log.Printf("Loaded %d restaurants, %d phone mappings", created, mapped)
	return nil
}

func loadRestaurants(dataDir string) ([]RestaurantData, error) {
	path := filepath.Join(dataDir, "restaurants.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No restaurants.yaml found in %s, nothing to load", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file RestaurantsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Restaurants, nil
}

// upsertRestaurant creates the restaurant if its API key is not already
// registered. Reruns of the loader leave existing rows untouched.
func upsertRestaurant(db *gorm.DB, data RestaurantData) (*models.Restaurant, error) {
	apiKey := data.APIKey
	if apiKey == "" {
		apiKey = "api_key_" + uuid.New().String()[:16]
	}

	var existing models.Restaurant
	err := db.Where("api_key = ?", apiKey).First(&existing).Error
	if err == nil {
		log.Printf("Restaurant %q already exists, skipping", data.Name)
		return nil, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	restaurant := models.Restaurant{
		Name:   data.Name,
		APIKey: apiKey,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	log.Printf("Created restaurant %q (%s)", restaurant.Name, restaurant.ID)
	return &restaurant, nil
}

// claimPhoneNumbers binds the restaurant's declared numbers in the directory.
// Numbers already claimed by another restaurant are reported and skipped.
func claimPhoneNumbers(db *gorm.DB, data RestaurantData) (int, error) {
	if len(data.PhoneNumbers) == 0 {
		return 0, nil
	}

	apiKey := data.APIKey
	var restaurant models.Restaurant
	if err := db.Where("api_key = ? OR name = ?", apiKey, data.Name).First(&restaurant).Error; err != nil {
		return 0, err
	}

	mapped := 0
	for _, raw := range data.PhoneNumbers {
		phone := models.NormalizePhoneNumber(raw)
		var existing models.PhoneMapping
		err := db.Where("phone_number = ?", phone).First(&existing).Error
		if err == nil {
			if existing.RestaurantID != restaurant.ID {
				log.Printf("Phone %s already mapped to another restaurant, skipping", phone)
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return mapped, err
		}

		mapping := models.PhoneMapping{
			PhoneNumber:  phone,
			RestaurantID: restaurant.ID,
		}
		if err := db.Create(&mapping).Error; err != nil {
			return mapped, err
		}
		log.Printf("Mapped %s -> %s", phone, restaurant.Name)
		mapped++
	}
	return mapped, nil
}
