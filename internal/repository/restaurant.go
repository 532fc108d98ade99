package repository

import (
	"voice-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantRepository handles database operations for restaurants
type RestaurantRepository struct {
	db *gorm.DB
}

// Ensure RestaurantRepository implements RestaurantRepositoryInterface
var _ RestaurantRepositoryInterface = (*RestaurantRepository)(nil)

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create inserts a new restaurant
func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

// GetByID retrieves a restaurant by ID
func (r *RestaurantRepository) GetByID(id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetByAPIKey retrieves a restaurant by its API key
func (r *RestaurantRepository) GetByAPIKey(apiKey string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "api_key = ?", apiKey).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}
