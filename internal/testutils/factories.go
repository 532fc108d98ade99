package testutils

import (
	"time"

	"voice-assistant-backend/internal/database/models"

	"github.com/google/uuid"
)

// RestaurantFactory provides methods to create test Restaurant data
type RestaurantFactory struct{}

// NewRestaurantFactory creates a new RestaurantFactory
func NewRestaurantFactory() *RestaurantFactory {
	return &RestaurantFactory{}
}

// Create creates a test Restaurant with default values
func (f *RestaurantFactory) Create() *models.Restaurant {
	id := uuid.New()
	return &models.Restaurant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Test Restaurant",
		APIKey: "api_key_" + id.String()[:8],
	}
}

// WithName sets a custom name for the restaurant
func (f *RestaurantFactory) WithName(name string) *models.Restaurant {
	r := f.Create()
	r.Name = name
	return r
}

// WithAPIKey sets a custom API key for the restaurant
func (f *RestaurantFactory) WithAPIKey(apiKey string) *models.Restaurant {
	r := f.Create()
	r.APIKey = apiKey
	return r
}

// PhoneMappingFactory provides methods to create test PhoneMapping data
type PhoneMappingFactory struct{}

// NewPhoneMappingFactory creates a new PhoneMappingFactory
func NewPhoneMappingFactory() *PhoneMappingFactory {
	return &PhoneMappingFactory{}
}

// Create creates a test PhoneMapping with default values
func (f *PhoneMappingFactory) Create(phoneNumber string, restaurantID uuid.UUID) *models.PhoneMapping {
	return &models.PhoneMapping{
		PhoneNumber:  phoneNumber,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
