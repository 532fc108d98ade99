package repository

import (
	"voice-assistant-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RestaurantRepositoryInterface defines the interface for restaurant repository operations
type RestaurantRepositoryInterface interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id uuid.UUID) (*models.Restaurant, error)
	GetByAPIKey(apiKey string) (*models.Restaurant, error)
}

// PhoneMappingRepositoryInterface defines the interface for the phone directory.
// Upsert is the single arbiter of number ownership: the first committed row
// wins and later claims for a different restaurant get ErrPhoneMappingConflict.
type PhoneMappingRepositoryInterface interface {
	Upsert(phoneNumber string, restaurantID uuid.UUID) error
	GetByPhone(phoneNumber string) (*models.PhoneMapping, error)
	GetByRestaurant(restaurantID uuid.UUID) (*models.PhoneMapping, error)
	ListUnassigned(candidates []string) ([]string, error)
}

// CallRecordRepositoryInterface defines the interface for call history operations
type CallRecordRepositoryInterface interface {
	Create(record *models.CallRecord) error
	ListByRestaurant(restaurantID uuid.UUID, limit int) ([]models.CallRecord, error)
}
