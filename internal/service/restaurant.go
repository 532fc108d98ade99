package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-assistant-backend/internal/database/models"
	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/logger"
	"voice-assistant-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantService handles business logic for restaurants
type RestaurantService struct {
	repo        repository.RestaurantRepositoryInterface
	mappings    repository.PhoneMappingRepositoryInterface
	phoneAssign PhoneAssignmentServiceInterface
	validator   *validator.Validate
}

// Ensure RestaurantService implements RestaurantServiceInterface
var _ RestaurantServiceInterface = (*RestaurantService)(nil)

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(
	repo repository.RestaurantRepositoryInterface,
	mappings repository.PhoneMappingRepositoryInterface,
	phoneAssign PhoneAssignmentServiceInterface,
	validator *validator.Validate,
) *RestaurantService {
	return &RestaurantService{
		repo:        repo,
		mappings:    mappings,
		phoneAssign: phoneAssign,
		validator:   validator,
	}
}

// CreateRestaurantRequest represents the request to create a restaurant
type CreateRestaurantRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	APIKey string `json:"api_key,omitempty" validate:"omitempty,max=100"`
	// AssignPhone defaults to true when omitted
	AssignPhone      *bool `json:"assign_phone,omitempty"`
	ForceNewPurchase bool  `json:"force_twilio,omitempty"`
}

// RestaurantResponse represents the response for restaurant operations.
// PhoneNumber is null when no number could be assigned; PhoneOutcome says
// why, so the caller can decide whether to treat it as a soft failure.
type RestaurantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	APIKey       string    `json:"api_key"`
	PhoneNumber  *string   `json:"phone_number"`
	PhoneOutcome string    `json:"phone_outcome,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

// Create creates a new restaurant and, unless opted out, allocates a phone
// number. Creation never fails solely because allocation failed: the
// restaurant is returned with a null phone number and the outcome code.
func (s *RestaurantService) Create(ctx context.Context, req *CreateRestaurantRequest) (*RestaurantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = "api_key_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	}

	existing, err := s.repo.GetByAPIKey(apiKey)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing restaurant: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRestaurantExists
	}

	restaurant := &models.Restaurant{
		Name:   req.Name,
		APIKey: apiKey,
	}
	if err := s.repo.Create(restaurant); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	response := s.toResponse(restaurant, nil, "")

	assignPhone := req.AssignPhone == nil || *req.AssignPhone
	if assignPhone {
		phone, outcome, err := s.phoneAssign.AssignPhoneNumber(ctx, restaurant.ID, req.ForceNewPurchase)
		if err != nil {
			logger.New().WithFields(map[string]interface{}{
				"restaurant_id": restaurant.ID.String(),
				"outcome":       string(outcome),
			}).Warnf("Phone assignment failed: %v", err)
		}
		response.PhoneOutcome = string(outcome)
		// Quota exhaustion without an owned fallback yields no number;
		// the response must carry an explicit null, never ""
		if outcome.Assigned() && phone != "" {
			response.PhoneNumber = &phone
		}
	}

	return response, nil
}

// GetByID retrieves a restaurant by ID, including its assigned number if any
func (s *RestaurantService) GetByID(id uuid.UUID) (*RestaurantResponse, error) {
	restaurant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	var phone *string
	mapping, err := s.mappings.GetByRestaurant(id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get phone mapping: %w", err)
	}
	if mapping != nil {
		phone = &mapping.PhoneNumber
	}

	return s.toResponse(restaurant, phone, ""), nil
}

// toResponse converts a restaurant model to response
func (s *RestaurantService) toResponse(restaurant *models.Restaurant, phone *string, outcome string) *RestaurantResponse {
	return &RestaurantResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		APIKey:       restaurant.APIKey,
		PhoneNumber:  phone,
		PhoneOutcome: outcome,
		CreatedAt:    restaurant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
