package service

import (
	"errors"
	"fmt"

	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/logger"
	"voice-assistant-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallRoutingService resolves the called number of an inbound call to the
// restaurant it belongs to. Pure read over the directory; an unmapped
// number is a normal outcome, not an error.
type CallRoutingService struct {
	mappings repository.PhoneMappingRepositoryInterface
}

// Ensure CallRoutingService implements CallRoutingServiceInterface
var _ CallRoutingServiceInterface = (*CallRoutingService)(nil)

// NewCallRoutingService creates a new call routing service
func NewCallRoutingService(mappings repository.PhoneMappingRepositoryInterface) *CallRoutingService {
	return &CallRoutingService{mappings: mappings}
}

// ResolveRestaurant returns the restaurant bound to the phone number.
// ErrPhoneMappingNotFound signals "proceed without tenant context" and is
// logged as an informational miss only.
func (s *CallRoutingService) ResolveRestaurant(phoneNumber string) (uuid.UUID, error) {
	if phoneNumber == "" {
		return uuid.Nil, apperrors.ErrPhoneMappingNotFound
	}

	mapping, err := s.mappings.GetByPhone(phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.New().WithField("phone_number", phoneNumber).Info("No restaurant mapped for inbound number")
			return uuid.Nil, apperrors.ErrPhoneMappingNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve restaurant: %w", err)
	}

	return mapping.RestaurantID, nil
}
