package service

import (
	"encoding/json"
	"fmt"
	"time"

	"voice-assistant-backend/internal/database/models"
	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Call history list limits, matching the API contract
const (
	defaultCallListLimit = 50
	maxCallListLimit     = 200
)

// CallHistoryService handles business logic for call records
type CallHistoryService struct {
	repo      repository.CallRecordRepositoryInterface
	validator *validator.Validate
}

// Ensure CallHistoryService implements CallHistoryServiceInterface
var _ CallHistoryServiceInterface = (*CallHistoryService)(nil)

// NewCallHistoryService creates a new call history service
func NewCallHistoryService(repo repository.CallRecordRepositoryInterface, validator *validator.Validate) *CallHistoryService {
	return &CallHistoryService{repo: repo, validator: validator}
}

// CreateCallRequest represents the request to record a finished call.
// RestaurantID in the body is a fallback; the X-Restaurant-Id header wins.
type CreateCallRequest struct {
	RestaurantID    string          `json:"restaurant_id,omitempty"`
	StartedAt       time.Time       `json:"started_at" validate:"required"`
	EndedAt         *time.Time      `json:"ended_at,omitempty"`
	DurationSeconds *int            `json:"duration_seconds,omitempty" validate:"omitempty,gte=0"`
	Caller          string          `json:"caller,omitempty" validate:"omitempty,max=20"`
	Outcome         string          `json:"outcome,omitempty" validate:"omitempty,max=50"`
	Messages        json.RawMessage `json:"messages,omitempty"`
}

// CallResponse represents one call history entry
type CallResponse struct {
	ID              uuid.UUID       `json:"id"`
	StartedAt       time.Time       `json:"started_at"`
	EndedAt         *time.Time      `json:"ended_at"`
	DurationSeconds *int            `json:"duration_seconds"`
	Caller          string          `json:"caller"`
	Outcome         string          `json:"outcome"`
	Messages        json.RawMessage `json:"messages"`
}

// Create records a call for the restaurant and returns the record id
func (s *CallHistoryService) Create(restaurantID uuid.UUID, req *CreateCallRequest) (uuid.UUID, error) {
	if err := s.validator.Struct(req); err != nil {
		return uuid.Nil, apperrors.NewValidationError("", err.Error())
	}

	messages := req.Messages
	if len(messages) == 0 {
		messages = json.RawMessage("[]")
	}

	record := &models.CallRecord{
		RestaurantID:    restaurantID,
		StartedAt:       req.StartedAt,
		EndedAt:         req.EndedAt,
		DurationSeconds: req.DurationSeconds,
		Caller:          req.Caller,
		Outcome:         req.Outcome,
		Messages:        messages,
	}
	if err := s.repo.Create(record); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create call record: %w", err)
	}
	return record.ID, nil
}

// List returns the restaurant's call history, most recent first. The limit
// is clamped to [1, 200] with a default of 50.
func (s *CallHistoryService) List(restaurantID uuid.UUID, limit int) ([]CallResponse, error) {
	if limit <= 0 {
		limit = defaultCallListLimit
	}
	if limit > maxCallListLimit {
		limit = maxCallListLimit
	}

	records, err := s.repo.ListByRestaurant(restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list call records: %w", err)
	}

	responses := make([]CallResponse, 0, len(records))
	for _, record := range records {
		messages := record.Messages
		if len(messages) == 0 {
			messages = json.RawMessage("[]")
		}
		responses = append(responses, CallResponse{
			ID:              record.ID,
			StartedAt:       record.StartedAt,
			EndedAt:         record.EndedAt,
			DurationSeconds: record.DurationSeconds,
			Caller:          record.Caller,
			Outcome:         record.Outcome,
			Messages:        messages,
		})
	}
	return responses, nil
}
