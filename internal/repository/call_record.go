package repository

import (
	"voice-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallRecordRepository handles database operations for call history
type CallRecordRepository struct {
	db *gorm.DB
}

// Ensure CallRecordRepository implements CallRecordRepositoryInterface
var _ CallRecordRepositoryInterface = (*CallRecordRepository)(nil)

// NewCallRecordRepository creates a new call record repository
func NewCallRecordRepository(db *gorm.DB) *CallRecordRepository {
	return &CallRecordRepository{db: db}
}

// Create inserts a new call record
func (r *CallRecordRepository) Create(record *models.CallRecord) error {
	return r.db.Create(record).Error
}

// ListByRestaurant returns the restaurant's call history, most recent first
func (r *CallRecordRepository) ListByRestaurant(restaurantID uuid.UUID, limit int) ([]models.CallRecord, error) {
	var records []models.CallRecord
	err := r.db.
		Where("restaurant_id = ?", restaurantID).
		Order("started_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
