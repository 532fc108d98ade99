package repository

import (
	"voice-assistant-backend/internal/database/models"
	apperrors "voice-assistant-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PhoneMappingRepository handles database operations for the phone directory
type PhoneMappingRepository struct {
	db *gorm.DB
}

// Ensure PhoneMappingRepository implements PhoneMappingRepositoryInterface
var _ PhoneMappingRepositoryInterface = (*PhoneMappingRepository)(nil)

// NewPhoneMappingRepository creates a new phone mapping repository
func NewPhoneMappingRepository(db *gorm.DB) *PhoneMappingRepository {
	return &PhoneMappingRepository{db: db}
}

// Upsert claims a phone number for a restaurant. The insert races on the
// primary key: exactly one concurrent caller commits a row, every other
// caller observes zero affected rows and reads back the winner. Claiming a
// number the restaurant already holds is a no-op; a number held by a
// different restaurant yields ErrPhoneMappingConflict, never an overwrite.
func (r *PhoneMappingRepository) Upsert(phoneNumber string, restaurantID uuid.UUID) error {
	mapping := &models.PhoneMapping{
		PhoneNumber:  models.NormalizePhoneNumber(phoneNumber),
		RestaurantID: restaurantID,
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_number"}},
		DoNothing: true,
	}).Create(mapping)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	existing, err := r.GetByPhone(mapping.PhoneNumber)
	if err != nil {
		return err
	}
	if existing.RestaurantID != restaurantID {
		return apperrors.ErrPhoneMappingConflict
	}
	return nil
}

// GetByPhone retrieves the mapping for a phone number
func (r *PhoneMappingRepository) GetByPhone(phoneNumber string) (*models.PhoneMapping, error) {
	var mapping models.PhoneMapping
	normalized := models.NormalizePhoneNumber(phoneNumber)
	if err := r.db.First(&mapping, "phone_number = ?", normalized).Error; err != nil {
		return nil, err
	}
	return &mapping, nil
}

// GetByRestaurant retrieves the mapping owned by a restaurant
func (r *PhoneMappingRepository) GetByRestaurant(restaurantID uuid.UUID) (*models.PhoneMapping, error) {
	var mapping models.PhoneMapping
	if err := r.db.First(&mapping, "restaurant_id = ?", restaurantID).Error; err != nil {
		return nil, err
	}
	return &mapping, nil
}

// ListUnassigned returns the subset of candidate numbers that have no
// directory entry, preserving the candidates' order.
func (r *PhoneMappingRepository) ListUnassigned(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return []string{}, nil
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = models.NormalizePhoneNumber(c)
	}

	var assigned []string
	if err := r.db.Model(&models.PhoneMapping{}).
		Where("phone_number IN ?", normalized).
		Pluck("phone_number", &assigned).Error; err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(assigned))
	for _, p := range assigned {
		taken[p] = true
	}

	unassigned := make([]string, 0, len(normalized))
	for _, p := range normalized {
		if !taken[p] {
			unassigned = append(unassigned, p)
		}
	}
	return unassigned, nil
}
