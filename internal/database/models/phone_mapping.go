package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhoneMapping maps an inbound phone number to the restaurant it routes to.
// The phone number is the primary key: the database uniqueness constraint is
// what guarantees that no two restaurants ever share a number, across all
// service instances.
type PhoneMapping struct {
	PhoneNumber  string    `json:"phone_number" gorm:"primaryKey;size:20"`
	RestaurantID uuid.UUID `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for PhoneMapping
func (PhoneMapping) TableName() string {
	return "restaurant_phone_mappings"
}

// NormalizePhoneNumber strips formatting characters so that
// "+1 (930) 888-9330" and "+19308889330" key the same row.
func NormalizePhoneNumber(phone string) string {
	replacer := strings.NewReplacer(" ", "", "(", "", ")", "", "-", "")
	return replacer.Replace(strings.TrimSpace(phone))
}
