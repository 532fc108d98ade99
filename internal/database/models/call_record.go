package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CallRecord is one entry in a restaurant's call history. Messages carries
// the transcript as reported by the voice platform:
// [{"role": "user"|"assistant", "content": "...", "timestamp": "..."}]
type CallRecord struct {
	BaseModel
	RestaurantID    uuid.UUID       `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	StartedAt       time.Time       `json:"started_at" gorm:"not null;index"`
	EndedAt         *time.Time      `json:"ended_at"`
	DurationSeconds *int            `json:"duration_seconds"`
	Caller          string          `json:"caller" gorm:"size:20"`
	Outcome         string          `json:"outcome" gorm:"size:50"`
	Messages        json.RawMessage `json:"messages" gorm:"type:jsonb"`
}

// TableName returns the table name for CallRecord
func (CallRecord) TableName() string {
	return "call_history"
}
