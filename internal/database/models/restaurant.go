package models

// Restaurant is a tenant account. Each restaurant owns its knowledge base
// and, once allocated, exactly one inbound phone number.
type Restaurant struct {
	BaseModel
	Name   string `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	APIKey string `json:"api_key" gorm:"size:100;uniqueIndex;not null" validate:"required,max=100"`
}

// TableName returns the table name for Restaurant
func (Restaurant) TableName() string {
	return "restaurants"
}
