package domain

import (
	"time"

	"github.com/google/uuid"
)

// Medication represents a registered medication schedule owned by a user
type Medication struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_medications_user_id" json:"user_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Dose          int       `gorm:"not null" json:"dose"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Unity         string    `gorm:"type:varchar(50)" json:"unity"`
	Period        int       `json:"period"`
	ContinuousUse bool      `gorm:"not null;default:false" json:"continuous_use"`
	StartDate     time.Time `gorm:"type:timestamptz;not null" json:"start_date"`
	IsCompleted   bool      `gorm:"not null;default:false" json:"is_completed"`
}

// TableName specifies the table name for Medication
func (Medication) TableName() string {
	return "medications"
}
