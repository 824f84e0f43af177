package domain

import (
	"time"

	"github.com/google/uuid"
)

// Consultation represents a scheduled doctor consultation owned by a user
type Consultation struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_consultations_user_id" json:"user_id"`
	Date        time.Time `gorm:"type:timestamptz;not null" json:"date"`
	DoctorName  string    `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Local       string    `gorm:"type:varchar(255)" json:"local"`
	Description string    `gorm:"type:text" json:"description"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
}

// TableName specifies the table name for Consultation
func (Consultation) TableName() string {
	return "consultations"
}
