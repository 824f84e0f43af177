package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exam represents a scheduled medical exam owned by a user.
// Exams are removed physically on delete, unlike the other tracked entities.
type Exam struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_exams_user_id" json:"user_id"`
	Date        time.Time `gorm:"type:timestamptz;not null" json:"date"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Local       string    `gorm:"type:varchar(255)" json:"local"`
	Description string    `gorm:"type:text" json:"description"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
}

// TableName specifies the table name for Exam
func (Exam) TableName() string {
	return "exams"
}
