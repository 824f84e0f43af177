package dto

import (
	"time"

	"github.com/google/uuid"
)

// ExamRequest represents the payload to create or update an exam.
// Required-field checks live in the service so an empty date or name is
// reported with the same envelope as a duplicate, not a binding error.
type ExamRequest struct {
	Date        *time.Time `json:"date"`
	Name        string     `json:"name" binding:"max=255"`
	Local       string     `json:"local" binding:"max=255"`
	Description string     `json:"description"`
}

// ExamResponse represents the public shape of an exam
type ExamResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Local       string    `json:"local"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
}
