package dto

import (
	"time"

	"github.com/google/uuid"
)

// MedicationRequest represents the payload to create or update a medication
type MedicationRequest struct {
	Name          string    `json:"name" binding:"required,max=255"`
	Dose          int       `json:"dose" binding:"required,min=1"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	Unity         string    `json:"unity" binding:"max=50"`
	Period        int       `json:"period" binding:"min=0"`
	ContinuousUse bool      `json:"continuousUse"`
	StartDate     time.Time `json:"startDate" binding:"required"`
}

// MedicationResponse represents the public shape of a medication
type MedicationResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Dose          int       `json:"dose"`
	Amount        float64   `json:"amount"`
	Unity         string    `json:"unity"`
	Period        int       `json:"period"`
	ContinuousUse bool      `json:"continuousUse"`
	StartDate     time.Time `json:"startDate"`
	IsCompleted   bool      `json:"isCompleted"`
}
