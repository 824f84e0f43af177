package dto

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationRequest represents the payload to create or update a consultation
type ConsultationRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	DoctorName  string    `json:"doctorName" binding:"required,max=255"`
	Local       string    `json:"local" binding:"max=255"`
	Description string    `json:"description"`
}

// ConsultationResponse represents the public shape of a consultation
type ConsultationResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	DoctorName  string    `json:"doctorName"`
	Local       string    `json:"local"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
}
