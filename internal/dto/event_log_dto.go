package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventLogResponse represents one entry of a user's audit trail
type EventLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   uuid.UUID       `json:"entityId"`
	Snapshot   json.RawMessage `json:"snapshot,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// StatsResponse represents per-entity pending/completed counts for the
// current user's dashboard
type StatsResponse struct {
	Medications   EntityStats `json:"medications"`
	Consultations EntityStats `json:"consultations"`
	Exams         EntityStats `json:"exams"`
}

// EntityStats holds the counts for one entity type
type EntityStats struct {
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}
