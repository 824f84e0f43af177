package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventLogAction describes what happened to a tracked entity
type EventLogAction string

const (
	EventLogActionCreated EventLogAction = "CREATED"
	EventLogActionUpdated EventLogAction = "UPDATED"
	EventLogActionDeleted EventLogAction = "DELETED"
)

// EntityType identifies which tracked entity an event refers to
type EntityType string

const (
	EntityTypeMedication   EntityType = "MEDICATION"
	EntityTypeConsultation EntityType = "CONSULTATION"
	EntityTypeExam         EntityType = "EXAM"
)

// EventLog is an append-only audit record of a mutation against a tracked
// entity. Rows are written once and never updated or deleted, so it carries
// no UpdatedAt or DeletedAt.
type EventLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Action     EventLogAction `gorm:"type:varchar(20);not null;index:idx_event_logs_action" json:"action"`
	EntityType EntityType     `gorm:"type:varchar(20);not null;index:idx_event_logs_entity" json:"entity_type"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_event_logs_entity" json:"entity_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_event_logs_user_id" json:"user_id"`
	Snapshot   datatypes.JSON `gorm:"type:jsonb" json:"snapshot"`
	CreatedAt  time.Time      `gorm:"not null;index" json:"created_at"`
}

// TableName specifies the table name for EventLog
func (EventLog) TableName() string {
	return "event_logs"
}
