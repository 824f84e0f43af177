package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medtrack-api/internal/domain"
)

// EventLogRepository defines the interface for the append-only audit trail.
// There are deliberately no update or delete methods.
type EventLogRepository interface {
	Create(ctx context.Context, event *domain.EventLog) error
	FindByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*domain.EventLog, int64, error)
	CountByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (int64, error)
}

// eventLogRepositoryImpl is the GORM implementation of EventLogRepository
type eventLogRepositoryImpl struct {
	db *gorm.DB
}

// NewEventLogRepository creates a new instance of EventLogRepository
func NewEventLogRepository(db *gorm.DB) EventLogRepository {
	return &eventLogRepositoryImpl{db: db}
}

// Create appends an audit event. When ctx carries a transaction the event
// commits together with the primary write.
func (r *eventLogRepositoryImpl) Create(ctx context.Context, event *domain.EventLog) error {
	return dbFromContext(ctx, r.db).Create(event).Error
}

// FindByUser returns one page of the user's audit trail, newest first
func (r *eventLogRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*domain.EventLog, int64, error) {
	query := dbFromContext(ctx, r.db).
		Model(&domain.EventLog{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []*domain.EventLog
	if err := query.
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// CountByEntity counts audit events recorded against one entity
func (r *eventLogRepositoryImpl) CountByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).
		Model(&domain.EventLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Count(&count).Error
	return count, err
}
