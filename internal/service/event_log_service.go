package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"medtrack-api/internal/domain"
	"medtrack-api/internal/dto"
	"medtrack-api/internal/repository"
	"medtrack-api/internal/response"
)

// EventLogService records and exposes the append-only audit trail
type EventLogService interface {
	// Record appends one audit event describing a mutation. Callers invoke
	// it inside the same transaction as the primary write, so either both
	// are durable or neither is.
	Record(ctx context.Context, action domain.EventLogAction, entityType domain.EntityType, entityID, userID uuid.UUID, snapshot interface{}) error
	GetHistory(ctx context.Context, userID uuid.UUID, page, size int) ([]*dto.EventLogResponse, int, int64, error)
}

type eventLogServiceImpl struct {
	eventLogRepo repository.EventLogRepository
	logger       *zap.Logger
}

// NewEventLogService creates a new instance of EventLogService
func NewEventLogService(eventLogRepo repository.EventLogRepository, logger *zap.Logger) EventLogService {
	return &eventLogServiceImpl{
		eventLogRepo: eventLogRepo,
		logger:       logger,
	}
}

// Record appends an audit event with a JSON snapshot of the entity
func (s *eventLogServiceImpl) Record(ctx context.Context, action domain.EventLogAction, entityType domain.EntityType, entityID, userID uuid.UUID, snapshot interface{}) error {
	var payload datatypes.JSON
	if snapshot != nil {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to serialize audit snapshot", err.Error())
		}
		payload = datatypes.JSON(data)
	}

	event := &domain.EventLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		Snapshot:   payload,
	}

	if err := s.eventLogRepo.Create(ctx, event); err != nil {
		return err
	}

	s.logger.Debug("Audit event recorded",
		zap.String("action", string(action)),
		zap.String("entity_type", string(entityType)),
		zap.String("entity_id", entityID.String()),
	)
	return nil
}

// GetHistory returns one page of the caller's audit trail, newest first
func (s *eventLogServiceImpl) GetHistory(ctx context.Context, userID uuid.UUID, page, size int) ([]*dto.EventLogResponse, int, int64, error) {
	events, total, err := s.eventLogRepo.FindByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch history", err.Error())
	}

	responses := make([]*dto.EventLogResponse, len(events))
	for i, event := range events {
		responses[i] = &dto.EventLogResponse{
			ID:         event.ID,
			Action:     string(event.Action),
			EntityType: string(event.EntityType),
			EntityID:   event.EntityID,
			Snapshot:   json.RawMessage(event.Snapshot),
			CreatedAt:  event.CreatedAt,
		}
	}

	return responses, totalPages(total, size), total, nil
}

// totalPages computes the page count for a paginated response
func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
