package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medtrack-api/internal/domain"
	"medtrack-api/internal/dto"
	"medtrack-api/internal/metrics"
	"medtrack-api/internal/repository"
	"medtrack-api/internal/response"
)

// ConsultationService defines the business logic for the consultation lifecycle
type ConsultationService interface {
	GetConsultations(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ConsultationResponse, int, int64, error)
	CreateConsultation(ctx context.Context, userID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	UpdateConsultation(ctx context.Context, userID, consultationID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, userID, consultationID uuid.UUID) error
	ToggleComplete(ctx context.Context, userID, consultationID uuid.UUID) (*dto.ConsultationResponse, error)
}

type consultationServiceImpl struct {
	consultationRepo repository.ConsultationRepository
	eventLog         EventLogService
	tx               repository.TxManager
	stats            StatsInvalidator
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewConsultationService creates a new instance of ConsultationService
func NewConsultationService(
	consultationRepo repository.ConsultationRepository,
	eventLog EventLogService,
	tx repository.TxManager,
	stats StatsInvalidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) ConsultationService {
	return &consultationServiceImpl{
		consultationRepo: consultationRepo,
		eventLog:         eventLog,
		tx:               tx,
		stats:            stats,
		metrics:          m,
		logger:           logger,
	}
}

// GetConsultations returns one page of the caller's consultations
func (s *consultationServiceImpl) GetConsultations(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ConsultationResponse, int, int64, error) {
	consultations, total, err := s.consultationRepo.FindByUser(ctx, userID, completed, page, size)
	if err != nil {
		return nil, 0, 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch consultations", err.Error())
	}

	responses := make([]*dto.ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		responses[i] = s.toConsultationResponse(consultation)
	}
	return responses, totalPages(total, size), total, nil
}

// CreateConsultation schedules a new consultation owned by the caller
func (s *consultationServiceImpl) CreateConsultation(ctx context.Context, userID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation := &domain.Consultation{
		UserID:      userID,
		Date:        req.Date,
		DoctorName:  req.DoctorName,
		Local:       req.Local,
		Description: req.Description,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.consultationRepo.Create(ctx, consultation); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionCreated, domain.EntityTypeConsultation, consultation.ID, userID, consultation)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create consultation", err.Error())
	}

	s.afterMutation(ctx, userID)
	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(string(domain.EntityTypeConsultation))
	}
	return s.toConsultationResponse(consultation), nil
}

// UpdateConsultation overwrites the consultation's fields from the request
func (s *consultationServiceImpl) UpdateConsultation(ctx context.Context, userID, consultationID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation, err := s.consultationRepo.FindByIDAndUser(ctx, consultationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Consultation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch consultation", err.Error())
	}

	consultation.Date = req.Date
	consultation.DoctorName = req.DoctorName
	consultation.Local = req.Local
	consultation.Description = req.Description

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.consultationRepo.Update(ctx, consultation); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionUpdated, domain.EntityTypeConsultation, consultation.ID, userID, consultation)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update consultation", err.Error())
	}

	s.afterMutation(ctx, userID)
	return s.toConsultationResponse(consultation), nil
}

// DeleteConsultation soft-deletes the consultation
func (s *consultationServiceImpl) DeleteConsultation(ctx context.Context, userID, consultationID uuid.UUID) error {
	consultation, err := s.consultationRepo.FindByIDAndUser(ctx, consultationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Consultation not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch consultation", err.Error())
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.consultationRepo.SoftDelete(ctx, consultation); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionDeleted, domain.EntityTypeConsultation, consultation.ID, userID, consultation)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete consultation", err.Error())
	}

	s.afterMutation(ctx, userID)
	return nil
}

// ToggleComplete flips the consultation's completion flag
func (s *consultationServiceImpl) ToggleComplete(ctx context.Context, userID, consultationID uuid.UUID) (*dto.ConsultationResponse, error) {
	consultation, err := s.consultationRepo.FindByIDAndUser(ctx, consultationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Consultation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch consultation", err.Error())
	}

	consultation.IsCompleted = !consultation.IsCompleted

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.consultationRepo.Update(ctx, consultation); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionUpdated, domain.EntityTypeConsultation, consultation.ID, userID, consultation)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update consultation", err.Error())
	}

	s.afterMutation(ctx, userID)
	return s.toConsultationResponse(consultation), nil
}

func (s *consultationServiceImpl) afterMutation(ctx context.Context, userID uuid.UUID) {
	if s.stats != nil {
		s.stats.Invalidate(ctx, userID)
	}
}

func (s *consultationServiceImpl) toConsultationResponse(consultation *domain.Consultation) *dto.ConsultationResponse {
	return &dto.ConsultationResponse{
		ID:          consultation.ID,
		Date:        consultation.Date,
		DoctorName:  consultation.DoctorName,
		Local:       consultation.Local,
		Description: consultation.Description,
		IsCompleted: consultation.IsCompleted,
	}
}
