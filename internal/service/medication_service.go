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

// MedicationService defines the business logic for the medication lifecycle
type MedicationService interface {
	GetMedications(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.MedicationResponse, int, int64, error)
	CreateMedication(ctx context.Context, userID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error)
	UpdateMedication(ctx context.Context, userID, medicationID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error)
	DeleteMedication(ctx context.Context, userID, medicationID uuid.UUID) error
	ToggleComplete(ctx context.Context, userID, medicationID uuid.UUID) (*dto.MedicationResponse, error)
}

type medicationServiceImpl struct {
	medicationRepo repository.MedicationRepository
	eventLog       EventLogService
	tx             repository.TxManager
	stats          StatsInvalidator
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewMedicationService creates a new instance of MedicationService
func NewMedicationService(
	medicationRepo repository.MedicationRepository,
	eventLog EventLogService,
	tx repository.TxManager,
	stats StatsInvalidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) MedicationService {
	return &medicationServiceImpl{
		medicationRepo: medicationRepo,
		eventLog:       eventLog,
		tx:             tx,
		stats:          stats,
		metrics:        m,
		logger:         logger,
	}
}

// GetMedications returns one page of the caller's medications
func (s *medicationServiceImpl) GetMedications(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.MedicationResponse, int, int64, error) {
	medications, total, err := s.medicationRepo.FindByUser(ctx, userID, completed, page, size)
	if err != nil {
		return nil, 0, 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch medications", err.Error())
	}

	responses := make([]*dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		responses[i] = s.toMedicationResponse(medication)
	}
	return responses, totalPages(total, size), total, nil
}

// CreateMedication registers a new medication owned by the caller
func (s *medicationServiceImpl) CreateMedication(ctx context.Context, userID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error) {
	medication := &domain.Medication{
		UserID:        userID,
		Name:          req.Name,
		Dose:          req.Dose,
		Amount:        req.Amount,
		Unity:         req.Unity,
		Period:        req.Period,
		ContinuousUse: req.ContinuousUse,
		StartDate:     req.StartDate,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.medicationRepo.Create(ctx, medication); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionCreated, domain.EntityTypeMedication, medication.ID, userID, medication)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create medication", err.Error())
	}

	s.afterMutation(ctx, userID)
	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(string(domain.EntityTypeMedication))
	}
	return s.toMedicationResponse(medication), nil
}

// UpdateMedication overwrites the medication's fields from the request.
// Ownership is immutable; the entity keeps its original owner.
func (s *medicationServiceImpl) UpdateMedication(ctx context.Context, userID, medicationID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error) {
	medication, err := s.medicationRepo.FindByIDAndUser(ctx, medicationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Medication not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch medication", err.Error())
	}

	medication.Name = req.Name
	medication.Dose = req.Dose
	medication.Amount = req.Amount
	medication.Unity = req.Unity
	medication.Period = req.Period
	medication.ContinuousUse = req.ContinuousUse
	medication.StartDate = req.StartDate

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.medicationRepo.Update(ctx, medication); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionUpdated, domain.EntityTypeMedication, medication.ID, userID, medication)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update medication", err.Error())
	}

	s.afterMutation(ctx, userID)
	return s.toMedicationResponse(medication), nil
}

// DeleteMedication soft-deletes the medication; the row stays in place but
// never appears in reads again
func (s *medicationServiceImpl) DeleteMedication(ctx context.Context, userID, medicationID uuid.UUID) error {
	medication, err := s.medicationRepo.FindByIDAndUser(ctx, medicationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Medication not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch medication", err.Error())
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.medicationRepo.SoftDelete(ctx, medication); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionDeleted, domain.EntityTypeMedication, medication.ID, userID, medication)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete medication", err.Error())
	}

	s.afterMutation(ctx, userID)
	return nil
}

// ToggleComplete flips the medication's completion flag
func (s *medicationServiceImpl) ToggleComplete(ctx context.Context, userID, medicationID uuid.UUID) (*dto.MedicationResponse, error) {
	medication, err := s.medicationRepo.FindByIDAndUser(ctx, medicationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Medication not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch medication", err.Error())
	}

	medication.IsCompleted = !medication.IsCompleted

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.medicationRepo.Update(ctx, medication); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionUpdated, domain.EntityTypeMedication, medication.ID, userID, medication)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update medication", err.Error())
	}

	s.afterMutation(ctx, userID)
	return s.toMedicationResponse(medication), nil
}

func (s *medicationServiceImpl) afterMutation(ctx context.Context, userID uuid.UUID) {
	if s.stats != nil {
		s.stats.Invalidate(ctx, userID)
	}
}

func (s *medicationServiceImpl) toMedicationResponse(medication *domain.Medication) *dto.MedicationResponse {
	return &dto.MedicationResponse{
		ID:            medication.ID,
		Name:          medication.Name,
		Dose:          medication.Dose,
		Amount:        medication.Amount,
		Unity:         medication.Unity,
		Period:        medication.Period,
		ContinuousUse: medication.ContinuousUse,
		StartDate:     medication.StartDate,
		IsCompleted:   medication.IsCompleted,
	}
}
