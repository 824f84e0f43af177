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

// ExamService defines the business logic for the exam lifecycle. It follows
// the same contract as the other tracked entities except that delete
// physically removes the row.
type ExamService interface {
	GetExams(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ExamResponse, int, int64, error)
	CreateExam(ctx context.Context, userID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error)
	UpdateExam(ctx context.Context, userID, examID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error)
	DeleteExam(ctx context.Context, userID, examID uuid.UUID) error
	ToggleComplete(ctx context.Context, userID, examID uuid.UUID) (*dto.ExamResponse, error)
}

type examServiceImpl struct {
	examRepo repository.ExamRepository
	eventLog EventLogService
	tx       repository.TxManager
	stats    StatsInvalidator
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewExamService creates a new instance of ExamService
func NewExamService(
	examRepo repository.ExamRepository,
	eventLog EventLogService,
	tx repository.TxManager,
	stats StatsInvalidator,
	m *metrics.Metrics,
	logger *zap.Logger,
) ExamService {
	return &examServiceImpl{
		examRepo: examRepo,
		eventLog: eventLog,
		tx:       tx,
		stats:    stats,
		metrics:  m,
		logger:   logger,
	}
}

// GetExams returns one page of the caller's exams
func (s *examServiceImpl) GetExams(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ExamResponse, int, int64, error) {
	exams, total, err := s.examRepo.FindByUser(ctx, userID, completed, page, size)
	if err != nil {
		return nil, 0, 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch exams", err.Error())
	}

	responses := make([]*dto.ExamResponse, len(exams))
	for i, exam := range exams {
		responses[i] = s.toExamResponse(exam)
	}
	return responses, totalPages(total, size), total, nil
}

// CreateExam registers a new exam. Date, name and local are required, and
// an exam with the same name and date as an existing one is rejected.
func (s *examServiceImpl) CreateExam(ctx context.Context, userID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error) {
	if req.Date == nil || req.Name == "" || req.Local == "" {
		return nil, response.NewValidationError("Date, name and local must be provided", "")
	}

	existing, err := s.examRepo.FindByUserNameAndDate(ctx, userID, req.Name, *req.Date)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicate exam", err.Error())
	}
	if existing != nil {
		return nil, response.NewValidationError("An exam with the same name and date already exists", "")
	}

	exam := &domain.Exam{
		UserID:      userID,
		Date:        *req.Date,
		Name:        req.Name,
		Local:       req.Local,
		Description: req.Description,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.examRepo.Create(ctx, exam); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionCreated, domain.EntityTypeExam, exam.ID, userID, exam)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create exam", err.Error())
	}

	s.afterMutation(ctx, userID)
	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(string(domain.EntityTypeExam))
	}
	return s.toExamResponse(exam), nil
}

// UpdateExam overwrites the exam's fields from the request
func (s *examServiceImpl) UpdateExam(ctx context.Context, userID, examID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDAndUser(ctx, examID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Exam not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch exam", err.Error())
	}

	if req.Date != nil {
		exam.Date = *req.Date
	}
	if req.Name != "" {
		exam.Name = req.Name
	}
	exam.Local = req.Local
	exam.Description = req.Description

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.examRepo.Update(ctx, exam); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionUpdated, domain.EntityTypeExam, exam.ID, userID, exam)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update exam", err.Error())
	}

	s.afterMutation(ctx, userID)
	return s.toExamResponse(exam), nil
}

// DeleteExam physically removes the exam row. The audit event keeps the
// last snapshot of the deleted exam.
func (s *examServiceImpl) DeleteExam(ctx context.Context, userID, examID uuid.UUID) error {
	exam, err := s.examRepo.FindByIDAndUser(ctx, examID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Exam not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch exam", err.Error())
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.examRepo.HardDelete(ctx, exam.ID); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionDeleted, domain.EntityTypeExam, exam.ID, userID, exam)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete exam", err.Error())
	}

	s.afterMutation(ctx, userID)
	return nil
}

// ToggleComplete flips the exam's completion flag
func (s *examServiceImpl) ToggleComplete(ctx context.Context, userID, examID uuid.UUID) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDAndUser(ctx, examID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Exam not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch exam", err.Error())
	}

	exam.IsCompleted = !exam.IsCompleted

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.examRepo.Update(ctx, exam); err != nil {
			return err
		}
		return s.eventLog.Record(ctx, domain.EventLogActionUpdated, domain.EntityTypeExam, exam.ID, userID, exam)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update exam", err.Error())
	}

	s.afterMutation(ctx, userID)
	return s.toExamResponse(exam), nil
}

func (s *examServiceImpl) afterMutation(ctx context.Context, userID uuid.UUID) {
	if s.stats != nil {
		s.stats.Invalidate(ctx, userID)
	}
}

func (s *examServiceImpl) toExamResponse(exam *domain.Exam) *dto.ExamResponse {
	return &dto.ExamResponse{
		ID:          exam.ID,
		Date:        exam.Date,
		Name:        exam.Name,
		Local:       exam.Local,
		Description: exam.Description,
		IsCompleted: exam.IsCompleted,
	}
}
