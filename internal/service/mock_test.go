package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medtrack-api/internal/domain"
	"medtrack-api/internal/dto"
)

// MockMedicationRepository is a mock implementation of MedicationRepository
type MockMedicationRepository struct {
	CreateFunc             func(ctx context.Context, medication *domain.Medication) error
	FindByIDAndUserFunc    func(ctx context.Context, id, userID uuid.UUID) (*domain.Medication, error)
	FindByUserFunc         func(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Medication, int64, error)
	UpdateFunc             func(ctx context.Context, medication *domain.Medication) error
	SoftDeleteFunc         func(ctx context.Context, medication *domain.Medication) error
	CountByUserFunc        func(ctx context.Context, userID uuid.UUID, completed bool) (int64, error)
	PurgeDeletedBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockMedicationRepository) Create(ctx context.Context, medication *domain.Medication) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, medication)
	}
	return nil
}

func (m *MockMedicationRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Medication, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockMedicationRepository) FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Medication, int64, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, completed, page, size)
	}
	return nil, 0, nil
}

func (m *MockMedicationRepository) Update(ctx context.Context, medication *domain.Medication) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, medication)
	}
	return nil
}

func (m *MockMedicationRepository) SoftDelete(ctx context.Context, medication *domain.Medication) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, medication)
	}
	return nil
}

func (m *MockMedicationRepository) CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID, completed)
	}
	return 0, nil
}

func (m *MockMedicationRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.PurgeDeletedBeforeFunc != nil {
		return m.PurgeDeletedBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

// MockConsultationRepository is a mock implementation of ConsultationRepository
type MockConsultationRepository struct {
	CreateFunc             func(ctx context.Context, consultation *domain.Consultation) error
	FindByIDAndUserFunc    func(ctx context.Context, id, userID uuid.UUID) (*domain.Consultation, error)
	FindByUserFunc         func(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Consultation, int64, error)
	UpdateFunc             func(ctx context.Context, consultation *domain.Consultation) error
	SoftDeleteFunc         func(ctx context.Context, consultation *domain.Consultation) error
	CountByUserFunc        func(ctx context.Context, userID uuid.UUID, completed bool) (int64, error)
	PurgeDeletedBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, consultation)
	}
	return nil
}

func (m *MockConsultationRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Consultation, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockConsultationRepository) FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Consultation, int64, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, completed, page, size)
	}
	return nil, 0, nil
}

func (m *MockConsultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, consultation)
	}
	return nil
}

func (m *MockConsultationRepository) SoftDelete(ctx context.Context, consultation *domain.Consultation) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, consultation)
	}
	return nil
}

func (m *MockConsultationRepository) CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID, completed)
	}
	return 0, nil
}

func (m *MockConsultationRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.PurgeDeletedBeforeFunc != nil {
		return m.PurgeDeletedBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

// MockExamRepository is a mock implementation of ExamRepository
type MockExamRepository struct {
	CreateFunc              func(ctx context.Context, exam *domain.Exam) error
	FindByIDAndUserFunc     func(ctx context.Context, id, userID uuid.UUID) (*domain.Exam, error)
	FindByUserFunc          func(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Exam, int64, error)
	FindByUserNameAndDateFunc func(ctx context.Context, userID uuid.UUID, name string, date time.Time) (*domain.Exam, error)
	UpdateFunc              func(ctx context.Context, exam *domain.Exam) error
	HardDeleteFunc          func(ctx context.Context, id uuid.UUID) error
	CountByUserFunc         func(ctx context.Context, userID uuid.UUID, completed bool) (int64, error)
}

func (m *MockExamRepository) Create(ctx context.Context, exam *domain.Exam) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, exam)
	}
	return nil
}

func (m *MockExamRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Exam, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockExamRepository) FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Exam, int64, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, completed, page, size)
	}
	return nil, 0, nil
}

func (m *MockExamRepository) FindByUserNameAndDate(ctx context.Context, userID uuid.UUID, name string, date time.Time) (*domain.Exam, error) {
	if m.FindByUserNameAndDateFunc != nil {
		return m.FindByUserNameAndDateFunc(ctx, userID, name, date)
	}
	return nil, nil
}

func (m *MockExamRepository) Update(ctx context.Context, exam *domain.Exam) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, exam)
	}
	return nil
}

func (m *MockExamRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockExamRepository) CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID, completed)
	}
	return 0, nil
}

// MockEventLogRepository is a mock implementation of EventLogRepository
type MockEventLogRepository struct {
	CreateFunc        func(ctx context.Context, event *domain.EventLog) error
	FindByUserFunc    func(ctx context.Context, userID uuid.UUID, page, size int) ([]*domain.EventLog, int64, error)
	CountByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (int64, error)
}

func (m *MockEventLogRepository) Create(ctx context.Context, event *domain.EventLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventLogRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*domain.EventLog, int64, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, page, size)
	}
	return nil, 0, nil
}

func (m *MockEventLogRepository) CountByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (int64, error) {
	if m.CountByEntityFunc != nil {
		return m.CountByEntityFunc(ctx, entityType, entityID)
	}
	return 0, nil
}

// MockEventLogService is a mock implementation of EventLogService
type MockEventLogService struct {
	RecordFunc     func(ctx context.Context, action domain.EventLogAction, entityType domain.EntityType, entityID, userID uuid.UUID, snapshot interface{}) error
	GetHistoryFunc func(ctx context.Context, userID uuid.UUID, page, size int) ([]*dto.EventLogResponse, int, int64, error)
}

func (m *MockEventLogService) Record(ctx context.Context, action domain.EventLogAction, entityType domain.EntityType, entityID, userID uuid.UUID, snapshot interface{}) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, action, entityType, entityID, userID, snapshot)
	}
	return nil
}

func (m *MockEventLogService) GetHistory(ctx context.Context, userID uuid.UUID, page, size int) ([]*dto.EventLogResponse, int, int64, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, userID, page, size)
	}
	return nil, 0, 0, nil
}

// MockTxManager runs the given function directly without a real transaction
type MockTxManager struct {
	WithinTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.WithinTxFunc != nil {
		return m.WithinTxFunc(ctx, fn)
	}
	return fn(ctx)
}

// MockStatsInvalidator records cache invalidation calls
type MockStatsInvalidator struct {
	InvalidateFunc func(ctx context.Context, userID uuid.UUID)
	Calls          int
}

func (m *MockStatsInvalidator) Invalidate(ctx context.Context, userID uuid.UUID) {
	m.Calls++
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(ctx, userID)
	}
}
