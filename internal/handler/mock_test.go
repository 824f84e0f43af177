package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medtrack-api/internal/domain"
	"medtrack-api/internal/dto"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// authAs injects the authenticated user id the way the auth middleware does
func authAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

// MockMedicationService is a mock implementation of MedicationService
type MockMedicationService struct {
	GetMedicationsFunc   func(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.MedicationResponse, int, int64, error)
	CreateMedicationFunc func(ctx context.Context, userID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error)
	UpdateMedicationFunc func(ctx context.Context, userID, medicationID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error)
	DeleteMedicationFunc func(ctx context.Context, userID, medicationID uuid.UUID) error
	ToggleCompleteFunc   func(ctx context.Context, userID, medicationID uuid.UUID) (*dto.MedicationResponse, error)
}

func (m *MockMedicationService) GetMedications(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.MedicationResponse, int, int64, error) {
	if m.GetMedicationsFunc != nil {
		return m.GetMedicationsFunc(ctx, userID, page, size, completed)
	}
	return nil, 0, 0, nil
}

func (m *MockMedicationService) CreateMedication(ctx context.Context, userID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error) {
	if m.CreateMedicationFunc != nil {
		return m.CreateMedicationFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockMedicationService) UpdateMedication(ctx context.Context, userID, medicationID uuid.UUID, req *dto.MedicationRequest) (*dto.MedicationResponse, error) {
	if m.UpdateMedicationFunc != nil {
		return m.UpdateMedicationFunc(ctx, userID, medicationID, req)
	}
	return nil, nil
}

func (m *MockMedicationService) DeleteMedication(ctx context.Context, userID, medicationID uuid.UUID) error {
	if m.DeleteMedicationFunc != nil {
		return m.DeleteMedicationFunc(ctx, userID, medicationID)
	}
	return nil
}

func (m *MockMedicationService) ToggleComplete(ctx context.Context, userID, medicationID uuid.UUID) (*dto.MedicationResponse, error) {
	if m.ToggleCompleteFunc != nil {
		return m.ToggleCompleteFunc(ctx, userID, medicationID)
	}
	return nil, nil
}

// MockConsultationService is a mock implementation of ConsultationService
type MockConsultationService struct {
	GetConsultationsFunc   func(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ConsultationResponse, int, int64, error)
	CreateConsultationFunc func(ctx context.Context, userID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	UpdateConsultationFunc func(ctx context.Context, userID, consultationID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	DeleteConsultationFunc func(ctx context.Context, userID, consultationID uuid.UUID) error
	ToggleCompleteFunc     func(ctx context.Context, userID, consultationID uuid.UUID) (*dto.ConsultationResponse, error)
}

func (m *MockConsultationService) GetConsultations(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ConsultationResponse, int, int64, error) {
	if m.GetConsultationsFunc != nil {
		return m.GetConsultationsFunc(ctx, userID, page, size, completed)
	}
	return nil, 0, 0, nil
}

func (m *MockConsultationService) CreateConsultation(ctx context.Context, userID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	if m.CreateConsultationFunc != nil {
		return m.CreateConsultationFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockConsultationService) UpdateConsultation(ctx context.Context, userID, consultationID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	if m.UpdateConsultationFunc != nil {
		return m.UpdateConsultationFunc(ctx, userID, consultationID, req)
	}
	return nil, nil
}

func (m *MockConsultationService) DeleteConsultation(ctx context.Context, userID, consultationID uuid.UUID) error {
	if m.DeleteConsultationFunc != nil {
		return m.DeleteConsultationFunc(ctx, userID, consultationID)
	}
	return nil
}

func (m *MockConsultationService) ToggleComplete(ctx context.Context, userID, consultationID uuid.UUID) (*dto.ConsultationResponse, error) {
	if m.ToggleCompleteFunc != nil {
		return m.ToggleCompleteFunc(ctx, userID, consultationID)
	}
	return nil, nil
}

// MockExamService is a mock implementation of ExamService
type MockExamService struct {
	GetExamsFunc       func(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ExamResponse, int, int64, error)
	CreateExamFunc     func(ctx context.Context, userID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error)
	UpdateExamFunc     func(ctx context.Context, userID, examID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error)
	DeleteExamFunc     func(ctx context.Context, userID, examID uuid.UUID) error
	ToggleCompleteFunc func(ctx context.Context, userID, examID uuid.UUID) (*dto.ExamResponse, error)
}

func (m *MockExamService) GetExams(ctx context.Context, userID uuid.UUID, page, size int, completed *bool) ([]*dto.ExamResponse, int, int64, error) {
	if m.GetExamsFunc != nil {
		return m.GetExamsFunc(ctx, userID, page, size, completed)
	}
	return nil, 0, 0, nil
}

func (m *MockExamService) CreateExam(ctx context.Context, userID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error) {
	if m.CreateExamFunc != nil {
		return m.CreateExamFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockExamService) UpdateExam(ctx context.Context, userID, examID uuid.UUID, req *dto.ExamRequest) (*dto.ExamResponse, error) {
	if m.UpdateExamFunc != nil {
		return m.UpdateExamFunc(ctx, userID, examID, req)
	}
	return nil, nil
}

func (m *MockExamService) DeleteExam(ctx context.Context, userID, examID uuid.UUID) error {
	if m.DeleteExamFunc != nil {
		return m.DeleteExamFunc(ctx, userID, examID)
	}
	return nil
}

func (m *MockExamService) ToggleComplete(ctx context.Context, userID, examID uuid.UUID) (*dto.ExamResponse, error) {
	if m.ToggleCompleteFunc != nil {
		return m.ToggleCompleteFunc(ctx, userID, examID)
	}
	return nil, nil
}

// MockEventLogService is a mock implementation of EventLogService for the
// history endpoint; Record is never reached from handlers
type MockEventLogService struct {
	GetHistoryFunc func(ctx context.Context, userID uuid.UUID, page, size int) ([]*dto.EventLogResponse, int, int64, error)
}

func (m *MockEventLogService) Record(ctx context.Context, action domain.EventLogAction, entityType domain.EntityType, entityID, userID uuid.UUID, snapshot interface{}) error {
	return nil
}

func (m *MockEventLogService) GetHistory(ctx context.Context, userID uuid.UUID, page, size int) ([]*dto.EventLogResponse, int, int64, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, userID, page, size)
	}
	return nil, 0, 0, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	GetStatsFunc func(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error)
}

func (m *MockStatsService) GetStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockStatsService) Invalidate(ctx context.Context, userID uuid.UUID) {}
