package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"medtrack-api/internal/dto"
	"medtrack-api/internal/response"
)

func TestEventLogHandler_GetHistory(t *testing.T) {
	userID := uuid.New()

	mockService := &MockEventLogService{
		GetHistoryFunc: func(ctx context.Context, uID uuid.UUID, page, size int) ([]*dto.EventLogResponse, int, int64, error) {
			return []*dto.EventLogResponse{
				{
					ID:         uuid.New(),
					Action:     "UPDATED",
					EntityType: "MEDICATION",
					EntityID:   uuid.New(),
					Snapshot:   json.RawMessage(`{"name":"Paracetamol"}`),
					CreatedAt:  time.Now(),
				},
			}, 1, 1, nil
		},
	}
	handler := NewEventLogHandler(mockService)

	router := setupTestRouter()
	router.GET("/api/v1/history", authAs(userID), handler.GetHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GetHistory() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp response.PaginatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.TotalElements != 1 {
		t.Errorf("GetHistory() totalElements = %d, want 1", resp.TotalElements)
	}

	dataBytes, _ := json.Marshal(resp.Data)
	var events []dto.EventLogResponse
	if err := json.Unmarshal(dataBytes, &events); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
	if len(events) != 1 || events[0].Action != "UPDATED" {
		t.Errorf("GetHistory() events = %+v, want one UPDATED event", events)
	}
}

func TestStatsHandler_GetStats(t *testing.T) {
	userID := uuid.New()

	mockService := &MockStatsService{
		GetStatsFunc: func(ctx context.Context, uID uuid.UUID) (*dto.StatsResponse, error) {
			return &dto.StatsResponse{
				Medications:   dto.EntityStats{Pending: 3, Completed: 1},
				Consultations: dto.EntityStats{Pending: 2},
				Exams:         dto.EntityStats{Completed: 5},
			}, nil
		},
	}
	handler := NewStatsHandler(mockService)

	router := setupTestRouter()
	router.GET("/api/v1/stats", authAs(userID), handler.GetStats)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GetStats() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp response.SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	dataBytes, _ := json.Marshal(resp.Data)
	var stats dto.StatsResponse
	if err := json.Unmarshal(dataBytes, &stats); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
	if stats.Medications.Pending != 3 {
		t.Errorf("GetStats() medications pending = %d, want 3", stats.Medications.Pending)
	}
	if stats.Exams.Completed != 5 {
		t.Errorf("GetStats() exams completed = %d, want 5", stats.Exams.Completed)
	}
}

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler(nil, nil)

	router := setupTestRouter()
	router.GET("/health", handler.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Health() status = %v, want %v", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Health() status field = %v, want ok", body["status"])
	}
}

func TestHealthHandler_Ready_NoDatabase(t *testing.T) {
	handler := NewHealthHandler(nil, nil)

	router := setupTestRouter()
	router.GET("/ready", handler.Ready)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Ready() without database status = %v, want %v", w.Code, http.StatusServiceUnavailable)
	}
}
