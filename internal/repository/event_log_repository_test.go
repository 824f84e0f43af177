package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"medtrack-api/internal/domain"
)

func setupEventLogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create event_logs table for SQLite compatibility
	db.Exec(`CREATE TABLE event_logs (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		snapshot TEXT,
		created_at DATETIME NOT NULL
	)`)

	return db
}

func TestEventLogRepository_FindByUser_NewestFirst(t *testing.T) {
	db := setupEventLogTestDB(t)
	repo := NewEventLogRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	entityID := uuid.New()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	actions := []domain.EventLogAction{
		domain.EventLogActionCreated,
		domain.EventLogActionUpdated,
		domain.EventLogActionDeleted,
	}
	for i, action := range actions {
		event := &domain.EventLog{
			ID:         uuid.New(),
			Action:     action,
			EntityType: domain.EntityTypeMedication,
			EntityID:   entityID,
			UserID:     userID,
			Snapshot:   datatypes.JSON(`{"name":"Paracetamol"}`),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(event).Error; err != nil {
			t.Fatalf("failed to seed event: %v", err)
		}
	}
	// Another user's events must not leak into the trail
	foreign := &domain.EventLog{
		ID:         uuid.New(),
		Action:     domain.EventLogActionCreated,
		EntityType: domain.EntityTypeExam,
		EntityID:   uuid.New(),
		UserID:     uuid.New(),
		CreatedAt:  base,
	}
	if err := db.Create(foreign).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}

	events, total, err := repo.FindByUser(ctx, userID, 0, 9)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if total != 3 {
		t.Errorf("FindByUser() total = %d, want 3", total)
	}
	if len(events) != 3 {
		t.Fatalf("FindByUser() len = %d, want 3", len(events))
	}
	if events[0].Action != domain.EventLogActionDeleted {
		t.Errorf("FindByUser() first action = %v, want the newest event", events[0].Action)
	}
	for i := 1; i < len(events); i++ {
		if events[i].CreatedAt.After(events[i-1].CreatedAt) {
			t.Errorf("FindByUser() results out of order at index %d", i)
		}
	}
}

func TestEventLogRepository_CountByEntity(t *testing.T) {
	db := setupEventLogTestDB(t)
	repo := NewEventLogRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	entityID := uuid.New()

	for _, action := range []domain.EventLogAction{domain.EventLogActionCreated, domain.EventLogActionUpdated} {
		event := &domain.EventLog{
			ID:         uuid.New(),
			Action:     action,
			EntityType: domain.EntityTypeConsultation,
			EntityID:   entityID,
			UserID:     userID,
		}
		if err := repo.Create(ctx, event); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	count, err := repo.CountByEntity(ctx, domain.EntityTypeConsultation, entityID)
	if err != nil {
		t.Fatalf("CountByEntity() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountByEntity() = %d, want 2", count)
	}

	count, err = repo.CountByEntity(ctx, domain.EntityTypeMedication, entityID)
	if err != nil {
		t.Fatalf("CountByEntity() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountByEntity() for another type = %d, want 0", count)
	}
}
