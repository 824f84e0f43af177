package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medtrack-api/internal/domain"
)

// MedicationRepository defines the interface for medication data access
type MedicationRepository interface {
	Create(ctx context.Context, medication *domain.Medication) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Medication, error)
	FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Medication, int64, error)
	Update(ctx context.Context, medication *domain.Medication) error
	SoftDelete(ctx context.Context, medication *domain.Medication) error
	CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error)
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// medicationRepositoryImpl is the GORM implementation of MedicationRepository
type medicationRepositoryImpl struct {
	db *gorm.DB
}

// NewMedicationRepository creates a new instance of MedicationRepository
func NewMedicationRepository(db *gorm.DB) MedicationRepository {
	return &medicationRepositoryImpl{db: db}
}

// Create creates a new medication
func (r *medicationRepositoryImpl) Create(ctx context.Context, medication *domain.Medication) error {
	return dbFromContext(ctx, r.db).Create(medication).Error
}

// FindByIDAndUser finds a non-deleted medication by id scoped to its owner.
// An id owned by another user is indistinguishable from an absent one.
func (r *medicationRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Medication, error) {
	var medication domain.Medication
	if err := dbFromContext(ctx, r.db).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		First(&medication).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

// FindByUser returns one page of the user's non-deleted medications plus the
// total number of matching rows, optionally filtered by completion flag
func (r *medicationRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Medication, int64, error) {
	query := dbFromContext(ctx, r.db).
		Model(&domain.Medication{}).
		Where("user_id = ? AND deleted_at IS NULL", userID)
	if completed != nil {
		query = query.Where("is_completed = ?", *completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var medications []*domain.Medication
	if err := query.
		Order("start_date ASC, created_at ASC").
		Offset(page * size).
		Limit(size).
		Find(&medications).Error; err != nil {
		return nil, 0, err
	}
	return medications, total, nil
}

// Update updates a medication
func (r *medicationRepositoryImpl) Update(ctx context.Context, medication *domain.Medication) error {
	return dbFromContext(ctx, r.db).Save(medication).Error
}

// SoftDelete marks a medication as deleted without removing the row
func (r *medicationRepositoryImpl) SoftDelete(ctx context.Context, medication *domain.Medication) error {
	now := time.Now().UTC()
	medication.DeletedAt = &now
	return dbFromContext(ctx, r.db).Save(medication).Error
}

// CountByUser counts the user's non-deleted medications with the given
// completion flag
func (r *medicationRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).
		Model(&domain.Medication{}).
		Where("user_id = ? AND deleted_at IS NULL AND is_completed = ?", userID, completed).
		Count(&count).Error
	return count, err
}

// PurgeDeletedBefore physically removes rows soft-deleted before cutoff
func (r *medicationRepositoryImpl) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := dbFromContext(ctx, r.db).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&domain.Medication{})
	return result.RowsAffected, result.Error
}
