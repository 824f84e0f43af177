package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medtrack-api/internal/domain"
)

// ConsultationRepository defines the interface for consultation data access
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *domain.Consultation) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Consultation, error)
	FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Consultation, int64, error)
	Update(ctx context.Context, consultation *domain.Consultation) error
	SoftDelete(ctx context.Context, consultation *domain.Consultation) error
	CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error)
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// consultationRepositoryImpl is the GORM implementation of ConsultationRepository
type consultationRepositoryImpl struct {
	db *gorm.DB
}

// NewConsultationRepository creates a new instance of ConsultationRepository
func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepositoryImpl{db: db}
}

// Create creates a new consultation
func (r *consultationRepositoryImpl) Create(ctx context.Context, consultation *domain.Consultation) error {
	return dbFromContext(ctx, r.db).Create(consultation).Error
}

// FindByIDAndUser finds a non-deleted consultation by id scoped to its owner
func (r *consultationRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Consultation, error) {
	var consultation domain.Consultation
	if err := dbFromContext(ctx, r.db).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		First(&consultation).Error; err != nil {
		return nil, err
	}
	return &consultation, nil
}

// FindByUser returns one page of the user's non-deleted consultations plus
// the total number of matching rows, optionally filtered by completion flag
func (r *consultationRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Consultation, int64, error) {
	query := dbFromContext(ctx, r.db).
		Model(&domain.Consultation{}).
		Where("user_id = ? AND deleted_at IS NULL", userID)
	if completed != nil {
		query = query.Where("is_completed = ?", *completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var consultations []*domain.Consultation
	if err := query.
		Order("date ASC").
		Offset(page * size).
		Limit(size).
		Find(&consultations).Error; err != nil {
		return nil, 0, err
	}
	return consultations, total, nil
}

// Update updates a consultation
func (r *consultationRepositoryImpl) Update(ctx context.Context, consultation *domain.Consultation) error {
	return dbFromContext(ctx, r.db).Save(consultation).Error
}

// SoftDelete marks a consultation as deleted without removing the row
func (r *consultationRepositoryImpl) SoftDelete(ctx context.Context, consultation *domain.Consultation) error {
	now := time.Now().UTC()
	consultation.DeletedAt = &now
	return dbFromContext(ctx, r.db).Save(consultation).Error
}

// CountByUser counts the user's non-deleted consultations with the given
// completion flag
func (r *consultationRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).
		Model(&domain.Consultation{}).
		Where("user_id = ? AND deleted_at IS NULL AND is_completed = ?", userID, completed).
		Count(&count).Error
	return count, err
}

// PurgeDeletedBefore physically removes rows soft-deleted before cutoff
func (r *consultationRepositoryImpl) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := dbFromContext(ctx, r.db).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&domain.Consultation{})
	return result.RowsAffected, result.Error
}
