package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medtrack-api/internal/domain"
)

// ExamRepository defines the interface for exam data access.
// Exams are hard-deleted, so there is no purge method here.
type ExamRepository interface {
	Create(ctx context.Context, exam *domain.Exam) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Exam, error)
	FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Exam, int64, error)
	FindByUserNameAndDate(ctx context.Context, userID uuid.UUID, name string, date time.Time) (*domain.Exam, error)
	Update(ctx context.Context, exam *domain.Exam) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error)
}

// examRepositoryImpl is the GORM implementation of ExamRepository
type examRepositoryImpl struct {
	db *gorm.DB
}

// NewExamRepository creates a new instance of ExamRepository
func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepositoryImpl{db: db}
}

// Create creates a new exam
func (r *examRepositoryImpl) Create(ctx context.Context, exam *domain.Exam) error {
	return dbFromContext(ctx, r.db).Create(exam).Error
}

// FindByIDAndUser finds a non-deleted exam by id scoped to its owner
func (r *examRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Exam, error) {
	var exam domain.Exam
	if err := dbFromContext(ctx, r.db).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		First(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

// FindByUser returns one page of the user's exams plus the total number of
// matching rows, optionally filtered by completion flag
func (r *examRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, completed *bool, page, size int) ([]*domain.Exam, int64, error) {
	query := dbFromContext(ctx, r.db).
		Model(&domain.Exam{}).
		Where("user_id = ? AND deleted_at IS NULL", userID)
	if completed != nil {
		query = query.Where("is_completed = ?", *completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exams []*domain.Exam
	if err := query.
		Order("date ASC").
		Offset(page * size).
		Limit(size).
		Find(&exams).Error; err != nil {
		return nil, 0, err
	}
	return exams, total, nil
}

// FindByUserNameAndDate finds the user's exam with the exact name and date,
// or nil when no such exam exists. Used for duplicate detection on create.
func (r *examRepositoryImpl) FindByUserNameAndDate(ctx context.Context, userID uuid.UUID, name string, date time.Time) (*domain.Exam, error) {
	var exam domain.Exam
	if err := dbFromContext(ctx, r.db).
		Where("user_id = ? AND name = ? AND date = ? AND deleted_at IS NULL", userID, name, date).
		First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

// Update updates an exam
func (r *examRepositoryImpl) Update(ctx context.Context, exam *domain.Exam) error {
	return dbFromContext(ctx, r.db).Save(exam).Error
}

// HardDelete physically removes an exam row
func (r *examRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).
		Unscoped().
		Delete(&domain.Exam{}, "id = ?", id).Error
}

// CountByUser counts the user's exams with the given completion flag
func (r *examRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID, completed bool) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).
		Model(&domain.Exam{}).
		Where("user_id = ? AND deleted_at IS NULL AND is_completed = ?", userID, completed).
		Count(&count).Error
	return count, err
}
