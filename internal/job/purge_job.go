package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"medtrack-api/internal/repository"
)

// PurgeJob permanently removes rows that were soft-deleted longer ago than
// the retention window. Audit trail rows are never purged.
type PurgeJob struct {
	medicationRepo   repository.MedicationRepository
	consultationRepo repository.ConsultationRepository
	retention        time.Duration
	logger           *zap.Logger
}

// NewPurgeJob creates a new PurgeJob instance
func NewPurgeJob(
	medicationRepo repository.MedicationRepository,
	consultationRepo repository.ConsultationRepository,
	retentionDays int,
	logger *zap.Logger,
) *PurgeJob {
	return &PurgeJob{
		medicationRepo:   medicationRepo,
		consultationRepo: consultationRepo,
		retention:        time.Duration(retentionDays) * 24 * time.Hour,
		logger:           logger,
	}
}

// Run executes one purge pass. Implements cron.Job.
func (j *PurgeJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	j.logger.Info("Starting soft-delete purge",
		zap.Time("cutoff", cutoff),
	)

	purged, err := j.medicationRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to purge medications", zap.Error(err))
	} else if purged > 0 {
		j.logger.Info("Purged medications", zap.Int64("count", purged))
	}

	purged, err = j.consultationRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to purge consultations", zap.Error(err))
	} else if purged > 0 {
		j.logger.Info("Purged consultations", zap.Int64("count", purged))
	}
}
