package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"medtrack-api/internal/dto"
	"medtrack-api/internal/repository"
	"medtrack-api/internal/response"
)

// StatsInvalidator drops cached dashboard counts for a user. Entity
// services call it after every mutation.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

// StatsService exposes per-user pending/completed counts for the dashboard
type StatsService interface {
	StatsInvalidator
	GetStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error)
}

type statsServiceImpl struct {
	medicationRepo   repository.MedicationRepository
	consultationRepo repository.ConsultationRepository
	examRepo         repository.ExamRepository
	redis            *redis.Client
	ttl              time.Duration
	logger           *zap.Logger
}

// NewStatsService creates a new instance of StatsService. The redis client
// may be nil; counts are then always computed from the database.
func NewStatsService(
	medicationRepo repository.MedicationRepository,
	consultationRepo repository.ConsultationRepository,
	examRepo repository.ExamRepository,
	redisClient *redis.Client,
	ttl time.Duration,
	logger *zap.Logger,
) StatsService {
	return &statsServiceImpl{
		medicationRepo:   medicationRepo,
		consultationRepo: consultationRepo,
		examRepo:         examRepo,
		redis:            redisClient,
		ttl:              ttl,
		logger:           logger,
	}
}

func statsCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("medtrack:stats:%s", userID)
}

// GetStats returns the caller's dashboard counts, served from redis when a
// fresh cached copy exists. Cache failures fall through to the database.
func (s *statsServiceImpl) GetStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, statsCacheKey(userID)).Result()
		if err == nil {
			var stats dto.StatsResponse
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("Stats cache read failed", zap.Error(err))
		}
	}

	stats, err := s.computeStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, statsCacheKey(userID), data, s.ttl).Err(); err != nil {
				s.logger.Warn("Stats cache write failed", zap.Error(err))
			}
		}
	}

	return stats, nil
}

// Invalidate drops the cached counts; best-effort
func (s *statsServiceImpl) Invalidate(ctx context.Context, userID uuid.UUID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, statsCacheKey(userID)).Err(); err != nil {
		s.logger.Warn("Stats cache invalidation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}

func (s *statsServiceImpl) computeStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	counts := []struct {
		completed bool
		count     func(context.Context, uuid.UUID, bool) (int64, error)
		target    *int64
	}{
		{false, s.medicationRepo.CountByUser, &stats.Medications.Pending},
		{true, s.medicationRepo.CountByUser, &stats.Medications.Completed},
		{false, s.consultationRepo.CountByUser, &stats.Consultations.Pending},
		{true, s.consultationRepo.CountByUser, &stats.Consultations.Completed},
		{false, s.examRepo.CountByUser, &stats.Exams.Pending},
		{true, s.examRepo.CountByUser, &stats.Exams.Completed},
	}

	for _, c := range counts {
		n, err := c.count(ctx, userID, c.completed)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to compute stats", err.Error())
		}
		*c.target = n
	}

	return stats, nil
}
