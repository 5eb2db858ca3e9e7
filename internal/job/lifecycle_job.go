package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hangout-api/internal/domain"
	"hangout-api/internal/repository"
)

// LifecycleJob sweeps hangouts whose time window has passed. Ended hangouts
// move to COMPLETED and any poll still open is closed so stray votes are
// rejected.
type LifecycleJob struct {
	hangoutRepo repository.HangoutRepository
	pollRepo    repository.PollRepository
	logger      *zap.Logger
}

// NewLifecycleJob creates a new LifecycleJob instance
func NewLifecycleJob(
	hangoutRepo repository.HangoutRepository,
	pollRepo repository.PollRepository,
	logger *zap.Logger,
) *LifecycleJob {
	return &LifecycleJob{
		hangoutRepo: hangoutRepo,
		pollRepo:    pollRepo,
		logger:      logger,
	}
}

// Run executes one sweep. Failures on individual hangouts are logged and
// skipped; the next scheduled run picks them up again.
func (j *LifecycleJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC()

	ended, err := j.hangoutRepo.FindEndedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to find ended hangouts", zap.Error(err))
		return
	}

	if len(ended) == 0 {
		return
	}

	j.logger.Info("Found ended hangouts to complete",
		zap.Int("count", len(ended)),
	)

	successCount := 0
	failCount := 0

	for _, hangout := range ended {
		if err := j.pollRepo.CloseByHangoutID(ctx, hangout.ID); err != nil {
			j.logger.Error("Failed to close poll for ended hangout",
				zap.String("hangout_id", hangout.ID.String()),
				zap.Error(err),
			)
			failCount++
			continue
		}

		if err := j.hangoutRepo.UpdateStatus(ctx, hangout.ID, domain.HangoutStatusCompleted); err != nil {
			j.logger.Error("Failed to mark hangout completed",
				zap.String("hangout_id", hangout.ID.String()),
				zap.Error(err),
			)
			failCount++
			continue
		}

		successCount++

		j.logger.Debug("Hangout completed",
			zap.String("hangout_id", hangout.ID.String()),
		)
	}

	j.logger.Info("Lifecycle sweep finished",
		zap.Int("total_ended", len(ended)),
		zap.Int("completed", successCount),
		zap.Int("failed", failCount),
	)
}
