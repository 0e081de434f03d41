package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/rentiva/rentiva-admin/internal/stats"
)

// StatsRefreshJob re-computes the dashboard overview into the cache so
// the first operator request after a quiet period is served warm.
type StatsRefreshJob struct {
	Stats  *stats.Service
	Logger *slog.Logger
}

// NewStatsRefreshJob wires dependencies for the refresh handler.
func NewStatsRefreshJob(statsSvc *stats.Service, logger *slog.Logger) *StatsRefreshJob {
	return &StatsRefreshJob{Stats: statsSvc, Logger: logger}
}

// Handle processes TaskStatsRefresh tasks.
func (j *StatsRefreshJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Stats == nil {
		return errors.New("stats refresh: handler not configured")
	}
	var payload StatsRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.log().With(slog.String("reason", payload.Reason))
	start := time.Now()

	overview, err := j.Stats.Refresh(ctx)
	if err != nil {
		logger.Error("refresh overview", slog.Any("error", err))
		return err
	}

	logger.Info("overview refreshed",
		slog.Int("total_users", overview.TotalUsers),
		slog.Int("total_properties", overview.TotalProperties),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

func (j *StatsRefreshJob) log() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
