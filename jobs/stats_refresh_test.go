package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/rentiva/rentiva-admin/internal/stats"
)

type stubOverviewRepo struct {
	overview *stats.Overview
	calls    int
}

func (s *stubOverviewRepo) CollectOverview(ctx context.Context) (*stats.Overview, error) {
	s.calls++
	return s.overview, nil
}

func TestStatsRefreshHandleWarmsCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &stubOverviewRepo{overview: &stats.Overview{
		TotalUsers:      4,
		TotalProperties: 2,
		GeneratedAt:     time.Now().UTC(),
	}}
	svc := stats.NewService(repo, stats.NewCache(client, time.Minute), nil)
	job := NewStatsRefreshJob(svc, nil)

	task, err := NewStatsRefreshTask(StatsRefreshPayload{Reason: "test"})
	require.NoError(t, err)

	require.NoError(t, job.Handle(context.Background(), task))
	require.Equal(t, 1, repo.calls)

	// A subsequent read must be served from the warmed cache.
	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, overview.TotalUsers)
	require.Equal(t, 1, repo.calls)
}

func TestStatsRefreshHandleSkipsBadPayload(t *testing.T) {
	svc := stats.NewService(&stubOverviewRepo{overview: &stats.Overview{}}, stats.NewCache(nil, time.Minute), nil)
	job := NewStatsRefreshJob(svc, nil)

	task := asynq.NewTask(TaskStatsRefresh, []byte("{not json"))
	require.ErrorIs(t, job.Handle(context.Background(), task), asynq.SkipRetry)
}
