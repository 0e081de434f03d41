package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskStatsRefresh is the task type for dashboard overview warmup.
	TaskStatsRefresh = "stats:refresh"
)

// StatsRefreshPayload parameterizes an overview refresh run.
type StatsRefreshPayload struct {
	Reason string `json:"reason"`
}

// NewStatsRefreshTask constructs an Asynq task.
func NewStatsRefreshTask(payload StatsRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStatsRefresh, data), nil
}
