// Package scheduler delivers ScheduledMessage rows when they fall due and
// runs the platform's periodic jobs. A pool of workers claims due rows with
// FOR UPDATE SKIP LOCKED so any number of replicas can poll the same table.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/sokochat/sokochat/pkg/dispatch"
)

var (
	// ErrNoMessagesDue indicates no unclaimed scheduled message is due.
	ErrNoMessagesDue = errors.New("no scheduled messages due")

	// ErrAtCapacity indicates the global concurrent-dispatch limit is reached.
	ErrAtCapacity = errors.New("at maximum concurrent dispatches")
)

// MessageDispatcher is the dispatch capability the workers need.
type MessageDispatcher interface {
	Send(ctx context.Context, in dispatch.Input) (*dispatch.Result, error)
}

// WorkerHealth is a snapshot of one worker's state.
type WorkerHealth struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"`
	CurrentMessageID   string    `json:"current_message_id,omitempty"`
	MessagesDispatched int       `json:"messages_dispatched"`
	LastActivity       time.Time `json:"last_activity"`
}

// PoolHealth is a snapshot of the pool, served by the health endpoint.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan,omitempty"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
