package config

import "time"

// maxSchedulerTick bounds the scheduler poll interval so a due message is
// never picked up more than a minute late.
const maxSchedulerTick = 60 * time.Second

// QueueConfig contains scheduled-message queue and worker pool configuration.
// These values control how due messages are polled, claimed, and dispatched.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and dispatches due messages.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentDispatches is the global limit of messages being
	// dispatched across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentDispatches int `yaml:"max_concurrent_dispatches"`

	// PollInterval is the base interval for checking due messages. Must not
	// exceed one minute so a due message is never late by more than that.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// DispatchTimeout is the maximum time a single dispatch may take.
	DispatchTimeout time.Duration `yaml:"dispatch_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// dispatches to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for claims abandoned by
	// crashed pods.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a claim can be held before it is
	// considered orphaned and released back to pending.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentDispatches: 50,
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      1 * time.Second,
		DispatchTimeout:         30 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
