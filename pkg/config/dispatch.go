package config

import "time"

// DispatchConfig controls outbound message delivery policy.
type DispatchConfig struct {
	// DailyMessageLimit is the fallback per-tenant cap per rolling 24h
	// window when the tenant's tier does not set one.
	DailyMessageLimit int `yaml:"daily_message_limit"`

	// WarningThreshold is the fraction of the daily limit at which a
	// once-per-day warning is logged for the tenant (0 < t < 1).
	WarningThreshold float64 `yaml:"warning_threshold"`

	// QueueSpillHour is the local hour (0-23) at which messages deferred by
	// rate limiting are rescheduled for the next day.
	QueueSpillHour int `yaml:"queue_spill_hour"`

	// Provider 429 retry schedule: base, base*2, base*4, ... capped at
	// RetryMaxDelay, at most MaxSendAttempts tries before spilling to the
	// scheduled queue.
	MaxSendAttempts int           `yaml:"max_send_attempts"`
	RetryBaseDelay  time.Duration `yaml:"retry_base_delay"`
	RetryMaxDelay   time.Duration `yaml:"retry_max_delay"`
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		DailyMessageLimit: 10,
		WarningThreshold:  0.8,
		QueueSpillHour:    8,
		MaxSendAttempts:   3,
		RetryBaseDelay:    1 * time.Second,
		RetryMaxDelay:     4 * time.Second,
	}
}
