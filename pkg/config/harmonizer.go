package config

import "time"

// HarmonizerWindowMin and HarmonizerWindowMax bound the configurable burst
// window. Values outside the range are clamped at load time.
const (
	HarmonizerWindowMin = 1 * time.Second
	HarmonizerWindowMax = 10 * time.Second
)

// HarmonizerConfig controls inbound burst collection. Messages from the same
// customer arriving within Window of each other are merged into one agent turn.
type HarmonizerConfig struct {
	// Window is how long to wait after the latest buffered message before
	// flushing the burst. Clamped to [1s, 10s].
	Window time.Duration `yaml:"window"`

	// PollInterval is the base interval for checking due buffers.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval so
	// replicas do not poll in lockstep.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MaxBuffered caps messages merged into a single turn; older messages
	// beyond the cap flush immediately.
	MaxBuffered int `yaml:"max_buffered"`
}

// DefaultHarmonizerConfig returns the built-in harmonizer defaults.
func DefaultHarmonizerConfig() *HarmonizerConfig {
	return &HarmonizerConfig{
		Window:             3 * time.Second,
		PollInterval:       500 * time.Millisecond,
		PollIntervalJitter: 200 * time.Millisecond,
		MaxBuffered:        20,
	}
}

// ClampWindow forces Window into the supported range and reports whether a
// correction was applied.
func (c *HarmonizerConfig) ClampWindow() bool {
	switch {
	case c.Window < HarmonizerWindowMin:
		c.Window = HarmonizerWindowMin
		return true
	case c.Window > HarmonizerWindowMax:
		c.Window = HarmonizerWindowMax
		return true
	}
	return false
}
