package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ConversationRetentionDays is how many days to keep closed conversations
	// before soft-deleting them (setting deleted_at).
	ConversationRetentionDays int `yaml:"conversation_retention_days"`

	// ReferenceContextTTL is the maximum age of expired reference context
	// rows before hard deletion. Resolution already ignores expired rows;
	// this only bounds table growth.
	ReferenceContextTTL time.Duration `yaml:"reference_context_ttl"`

	// HandledOutboxTTL is the maximum age of handled outbox rows before
	// hard deletion.
	HandledOutboxTTL time.Duration `yaml:"handled_outbox_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ConversationRetentionDays: 365,
		ReferenceContextTTL:       1 * time.Hour,
		HandledOutboxTTL:          7 * 24 * time.Hour,
		CleanupInterval:           12 * time.Hour,
	}
}
