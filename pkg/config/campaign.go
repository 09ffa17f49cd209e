package config

// CampaignConfig controls campaign execution and A/B reporting.
type CampaignConfig struct {
	// SendBatchSize is how many recipients are dispatched per batch.
	SendBatchSize int `yaml:"send_batch_size"`

	// SignificanceLevel is the alpha used by the two-proportion z-test in
	// A/B reports.
	SignificanceLevel float64 `yaml:"significance_level"`

	// MinSamplePerVariant is the minimum deliveries per arm before the
	// report will call a winner.
	MinSamplePerVariant int `yaml:"min_sample_per_variant"`

	// Cron schedules for the periodic jobs, in standard five-field syntax.
	ReengagementSchedule string `yaml:"reengagement_schedule"`
	DormantSchedule      string `yaml:"dormant_schedule"`

	// ReengagementAfterDays is the inactivity threshold for the re-engagement
	// nudge; DormantAfterDays for marking conversations dormant.
	ReengagementAfterDays int `yaml:"reengagement_after_days"`
	DormantAfterDays      int `yaml:"dormant_after_days"`
}

// DefaultCampaignConfig returns the built-in campaign defaults.
func DefaultCampaignConfig() *CampaignConfig {
	return &CampaignConfig{
		SendBatchSize:         100,
		SignificanceLevel:     0.05,
		MinSamplePerVariant:   30,
		ReengagementSchedule:  "0 9 * * *",
		DormantSchedule:       "30 3 * * *",
		ReengagementAfterDays: 7,
		DormantAfterDays:      14,
	}
}
