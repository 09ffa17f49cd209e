// Package config provides configuration management for the sokochat platform,
// including LLM provider, failover chain, subscription tier, and pipeline settings.
package config

import "time"

// AgentConfig controls the conversational turn pipeline.
type AgentConfig struct {
	// MaxSteps caps pipeline steps per turn; exceeding it sends the fallback
	// response instead of looping.
	MaxSteps int `yaml:"max_steps"`

	// HistoryWindow is how many prior messages are included in the prompt.
	HistoryWindow int `yaml:"history_window"`

	// ConfidenceThreshold is the minimum self-reported model confidence for
	// a turn to count as confident. Providers that report none are treated
	// as confident.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// LowConfidenceHandoffAfter is the number of consecutive low-confidence
	// turns after which the conversation is flagged for human handoff.
	LowConfidenceHandoffAfter int `yaml:"low_confidence_handoff_after"`

	// Fallback is sent when a turn cannot be completed (all providers down,
	// or the pipeline failed mid-turn).
	Fallback string `yaml:"fallback,omitempty"`

	// ReferenceTTL is how long enumerated lists stay resolvable. Capped at
	// five minutes regardless of configuration.
	ReferenceTTL time.Duration `yaml:"reference_ttl"`

	// MaxReferenceLists is how many recent live lists are consulted when
	// resolving a reference.
	MaxReferenceLists int `yaml:"max_reference_lists"`

	// MaxListItems caps items per enumerated list shown to a customer.
	MaxListItems int `yaml:"max_list_items"`

	// Retrieval settings for catalog and knowledge-base lookup.
	Retrieval *RetrievalConfig `yaml:"retrieval,omitempty"`

	// Grounding settings for outbound response validation.
	Grounding *GroundingConfig `yaml:"grounding,omitempty"`
}

// GroundingConfig controls the outbound response validator.
type GroundingConfig struct {
	// MaxSentences caps sentences per outbound response.
	MaxSentences int `yaml:"max_sentences"`

	// DisclaimerPhrases are confidence-undermining clichés stripped from
	// responses.
	DisclaimerPhrases []string `yaml:"disclaimer_phrases,omitempty"`

	// EchoPhrases are lead-ins that verbatim-repeat the customer's input;
	// sentences starting with one are stripped.
	EchoPhrases []string `yaml:"echo_phrases,omitempty"`

	// Deferral replaces claims that could not be verified against the
	// tenant's catalog or knowledge base.
	Deferral string `yaml:"deferral,omitempty"`
}

// RetrievalConfig controls knowledge and catalog retrieval.
type RetrievalConfig struct {
	// VectorEnabled turns on semantic search against the vector store.
	// When off (or the store is unreachable) retrieval degrades to
	// database full-text search.
	VectorEnabled bool `yaml:"vector_enabled"`

	// TopK is how many candidates to retrieve per query.
	TopK int `yaml:"top_k"`

	// MinScore filters weak vector matches.
	MinScore float32 `yaml:"min_score"`
}

// ReferenceTTLMax caps the configurable reference context TTL.
const ReferenceTTLMax = 5 * time.Minute

// DefaultAgentConfig returns the built-in pipeline defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		MaxSteps:                  10,
		HistoryWindow:             10,
		ConfidenceThreshold:       0.4,
		LowConfidenceHandoffAfter: 2,
		Fallback:                  "Sorry, something went wrong on our side. A team member will be with you shortly.",
		ReferenceTTL:              5 * time.Minute,
		MaxReferenceLists:         5,
		MaxListItems:              5,
		Retrieval: &RetrievalConfig{
			VectorEnabled: false,
			TopK:          5,
			MinScore:      0.35,
		},
		Grounding: &GroundingConfig{
			MaxSentences: 8,
			DisclaimerPhrases: []string{
				"as an ai",
				"i'm just an ai",
				"i cannot guarantee",
				"please note that i may be wrong",
				"to the best of my knowledge",
			},
			EchoPhrases: []string{
				"you said",
				"you asked",
				"as you mentioned",
				"you mentioned",
			},
			Deferral: "Let me check on that and get back to you.",
		},
	}
}

// ClampReferenceTTL forces ReferenceTTL into the supported range and reports
// whether a correction was applied.
func (c *AgentConfig) ClampReferenceTTL() bool {
	if c.ReferenceTTL <= 0 || c.ReferenceTTL > ReferenceTTLMax {
		c.ReferenceTTL = ReferenceTTLMax
		return true
	}
	return false
}
