package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is the OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is the Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOpenAI, LLMProviderTypeAnthropic:
		return true
	default:
		return false
	}
}

// Complexity classifies a conversational turn for provider routing.
// Simple turns go to the economical chain, complex ones to the capable chain.
type Complexity string

const (
	// ComplexitySimple covers greetings, confirmations, and single-entity lookups
	ComplexitySimple Complexity = "simple"
	// ComplexityStandard covers ordinary product and support turns
	ComplexityStandard Complexity = "standard"
	// ComplexityComplex covers multi-step requests and long context turns
	ComplexityComplex Complexity = "complex"
)

// IsValid checks if the complexity level is valid
func (c Complexity) IsValid() bool {
	switch c {
	case ComplexitySimple, ComplexityStandard, ComplexityComplex:
		return true
	default:
		return false
	}
}
