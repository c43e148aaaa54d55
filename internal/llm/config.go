// Package llm provides the AI-generation adapter: a Client abstraction over
// Google Gemini with explicit availability, a circuit breaker, and
// best-effort structured-output extraction.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: ranking, extraction, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: long-form planning
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the AI adapter. Availability is an
// explicit field checked per call; a client never disables itself behind the
// caller's back.
type Config struct {
	// APIKey is the Gemini API key. Empty means the adapter is
	// unconfigured and every call fails with UnconfiguredError.
	APIKey string

	Models map[ModelTier]string

	// BreakerThreshold is the number of consecutive transport failures
	// that opens the circuit. Zero uses the default.
	BreakerThreshold int
	// BreakerCooldown is how long the circuit stays open before remote
	// attempts resume. Zero uses the default.
	BreakerCooldown time.Duration
}

const (
	defaultBreakerThreshold = 3
	defaultBreakerCooldown  = 5 * time.Minute
)

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey: apiKey,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// Available reports whether the adapter has a credential to call with.
func (c *Config) Available() bool {
	return c != nil && c.APIKey != ""
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

func (c *Config) breakerThreshold() int {
	if c.BreakerThreshold > 0 {
		return c.BreakerThreshold
	}
	return defaultBreakerThreshold
}

func (c *Config) breakerCooldown() time.Duration {
	if c.BreakerCooldown > 0 {
		return c.BreakerCooldown
	}
	return defaultBreakerCooldown
}
