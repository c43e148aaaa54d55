package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewBreaker(2, time.Minute)

	assert.True(t, b.Allow())
	b.RecordFailure()
	assert.True(t, b.Allow())
	b.RecordFailure()
	assert.False(t, b.Allow())
}

func TestBreaker_SuccessCloses(t *testing.T) {
	b := NewBreaker(2, time.Minute)

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	// One failure after a success must not open a threshold-2 breaker.
	assert.True(t, b.Allow())
}

func TestBreaker_HalfOpenAfterCooldown(t *testing.T) {
	b := NewBreaker(1, time.Minute)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return current }

	b.RecordFailure()
	assert.False(t, b.Allow())

	current = current.Add(2 * time.Minute)
	assert.True(t, b.Allow(), "cooldown elapsed, one attempt allowed")

	b.RecordFailure()
	assert.False(t, b.Allow(), "half-open failure re-opens the circuit")

	current = current.Add(2 * time.Minute)
	assert.True(t, b.Allow())
	b.RecordSuccess()
	assert.True(t, b.Allow(), "half-open success closes the circuit")
}

func TestConfig_Availability(t *testing.T) {
	assert.False(t, DefaultConfig("").Available())
	assert.True(t, DefaultConfig("key").Available())

	var nilCfg *Config
	assert.False(t, nilCfg.Available())
}

func TestConfig_ModelTierFallback(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))
}
