package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jobscout/jobscout/internal/provider"
)

// ErrCircuitOpen is returned (wrapped in UnreachableError) while the breaker
// is holding remote attempts back.
var ErrCircuitOpen = errors.New("ai circuit breaker open")

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// Available reports whether the remote path can be attempted at all
	Available() bool
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini. Every call checks the
// configured availability and the circuit breaker before touching the
// network; failures are reported through the provider error taxonomy.
type GeminiClient struct {
	client  *genai.Client
	config  *Config
	breaker *Breaker
}

// NewGeminiClient creates a new Gemini client. An empty API key yields a
// working client whose calls fail with UnconfiguredError, so callers can
// treat "unconfigured" like any other recoverable provider failure.
func NewGeminiClient(ctx context.Context, config *Config) (*GeminiClient, error) {
	if config == nil {
		config = DefaultConfig("")
	}

	c := &GeminiClient{
		config:  config,
		breaker: NewBreaker(config.breakerThreshold(), config.breakerCooldown()),
	}

	if config.Available() {
		client, err := genai.NewClient(ctx, option.WithAPIKey(strings.TrimSpace(config.APIKey)))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		c.client = client
	}

	return c, nil
}

// Available reports whether the adapter holds a credential.
func (c *GeminiClient) Available() bool {
	return c.client != nil && c.config.Available()
}

// GenerateContent generates text content using the specified model tier
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, false)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.generate(ctx, prompt, tier, true)
	if err != nil {
		return "", err
	}
	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, tier ModelTier, asJSON bool) (string, error) {
	if !c.Available() {
		return "", &provider.UnconfiguredError{Kind: provider.KindAIGenerate}
	}
	if !c.breaker.Allow() {
		return "", &provider.UnreachableError{Kind: provider.KindAIGenerate, Err: ErrCircuitOpen}
	}

	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", &provider.UnconfiguredError{Kind: provider.KindAIGenerate}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	if asJSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.breaker.RecordFailure()
		return "", &provider.UnreachableError{Kind: provider.KindAIGenerate, Err: err}
	}
	c.breaker.RecordSuccess()

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &provider.MalformedResponseError{Kind: provider.KindAIGenerate, Detail: err.Error()}
	}
	return text, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
