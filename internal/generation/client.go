package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/studyboi/quizforge/config"
)

// Client invokes the external text-generation service with a prepared
// prompt. One call, one attempt: callers surface ErrUnavailable and
// ErrTimeout to the requester instead of retrying, because repeated
// generation calls burn quota without being idempotent in effect.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiClient builds the Gemini-backed Client. A missing API key is
// tolerated at startup (the service still boots); every Generate call
// then fails with ErrUnconfigured.
func NewGeminiClient(cfg *config.Config) (Client, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; quiz generation will be unavailable")
		return &geminiClient{model: nil, timeout: cfg.Gemini.Timeout}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetTemperature(0.9)
	model.SetTopK(40)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(4096)

	return &geminiClient{model: model, timeout: cfg.Gemini.Timeout}, nil
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", ErrUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error().Err(err).Dur("timeout", c.timeout).Msg("Gemini call timed out")
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		log.Error().Err(err).Msg("Gemini call failed")
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates")
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: no text content", ErrUnavailable)
	}
	return text, nil
}
