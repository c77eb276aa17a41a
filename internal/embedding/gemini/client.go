package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/maksimov/resume-screener/internal/utils"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "text-embedding-004"

	defaultMaxLogLength = 120
)

var retryBackoff = 500 * time.Millisecond

// embedCaller is the slice of the genai client the provider depends on.
type embedCaller interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Provider computes text embeddings through the Gemini API.
type Provider struct {
	models     embedCaller
	modelName  string
	maxRetries int
	logger     *zap.Logger
	maxLogLen  int
}

// NewProvider creates a Provider configured for the Gemini API backend.
func NewProvider(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*Provider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newProvider(client.Models, model, maxRetries, logger), nil
}

func newProvider(models embedCaller, model string, maxRetries int, logger *zap.Logger) *Provider {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if maxRetries < 0 {
		maxRetries = 0
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{
		models:     models,
		modelName:  model,
		maxRetries: maxRetries,
		logger:     logger,
		maxLogLen:  defaultMaxLogLength,
	}
}

// Embed returns the embedding vector for the provided text, retrying transient
// failures up to the configured attempt count.
func (p *Provider) Embed(ctx context.Context, text string) ([]float32, error) {
	if p == nil || p.models == nil {
		return nil, errors.New("gemini provider is not initialized")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text must not be empty")
	}

	p.logger.Debug("gemini embed content request",
		zap.Int("text_length", utf8.RuneCountInString(text)),
		zap.String("text_preview", utils.TruncateForLog(text, p.maxLogLen)),
	)

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			if err := utils.WaitFor(ctx, retryBackoff*time.Duration(attempt)); err != nil {
				return nil, err
			}
			p.logger.Debug("retrying gemini embed content", zap.Int("attempt", attempt))
		}

		vector, err := p.embed(ctx, text)
		if err == nil {
			return vector, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

func (p *Provider) embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := p.models.EmbedContent(ctx, p.modelName, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return nil, errors.New("gemini api returned no embeddings")
	}

	values := resp.Embeddings[0].Values
	if len(values) == 0 {
		return nil, errors.New("gemini api returned an empty embedding vector")
	}

	return values, nil
}

func (p *Provider) Model() string {
	if p == nil {
		return ""
	}
	return p.modelName
}
