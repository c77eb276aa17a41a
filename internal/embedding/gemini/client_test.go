package gemini

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeEmbedCaller struct {
	mu        sync.Mutex
	responses []fakeEmbedResponse
	calls     int
	lastText  string
	lastModel string
}

type fakeEmbedResponse struct {
	resp *genai.EmbedContentResponse
	err  error
}

func (f *fakeEmbedCaller) EmbedContent(_ context.Context, model string, contents []*genai.Content, _ *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.lastModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.lastText = contents[0].Parts[0].Text
	}

	if len(f.responses) == 0 {
		return nil, errors.New("unexpected call")
	}

	res := f.responses[0]
	f.responses = f.responses[1:]
	return res.resp, res.err
}

func embedResponse(values ...float32) *genai.EmbedContentResponse {
	return &genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{{Values: values}},
	}
}

func TestNewProviderRequiresAPIKey(t *testing.T) {
	if _, err := NewProvider(context.Background(), "   ", "", 0, zap.NewNop()); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}

func TestEmbedReturnsVector(t *testing.T) {
	fake := &fakeEmbedCaller{responses: []fakeEmbedResponse{{resp: embedResponse(0.1, 0.2, 0.3)}}}
	provider := newProvider(fake, "", 0, zap.NewNop())

	vector, err := provider.Embed(context.Background(), "  senior go engineer  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vector) != 3 {
		t.Fatalf("expected 3 values, got %d", len(vector))
	}

	if fake.lastModel != defaultModel {
		t.Fatalf("expected default model %q, got %q", defaultModel, fake.lastModel)
	}

	if fake.lastText != "senior go engineer" {
		t.Fatalf("expected trimmed text, got %q", fake.lastText)
	}
}

func TestEmbedRetriesOnTransientError(t *testing.T) {
	originalBackoff := retryBackoff
	retryBackoff = 0
	defer func() { retryBackoff = originalBackoff }()

	fake := &fakeEmbedCaller{responses: []fakeEmbedResponse{
		{err: errors.New("temporary failure")},
		{resp: embedResponse(1, 2)},
	}}
	provider := newProvider(fake, "text-embedding-004", 2, zap.NewNop())

	vector, err := provider.Embed(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vector) != 2 {
		t.Fatalf("expected 2 values, got %d", len(vector))
	}

	if fake.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", fake.calls)
	}
}

func TestEmbedStopsOnCanceledContext(t *testing.T) {
	fake := &fakeEmbedCaller{responses: []fakeEmbedResponse{
		{err: errors.New("temporary failure")},
		{resp: embedResponse(1)},
	}}
	provider := newProvider(fake, "", 3, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	if _, err := provider.Embed(ctx, "resume text"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestEmbedRejectsEmptyText(t *testing.T) {
	provider := newProvider(&fakeEmbedCaller{}, "", 0, zap.NewNop())

	if _, err := provider.Embed(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestEmbedRejectsEmptyResponse(t *testing.T) {
	fake := &fakeEmbedCaller{responses: []fakeEmbedResponse{{resp: &genai.EmbedContentResponse{}}}}
	provider := newProvider(fake, "", 0, zap.NewNop())

	if _, err := provider.Embed(context.Background(), "resume text"); err == nil {
		t.Fatalf("expected error for empty embeddings")
	}
}
