package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/maksimov/resume-screener/internal/embedding"

	"go.uber.org/zap"
)

// SemanticScorer compares two text blocks through an injected embedding
// capability. Identical inputs always yield identical scores; the only
// nondeterminism lives behind the Embedder.
type SemanticScorer struct {
	embedder embedding.Embedder
	timeout  time.Duration
	logger   *zap.Logger
}

// NewSemanticScorer builds a scorer around the provided embedder. A zero
// timeout disables the per-call deadline. A nil embedder is accepted; every
// non-trivial score request then reports ErrEmbeddingUnavailable.
func NewSemanticScorer(embedder embedding.Embedder, timeout time.Duration, logger *zap.Logger) *SemanticScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemanticScorer{
		embedder: embedder,
		timeout:  timeout,
		logger:   logger,
	}
}

// Score embeds both texts and rescales their cosine similarity into [0, 1].
// Either text being empty after normalization short-circuits to 0.0 without
// touching the embedder. Embedder failures and deadline hits surface as
// ErrEmbeddingUnavailable.
func (s *SemanticScorer) Score(ctx context.Context, textA, textB string) (SubScore, error) {
	textA = NormalizeText(textA)
	textB = NormalizeText(textB)

	if textA == "" || textB == "" {
		return SubScore{
			Name:     ComponentSemantic,
			Value:    0,
			Evidence: Evidence{Similarity: floatPtr(0)},
		}, nil
	}

	if s.embedder == nil {
		return SubScore{}, fmt.Errorf("%w: no embedding provider configured", ErrEmbeddingUnavailable)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	vectorA, err := s.embedder.Embed(ctx, textA)
	if err != nil {
		return SubScore{}, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	vectorB, err := s.embedder.Embed(ctx, textB)
	if err != nil {
		return SubScore{}, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	cos, err := cosineSimilarity(vectorA, vectorB)
	if err != nil {
		return SubScore{}, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	// Rescale from the embedding model's natural [-1, 1] range.
	value := clamp01((cos + 1) / 2)

	s.logger.Debug("semantic similarity computed",
		zap.Float64("cosine", cos),
		zap.Float64("score", value),
	)

	return SubScore{
		Name:     ComponentSemantic,
		Value:    value,
		Evidence: Evidence{Similarity: floatPtr(value)},
	}, nil
}

// NormalizeText strips control characters and collapses whitespace runs.
func NormalizeText(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)

	return strings.Join(strings.Fields(cleaned), " ")
}

func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("zero-magnitude embedding vector")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
