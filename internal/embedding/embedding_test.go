package embedding

import (
	"context"
	"errors"
	"testing"
)

type countingEmbedder struct {
	calls int
	err   error
}

func (e *countingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return []float32{float32(len(text)), 1}, nil
}

func TestCacheMemoizesByText(t *testing.T) {
	inner := &countingEmbedder{}
	cache := NewCache(inner)

	for i := 0; i < 3; i++ {
		if _, err := cache.Embed(context.Background(), "senior go engineer"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if inner.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", inner.calls)
	}

	if _, err := cache.Embed(context.Background(), "another text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.calls != 2 {
		t.Fatalf("expected 2 provider calls, got %d", inner.calls)
	}

	if cache.Len() != 2 {
		t.Fatalf("expected 2 cached vectors, got %d", cache.Len())
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	inner := &countingEmbedder{err: errors.New("model offline")}
	cache := NewCache(inner)

	if _, err := cache.Embed(context.Background(), "text"); err == nil {
		t.Fatalf("expected error from provider")
	}

	if cache.Len() != 0 {
		t.Fatalf("expected empty cache after failure, got %d entries", cache.Len())
	}
}
