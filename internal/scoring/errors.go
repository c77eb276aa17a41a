package scoring

import "errors"

var (
	// ErrInvalidConfig marks weight or tuning configurations that cannot
	// produce a defensible score. Detected at engine construction.
	ErrInvalidConfig = errors.New("invalid scoring config")

	// ErrEmbeddingUnavailable marks a transient failure of the embedding
	// collaborator. The engine recovers from it by substituting a neutral
	// semantic sub-score; it never aborts a match.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")
)
