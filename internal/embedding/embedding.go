// Package embedding provides batched text-to-vector embedding behind a
// provider interface, with a Gemini-backed default implementation.
package embedding

import (
	"context"
	"errors"
)

// ErrNoTexts is returned when Embed is called with an empty batch.
var ErrNoTexts = errors.New("embedding: no texts to embed")

// Provider turns text into fixed-length numeric vectors. Implementations
// must be batched, order-preserving (one vector per input, same index
// order), and deterministic for a fixed underlying model. Construction
// failures are fatal; per-call failures after a successful construction are
// unexpected and must be surfaced to the caller, never silently defaulted.
type Provider interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// ModelName identifies the underlying embedding model.
	ModelName() string
}
