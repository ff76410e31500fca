package embedding

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// GeminiProvider implements Provider using the Gemini embedding API.
// Calls are serialized through a mutex so a single provider instance can be
// shared across goroutines without relying on the SDK's thread safety.
type GeminiProvider struct {
	mu     sync.Mutex
	client *genai.Client
	model  *genai.EmbeddingModel
	name   string
}

// NewGemini creates a Gemini embedding provider and verifies the model by
// embedding a probe string. A failure here is fatal to the caller: without
// embeddings no analysis is possible, so the error must surface at startup
// rather than on the first analysis request.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("embedding: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create Gemini client: %w", err)
	}

	p := &GeminiProvider{
		client: client,
		model:  client.EmbeddingModel(model),
		name:   model,
	}

	// One-time eager verification of the model.
	if _, err := p.Embed(ctx, []string{"ping"}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("embedding: model %s unavailable: %w", model, err)
	}

	return p, nil
}

// Embed returns one vector per input text, in input order.
func (p *GeminiProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	batch := p.model.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := p.model.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("embedding: batch embed failed: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding: got %d vectors for %d texts", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

// ModelName returns the configured embedding model identifier.
func (p *GeminiProvider) ModelName() string {
	return p.name
}

// Close releases the underlying API client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
