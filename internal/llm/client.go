// Package llm provides the LLM client used for prose generation: job
// posting extraction, cover letters, and blueprint coaching steps.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Task selects which model handles a request.
type Task string

// Task constants for model routing.
const (
	// TaskExtraction covers structured extraction: job details, inferred
	// skills, achievement rewrites.
	TaskExtraction Task = "extraction"
	// TaskCoaching covers open-ended prose: cover letters, summaries,
	// strategic assessments.
	TaskCoaching Task = "coaching"
)

// Config maps tasks to model names.
type Config struct {
	Models map[Task]string
}

// DefaultConfig returns the default Gemini model routing.
func DefaultConfig() *Config {
	return &Config{
		Models: map[Task]string{
			TaskExtraction: "gemini-2.5-flash",
			TaskCoaching:   "gemini-2.5-pro",
		},
	}
}

// Model returns the model for a task, falling back to the extraction model.
func (c *Config) Model(task Task) string {
	if model, ok := c.Models[task]; ok {
		return model
	}
	return c.Models[TaskExtraction]
}

// Client is the abstraction over LLM providers used by generation code.
type Client interface {
	// GenerateContent generates free-form text for the given task.
	GenerateContent(ctx context.Context, prompt string, task Task) (string, error)
	// GenerateJSON generates JSON output for the given task, with markdown
	// code fences stripped.
	GenerateJSON(ctx context.Context, prompt string, task Task) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client over the Gemini API.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("llm: failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateContent generates free-form text for the given task.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, task Task) (string, error) {
	model := c.client.GenerativeModel(c.config.Model(task))
	model.SetTemperature(0.5)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("llm: generation failed: %w", err)
	}
	return textFromResponse(resp)
}

// GenerateJSON generates JSON output for the given task.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, task Task) (string, error) {
	model := c.client.GenerativeModel(c.config.Model(task))
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("llm: generation failed: %w", err)
	}

	text, err := textFromResponse(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("llm: no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("llm: no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("llm: no text parts in response")
	}
	return strings.TrimSpace(strings.Join(parts, "")), nil
}
