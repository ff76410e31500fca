package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON untouched",
			input: `{"skills": "Go, Python"}`,
			want:  `{"skills": "Go, Python"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"skills\": \"Go\"}\n```",
			want:  `{"skills": "Go"}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"skills\": \"Go\"}\n```",
			want:  `{"skills": "Go"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n[1, 2]\n```\n  ",
			want:  "[1, 2]",
		},
		{
			name:  "fence content starting with brace is kept",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfig_Model(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash", cfg.Model(TaskExtraction))
	assert.Equal(t, "gemini-2.5-pro", cfg.Model(TaskCoaching))

	// Unknown tasks fall back to the extraction model.
	assert.Equal(t, "gemini-2.5-flash", cfg.Model(Task("unknown")))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(t.Context(), nil, "")
	assert.Error(t, err)
	assert.Nil(t, client)
}
