package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, tc := range []struct{ file, key string }{
		{"parsing.json", "extract-job-details"},
		{"parsing.json", "infer-skills"},
		{"coach.json", "cover-letter"},
		{"coach.json", "assessment"},
		{"coach.json", "summary-rewrite"},
		{"coach.json", "achievement-rewrite"},
	} {
		prompt, err := Get(tc.file, tc.key)
		require.NoError(t, err, "%s/%s", tc.file, tc.key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("coach.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "anything")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, applying to {{.Company}}.", map[string]string{
		"Name":    "Alex",
		"Company": "Acme",
	})
	assert.Equal(t, "Hello Alex, applying to Acme.", out)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	out := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", out)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("coach.json", "missing") })
}

func TestEmbeddedPromptsHavePlaceholders(t *testing.T) {
	prompt := MustGet("parsing.json", "extract-job-details")
	assert.True(t, strings.Contains(prompt, "{{.JobText}}"))
}
