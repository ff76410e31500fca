package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalExtractor_KnownTechnologies(t *testing.T) {
	e := NewLexicalExtractor()

	found := e.Extract("Built services in go and python, deployed with docker on kubernetes.")
	assert.Contains(t, found, "Go")
	assert.Contains(t, found, "Python")
	assert.Contains(t, found, "Docker")
	assert.Contains(t, found, "Kubernetes")
}

func TestLexicalExtractor_Acronyms(t *testing.T) {
	e := NewLexicalExtractor()

	found := e.Extract("Experience with SQL, AWS and CI pipelines required.")
	assert.Contains(t, found, "SQL")
	assert.Contains(t, found, "AWS")
	assert.Contains(t, found, "CI")
}

func TestLexicalExtractor_CapitalizedPhrases(t *testing.T) {
	e := NewLexicalExtractor()

	found := e.Extract("Strong background in Project Management and Data Engineering.")
	assert.Contains(t, found, "Project Management")
	assert.Contains(t, found, "Data Engineering")
}

func TestLexicalExtractor_DedupePreservesFirstOccurrence(t *testing.T) {
	e := NewLexicalExtractor()

	found := e.Extract("Python and python and PYTHON again")
	count := 0
	for _, f := range found {
		if f == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLexicalExtractor_EmptyText(t *testing.T) {
	e := NewLexicalExtractor()
	assert.Nil(t, e.Extract(""))
	assert.Nil(t, e.Extract("   "))
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil input", nil, nil},
		{"case-insensitive", []string{"Go", "go", "GO", "Rust"}, []string{"Go", "Rust"}},
		{"blank entries dropped", []string{" ", "Go", ""}, []string{"Go"}},
		{"order preserved", []string{"b", "a", "B"}, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedupe(tt.input))
		})
	}
}
