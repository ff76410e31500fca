// Package skills provides keyword-level skill extraction and the skill-gap
// matcher that scores job skills against resume skills.
package skills

import (
	"regexp"
	"strings"
)

// Extractor infers skill terms from free text. Accuracy is inherently
// approximate; implementations are replaceable strategies.
type Extractor interface {
	Extract(text string) []string
}

// knownTechnologies maps lowercase technology tokens to their canonical
// display form. Matching is case-insensitive on word boundaries.
var knownTechnologies = map[string]string{
	"python":        "Python",
	"go":            "Go",
	"golang":        "Go",
	"java":          "Java",
	"javascript":    "JavaScript",
	"typescript":    "TypeScript",
	"react":         "React",
	"angular":       "Angular",
	"vue":           "Vue",
	"node.js":       "Node.js",
	"nodejs":        "Node.js",
	"docker":        "Docker",
	"kubernetes":    "Kubernetes",
	"k8s":           "Kubernetes",
	"terraform":     "Terraform",
	"ansible":       "Ansible",
	"postgresql":    "PostgreSQL",
	"postgres":      "PostgreSQL",
	"mysql":         "MySQL",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"kafka":         "Kafka",
	"rabbitmq":      "RabbitMQ",
	"elasticsearch": "Elasticsearch",
	"graphql":       "GraphQL",
	"grpc":          "gRPC",
	"rust":          "Rust",
	"scala":         "Scala",
	"ruby":          "Ruby",
	"php":           "PHP",
	"swift":         "Swift",
	"kotlin":        "Kotlin",
	"django":        "Django",
	"flask":         "Flask",
	"spring":        "Spring",
	"linux":         "Linux",
	"git":           "Git",
	"jenkins":       "Jenkins",
	"spark":         "Spark",
	"hadoop":        "Hadoop",
	"tableau":       "Tableau",
	"excel":         "Excel",
	"agile":         "Agile",
	"scrum":         "Scrum",
	"leadership":    "Leadership",
}

var (
	// Standalone all-caps tokens like SQL, AWS, CI/CD components.
	acronymPattern = regexp.MustCompile(`\b[A-Z][A-Z0-9+#]{1,7}\b`)
	// Capitalized multi-word phrases like "Project Management".
	phrasePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)
	wordPattern   = regexp.MustCompile(`[A-Za-z0-9.+#]+`)
)

// LexicalExtractor is the default Extractor: known technology tokens,
// acronyms, and capitalized multi-word phrases.
type LexicalExtractor struct{}

// NewLexicalExtractor creates the default regex-based extractor.
func NewLexicalExtractor() *LexicalExtractor {
	return &LexicalExtractor{}
}

// Extract returns the skill terms found in text, deduplicated
// case-insensitively in first-occurrence order.
func (e *LexicalExtractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var found []string

	for _, word := range wordPattern.FindAllString(text, -1) {
		if canonical, ok := knownTechnologies[strings.ToLower(word)]; ok {
			found = append(found, canonical)
		}
	}

	found = append(found, acronymPattern.FindAllString(text, -1)...)
	found = append(found, phrasePattern.FindAllString(text, -1)...)

	return Dedupe(found)
}

// Dedupe removes case-insensitive duplicates, preserving first-occurrence
// order and original casing.
func Dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
