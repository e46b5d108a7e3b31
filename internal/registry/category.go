package registry

import (
	"strings"

	"github.com/ccw-labs/skillhub/internal/manifest"
)

// GeneralCategory is assigned when no keyword matches.
const GeneralCategory = "General"

type categoryRule struct {
	keyword string
	label   string
}

// categoryRules is matched in order; the first hit wins.
var categoryRules = []categoryRule{
	{"analyze", "Analysis"},
	{"analysis", "Analysis"},
	{"review", "Code Quality"},
	{"test", "Testing"},
	{"doc", "Documentation"},
	{"documentation", "Documentation"},
	{"manual", "Documentation"},
	{"copyright", "Documentation"},
	{"deploy", "Deployment"},
	{"build", "Build"},
	{"security", "Security"},
	{"refactor", "Refactoring"},
	{"debug", "Debugging"},
	{"api", "API"},
	{"ui", "UI/UX"},
	{"frontend", "Frontend"},
	{"backend", "Backend"},
}

// Classify assigns exactly one category to a unit. The lowercased id is
// tested against the keyword table first; only when nothing matches are the
// frontmatter tags tried, tag by tag. Falls back to GeneralCategory.
func Classify(id string, md manifest.Metadata) string {
	if label, ok := matchCategory(strings.ToLower(id)); ok {
		return label
	}

	if tags, ok := md.List("tags"); ok {
		for _, tag := range tags {
			if label, ok := matchCategory(strings.ToLower(tag)); ok {
				return label
			}
		}
	}

	return GeneralCategory
}

func matchCategory(s string) (string, bool) {
	for _, rule := range categoryRules {
		if strings.Contains(s, rule.keyword) {
			return rule.label, true
		}
	}
	return "", false
}

// Categories returns the closed category vocabulary: every keyword label in
// table order, then GeneralCategory.
func Categories() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, rule := range categoryRules {
		if !seen[rule.label] {
			seen[rule.label] = true
			labels = append(labels, rule.label)
		}
	}
	return append(labels, GeneralCategory)
}

// IsCategory reports whether label belongs to the vocabulary.
func IsCategory(label string) bool {
	for _, c := range Categories() {
		if c == label {
			return true
		}
	}
	return false
}
