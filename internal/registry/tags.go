package registry

import (
	"strings"
	"unicode/utf8"

	"github.com/ccw-labs/skillhub/internal/manifest"
)

// MaxTags bounds Record.Tags.
const MaxTags = 8

// minTokenLen is the shortest description word kept as a tag.
const minTokenLen = 4

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "with": true,
	"for": true, "to": true, "of": true, "in": true, "on": true,
}

// ExtractTags derives up to MaxTags distinct tags for a unit, in priority
// order: the id, then significant words of the description, then explicit
// frontmatter tags.
func ExtractTags(id string, md manifest.Metadata) []string {
	set := newOrderedSet()
	set.add(id)

	if desc, ok := md.String("description"); ok {
		for _, word := range strings.Fields(strings.ToLower(desc)) {
			if utf8.RuneCountInString(word) < minTokenLen || stopWords[word] {
				continue
			}
			set.add(keepTagChars(word))
		}
	}

	if tags, ok := md.List("tags"); ok {
		for _, tag := range tags {
			set.add(strings.TrimSpace(tag))
		}
	}

	return set.first(MaxTags)
}

// keepTagChars drops every character outside [a-z0-9-].
func keepTagChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, s)
}

// orderedSet keeps insertion order and ignores repeats.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

// first returns up to n non-empty items.
func (s *orderedSet) first(n int) []string {
	out := make([]string, 0, n)
	for _, v := range s.items {
		if v == "" {
			continue
		}
		if len(out) == n {
			break
		}
		out = append(out, v)
	}
	return out
}
