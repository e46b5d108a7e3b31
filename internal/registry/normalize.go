package registry

import (
	"strings"
	"unicode/utf8"

	"github.com/ccw-labs/skillhub/internal/manifest"
)

// MaxDescriptionLen bounds Record.Description, in characters.
const MaxDescriptionLen = 200

// DisplayName derives the human-readable title of a unit: the frontmatter
// name (or the id), hyphens turned into spaces, and the first character of
// every word uppercased. The rest of each word keeps its case.
func DisplayName(id string, md manifest.Metadata) string {
	name := field(md, "name")
	if name == "" {
		name = id
	}
	return titleWords(strings.ReplaceAll(name, "-", " "))
}

// Description returns the frontmatter description, or a placeholder naming
// the unit, cut to the first MaxDescriptionLen characters.
func Description(id string, md manifest.Metadata) string {
	desc := field(md, "description")
	if desc == "" {
		desc = "Skill: " + id
	}
	return truncate(desc, MaxDescriptionLen)
}

// field returns the trimmed string value of key. Absent and blank values
// both yield "".
func field(md manifest.Metadata, key string) string {
	v, _ := md.String(key)
	return strings.TrimSpace(v)
}

// titleWords uppercases every word character ([A-Za-z0-9_]) that follows a
// non-word character or starts the string. Digits and underscores have no
// upper case, so "2fa" stays "2fa".
func titleWords(s string) string {
	prevWord := false
	return strings.Map(func(r rune) rune {
		word := isWordChar(r)
		if word && !prevWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		prevWord = word
		return r
	}, s)
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
