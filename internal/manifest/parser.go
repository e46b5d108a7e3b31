package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrNoFrontmatter is returned by ParseFile when the descriptor has no
// delimited header block. Callers treat it as "skip this unit".
var ErrNoFrontmatter = errors.New("no frontmatter block")

var (
	// A "---" line, a lazily matched body, and a closing "---" line.
	frontmatterRe = regexp.MustCompile(`(?m)^---\r?\n([\s\S]*?)\r?\n---\r?$`)
	fieldRe       = regexp.MustCompile(`^(\w[\w-]*):\s*(.+)$`)
	newlineRe     = regexp.MustCompile(`\r?\n`)
)

// Parse extracts the frontmatter fields from a descriptor's text. The second
// return value is false when the text contains no frontmatter block.
//
// Lines that are not "key: value" are ignored. allowed-tools is split on
// commas; every other value is kept as a trimmed string. A repeated key
// overwrites the earlier value.
func Parse(content string) (Metadata, bool) {
	m := frontmatterRe.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	md := make(Metadata)
	for _, line := range newlineRe.Split(m[1], -1) {
		kv := fieldRe.FindStringSubmatch(line)
		if kv == nil {
			continue
		}
		key, value := kv[1], kv[2]
		if key == AllowedToolsKey {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			md[key] = ListField(parts...)
			continue
		}
		md[key] = StringField(strings.TrimSpace(value))
	}
	return md, true
}

// ParseFile reads the descriptor at path and parses its frontmatter.
func ParseFile(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	md, ok := Parse(string(data))
	if !ok {
		return nil, fmt.Errorf("parsing %s: %w", path, ErrNoFrontmatter)
	}
	return md, nil
}
