package registry

import (
	"fmt"
	"path"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// Check verifies the invariants every built registry satisfies: unique ids
// in ascending order, bounded descriptions and tags, distinct non-empty tags,
// a category from the vocabulary, and a path ending in the id. All
// violations are reported together.
func Check(reg *Registry) error {
	var result *multierror.Error

	seen := make(map[string]bool, len(reg.Skills))
	for i, s := range reg.Skills {
		if s.ID == "" {
			result = multierror.Append(result, fmt.Errorf("skills[%d]: empty id", i))
			continue
		}
		if seen[s.ID] {
			result = multierror.Append(result, fmt.Errorf("%s: duplicate id", s.ID))
		}
		seen[s.ID] = true

		if i > 0 && reg.Skills[i-1].ID > s.ID {
			result = multierror.Append(result, fmt.Errorf("%s: out of order after %s", s.ID, reg.Skills[i-1].ID))
		}
		if n := utf8.RuneCountInString(s.Description); n > MaxDescriptionLen {
			result = multierror.Append(result, fmt.Errorf("%s: description has %d characters, max %d", s.ID, n, MaxDescriptionLen))
		}
		if len(s.Tags) > MaxTags {
			result = multierror.Append(result, fmt.Errorf("%s: %d tags, max %d", s.ID, len(s.Tags), MaxTags))
		}
		tagSeen := make(map[string]bool, len(s.Tags))
		for _, tag := range s.Tags {
			if tag == "" {
				result = multierror.Append(result, fmt.Errorf("%s: empty tag", s.ID))
			} else if tagSeen[tag] {
				result = multierror.Append(result, fmt.Errorf("%s: duplicate tag %q", s.ID, tag))
			}
			tagSeen[tag] = true
		}
		if !IsCategory(s.Category) {
			result = multierror.Append(result, fmt.Errorf("%s: unknown category %q", s.ID, s.Category))
		}
		if path.Base(s.Path) != s.ID {
			result = multierror.Append(result, fmt.Errorf("%s: path %q does not end in the id", s.ID, s.Path))
		}
	}

	return result.ErrorOrNil()
}
