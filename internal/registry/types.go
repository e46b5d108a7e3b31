package registry

import (
	"sort"
	"time"

	"github.com/ccw-labs/skillhub/internal/manifest"
	schemagen "github.com/invopop/jsonschema"
)

// DefaultVersion is the registry schema version written when no prior
// registry exists.
const DefaultVersion = manifest.DefaultVersion

// Record is the normalized catalog entry for one skill unit.
type Record struct {
	ID          string   `json:"id" jsonschema:"minLength=1"`
	Name        string   `json:"name"`
	Description string   `json:"description" jsonschema:"maxLength=200"`
	Version     string   `json:"version"`
	Author      string   `json:"author"`
	Category    string   `json:"category" jsonschema:"minLength=1"`
	Tags        []string `json:"tags" jsonschema:"maxItems=8,uniqueItems=true"`
	Path        string   `json:"path"`
}

// JSONSchemaExtend restricts category to the closed vocabulary.
func (Record) JSONSchemaExtend(s *schemagen.Schema) {
	prop, ok := s.Properties.Get("category")
	if !ok {
		return
	}
	for _, c := range Categories() {
		prop.Enum = append(prop.Enum, c)
	}
}

// Registry is the persisted catalog snapshot. Skills are sorted by ID and
// IDs are unique.
type Registry struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
	Skills    []Record  `json:"skills"`
}

// Empty returns the registry assumed when no index file exists yet.
func Empty() *Registry {
	return &Registry{Version: DefaultVersion, Skills: []Record{}}
}

// IDs returns the skill IDs in registry order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, len(r.Skills))
	for i, s := range r.Skills {
		ids[i] = s.ID
	}
	return ids
}

// Categories returns the distinct categories used by the registry's skills,
// sorted.
func (r *Registry) Categories() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]bool)
	var cats []string
	for _, s := range r.Skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			cats = append(cats, s.Category)
		}
	}
	sort.Strings(cats)
	return cats
}
