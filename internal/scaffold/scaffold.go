package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/ccw-labs/skillhub/internal/manifest"
	"github.com/ccw-labs/skillhub/internal/platform"
	"github.com/ccw-labs/skillhub/internal/registry"
)

//go:embed templates/SKILL.md.tmpl
var templateFS embed.FS

var skillTmpl = template.Must(
	template.New("SKILL.md.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/SKILL.md.tmpl"),
)

// idRe restricts unit ids to a single portable path segment.
var idRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// DefaultTools is the allowed-tools list written when none is given.
var DefaultTools = []string{"Task", "Read", "Write", "Bash"}

// Data holds the template variables of a new unit.
type Data struct {
	ID          string   // directory name and frontmatter name, e.g. "project-analyze"
	Name        string   // display title used as the document heading
	Description string   // single-line summary
	Tools       []string // allowed-tools entries
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData creates Data for id with a derived title, a placeholder
// description and the default tools.
func NewData(id string) *Data {
	return &Data{
		ID:          id,
		Name:        registry.DisplayName(id, nil),
		Description: registry.Description(id, nil),
		Tools:       append([]string(nil), DefaultTools...),
	}
}

// ValidateID reports whether id can name a unit directory.
func ValidateID(id string) error {
	if id == "" {
		return errors.New("skill id must not be empty")
	}
	if !idRe.MatchString(id) {
		return fmt.Errorf("invalid skill id %q: use letters, digits, '.', '_' and '-', starting with a letter or digit", id)
	}
	return nil
}

// Generate writes <skillsDir>/<id>/SKILL.md. It refuses to touch a unit
// directory that already has content. The written descriptor is parsed back
// and any difference from data is reported as a warning.
func Generate(skillsDir string, data *Data) (*Result, error) {
	if err := ValidateID(data.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(data.Description) == "" {
		data.Description = registry.Description(data.ID, nil)
	}
	if strings.ContainsAny(data.Description, "\r\n") {
		return nil, errors.New("description must be a single line")
	}
	for _, tool := range data.Tools {
		if strings.ContainsAny(tool, ",\r\n") || strings.TrimSpace(tool) == "" {
			return nil, fmt.Errorf("invalid tool name %q", tool)
		}
	}

	outputDir := filepath.Join(skillsDir, data.ID)
	if err := os.MkdirAll(outputDir, platform.DirPermNormal); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	var buf bytes.Buffer
	if err := skillTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	outPath := filepath.Join(outputDir, manifest.DescriptorFile)
	if err := os.WriteFile(outPath, buf.Bytes(), platform.FilePermNormal); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	result := &Result{
		OutputDir: outputDir,
		Files:     []string{manifest.DescriptorFile},
	}

	md, err := manifest.ParseFile(outPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not read back %s: %v", manifest.DescriptorFile, err))
		return result, nil
	}
	result.Warnings = append(result.Warnings, compare(data, md)...)
	return result, nil
}

func compare(data *Data, md manifest.Metadata) []string {
	var warnings []string
	if got, _ := md.String("name"); got != data.ID {
		warnings = append(warnings, fmt.Sprintf("name reads back as %q, want %q", got, data.ID))
	}
	if got, _ := md.String("description"); got != strings.TrimSpace(data.Description) {
		warnings = append(warnings, fmt.Sprintf("description reads back as %q", got))
	}
	if len(data.Tools) > 0 {
		got, _ := md.List(manifest.AllowedToolsKey)
		if strings.Join(got, ",") != strings.Join(trimAll(data.Tools), ",") {
			warnings = append(warnings, fmt.Sprintf("allowed-tools reads back as %v", got))
		}
	}
	if utf8.RuneCountInString(data.Description) > registry.MaxDescriptionLen {
		warnings = append(warnings, fmt.Sprintf("description is longer than %d characters and will be truncated in the index", registry.MaxDescriptionLen))
	}
	return warnings
}

func trimAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
