package readme

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/ccw-labs/skillhub/internal/branding"
	"github.com/ccw-labs/skillhub/internal/registry"
)

//go:embed templates/readme.md.tmpl
var templateFS embed.FS

const (
	// tableDescLen is the longest description shown verbatim in the table.
	tableDescLen = 60
	// tableTags is how many tags the table shows per skill.
	tableTags = 4
)

// DateLayout formats the "Last Updated" line.
const DateLayout = "2006-01-02"

// Options controls the branding-dependent parts of the README.
type Options struct {
	Title      string
	Summary    string
	RepoURL    string
	RepoName   string
	InstallDir string
	CLIName    string
	SkillsDir  string // repository-relative units root, e.g. "skills"
	IndexFile  string // repository-relative index path
}

// DefaultOptions returns Options filled from the embedded branding.
func DefaultOptions() Options {
	return Options{
		Title:      branding.DisplayName(),
		Summary:    branding.Tagline(),
		RepoURL:    branding.RepoURL(),
		RepoName:   branding.RepoName(),
		InstallDir: branding.InstallDir(),
		CLIName:    branding.CLIName(),
		SkillsDir:  registry.DefaultPathPrefix,
		IndexFile:  "skill-hub/index.json",
	}
}

// Section groups the skills of one category.
type Section struct {
	Category string
	Skills   []registry.Record
}

type view struct {
	Options
	Registry    *registry.Registry
	SkillCount  int
	Categories  int
	LastUpdated string
	Sections    []Section
}

var readmeTmpl = template.Must(
	template.New("readme.md.tmpl").Funcs(template.FuncMap{
		"code":      code,
		"tags":      codeList,
		"firstTags": firstTags,
		"short":     shorten,
		"branch":    branch,
	}).ParseFS(templateFS, "templates/readme.md.tmpl"),
)

// Render produces the README for reg.
func Render(reg *registry.Registry, opts Options) (string, error) {
	if reg == nil {
		reg = registry.Empty()
	}

	v := view{
		Options:    opts,
		Registry:   reg,
		SkillCount: len(reg.Skills),
		Categories: len(reg.Categories()),
		Sections:   Sections(reg),
	}
	if !reg.UpdatedAt.IsZero() {
		v.LastUpdated = reg.UpdatedAt.UTC().Format(DateLayout)
	}

	var buf bytes.Buffer
	if err := readmeTmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("rendering README: %w", err)
	}
	return buf.String(), nil
}

// Sections groups the registry's skills by category. Categories are sorted;
// skills keep registry order within a category. An empty category is shown
// as General.
func Sections(reg *registry.Registry) []Section {
	byCat := make(map[string][]registry.Record)
	for _, s := range reg.Skills {
		cat := s.Category
		if cat == "" {
			cat = registry.GeneralCategory
		}
		byCat[cat] = append(byCat[cat], s)
	}

	cats := make([]string, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	sections := make([]Section, len(cats))
	for i, c := range cats {
		sections[i] = Section{Category: c, Skills: byCat[c]}
	}
	return sections
}

func code(s string) string {
	return "`" + s + "`"
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = code(s)
	}
	return strings.Join(quoted, " ")
}

func firstTags(tags []string) string {
	if len(tags) > tableTags {
		tags = tags[:tableTags]
	}
	return codeList(tags)
}

// branch returns the tree connector for entry i of n.
func branch(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

// shorten keeps table rows narrow: descriptions over tableDescLen characters
// are cut to tableDescLen-3 and suffixed with "...".
func shorten(s string) string {
	if utf8.RuneCountInString(s) <= tableDescLen {
		return s
	}
	return string([]rune(s)[:tableDescLen-3]) + "..."
}
