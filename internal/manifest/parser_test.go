package manifest

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParse_BasicFields(t *testing.T) {
	content := "---\nname: Security Audit\ndescription: Audit API endpoints for vulnerabilities\n---\n# Body\n"

	md, ok := Parse(content)
	if !ok {
		t.Fatal("Parse returned ok=false, want true")
	}
	if got, _ := md.String("name"); got != "Security Audit" {
		t.Errorf("name = %q, want %q", got, "Security Audit")
	}
	if got, _ := md.String("description"); got != "Audit API endpoints for vulnerabilities" {
		t.Errorf("description = %q, want %q", got, "Audit API endpoints for vulnerabilities")
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"plain markdown", "# Title\n\nname: x\n"},
		{"unterminated", "---\nname: x\ndescription: y\n"},
		{"opener with trailing text", "--- yaml\nname: x\n---\n"},
		{"closer with trailing text", "---\nname: x\n--- end\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if md, ok := Parse(tt.content); ok {
				t.Errorf("Parse(%q) = %v, true; want no metadata", tt.content, md)
			}
		})
	}
}

func TestParse_CRLF(t *testing.T) {
	content := "---\r\nname: win\r\ndescription: crlf text\r\n---\r\nbody\r\n"

	md, ok := Parse(content)
	if !ok {
		t.Fatal("Parse returned ok=false for CRLF input")
	}
	if got, _ := md.String("name"); got != "win" {
		t.Errorf("name = %q, want %q", got, "win")
	}
	if got, _ := md.String("description"); got != "crlf text" {
		t.Errorf("description = %q, want %q", got, "crlf text")
	}
}

func TestParse_MixedLineEndings(t *testing.T) {
	content := "---\nname: mixed\r\nversion: 2\n---\r\n"

	md, ok := Parse(content)
	if !ok {
		t.Fatal("Parse returned ok=false for mixed line endings")
	}
	if got, _ := md.String("name"); got != "mixed" {
		t.Errorf("name = %q, want %q", got, "mixed")
	}
	if got, _ := md.String("version"); got != "2" {
		t.Errorf("version = %q, want %q", got, "2")
	}
}

func TestParse_AllowedToolsIsList(t *testing.T) {
	md, ok := Parse("---\nallowed-tools: Task,  Read ,Write\nname: tools\n---\n")
	if !ok {
		t.Fatal("Parse returned ok=false")
	}

	f, ok := md.Get(AllowedToolsKey)
	if !ok {
		t.Fatal("allowed-tools missing")
	}
	if !f.IsList() {
		t.Fatalf("allowed-tools kind = %v, want ListKind", f.Kind())
	}
	want := []string{"Task", "Read", "Write"}
	if got := f.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("allowed-tools = %v, want %v", got, want)
	}

	name, _ := md.Get("name")
	if name.IsList() {
		t.Error("name should be a string field")
	}
}

func TestParse_OtherCommaValuesStayStrings(t *testing.T) {
	md, _ := Parse("---\ntags: testing, api\n---\n")

	f, _ := md.Get("tags")
	if f.IsList() {
		t.Fatal("tags should remain a string field")
	}
	if f.String() != "testing, api" {
		t.Errorf("tags = %q, want %q", f.String(), "testing, api")
	}
}

func TestParse_IgnoresNonFieldLines(t *testing.T) {
	content := "---\n# comment\nname: kept\n  indented: value\n- list item\n: no key\nempty:\n---\n"

	md, ok := Parse(content)
	if !ok {
		t.Fatal("Parse returned ok=false")
	}
	if len(md) != 1 {
		t.Errorf("len(md) = %d, want 1 (got %v)", len(md), md)
	}
	if got, _ := md.String("name"); got != "kept" {
		t.Errorf("name = %q, want %q", got, "kept")
	}
}

func TestParse_ValueKeepsInnerColons(t *testing.T) {
	md, _ := Parse("---\ndescription: Step 1: read. Step 2: write.\n---\n")

	if got, _ := md.String("description"); got != "Step 1: read. Step 2: write." {
		t.Errorf("description = %q", got)
	}
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	md, _ := Parse("---\nname: first\nname: second\n---\n")

	if got, _ := md.String("name"); got != "second" {
		t.Errorf("name = %q, want %q", got, "second")
	}
}

func TestParse_FirstBlockOnly(t *testing.T) {
	md, _ := Parse("---\nname: header\n---\nbody\n---\nname: later\n---\n")

	if got, _ := md.String("name"); got != "header" {
		t.Errorf("name = %q, want %q", got, "header")
	}
}

func TestParseFile_Valid(t *testing.T) {
	md, err := ParseFile(testPath("valid-skill.md"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if got, _ := md.String("name"); got != "project-analyze" {
		t.Errorf("name = %q, want %q", got, "project-analyze")
	}
	tools, _ := md.List(AllowedToolsKey)
	if len(tools) != 4 {
		t.Errorf("allowed-tools len = %d, want 4", len(tools))
	}
}

func TestParseFile_CRLF(t *testing.T) {
	md, err := ParseFile(testPath("crlf-skill.md"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if got, _ := md.String("description"); got != "Written on Windows" {
		t.Errorf("description = %q, want %q", got, "Written on Windows")
	}
}

func TestParseFile_NoFrontmatter(t *testing.T) {
	_, err := ParseFile(testPath("no-frontmatter.md"))
	if !errors.Is(err, ErrNoFrontmatter) {
		t.Fatalf("err = %v, want ErrNoFrontmatter", err)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.md"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
	if errors.Is(err, ErrNoFrontmatter) {
		t.Error("missing file should not report ErrNoFrontmatter")
	}
}

func TestFieldCoercion(t *testing.T) {
	list := ListField("Audit", "the", "API")
	if got := list.String(); got != "Audit the API" {
		t.Errorf("ListField.String() = %q, want %q", got, "Audit the API")
	}

	str := StringField("solo")
	if got := str.List(); !reflect.DeepEqual(got, []string{"solo"}) {
		t.Errorf("StringField.List() = %v, want [solo]", got)
	}

	// List returns a copy.
	items := list.List()
	items[0] = "mutated"
	if list.List()[0] != "Audit" {
		t.Error("List() should not expose internal storage")
	}
}

func TestMetadataMissingKey(t *testing.T) {
	md := Metadata{}
	if _, ok := md.String("name"); ok {
		t.Error("String(name) ok = true on empty metadata")
	}
	if _, ok := md.List("tags"); ok {
		t.Error("List(tags) ok = true on empty metadata")
	}
}
