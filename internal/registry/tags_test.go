package registry

import (
	"reflect"
	"testing"

	"github.com/ccw-labs/skillhub/internal/manifest"
)

func TestExtractTagsScenario(t *testing.T) {
	got := ExtractTags("api-security-audit", md("description", "Audit API endpoints for vulnerabilities"))

	want := []string{"api-security-audit", "audit", "endpoints", "vulnerabilities"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}

func TestExtractTagsStripsPunctuation(t *testing.T) {
	got := ExtractTags("x", md("description", "Generates (beautiful) README.md files, quickly!"))

	want := []string{"x", "generates", "beautiful", "readmemd", "files", "quickly"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}

func TestExtractTagsLengthCountedBeforeStripping(t *testing.T) {
	// "api," is four characters before stripping, so it survives as "api".
	// "with," is not the stop-word "with" until after stripping.
	got := ExtractTags("x", md("description", "api, with, a.b"))

	want := []string{"x", "api", "with"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}

func TestExtractTagsDropsEmptyAfterStripping(t *testing.T) {
	got := ExtractTags("x", md("description", "---- !!!! ????"))

	want := []string{"x", "----"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}

func TestExtractTagsExplicitTags(t *testing.T) {
	meta := manifest.Metadata{
		"description": manifest.StringField("Review pull requests"),
		"tags":        manifest.ListField(" git ", "review", "x"),
	}

	got := ExtractTags("x", meta)
	want := []string{"x", "review", "pull", "requests", "git"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}

func TestExtractTagsStringTagsField(t *testing.T) {
	got := ExtractTags("x", md("tags", "  testing, api "))

	want := []string{"x", "testing, api"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}

func TestExtractTagsLimit(t *testing.T) {
	got := ExtractTags("id", md("description", "alpha bravo charlie delta echo foxtrot golf hotel india juliet"))

	if len(got) != MaxTags {
		t.Fatalf("len = %d, want %d", len(got), MaxTags)
	}
	if got[0] != "id" {
		t.Errorf("first tag = %q, want id", got[0])
	}
	if got[7] != "golf" {
		t.Errorf("last tag = %q, want golf", got[7])
	}
}

func TestExtractTagsDeduplicates(t *testing.T) {
	got := ExtractTags("review", md("description", "review Review REVIEW reviews"))

	want := []string{"review", "reviews"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}

func TestExtractTagsListDescription(t *testing.T) {
	meta := manifest.Metadata{"description": manifest.ListField("scan", "repositories")}

	got := ExtractTags("x", meta)
	want := []string{"x", "scan", "repositories"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}
}
