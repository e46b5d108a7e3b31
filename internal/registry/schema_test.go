package registry

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"maxLength": 200`, `"maxItems": 8`, `"uniqueItems": true`, `"UI/UX"`} {
		if !strings.Contains(text, want) {
			t.Errorf("schema missing %s", want)
		}
	}
}

func TestValidateJSONValid(t *testing.T) {
	reg := &Registry{
		Version:   "1.0.0",
		UpdatedAt: fixedTime,
		Skills: []Record{{
			ID: "a", Name: "A", Description: "d", Version: "1.0.0", Author: "CCW Team",
			Category: "General", Tags: []string{"a"}, Path: "skills/a",
		}},
	}
	data, err := Marshal(reg)
	if err != nil {
		t.Fatal(err)
	}

	result, err := ValidateJSON(data)
	if err != nil {
		t.Fatalf("ValidateJSON: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidateJSONViolations(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		keyword string
	}{
		{"too many tags", `"tags": ["a","b","c","d","e","f","g","h","i"]`, "maxItems"},
		{"duplicate tags", `"tags": ["a","a"]`, "uniqueItems"},
		{"long description", `"description": "` + strings.Repeat("x", 201) + `"`, "maxLength"},
		{"unknown category", `"category": "Misc"`, "enum"},
	}

	base := map[string]string{
		"id": `"id": "a"`, "name": `"name": "A"`, "description": `"description": "d"`,
		"version": `"version": "1.0.0"`, "author": `"author": "CCW Team"`,
		"category": `"category": "General"`, "tags": `"tags": ["a"]`, "path": `"path": "skills/a"`,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := make([]string, 0, len(base))
			key := strings.Trim(strings.SplitN(tt.record, ":", 2)[0], `"`)
			for k, v := range base {
				if k == key {
					v = tt.record
				}
				fields = append(fields, v)
			}
			doc := `{"version": "1.0.0", "updated_at": "2026-10-19T12:00:00Z", "skills": [{` + strings.Join(fields, ",") + `}]}`

			result, err := ValidateJSON([]byte(doc))
			if err != nil {
				t.Fatalf("ValidateJSON: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s issue in %v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateJSONMissingField(t *testing.T) {
	result, err := ValidateJSON([]byte(`{"version": "1.0.0", "skills": []}`))
	if err != nil {
		t.Fatalf("ValidateJSON: %v", err)
	}
	if result.Valid {
		t.Error("expected missing updated_at to be reported")
	}
}

func TestValidateJSONMalformed(t *testing.T) {
	if _, err := ValidateJSON([]byte("{broken")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
