//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testHub holds the paths of an isolated skill hub.
type testHub struct {
	Root      string
	SkillsDir string
	IndexFile string
	Readme    string
}

// setupHub creates a hub with the three units the upstream repository ships.
func setupHub(t *testing.T) *testHub {
	t.Helper()

	root := t.TempDir()
	hub := &testHub{
		Root:      root,
		SkillsDir: filepath.Join(root, ".claude", "skills"),
		IndexFile: filepath.Join(root, "skill-hub", "index.json"),
		Readme:    filepath.Join(root, "README.md"),
	}

	writeUnit(t, hub, "project-analyze", strings.Join([]string{
		"---",
		"name: project-analyze",
		"description: Analyze project structure, dependencies and architecture. Generates detailed reports for onboarding.",
		"allowed-tools: Task, Read, Glob, Grep, Write",
		"---",
		"",
		"# Project Analyze",
	}, "\n"))
	writeUnit(t, hub, "copyright-docs", strings.Join([]string{
		"---",
		"name: copyright-docs",
		"description: Generate software copyright registration documents",
		"allowed-tools: Task, Read, Write",
		"---",
	}, "\r\n"))
	writeUnit(t, hub, "software-manual", strings.Join([]string{
		"---",
		"name: software-manual",
		"description: Produce end-user manuals with screenshots",
		"tags: manual",
		"---",
	}, "\n"))

	return hub
}

func writeUnit(t *testing.T, hub *testHub, id, content string) {
	t.Helper()
	dir := filepath.Join(hub.SkillsDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q", substr)
	}
}
