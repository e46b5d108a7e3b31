package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ccw-labs/skillhub/internal/logger"
	"github.com/ccw-labs/skillhub/internal/manifest"
)

var fixedTime = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// writeSkill creates <root>/<id>/SKILL.md with the given content.
func writeSkill(t *testing.T, root, id, content string) string {
	t.Helper()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifest.DescriptorFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func frontmatter(lines ...string) string {
	s := "---\n"
	for _, l := range lines {
		s += l + "\n"
	}
	return s + "---\n\n# Body\n"
}

func newTestBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedTime }), WithLogger(logger.Discard())}, opts...)
	b, err := NewBuilder(opts...)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b
}

func md(pairs ...string) manifest.Metadata {
	m := make(manifest.Metadata)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = manifest.StringField(pairs[i+1])
	}
	return m
}
