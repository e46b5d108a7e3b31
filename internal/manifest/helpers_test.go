package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writePackage(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, PackageFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
