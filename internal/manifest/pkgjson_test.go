package manifest

import "testing"

func TestPackageVersion(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"with-package", "2.3.1"},
		{"bad-package", DefaultVersion},
		{"odd-version", DefaultVersion},
		{"does-not-exist", DefaultVersion},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			if got := PackageVersion(testPath(tt.dir)); got != tt.want {
				t.Errorf("PackageVersion(%s) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}

func TestPackageVersionMissingField(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, `{"name": "no-version"}`)

	if got := PackageVersion(dir); got != DefaultVersion {
		t.Errorf("PackageVersion = %q, want %q", got, DefaultVersion)
	}
}

func TestPackageVersionNumericField(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, `{"version": 3}`)

	if got := PackageVersion(dir); got != DefaultVersion {
		t.Errorf("PackageVersion = %q, want %q", got, DefaultVersion)
	}
}

func TestPackageVersionPrerelease(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, `{"version": "0.4.0-beta.1"}`)

	if got := PackageVersion(dir); got != "0.4.0-beta.1" {
		t.Errorf("PackageVersion = %q, want %q", got, "0.4.0-beta.1")
	}
}
