package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is used when a unit has no usable package.json version.
const DefaultVersion = "1.0.0"

type packageJSON struct {
	Version string `json:"version"`
}

// PackageVersion returns the version declared in dir/package.json. A missing
// file, malformed JSON, an absent version, or a value that does not parse as
// a semantic version all yield DefaultVersion.
func PackageVersion(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, PackageFile))
	if err != nil {
		return DefaultVersion
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return DefaultVersion
	}

	version := strings.TrimSpace(pkg.Version)
	if version == "" {
		return DefaultVersion
	}
	if _, err := semver.NewVersion(version); err != nil {
		return DefaultVersion
	}
	return version
}
