package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ccw-labs/skillhub/internal/platform"
)

// ErrIndexNotFound is returned by LoadExisting when no index file exists.
var ErrIndexNotFound = errors.New("index file not found")

// Load reads the registry at path. A missing file yields Empty(); a file
// that exists but does not decode is an error.
func Load(path string) (*Registry, error) {
	reg, err := LoadExisting(path)
	if errors.Is(err, ErrIndexNotFound) {
		return Empty(), nil
	}
	return reg, err
}

// LoadExisting reads the registry at path and fails with ErrIndexNotFound
// when the file does not exist.
func LoadExisting(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
		}
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	if reg.Skills == nil {
		reg.Skills = []Record{}
	}
	return &reg, nil
}

// Marshal encodes reg the way it is stored on disk: two-space indented JSON
// with a trailing newline. HTML characters in descriptions are not escaped.
func Marshal(reg *Registry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reg); err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	return buf.Bytes(), nil
}

// Save replaces the index file at path with reg in a single rename, creating
// parent directories as needed.
func Save(path string, reg *Registry) error {
	data, err := Marshal(reg)
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(path, data, platform.FilePermNormal); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}
