package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ccw-labs/skillhub/internal/branding"
	"github.com/ccw-labs/skillhub/internal/manifest"
	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// ErrSkillsDirNotFound is returned when the units root does not exist. No
// registry can be produced and nothing should be written.
var ErrSkillsDirNotFound = errors.New("skills directory not found")

// DefaultPathPrefix is prepended to a record's id to form its path.
const DefaultPathPrefix = "skills"

// Builder scans a skills directory and assembles Registry snapshots.
type Builder struct {
	author     string
	pathPrefix string
	exclude    []glob.Glob
	now        func() time.Time
	log        *logrus.Entry
}

// Option configures a Builder.
type Option func(*Builder) error

// WithAuthor sets the author attributed to every record.
func WithAuthor(author string) Option {
	return func(b *Builder) error {
		if author == "" {
			return errors.New("author must not be empty")
		}
		b.author = author
		return nil
	}
}

// WithPathPrefix sets the prefix of Record.Path ("skills" → "skills/<id>").
func WithPathPrefix(prefix string) Option {
	return func(b *Builder) error {
		b.pathPrefix = strings.Trim(prefix, "/")
		return nil
	}
}

// WithExclude skips unit directories whose name matches any of the glob
// patterns.
func WithExclude(patterns ...string) Option {
	return func(b *Builder) error {
		for _, p := range patterns {
			g, err := glob.Compile(p)
			if err != nil {
				return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
			}
			b.exclude = append(b.exclude, g)
		}
		return nil
	}
}

// WithClock overrides the source of Registry.UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) error {
		b.now = now
		return nil
	}
}

// WithLogger sets the logger used for per-unit diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(b *Builder) error {
		b.log = log
		return nil
	}
}

// NewBuilder creates a Builder with the branding author, the "skills" path
// prefix, no exclusions and the wall clock.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		author:     branding.Author(),
		pathPrefix: DefaultPathPrefix,
		now:        time.Now,
		log:        logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Build scans skillsDir and returns a new snapshot. The registry version is
// carried over from prior (DefaultVersion when prior is nil or has none);
// UpdatedAt is stamped with the current time at millisecond precision.
func (b *Builder) Build(skillsDir string, prior *Registry) (*Registry, error) {
	records, err := b.Scan(skillsDir)
	if err != nil {
		return nil, err
	}

	version := DefaultVersion
	if prior != nil && prior.Version != "" {
		version = prior.Version
	}

	return &Registry{
		Version:   version,
		UpdatedAt: b.now().UTC().Truncate(time.Millisecond),
		Skills:    records,
	}, nil
}

// Scan returns one record per immediate subdirectory of skillsDir that holds
// a SKILL.md with a frontmatter block, sorted by id. Units without a usable
// descriptor are skipped and never fail the scan.
func (b *Builder) Scan(skillsDir string) ([]Record, error) {
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSkillsDirNotFound, skillsDir)
		}
		return nil, fmt.Errorf("reading skills directory %s: %w", skillsDir, err)
	}

	records := []Record{}
	for _, entry := range entries {
		id := entry.Name()
		unitDir := filepath.Join(skillsDir, id)

		// Stat follows symlinked unit directories.
		info, err := os.Stat(unitDir)
		if err != nil || !info.IsDir() {
			continue
		}
		if b.excluded(id) {
			b.log.WithField("skill", id).Debug("Skipping excluded directory")
			continue
		}

		rec, err := b.Inspect(unitDir)
		if err != nil {
			b.log.WithField("skill", id).WithError(err).Debug("Skipping: no SKILL.md or invalid frontmatter")
			continue
		}
		b.log.WithFields(logrus.Fields{"skill": id, "category": rec.Category}).Debug("Found skill")
		records = append(records, rec)
	}

	slices.SortFunc(records, func(x, y Record) int {
		return strings.Compare(x.ID, y.ID)
	})
	return records, nil
}

// Inspect returns the record for a single unit directory. The id is the
// directory's base name.
func (b *Builder) Inspect(unitDir string) (Record, error) {
	md, err := manifest.ParseFile(filepath.Join(unitDir, manifest.DescriptorFile))
	if err != nil {
		return Record{}, err
	}
	return b.record(filepath.Base(unitDir), unitDir, md), nil
}

func (b *Builder) record(id, unitDir string, md manifest.Metadata) Record {
	return Record{
		ID:          id,
		Name:        DisplayName(id, md),
		Description: Description(id, md),
		Version:     manifest.PackageVersion(unitDir),
		Author:      b.author,
		Category:    Classify(id, md),
		Tags:        ExtractTags(id, md),
		Path:        path.Join(b.pathPrefix, id),
	}
}

func (b *Builder) excluded(name string) bool {
	for _, g := range b.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}
