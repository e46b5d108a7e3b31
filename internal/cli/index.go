package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/ccw-labs/skillhub/internal/config"
	"github.com/ccw-labs/skillhub/internal/logger"
	"github.com/ccw-labs/skillhub/internal/registry"
	"github.com/spf13/cobra"
)

var (
	indexDryRun bool
	indexDiff   bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the skill registry from the skills directory",
	Long: `Scan every unit under the skills directory, derive a normalized record for
each SKILL.md and replace the registry file with the result.

Units without a SKILL.md or without a frontmatter block are skipped. The
registry version is carried over from the existing file.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexDryRun, "dry-run", false, "Show changes without writing")
	indexCmd.Flags().BoolVar(&indexDiff, "diff", false, "Show a unified diff of the registry file")
	rootCmd.AddCommand(indexCmd)
}

// newBuilder creates a registry builder from the resolved settings.
func newBuilder(cmd *cobra.Command) (*registry.Builder, error) {
	return registry.NewBuilder(
		registry.WithAuthor(settings.Author),
		registry.WithPathPrefix(settings.PathPrefix),
		registry.WithExclude(settings.Exclude...),
		registry.WithLogger(logger.G(cmd.Context())),
	)
}

func runIndex(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	log := logger.G(cmd.Context())

	prior, err := registry.Load(settings.IndexFile)
	if err != nil {
		return err
	}

	builder, err := newBuilder(cmd)
	if err != nil {
		return err
	}

	log.WithField("dir", displayPath(settings.SkillsDir)).Info("Scanning skills directory")
	next, err := builder.Build(settings.SkillsDir, prior)
	if err != nil {
		if errors.Is(err, registry.ErrSkillsDirNotFound) {
			return fmt.Errorf("%w (set %s in %s)", err, config.KeySkillsDir, displayPath(config.FilePath()))
		}
		return err
	}

	data, err := registry.Marshal(next)
	if err != nil {
		return err
	}
	changes := registry.Diff(prior, next)

	if indexDryRun {
		printHeader(out, "DRY RUN - Changes that would be made")
		fmt.Fprintf(out, "Current skills: %s\n", strings.Join(prior.IDs(), ", "))
		fmt.Fprintf(out, "New skills:     %s\n", strings.Join(next.IDs(), ", "))
		printChanges(out, changes)
		fmt.Fprintln(out)
		if indexDiff {
			fmt.Fprint(out, fileDiff(settings.IndexFile, string(data)))
			return nil
		}
		fmt.Fprintf(out, "New %s content:\n", displayPath(settings.IndexFile))
		_, err := out.Write(data)
		return err
	}

	if indexDiff {
		fmt.Fprint(out, fileDiff(settings.IndexFile, string(data)))
	}
	if err := registry.Save(settings.IndexFile, next); err != nil {
		return err
	}

	printChanges(out, changes)
	printOK(out, "Updated %s", displayPath(settings.IndexFile))
	fmt.Fprintf(out, "Total skills: %d\n", len(next.Skills))
	return nil
}

// fileDiff returns a unified diff from the current content of path (empty
// when the file does not exist) to content.
func fileDiff(path, content string) string {
	old, err := os.ReadFile(path)
	if err != nil {
		old = nil
	}
	name := displayPath(path)
	return udiff.Unified("a/"+name, "b/"+name, string(old), content)
}
