package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ccw-labs/skillhub/internal/platform"
	"github.com/ccw-labs/skillhub/internal/readme"
	"github.com/ccw-labs/skillhub/internal/registry"
	"github.com/spf13/cobra"
)

var (
	readmeDryRun bool
	readmeDiff   bool
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Regenerate README.md from the skill registry",
	Long: `Render the hub README from the registry file: an overview, a table of all
skills, a detailed list grouped by category and the contributing guide.`,
	Args: cobra.NoArgs,
	RunE: runReadme,
}

func init() {
	readmeCmd.Flags().BoolVar(&readmeDryRun, "dry-run", false, "Print the README without writing")
	readmeCmd.Flags().BoolVar(&readmeDiff, "diff", false, "Show a unified diff of the README")
	rootCmd.AddCommand(readmeCmd)
}

func readmeOptions() readme.Options {
	opts := readme.DefaultOptions()
	opts.SkillsDir = settings.PathPrefix
	opts.IndexFile = filepath.ToSlash(displayPath(settings.IndexFile))
	return opts
}

func runReadme(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	reg, err := registry.LoadExisting(settings.IndexFile)
	if err != nil {
		if errors.Is(err, registry.ErrIndexNotFound) {
			return fmt.Errorf("%w; run %s first", err, commandHint("index"))
		}
		return err
	}

	content, err := readme.Render(reg, readmeOptions())
	if err != nil {
		return err
	}

	if readmeDryRun {
		if readmeDiff {
			fmt.Fprint(out, fileDiff(settings.ReadmeFile, content))
			return nil
		}
		printHeader(out, "DRY RUN - README that would be generated")
		fmt.Fprintln(out)
		fmt.Fprint(out, content)
		return nil
	}

	if readmeDiff {
		fmt.Fprint(out, fileDiff(settings.ReadmeFile, content))
	}
	if err := platform.WriteFileAtomic(settings.ReadmeFile, []byte(content), platform.FilePermNormal); err != nil {
		return fmt.Errorf("writing README: %w", err)
	}

	printOK(out, "Updated %s", displayPath(settings.ReadmeFile))
	fmt.Fprintf(out, "Skills documented: %d\n", len(reg.Skills))
	return nil
}
