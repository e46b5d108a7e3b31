package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ccw-labs/skillhub/internal/manifest"
	"github.com/ccw-labs/skillhub/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createDescription string
	createTools       []string
)

var createCmd = &cobra.Command{
	Use:   "create <id>",
	Short: "Scaffold a new skill unit",
	Long: `Create <skills_dir>/<id>/SKILL.md with a frontmatter block the indexer
understands.

Examples:
  skillhub create api-security-audit --description "Audit API endpoints for vulnerabilities"
  skillhub create release-notes --tools Read,Write`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "One-line description of the skill")
	createCmd.Flags().StringSliceVar(&createTools, "tools", scaffold.DefaultTools, "Allowed tools (comma-separated)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data := scaffold.NewData(args[0])
	if createDescription != "" {
		data.Description = createDescription
	}
	data.Tools = createTools

	result, err := scaffold.Generate(settings.SkillsDir, data)
	if err != nil {
		return err
	}

	printOK(out, "Created %s", displayPath(result.OutputDir))
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	for _, w := range result.Warnings {
		printWarn(out, "%s", w)
	}

	builder, err := newBuilder(cmd)
	if err != nil {
		return err
	}
	if rec, err := builder.Inspect(result.OutputDir); err == nil {
		fmt.Fprintf(out, "\nIndexed as %s in %s, tags: %s\n", rec.Name, rec.Category, strings.Join(rec.Tags, ", "))
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Edit %s\n", displayPath(filepath.Join(result.OutputDir, manifest.DescriptorFile)))
	fmt.Fprintf(out, "  2. Run %s to update the registry\n", commandHint("index"))
	fmt.Fprintf(out, "  3. Run %s to regenerate the README\n", commandHint("readme"))
	return nil
}
