package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/ccw-labs/skillhub/internal/readme"
	"github.com/ccw-labs/skillhub/internal/registry"
	"github.com/spf13/cobra"
)

var (
	checkIndex  bool
	checkFresh  bool
	checkReadme bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkIndex, "check-index", false, "Validate the registry file")
	doctorCmd.Flags().BoolVar(&checkFresh, "check-fresh", false, "Verify the registry matches the skills directory")
	doctorCmd.Flags().BoolVar(&checkReadme, "check-readme", false, "Verify README.md matches the registry")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the skill hub",
	Long: `Run diagnostic checks on the hub: the skills directory exists, the registry
file is valid and up to date, and the README was generated from it.

Exits non-zero when any check fails, so it can gate CI.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		all := !checkIndex && !checkFresh && !checkReadme

		failed := 0
		if all {
			failed += runSkillsDirCheck(out)
		}
		if all || checkIndex {
			failed += runIndexCheck(out)
		}
		if all || checkFresh {
			failed += runFreshnessCheck(cmd, out)
		}
		if all || checkReadme {
			failed += runReadmeCheck(out)
		}

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func runSkillsDirCheck(w io.Writer) int {
	info, err := os.Stat(settings.SkillsDir)
	if err != nil || !info.IsDir() {
		printFail(w, "Skills directory %s not found", displayPath(settings.SkillsDir))
		return 1
	}
	printOK(w, "Skills directory %s", displayPath(settings.SkillsDir))
	return 0
}

func runIndexCheck(w io.Writer) int {
	name := displayPath(settings.IndexFile)
	issues, err := validateIndex(settings.IndexFile)
	if err != nil {
		printFail(w, "%v", err)
		return 1
	}
	if len(issues) > 0 {
		printFail(w, "%s: %d issue(s)", name, len(issues))
		for _, issue := range issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
		return 1
	}
	printOK(w, "%s is valid", name)
	return 0
}

// runFreshnessCheck rebuilds the registry in memory and compares its records
// with the stored ones. The timestamp is not compared.
func runFreshnessCheck(cmd *cobra.Command, w io.Writer) int {
	name := displayPath(settings.IndexFile)
	stored, err := registry.LoadExisting(settings.IndexFile)
	if err != nil {
		printFail(w, "%v", err)
		return 1
	}

	builder, err := newBuilder(cmd)
	if err != nil {
		printFail(w, "%v", err)
		return 1
	}
	fresh, err := builder.Build(settings.SkillsDir, stored)
	if err != nil {
		printFail(w, "%v", err)
		return 1
	}

	if reflect.DeepEqual(stored.Skills, fresh.Skills) {
		printOK(w, "%s is up to date (%d skills)", name, len(fresh.Skills))
		return 0
	}

	printFail(w, "%s is out of date; run %s", name, commandHint("index"))
	printChanges(w, registry.Diff(stored, fresh))
	return 1
}

func runReadmeCheck(w io.Writer) int {
	name := displayPath(settings.ReadmeFile)
	reg, err := registry.LoadExisting(settings.IndexFile)
	if err != nil {
		if errors.Is(err, registry.ErrIndexNotFound) {
			printWarn(w, "Skipping %s: no registry file", name)
			return 0
		}
		printFail(w, "%v", err)
		return 1
	}

	want, err := readme.Render(reg, readmeOptions())
	if err != nil {
		printFail(w, "%v", err)
		return 1
	}
	got, err := os.ReadFile(settings.ReadmeFile)
	if err != nil || string(got) != want {
		printFail(w, "%s is out of date; run %s", name, commandHint("readme"))
		return 1
	}
	printOK(w, "%s is up to date", name)
	return 0
}
