package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ccw-labs/skillhub/internal/registry"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the registry file against its schema and invariants",
	Long: `Validate the registry file against the JSON Schema of the index format,
then check the invariants every built registry satisfies: unique ids in
ascending order, bounded descriptions and tags, known categories.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	name := displayPath(settings.IndexFile)

	issues, err := validateIndex(settings.IndexFile)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		printFail(out, "%s: %d issue(s)", name, len(issues))
		for _, issue := range issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return fmt.Errorf("%s is invalid", name)
	}

	printOK(out, "%s is valid", name)
	return nil
}

// validateIndex returns the schema violations of the registry file, or its
// invariant violations when the schema is satisfied. The error return is for
// files that cannot be read or decoded.
func validateIndex(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s; run %s first", registry.ErrIndexNotFound, path, commandHint("index"))
		}
		return nil, fmt.Errorf("reading index: %w", err)
	}

	result, err := registry.ValidateJSON(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		issues := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			issues[i] = issue.String()
		}
		return issues, nil
	}

	reg, err := registry.LoadExisting(path)
	if err != nil {
		return nil, err
	}
	if err := registry.Check(reg); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			issues := make([]string, len(merr.Errors))
			for i, e := range merr.Errors {
				issues[i] = e.Error()
			}
			return issues, nil
		}
		return []string{err.Error()}, nil
	}
	return nil, nil
}
