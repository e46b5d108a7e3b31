package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ccw-labs/skillhub/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed skills",
	Long:  `List the skills recorded in the registry file.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (case-insensitive)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// loadIndexed returns the registry for read-only commands. ok is false when
// no registry file exists yet; a hint has been printed in that case.
func loadIndexed(cmd *cobra.Command) (reg *registry.Registry, ok bool, err error) {
	reg, err = registry.LoadExisting(settings.IndexFile)
	if errors.Is(err, registry.ErrIndexNotFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "No skills indexed yet. Run %s.\n", commandHint("index"))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return reg, true, nil
}

func runList(cmd *cobra.Command, args []string) error {
	reg, ok, err := loadIndexed(cmd)
	if !ok {
		return err
	}

	var records []registry.Record
	for _, r := range reg.Skills {
		if listCategory != "" && !strings.EqualFold(r.Category, listCategory) {
			continue
		}
		records = append(records, r)
	}

	if len(records) == 0 {
		if listCategory != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No skills matching --category=%s\n", listCategory)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No skills indexed yet.")
		}
		return nil
	}

	if listJSON {
		return printRecordsJSON(cmd, records)
	}
	return printRecordsTable(cmd, records)
}

func printRecordsTable(cmd *cobra.Command, records []registry.Record) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tVERSION\tDESCRIPTION")
	for _, r := range records {
		desc := []rune(r.Description)
		if len(desc) > 60 {
			desc = append(desc[:57], []rune("...")...)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Category, r.Version, string(desc))
	}
	return w.Flush()
}

func printRecordsJSON(cmd *cobra.Command, records []registry.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
