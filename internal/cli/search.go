package cli

import (
	"fmt"
	"strings"

	"github.com/ccw-labs/skillhub/internal/registry"
	"github.com/spf13/cobra"
)

var (
	searchCategory  string
	searchTagFilter string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed skills",
	Long: `Search the registry for skills.

The query matches against ids, names, descriptions and paths (case-insensitive
substring). Use --category to filter by category and --tag to filter by tags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Filter by category (case-insensitive)")
	searchCmd.Flags().StringVar(&searchTagFilter, "tag", "", "Filter by tags (comma-separated, matches any)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	reg, ok, err := loadIndexed(cmd)
	if !ok {
		return err
	}

	var filterTags []string
	if searchTagFilter != "" {
		for _, t := range strings.Split(searchTagFilter, ",") {
			tag := strings.TrimSpace(t)
			if tag != "" {
				filterTags = append(filterTags, strings.ToLower(tag))
			}
		}
	}

	var records []registry.Record
	for _, r := range reg.Skills {
		if matchesSearch(r, query, searchCategory, filterTags) {
			records = append(records, r)
		}
	}

	if len(records) == 0 {
		msg := "No skills found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		if searchCategory != "" {
			msg += fmt.Sprintf(" with --category=%s", searchCategory)
		}
		if searchTagFilter != "" {
			msg += fmt.Sprintf(" with --tag=%s", searchTagFilter)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if searchJSON {
		return printRecordsJSON(cmd, records)
	}
	return printRecordsTable(cmd, records)
}

// matchesSearch returns true if the record matches all provided filters.
// All filters are AND-combined: the record must match every non-empty filter.
func matchesSearch(r registry.Record, query, category string, filterTags []string) bool {
	if category != "" && !strings.EqualFold(r.Category, category) {
		return false
	}

	// Filter by tags (match any).
	if len(filterTags) > 0 && !matchesAnyTag(r.Tags, filterTags) {
		return false
	}

	if query != "" {
		q := strings.ToLower(query)
		fields := []string{r.ID, r.Name, r.Description, r.Path}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}

	return true
}

// matchesAnyTag returns true if any of the record's tags match any of the
// filter tags. Comparison is case-insensitive.
func matchesAnyTag(tags []string, filterTags []string) bool {
	for _, ft := range filterTags {
		for _, t := range tags {
			if strings.EqualFold(t, ft) {
				return true
			}
		}
	}
	return false
}
