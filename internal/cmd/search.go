package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/hub"
	"github.com/kanzi/charthub/internal/ui"
)

var (
	searchLimit  int
	searchOutput string
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search Artifact Hub for Helm charts",
	Long: `Search Artifact Hub for Helm charts matching a keyword.

Results are ordered by relevance and the top entries are shown
(search.limit in the config file, 5 by default).`,
	Example: `  # Find Redis charts
  charthub search redis

  # Show ten results as a table
  charthub search postgres --limit 10 -o table

  # Machine-readable output
  charthub search nginx -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "number of results to show (default from config, 5)")
	searchCmd.Flags().StringVarP(&searchOutput, "output", "o", outputText, "output format: text, table, json")
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	if err := checkOutputFormat(searchOutput, outputText, outputTable, outputJSON); err != nil {
		return err
	}
	if err := loadConfig(); err != nil {
		return err
	}

	limit := cfg.Search.Limit
	if cmd.Flags().Changed("limit") {
		if searchLimit < 1 {
			return fmt.Errorf("--limit must be at least 1")
		}
		limit = searchLimit
	}

	client, err := newHubClient()
	if err != nil {
		return err
	}

	var charts []hub.ChartSummary
	err = ui.RunSpinner(cmd.Context(), fmt.Sprintf("Searching Artifact Hub for %q", keyword), func(ctx context.Context) error {
		var err error
		charts, err = client.Search(ctx, keyword)
		return err
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	charts = hub.Top(charts, limit)
	logger.Debug("search complete", "keyword", keyword, "shown", len(charts))

	out := cmd.OutOrStdout()
	switch searchOutput {
	case outputJSON:
		if charts == nil {
			charts = []hub.ChartSummary{}
		}
		return writeJSON(out, charts)
	case outputTable:
		if len(charts) == 0 {
			printInfo(out, "No charts found for %q", keyword)
			return nil
		}
		return writeSearchTable(out, charts)
	default:
		if len(charts) == 0 {
			printInfo(out, "No charts found for %q", keyword)
			return nil
		}
		writeSearchText(out, charts)
		return nil
	}
}

func writeSearchText(w io.Writer, charts []hub.ChartSummary) {
	for _, c := range charts {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Name: %s\n", c.Name)
		fmt.Fprintf(w, "Repository: %s\n", c.Repository)
		fmt.Fprintf(w, "Description: %s\n", c.Description)
		fmt.Fprintf(w, "Version: %s\n", orNotAvailable(c.Version))
	}
}

func writeSearchTable(w io.Writer, charts []hub.ChartSummary) error {
	rows := make([][]string, len(charts))
	for i, c := range charts {
		rows[i] = []string{
			c.Repository + hub.ReferenceSeparator + c.Name,
			orNotAvailable(c.Version),
			ui.TruncateWithEllipsis(c.Description, ui.MaxColumnWidth-2),
		}
	}
	table, err := ui.RenderTable([]string{"CHART", "VERSION", "DESCRIPTION"}, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
