package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/hub"
	"github.com/kanzi/charthub/internal/ui"
)

var infoOutput string

var infoCmd = &cobra.Command{
	Use:   "info <repository/chart>",
	Short: "Show details of a chart on Artifact Hub",
	Long: `Show the name, description, latest version and repository URL of a
chart. The chart is identified as <repository>/<chart>, the same form
'charthub search' prints.`,
	Example: `  charthub info bitnami/redis

  charthub info bitnami/redis -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", outputText, "output format: text, json, yaml")
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(infoOutput, outputText, outputJSON, outputYAML); err != nil {
		return err
	}

	// parse first so a bad reference never reaches the network
	ref, err := hub.ParseReference(args[0])
	if err != nil {
		return err
	}

	if err := loadConfig(); err != nil {
		return err
	}
	client, err := newHubClient()
	if err != nil {
		return err
	}

	var details *hub.ChartDetails
	err = ui.RunSpinner(cmd.Context(), fmt.Sprintf("Fetching %s", ref), func(ctx context.Context) error {
		var err error
		details, err = client.GetDetails(ctx, ref)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to get chart details: %w", err)
	}

	out := cmd.OutOrStdout()
	switch infoOutput {
	case outputJSON:
		return writeJSON(out, details)
	case outputYAML:
		return writeYAML(out, details)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Name: %s\n", details.Name)
	fmt.Fprintf(out, "Description: %s\n", details.Description)
	fmt.Fprintf(out, "Version: %s\n", orNotAvailable(details.Version))
	fmt.Fprintf(out, "Repository URL: %s\n", details.RepositoryURL)
	return nil
}
