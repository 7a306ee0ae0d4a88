package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/ui"
)

var addRepoCmd = &cobra.Command{
	Use:   "add-repo <name> <url>",
	Short: "Add a Helm chart repository and refresh indexes",
	Long: `Register a chart repository with helm ('helm repo add') and refresh
all repository indexes ('helm repo update'). The refresh is skipped if
the add fails.`,
	Example: `  charthub add-repo bitnami https://charts.bitnami.com/bitnami`,
	Args:    cobra.ExactArgs(2),
	RunE:    runAddRepo,
}

func runAddRepo(cmd *cobra.Command, args []string) error {
	name, repoURL := args[0], args[1]

	if u, err := url.Parse(repoURL); err != nil || u.Scheme == "" {
		return fmt.Errorf("invalid repository URL %q", repoURL)
	}

	if err := loadConfig(); err != nil {
		return err
	}
	client := newHelmClient()

	var output string
	err := ui.RunSpinner(cmd.Context(), fmt.Sprintf("Adding repository %s", name), func(ctx context.Context) error {
		var err error
		output, err = client.AddRepository(ctx, name, repoURL)
		return err
	})
	if err != nil {
		return err
	}

	logger.Debug("helm output", "output", output)
	printSuccess(cmd.OutOrStdout(), "Added repository %s (%s)", name, repoURL)
	return nil
}
