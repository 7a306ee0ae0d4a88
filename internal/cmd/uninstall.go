package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/helm"
	"github.com/kanzi/charthub/internal/ui"
)

var uninstallNamespace string

var uninstallCmd = &cobra.Command{
	Use:     "uninstall <release>",
	Short:   "Uninstall a release",
	Example: `  charthub uninstall cache --namespace data`,
	Args:    cobra.ExactArgs(1),
	RunE:    runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVarP(&uninstallNamespace, "namespace", "n", "", "release namespace (default from config, \"default\")")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	req := helm.UninstallRequest{
		ReleaseName: args[0],
		Namespace:   namespaceOrDefault(uninstallNamespace),
	}
	if err := req.Validate(); err != nil {
		return err
	}

	client := newHelmClient()

	var output string
	err := ui.RunSpinner(cmd.Context(), fmt.Sprintf("Uninstalling %s from %s", req.ReleaseName, req.Namespace), func(ctx context.Context) error {
		var err error
		output, err = client.Uninstall(ctx, req)
		return err
	})
	if err != nil {
		return err
	}

	logger.Debug("helm output", "output", output)
	printSuccess(cmd.OutOrStdout(), "Successfully uninstalled %s", req.ReleaseName)
	return nil
}
