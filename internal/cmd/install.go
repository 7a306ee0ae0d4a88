package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/helm"
	"github.com/kanzi/charthub/internal/ui"
)

var (
	installReleaseName     string
	installNamespace       string
	installVersion         string
	installValuesFiles     []string
	installSetValues       []string
	installCreateNamespace bool
)

var installCmd = &cobra.Command{
	Use:   "install <chart>",
	Short: "Install a chart as a new release",
	Long: `Install a chart with helm. The chart is passed to helm unchanged: a
repository/chart reference (the repository must already be known to helm,
see 'charthub add-repo'), an oci:// URL, a chart directory or a packaged
.tgz archive.

--version accepts an exact version or a semver constraint. Values files
and --set expressions are passed to helm in the order given.`,
	Example: `  # Install the latest Redis chart
  charthub install bitnami/redis --release-name cache

  # Pin a version in a dedicated namespace
  charthub install bitnami/redis --release-name cache \
    --namespace data --create-namespace --version 18.1.0

  # Install from an OCI registry
  charthub install oci://registry-1.docker.io/bitnamicharts/redis --release-name cache

  # Override values
  charthub install bitnami/redis --release-name cache \
    -f ./values/redis.yaml --set auth.enabled=false`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installReleaseName, "release-name", "r", "", "name of the release (required)")
	installCmd.Flags().StringVarP(&installNamespace, "namespace", "n", "", "target namespace (default from config, \"default\")")
	installCmd.Flags().StringVar(&installVersion, "version", "", "chart version or constraint (latest if omitted)")
	installCmd.Flags().StringArrayVarP(&installValuesFiles, "values", "f", nil, "values file (can be specified multiple times)")
	installCmd.Flags().StringArrayVar(&installSetValues, "set", nil, "set a value, key=value (can be specified multiple times)")
	installCmd.Flags().BoolVar(&installCreateNamespace, "create-namespace", false, "create the namespace if it does not exist")

	_ = installCmd.MarkFlagRequired("release-name")
}

func runInstall(cmd *cobra.Command, args []string) error {
	chart := args[0]

	if err := loadConfig(); err != nil {
		return err
	}

	req := helm.InstallRequest{
		Chart:           chart,
		ReleaseName:     installReleaseName,
		Namespace:       namespaceOrDefault(installNamespace),
		Version:         installVersion,
		ValuesFiles:     installValuesFiles,
		SetValues:       installSetValues,
		CreateNamespace: installCreateNamespace,
	}
	// fail before the spinner starts
	if err := req.Validate(); err != nil {
		return err
	}

	client := newHelmClient()

	var output string
	title := fmt.Sprintf("Installing %s as %s in %s", chart, req.ReleaseName, req.Namespace)
	err := ui.RunSpinner(cmd.Context(), title, func(ctx context.Context) error {
		var err error
		output, err = client.Install(ctx, req)
		return err
	})
	if err != nil {
		return err
	}

	logger.Debug("helm output", "output", output)
	printSuccess(cmd.OutOrStdout(), "Successfully installed %s as %s", chart, req.ReleaseName)
	return nil
}
