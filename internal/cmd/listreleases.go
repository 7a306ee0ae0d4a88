package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/helm"
)

var (
	listNamespace     string
	listAllNamespaces bool
)

var listReleasesCmd = &cobra.Command{
	Use:   "list-releases",
	Short: "List installed releases",
	Long: `List releases with 'helm list' and print helm's table unchanged.

Without --namespace the scope is helm's current context namespace.`,
	Example: `  charthub list-releases
  charthub list-releases --namespace data
  charthub list-releases -A`,
	Args: cobra.NoArgs,
	RunE: runListReleases,
}

func init() {
	listReleasesCmd.Flags().StringVarP(&listNamespace, "namespace", "n", "", "only list releases in this namespace")
	listReleasesCmd.Flags().BoolVarP(&listAllNamespaces, "all-namespaces", "A", false, "list releases across all namespaces")
	listReleasesCmd.MarkFlagsMutuallyExclusive("namespace", "all-namespaces")
}

func runListReleases(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	// no spinner: the table goes to stdout verbatim
	table, err := newHelmClient().ListReleases(cmd.Context(), helm.ListRequest{
		Namespace:     listNamespace,
		AllNamespaces: listAllNamespaces,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), table)
	return err
}
