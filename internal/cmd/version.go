package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/ui"
	"github.com/kanzi/charthub/internal/version"
)

var versionCheck bool

// versionChecker is replaced in tests
var versionChecker = version.NewChecker

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the charthub version",
	Long: `Print the charthub version and commit.

With --check, the latest GitHub release is looked up (cached for 24h)
and compared with this build.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "charthub %s (commit %s)\n", Version, Commit)

	if !versionCheck {
		return nil
	}

	res, err := versionChecker().Check(cmd.Context(), Version)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	logger.Debug("version check", "latest", res.LatestVersion, "cached", res.FromCache)

	if res.UpdateAvailable {
		fmt.Fprintln(out, updateNotice(res))
		return nil
	}
	printSuccess(out, "You are running the latest version")
	return nil
}

// updateNotice boxes the current and latest versions with the release link
func updateNotice(res *version.CheckResult) string {
	lines := []string{
		ui.KeyValue("Current", res.CurrentVersion),
		ui.KeyValue("Latest", res.LatestVersion),
	}
	if res.ReleaseURL != "" {
		lines = append(lines, ui.KeyValue("Release", res.ReleaseURL))
	}
	return ui.Box(ui.IconWarning+" Update available", strings.Join(lines, "\n"))
}
