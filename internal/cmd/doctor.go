package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/config"
	"github.com/kanzi/charthub/internal/doctor"
	"github.com/kanzi/charthub/internal/ui"
)

var (
	doctorQuiet   bool
	doctorTimeout time.Duration
)

// suggestionWidth wraps fix hints under each failed check
const suggestionWidth = 64

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system requirements and prerequisites",
	Long: `Run pre-flight checks to verify that charthub can do its job.

This command checks:
  - the helm binary is installed and runs (required)
  - the configuration file loads and validates (required)
  - kubectl is available (optional)
  - the Artifact Hub API is reachable (optional)`,
	Example: `  # Run all checks
  charthub doctor

  # Only show problems
  charthub doctor --quiet`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVarP(&doctorQuiet, "quiet", "q", false, "only show failures")
	doctorCmd.Flags().DurationVar(&doctorTimeout, "timeout", 30*time.Second, "timeout for all checks")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), doctorTimeout)
	defer cancel()

	// a broken config is reported by its own check; probe with defaults
	if err := loadConfig(); err != nil {
		cfg = config.Default()
		if hubURL != "" {
			cfg.Hub.URL = hubURL
		}
	}

	checks := doctor.Checks{
		Helm:       newHelmClient(),
		ConfigPath: cfgFile,
	}
	if hubClient, err := newHubClient(); err == nil {
		checks.Hub = hubClient
	}

	results := checks.RunAll(ctx)
	out := cmd.OutOrStdout()

	if !doctorQuiet {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.SmallBanner())
		fmt.Fprintln(out, ui.Divider())
	}

	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}

	writeCheckSection(out, "Required", results, true)
	writeCheckSection(out, "Optional", results, false)

	fmt.Fprintln(out)
	switch {
	case doctor.Failed(results):
		return fmt.Errorf("%d/%d checks passed; required checks failed", passed, len(results))
	case passed < len(results):
		printWarn(out, "%d/%d checks passed", passed, len(results))
	default:
		printSuccess(out, "All %d checks passed", passed)
	}
	return nil
}

// writeCheckSection prints the checks whose Required flag matches required
func writeCheckSection(out io.Writer, title string, results []doctor.CheckResult, required bool) {
	var shown []doctor.CheckResult
	for _, r := range results {
		if r.Required != required || (doctorQuiet && r.Passed) {
			continue
		}
		shown = append(shown, r)
	}
	if len(shown) == 0 {
		return
	}

	fmt.Fprintln(out, ui.Header(title))
	for _, r := range shown {
		fmt.Fprintln(out, "  "+ui.CheckLine(r.Passed, r.Required, r.Name, r.Message))
		if r.Details != "" {
			fmt.Fprintf(out, "    %s\n", ui.Muted("%s", r.Details))
		}
		if !r.Passed && r.Suggestion != "" {
			for i, line := range strings.Split(ui.WrapText(r.Suggestion, suggestionWidth), "\n") {
				marker := "→"
				if i > 0 {
					marker = " "
				}
				fmt.Fprintf(out, "    %s\n", ui.Muted("%s %s", marker, line))
			}
		}
	}
}
