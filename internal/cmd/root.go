package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/config"
	"github.com/kanzi/charthub/internal/helm"
	"github.com/kanzi/charthub/internal/hub"
	"github.com/kanzi/charthub/internal/ui"
)

// Build-time values, set by main
var (
	Version = "dev"
	Commit  = "none"
)

var (
	// Global flags
	cfgFile  string
	verbose  bool
	logLevel string
	hubURL   string

	// Global config, loaded on demand
	cfg *config.Config

	logger = log.New(io.Discard)

	// helmRunner executes helm; nil means os/exec. Tests substitute a fake.
	helmRunner helm.Runner
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "charthub",
	Short: "Search Artifact Hub and manage Helm charts",
	Long: `charthub finds Helm charts on Artifact Hub and drives the local helm
binary to add repositories, install charts, and manage releases.

Search and info talk to the Artifact Hub API directly. Everything that
touches a cluster is delegated to helm, so helm's kubeconfig and context
rules apply unchanged.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// -V for verbose to avoid conflict with fang's -v/--version
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/charthub/config.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "verbose output (same as --log-level debug)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	RootCmd.PersistentFlags().StringVar(&hubURL, "hub-url", "", "Artifact Hub API base URL (overrides hub.url)")

	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(addRepoCmd)
	RootCmd.AddCommand(installCmd)
	RootCmd.AddCommand(listReleasesCmd)
	RootCmd.AddCommand(uninstallCmd)
	RootCmd.AddCommand(doctorCmd)
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(validateCmd)
}

// setupLogger configures the stderr logger from --verbose and --log-level
// and points progress output at the same stream
func setupLogger(cmd *cobra.Command, args []string) error {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	if logLevel != "" {
		parsed, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		level = parsed
	}

	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "charthub",
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
	})

	// progress shares stderr with the logger; stdout is for results
	ui.SetDefaultOutput(cmd.ErrOrStderr())
	return nil
}

// loadConfig loads the configuration file and applies flag overrides
func loadConfig() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if hubURL != "" {
		loaded.Hub.URL = hubURL
	}
	cfg = loaded
	logger.Debug("configuration loaded", "path", cfgFile, "hub", cfg.Hub.URL, "helm", cfg.Helm.Binary)
	return nil
}

// newHubClient builds an Artifact Hub client from the loaded config
func newHubClient() (*hub.Client, error) {
	return hub.New(cfg.Hub.URL,
		hub.WithTimeout(cfg.Hub.GetTimeout()),
		hub.WithUserAgent("charthub/"+Version),
		hub.WithLogger(logger),
	)
}

// newHelmClient builds a helm facade from the loaded config
func newHelmClient() *helm.Client {
	return helm.NewClient(helmRunner,
		helm.WithBinary(cfg.Helm.Binary),
		helm.WithLogger(logger),
	)
}

// namespaceOrDefault falls back to the configured default namespace
func namespaceOrDefault(ns string) string {
	if ns != "" {
		return ns
	}
	return cfg.Helm.DefaultNamespace
}

// Helper print functions
func printSuccess(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, ui.Success(format, a...))
}

func printWarn(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, ui.Warning(format, a...))
}

func printInfo(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, ui.Info(format, a...))
}

func printStep(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, ui.Step(format, a...))
}
