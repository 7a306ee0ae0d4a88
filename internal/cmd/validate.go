package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate the charthub configuration file.

The validation includes:
  - YAML syntax
  - hub.url is an absolute http(s) URL
  - hub.timeout is a positive duration
  - helm.binary is set and helm.defaultNamespace is a valid namespace
  - search.limit is at least 1

All problems are reported together.`,
	Example: `  # Validate the default config file
  charthub validate

  # Validate a specific config file
  charthub validate --config ./charthub.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	if !config.Exists(configPath) {
		return fmt.Errorf("configuration file not found: %s\n\nRun 'charthub init' to create a configuration file", configPath)
	}

	if _, err := config.Load(configPath); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Configuration is valid: %s", configPath)
	return nil
}
