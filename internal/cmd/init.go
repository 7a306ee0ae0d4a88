package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/kanzi/charthub/internal/config"
	"github.com/kanzi/charthub/internal/ui"
)

var (
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a charthub configuration file",
	Long: `Create a configuration file with defaults and a comment above every
setting. The file is written to --config, or to
$XDG_CONFIG_HOME/charthub/config.yaml when no path is given.

With --interactive each setting is prompted for.`,
	Example: `  # Write the default config
  charthub init

  # Overwrite an existing file
  charthub init --force

  # Answer prompts for each setting
  charthub init --interactive`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing configuration file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "prompt for each setting")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	if config.Exists(configPath) && !initForce {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	newCfg := config.Default()
	if initInteractive {
		if !ui.IsTTY() {
			return errors.New("--interactive requires a terminal")
		}
		if err := promptConfig(newCfg); err != nil {
			return err
		}
	}

	if err := newCfg.Validate(); err != nil {
		return err
	}
	if err := newCfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Created %s", configPath)
	printStep(out, "Next steps:")
	printStep(out, "  1. Run 'charthub doctor' to check helm and hub access")
	printStep(out, "  2. Run 'charthub search <keyword>' to find a chart")
	return nil
}

// promptConfig asks for each setting, defaulting to the current value
func promptConfig(c *config.Config) error {
	limit := strconv.Itoa(c.Search.Limit)

	questions := []*survey.Question{
		{
			Name:     "hubURL",
			Prompt:   &survey.Input{Message: "Artifact Hub API URL:", Default: c.Hub.URL, Help: config.CommentFor("hub.url")},
			Validate: survey.Required,
		},
		{
			Name:   "timeout",
			Prompt: &survey.Input{Message: "Request timeout:", Default: c.Hub.Timeout, Help: config.CommentFor("hub.timeout")},
			Validate: func(ans interface{}) error {
				_, err := time.ParseDuration(fmt.Sprint(ans))
				return err
			},
		},
		{
			Name:     "binary",
			Prompt:   &survey.Input{Message: "helm binary:", Default: c.Helm.Binary, Help: config.CommentFor("helm.binary")},
			Validate: survey.Required,
		},
		{
			Name:   "namespace",
			Prompt: &survey.Input{Message: "Default namespace:", Default: c.Helm.DefaultNamespace, Help: config.CommentFor("helm.defaultNamespace")},
		},
		{
			Name:   "limit",
			Prompt: &survey.Input{Message: "Search results to show:", Default: limit, Help: config.CommentFor("search.limit")},
			Validate: func(ans interface{}) error {
				n, err := strconv.Atoi(fmt.Sprint(ans))
				if err != nil || n < 1 {
					return errors.New("enter a number of at least 1")
				}
				return nil
			},
		},
	}

	answers := struct {
		HubURL    string `survey:"hubURL"`
		Timeout   string `survey:"timeout"`
		Binary    string `survey:"binary"`
		Namespace string `survey:"namespace"`
		Limit     string `survey:"limit"`
	}{}

	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	c.Hub.URL = answers.HubURL
	c.Hub.Timeout = answers.Timeout
	c.Helm.Binary = answers.Binary
	c.Helm.DefaultNamespace = answers.Namespace
	c.Search.Limit, _ = strconv.Atoi(answers.Limit)
	return nil
}
