package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is used for the config directory
	AppName = "charthub"

	// DefaultConfigFile is the config file name inside the config directory
	DefaultConfigFile = "config.yaml"

	DefaultHubURL      = "https://artifacthub.io/api/v1"
	DefaultHubTimeout  = "30s"
	DefaultHelmBinary  = "helm"
	DefaultNamespace   = "default"
	DefaultSearchLimit = 5
)

// Config represents the charthub settings file
type Config struct {
	Hub    HubConfig    `yaml:"hub" json:"hub" comment:"Artifact Hub API settings"`
	Helm   HelmConfig   `yaml:"helm" json:"helm" comment:"helm binary settings"`
	Search SearchConfig `yaml:"search" json:"search" comment:"Search output settings"`
}

// HubConfig configures the Artifact Hub client
type HubConfig struct {
	URL     string `yaml:"url" json:"url" comment:"Base URL of the Artifact Hub API"`
	Timeout string `yaml:"timeout" json:"timeout" comment:"Per-request timeout (Go duration, e.g. 30s)"`
}

// HelmConfig configures the helm facade
type HelmConfig struct {
	Binary           string `yaml:"binary" json:"binary" comment:"helm executable, looked up on PATH when not absolute"`
	DefaultNamespace string `yaml:"defaultNamespace" json:"defaultNamespace" comment:"Namespace used when --namespace is not given"`
}

// SearchConfig configures search output
type SearchConfig struct {
	Limit int `yaml:"limit" json:"limit" comment:"Number of results shown by search"`
}

// Default returns a configuration with every field set
func Default() *Config {
	return &Config{
		Hub: HubConfig{
			URL:     DefaultHubURL,
			Timeout: DefaultHubTimeout,
		},
		Helm: HelmConfig{
			Binary:           DefaultHelmBinary,
			DefaultNamespace: DefaultNamespace,
		},
		Search: SearchConfig{
			Limit: DefaultSearchLimit,
		},
	}
}

// GetTimeout returns the hub timeout, falling back to the default when unset
// or unparsable
func (h HubConfig) GetTimeout() time.Duration {
	if d, err := time.ParseDuration(h.Timeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultHubTimeout)
	return d
}

// DefaultPath returns $XDG_CONFIG_HOME/charthub/config.yaml, or
// ~/.config/charthub/config.yaml when XDG_CONFIG_HOME is unset
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, DefaultConfigFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName, DefaultConfigFile), nil
}

// Load reads and validates the configuration file. An empty path selects
// the default location, where a missing file yields Default(). A missing
// explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return nil, fmt.Errorf("configuration file not found: %s\n\nRun 'charthub init' to create a configuration file", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills fields a partial file left blank
func (c *Config) applyDefaults() {
	d := Default()
	if c.Hub.URL == "" {
		c.Hub.URL = d.Hub.URL
	}
	if c.Hub.Timeout == "" {
		c.Hub.Timeout = d.Hub.Timeout
	}
	if c.Helm.Binary == "" {
		c.Helm.Binary = d.Helm.Binary
	}
	if c.Helm.DefaultNamespace == "" {
		c.Helm.DefaultNamespace = d.Helm.DefaultNamespace
	}
}

// Save writes the configuration with field comments, creating the parent
// directory when needed
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	data, err := c.MarshalCommented()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Exists checks if a configuration file exists at the given path
func Exists(path string) bool {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return false
		}
		path = p
	}
	_, err := os.Stat(path)
	return err == nil
}
