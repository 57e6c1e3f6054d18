// Package config loads frain CLI settings from a config file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/frainlabs/frain/pkg/workspace"
)

// FileName is the config file name searched for, without extension.
const FileName = "frain"

// Config holds all CLI settings.
type Config struct {
	WorkspaceID string       `mapstructure:"workspace_id"`
	APIKey      string       `mapstructure:"api_key"`
	APISecret   string       `mapstructure:"api_secret"`
	Log         LogConfig    `mapstructure:"log"`
	Output      OutputConfig `mapstructure:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig holds defaults for the build command.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Workspace returns the credentials as a workspace configuration.
func (c *Config) Workspace() workspace.Config {
	return workspace.Config{
		WorkspaceID: c.WorkspaceID,
		APIKey:      c.APIKey,
		APISecret:   c.APISecret,
	}
}

// String returns a safe representation with the API key and secret masked.
func (c Config) String() string {
	return fmt.Sprintf("Config{WorkspaceID:%s, APIKey:%s, APISecret:%s, Log:%s, Output:%s}",
		c.WorkspaceID, mask(c.APIKey), mask(c.APISecret), c.Log.Level, c.Output.Format)
}

// mask shows the first and last 4 characters.
func mask(s string) string {
	const visible = 4
	if len(s) <= visible*2 {
		return "***"
	}
	return s[:visible] + "****" + s[len(s)-visible:]
}

// Load reads configuration. If file is non-empty it must exist; otherwise
// frain.yaml is looked up in the working directory and the user config
// directory, and a missing file is not an error. FRAIN_* environment
// variables override file values.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("workspace_id", "")
	v.SetDefault("api_key", "")
	v.SetDefault("api_secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", "json")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(configDir(), "frain"))
	}

	v.SetEnvPrefix("FRAIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings that do not depend on a workspace.
// Credentials are checked when the workspace is created.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	switch c.Output.Format {
	case "json", "dot":
	default:
		return fmt.Errorf("output.format must be json or dot (got %q)", c.Output.Format)
	}
	return nil
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}
