// Package config loads tool configuration from file, environment and
// defaults. The profile directory resolution order is: explicit --source
// flag, config file / PROVKIT_PROFILE_DIR, then the platform install
// location under the user's home.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

type Config struct {
	ProfileDir string `mapstructure:"profile_dir"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	Workers    int    `mapstructure:"workers"`
}

func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Workers:   runtime.NumCPU(),
	}
}

// Load reads configuration from cfgFile, or from provkit.yaml in the user
// config directory when cfgFile is empty. A missing config file is not an
// error; environment variables (PROVKIT_*) override file values.
func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("provkit")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "provkit"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PROVKIT")
	v.AutomaticEnv()

	v.SetDefault("profile_dir", cfg.ProfileDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("workers", cfg.Workers)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicitly named file must exist and parse.
			if cfgFile != "" || !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultProfileDir returns the directory Xcode installs provisioning
// profiles into.
func DefaultProfileDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, "Library", "MobileDevice", "Provisioning Profiles"), nil
}

// ResolveProfileDir picks the profile directory: the explicit flag value if
// set, otherwise the configured directory, otherwise the platform default.
func (c *Config) ResolveProfileDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if c.ProfileDir != "" {
		return c.ProfileDir, nil
	}
	return DefaultProfileDir()
}
