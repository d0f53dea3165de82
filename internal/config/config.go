package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level clarify configuration.
type Config struct {
	FallbackScore int     `mapstructure:"fallback_score"`
	Latency       Latency `mapstructure:"latency"`
	Output        Output  `mapstructure:"output"`
}

// Latency defines per-operation simulated processing delays. All default to
// zero; values only slow responses down and never change analysis results.
// Rule patterns and deductions are deliberately not configurable, so the
// same text always produces the same report on every install.
type Latency struct {
	Analyze time.Duration `mapstructure:"analyze"`
	Rewrite time.Duration `mapstructure:"rewrite"`
	Extract time.Duration `mapstructure:"extract"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("fallback_score", DefaultFallbackScore)
	v.SetDefault("latency.analyze", DefaultLatency.Analyze)
	v.SetDefault("latency.rewrite", DefaultLatency.Rewrite)
	v.SetDefault("latency.extract", DefaultLatency.Extract)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
