package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level pygrade configuration. Detector thresholds and the
// scoring formula are intentionally not configurable: scores must be
// reproducible across machines and runs.
type Config struct {
	OutputDir   string   `mapstructure:"output_dir"`
	Extensions  []string `mapstructure:"extensions"`
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
	Workers     int      `mapstructure:"workers"`
	Output      Output   `mapstructure:"output"`
}

// Output defines terminal output preferences.
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
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("extensions", DefaultExtensions)
	v.SetDefault("exclude_dirs", DefaultExcludeDirs)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

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

	cfg.OutputDir = expandPath(cfg.OutputDir)
	return &cfg, nil
}
