// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dummy-forge/internal/generator"
)

const (
	DefaultBaseName   = "50MB"
	DefaultTargetSize = "50MiB"
	envPrefix         = "DUMMYGEN"
)

// Config holds the dummygen settings
type Config struct {
	BaseName    string   `mapstructure:"base_name"`
	TargetSize  string   `mapstructure:"target_size"` // bytes or a size like "50MB"
	OutputDir   string   `mapstructure:"output_dir"`
	Formats     []string `mapstructure:"formats"`
	OnOversize  string   `mapstructure:"on_oversize"`
	JPEGQuality int      `mapstructure:"jpeg_quality"`
	LogFile     string   `mapstructure:"log_file"`
	Notify      bool     `mapstructure:"notify"`
	Output      string   `mapstructure:"output"`
	Verbose     bool     `mapstructure:"verbose"`
}

// Overrides carries command-line values; zero values leave the config untouched
type Overrides struct {
	BaseName    string
	TargetSize  string
	OutputDir   string
	Formats     string
	OnOversize  string
	JPEGQuality int
	LogFile     string
	Output      string
	Notify      bool
	Verbose     bool
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads configuration from defaults, an optional yaml file and DUMMYGEN_* environment variables.
// With an empty configPath, dummygen.yaml is looked up in the working directory and ~/.dummygen.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set default values
	v.SetDefault("base_name", DefaultBaseName)
	v.SetDefault("target_size", DefaultTargetSize)
	v.SetDefault("output_dir", "")
	v.SetDefault("formats", []string{})
	v.SetDefault("on_oversize", string(generator.PolicyKeep))
	v.SetDefault("jpeg_quality", 50)
	v.SetDefault("log_file", "")
	v.SetDefault("notify", false)
	v.SetDefault("output", "table")
	v.SetDefault("verbose", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("dummygen")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".dummygen"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	// Allow environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// ApplyCLIFlags applies command-line flags to override config values
func ApplyCLIFlags(config *Config, o Overrides) {
	if o.BaseName != "" {
		config.BaseName = o.BaseName
	}
	if o.TargetSize != "" {
		config.TargetSize = o.TargetSize
	}
	if o.OutputDir != "" {
		config.OutputDir = o.OutputDir
	}
	if o.Formats != "" {
		config.Formats = []string{o.Formats}
	}
	if o.OnOversize != "" {
		config.OnOversize = o.OnOversize
	}
	if o.JPEGQuality > 0 {
		config.JPEGQuality = o.JPEGQuality
	}
	if o.LogFile != "" {
		config.LogFile = o.LogFile
	}
	if o.Output != "" {
		config.Output = o.Output
	}
	if o.Notify {
		config.Notify = true
	}
	if o.Verbose {
		config.Verbose = true
	}
}

// Size returns the target size in bytes
func (c *Config) Size() (int64, error) {
	return ParseSize(c.TargetSize)
}

// Policy returns the parsed oversize policy
func (c *Config) Policy() (generator.OversizePolicy, error) {
	return generator.ParsePolicy(c.OnOversize)
}

// FormatList returns the formats to generate, all of them when none are configured
func (c *Config) FormatList() ([]generator.Format, error) {
	return generator.ParseFormats(c.Formats)
}

// Validate checks every field that can be wrong before any file is written
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseName) == "" {
		return generator.ErrEmptyBaseName
	}
	if _, err := c.Size(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.FormatList(); err != nil {
		return err
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", c.Output)
	}
	return nil
}

// GeneratorOptions maps the config onto generator options
func (c *Config) GeneratorOptions(log generator.Logger) (generator.Options, error) {
	policy, err := c.Policy()
	if err != nil {
		return generator.Options{}, err
	}
	return generator.Options{
		OutputDir:   c.OutputDir,
		Policy:      policy,
		JPEGQuality: c.JPEGQuality,
		Logger:      log,
	}, nil
}
