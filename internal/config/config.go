// Package config resolves kvshell settings. Values come, in order of
// precedence, from command line flags, KVSHELL_* environment variables,
// .env files, a YAML config file and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"kvshell/internal/logger"
	"kvshell/internal/output"
)

// EnvPrefix is the prefix of every environment variable kvshell reads.
const EnvPrefix = "KVSHELL"

// Setting keys, shared with the command line flags.
const (
	KeyPrompt   = "prompt"
	KeyColor    = "color"
	KeyOutput   = "output"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyTestMode = "test-mode"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the resolved settings.
type Config struct {
	Prompt   string `mapstructure:"prompt"`
	Color    string `mapstructure:"color"`
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
	TestMode bool   `mapstructure:"test-mode"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-"`
}

// NewViper returns a viper instance with kvshell defaults and environment
// binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPrompt, "kv> ")
	v.SetDefault(KeyColor, output.ColorAuto)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Dir returns the kvshell directory under the user config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "kvshell"), nil
}

// DefaultDotEnvPaths lists the .env files consulted when none are given:
// the working directory first, then the config directory.
func DefaultDotEnvPaths() []string {
	var paths []string
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, ".env"))
	}
	if dir, err := Dir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	return paths
}

// LoadDotEnv exports variables from the existing files among paths without
// overriding variables already set. Earlier files win.
func LoadDotEnv(paths []string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	logger.Debug("Loaded .env files", "paths", existing)
	return nil
}

// Load resolves the configuration. configFile names an explicit YAML file;
// when empty, config.yaml in the config directory is used if present.
// .env files are skipped in test mode.
func Load(v *viper.Viper, configFile string, dotEnvPaths []string) (*Config, error) {
	if !v.GetBool(KeyTestMode) {
		if err := LoadDotEnv(dotEnvPaths); err != nil {
			return nil, err
		}
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return nil
	}

	dir, err := Dir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Validate normalizes the color mode and checks the output format.
func (c *Config) Validate() error {
	color, err := output.ParseColorMode(c.Color)
	if err != nil {
		return err
	}
	c.Color = color

	switch strings.ToLower(c.Output) {
	case OutputText, "":
		c.Output = OutputText
	case OutputJSON:
		c.Output = OutputJSON
	default:
		return fmt.Errorf("invalid output format %q (want text or json)", c.Output)
	}
	return nil
}

// PrinterFor builds the console printer these settings describe.
func (c *Config) PrinterFor(w *os.File) *output.Printer {
	switch {
	case c.Output == OutputJSON:
		return output.NewPrinter(output.WithWriter(w), output.JSON())
	case c.TestMode:
		return output.NewPrinter(output.WithWriter(w), output.Plain())
	default:
		return output.NewConsolePrinter(w, c.Color)
	}
}
