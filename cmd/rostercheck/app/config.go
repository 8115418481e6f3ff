package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/rostercheck/internal/config"
	"github.com/agentstation/rostercheck/pkg/constants"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/records"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Reconciliation configuration
	Mapping         records.Mapping
	MasterLabel     string
	ValidationLabel string
	Strategy        string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.rostercheck.yaml or ./.rostercheck.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(constants.ConfigName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("file", "cannot read "+configFile, err)
		}
	}

	c := &Config{
		Verbose:    viper.GetBool("verbose"),
		Quiet:      viper.GetBool("quiet"),
		NoColor:    viper.GetBool("no-color"),
		Format:     viper.GetString("format"),
		ConfigFile: viper.ConfigFileUsed(),

		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}
	c.refresh()

	return c, nil
}

// LoadFile reads an explicit config file, as given with --config, and
// refreshes the values that come from it.
func (c *Config) LoadFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return errors.NewConfigError("file", "cannot read "+path, err)
	}
	c.ConfigFile = viper.ConfigFileUsed()
	c.refresh()
	return nil
}

// refresh reads the reconciliation settings from Viper.
func (c *Config) refresh() {
	c.Mapping = config.MappingFromViper(nil)
	c.MasterLabel = viper.GetString("labels.master")
	c.ValidationLabel = viper.GetString("labels.validation")
	c.Strategy = viper.GetString("strategy")
}

// labels returns the document labels with defaults for unset ones.
func (c *Config) labels() (string, string) {
	master, validation := c.MasterLabel, c.ValidationLabel
	if master == "" {
		master = constants.MasterLabel
	}
	if validation == "" {
		validation = constants.ValidationLabel
	}
	return master, validation
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	c.LogLevel = logLevel
}

// loadEnvFiles loads environment variables from .env files.
// Values already present in the environment are kept.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
