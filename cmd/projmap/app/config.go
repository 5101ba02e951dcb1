// Package app provides configuration and logger lifecycle for the
// projmap CLI, centralizing precedence between flags, environment
// variables, .env files, and the config file.
package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from various
// sources including config files, environment variables, and .env files.
type Config struct {
	// Connection
	Server     string
	Site       string
	TokenName  string
	TokenValue string
	APIVersion string

	// Output
	Output string
	Format string
	Bare   bool

	// Global flags
	Verbose bool
	Quiet   bool

	// Config file
	ConfigFile string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of
// precedence:
//  1. Command-line flags (handled by cobra, bound into viper)
//  2. Environment variables (TABLEAU_SERVER, TABLEAU_PAT_NAME, ...)
//  3. .env files
//  4. Config file (~/.projmap.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TABLEAU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	bindCredentialKeys()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".projmap")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Server:     viper.GetString("server"),
		Site:       viper.GetString("site"),
		TokenName:  viper.GetString("token-name"),
		TokenValue: viper.GetString("token-value"),
		APIVersion: viper.GetString("api-version"),

		Output: viper.GetString("output"),
		Format: viper.GetString("format"),
		Bare:   viper.GetBool("bare"),

		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),

		ConfigFile: viper.ConfigFileUsed(),

		LogLevel:  viper.GetString("log-level"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Environment fallbacks for credentials kept out of flags
	if config.TokenName == "" {
		config.TokenName = os.Getenv("TABLEAU_PAT_NAME")
	}
	if config.TokenValue == "" {
		config.TokenValue = os.Getenv("TABLEAU_PAT_VALUE")
	}
	if config.Server == "" {
		config.Server = os.Getenv("TABLEAU_SERVER")
	}
	if config.Site == "" {
		config.Site = os.Getenv("TABLEAU_SITE")
	}

	// Defaults
	if config.Output == "" {
		config.Output = "output/projects.json"
	}
	if config.Format == "" {
		config.Format = "json"
	}

	return config, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindCredentialKeys explicitly binds credential environment variables
// to Viper.
func bindCredentialKeys() {
	keys := []string{
		"TABLEAU_SERVER",
		"TABLEAU_SITE",
		"TABLEAU_PAT_NAME",
		"TABLEAU_PAT_VALUE",
	}

	for _, key := range keys {
		_ = viper.BindEnv(key)
	}
}

// getEnvOrDefault returns the environment variable value or the default
// if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
