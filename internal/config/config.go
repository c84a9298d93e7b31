package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRegistryURL       = "registry_url"
	KeyComponentsBaseURL = "components_base_url"
	KeyLogLevel          = "log_level"
)

// defaults holds every known key with its default value.
func defaults() map[string]string {
	return map[string]string{
		KeyRegistryURL:       branding.RegistryURL(),
		KeyComponentsBaseURL: branding.ComponentsBaseURL(),
		KeyLogLevel:          "warn",
	}
}

// Keys returns the known setting keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults()))
	for k := range defaults() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known setting.
func IsKey(key string) bool {
	_, ok := defaults()[key]
	return ok
}

// Dir returns the path to the config directory (~/.nocta/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment. A
// .env file in the working directory is loaded into the environment first;
// variables already set take precedence over it.
func Load() {
	_ = godotenv.Load()

	for k, v := range defaults() {
		viper.SetDefault(k, v)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown setting %q (known: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// RegistryURL returns the registry document URL.
func RegistryURL() string { return Get(KeyRegistryURL) }

// ComponentsBaseURL returns the base URL component files are fetched from.
func ComponentsBaseURL() string { return Get(KeyComponentsBaseURL) }

// LogLevel returns the configured log level.
func LogLevel() string { return Get(KeyLogLevel) }
