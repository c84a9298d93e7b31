// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only needs to edit that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName           string `yaml:"cli_name"`
	DisplayName       string `yaml:"display_name"`
	Description       string `yaml:"description"`
	HomeDir           string `yaml:"home_dir"`
	EnvPrefix         string `yaml:"env_prefix"`
	GoModule          string `yaml:"go_module"`
	ConfigFile        string `yaml:"config_file"`
	TokenNamespace    string `yaml:"token_namespace"`
	RegistryURL       string `yaml:"registry_url"`
	ComponentsBaseURL string `yaml:"components_base_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:           "ruixen-ui",
			DisplayName:       "Ruixen UI",
			Description:       "CLI for Ruixen UI Components Library",
			HomeDir:           ".nocta",
			EnvPrefix:         "NOCTA",
			GoModule:          "github.com/ruixen-labs/ruixen-ui",
			ConfigFile:        "nocta.config.json",
			TokenNamespace:    "nocta",
			RegistryURL:       "https://ruixen.com/registry.json",
			ComponentsBaseURL: "https://ruixen.com/ruixen-ui",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ruixen-ui").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nocta").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NOCTA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ConfigFile returns the project configuration file name (e.g., "nocta.config.json").
func ConfigFile() string { load(); return defaults.ConfigFile }

// TokenNamespace returns the prefix used for generated design tokens (e.g., "nocta").
func TokenNamespace() string { load(); return defaults.TokenNamespace }

// RegistryURL returns the default registry document URL.
func RegistryURL() string { load(); return defaults.RegistryURL }

// ComponentsBaseURL returns the default base URL for raw component files.
func ComponentsBaseURL() string { load(); return defaults.ComponentsBaseURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REGISTRY_URL") → "NOCTA_REGISTRY_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
