package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
)

// ErrConfigMissing means the project has not been initialized.
var ErrConfigMissing = errors.New("project is not initialized")

// Config is the project configuration file.
type Config struct {
	Style    string   `json:"style" validate:"required"`
	TSX      bool     `json:"tsx"`
	Theme    string   `json:"theme" validate:"required,theme"`
	Tailwind Tailwind `json:"tailwind"`
	Aliases  Aliases  `json:"aliases"`
}

// Tailwind locates the files design tokens are written to. Config is empty
// for Tailwind v4, which keeps tokens in the stylesheet.
type Tailwind struct {
	Config string `json:"config"`
	CSS    string `json:"css" validate:"required"`
}

// Aliases are project-relative locations for generated code.
type Aliases struct {
	Components string `json:"components" validate:"required"`
	Utils      string `json:"utils" validate:"required"` // module path without extension
}

// ConfigPath returns the configuration file path for the project at root.
func ConfigPath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Exists reports whether the project at root has a configuration file.
func Exists(root string) bool {
	_, err := os.Stat(ConfigPath(root))
	return err == nil
}

// Load reads and validates the configuration of the project at root.
func Load(root string) (*Config, error) {
	path := ConfigPath(root)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s not found", ErrConfigMissing, branding.ConfigFile())
	}
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", branding.ConfigFile(), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save validates cfg and writes it to the project at root with two-space
// indentation.
func Save(root string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}

// UtilsFile returns the project-relative path of the utils module.
func (c *Config) UtilsFile() string {
	return c.Aliases.Utils + ".ts"
}

// TokenTarget returns the file design tokens go into: the stylesheet for
// Tailwind v4 projects, the Tailwind configuration otherwise.
func (c *Config) TokenTarget() string {
	if c.Tailwind.Config == "" {
		return c.Tailwind.CSS
	}
	return c.Tailwind.Config
}
