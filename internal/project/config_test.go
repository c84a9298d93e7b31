package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Style: "default",
		TSX:   true,
		Theme: "charcoal",
		Tailwind: Tailwind{
			Config: "",
			CSS:    "app/globals.css",
		},
		Aliases: Aliases{
			Components: "components",
			Utils:      "lib/utils",
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()
	cfg := validConfig()

	require.NoError(t, Save(root, cfg))
	assert.True(t, Exists(root))

	data, err := os.ReadFile(filepath.Join(root, "nocta.config.json"))
	require.NoError(t, err)
	want := `{
  "style": "default",
  "tsx": true,
  "theme": "charcoal",
  "tailwind": {
    "config": "",
    "css": "app/globals.css"
  },
  "aliases": {
    "components": "components",
    "utils": "lib/utils"
  }
}
`
	assert.Equal(t, want, string(data))

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissing(t *testing.T) {
	root := t.TempDir()
	assert.False(t, Exists(root))

	_, err := Load(root)
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestLoadMalformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(ConfigPath(root), []byte("{"), 0644))

	_, err := Load(root)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigMissing)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, "theme"},
		{"missing theme", func(c *Config) { c.Theme = "" }, "theme"},
		{"missing style", func(c *Config) { c.Style = "" }, "style"},
		{"missing css", func(c *Config) { c.Tailwind.CSS = "" }, "tailwind.css"},
		{"missing components alias", func(c *Config) { c.Aliases.Components = "" }, "aliases.components"},
		{"missing utils alias", func(c *Config) { c.Aliases.Utils = "" }, "aliases.utils"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "error %v is not a ValidationError", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestValidateUnknownThemeMessage(t *testing.T) {
	cfg := validConfig()
	cfg.Theme = "neon"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "neon"`)
	assert.Contains(t, err.Error(), "charcoal")
}

func TestSaveRejectsInvalid(t *testing.T) {
	root := t.TempDir()
	cfg := validConfig()
	cfg.Theme = "neon"

	require.Error(t, Save(root, cfg))
	assert.False(t, Exists(root))
}

func TestTokenTarget(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "app/globals.css", cfg.TokenTarget())
	assert.Equal(t, "lib/utils.ts", cfg.UtilsFile())

	cfg.Tailwind.Config = "tailwind.config.ts"
	assert.Equal(t, "tailwind.config.ts", cfg.TokenTarget())
}
