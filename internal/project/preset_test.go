package project

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruixen-labs/ruixen-ui/internal/framework"
)

func TestNewPreset(t *testing.T) {
	tests := []struct {
		name       string
		det        framework.Detection
		v4         bool
		wantCSS    string
		wantConfig string
		wantAlias  Aliases
	}{
		{
			name:      "next app router v4",
			det:       framework.Detection{Framework: framework.NextJS, Details: framework.Details{AppStructure: framework.AppRouter}},
			v4:        true,
			wantCSS:   "app/globals.css",
			wantAlias: Aliases{Components: "components", Utils: "lib/utils"},
		},
		{
			name:       "next pages router v3",
			det:        framework.Detection{Framework: framework.NextJS, Details: framework.Details{AppStructure: framework.PagesRouter}},
			wantCSS:    "styles/globals.css",
			wantConfig: "tailwind.config.ts",
			wantAlias:  Aliases{Components: "components", Utils: "lib/utils"},
		},
		{
			name:      "vite",
			det:       framework.Detection{Framework: framework.ViteReact},
			v4:        true,
			wantCSS:   "src/App.css",
			wantAlias: Aliases{Components: "src/components", Utils: "src/lib/utils"},
		},
		{
			name:       "react router v3",
			det:        framework.Detection{Framework: framework.ReactRouter},
			wantCSS:    "app/app.css",
			wantConfig: "tailwind.config.ts",
			wantAlias:  Aliases{Components: "app/components", Utils: "app/lib/utils"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewPreset(tt.det, PresetOptions{
				Theme:              "jade",
				TailwindV4:         tt.v4,
				TailwindConfigPath: "tailwind.config.ts",
			})
			require.NoError(t, err)
			assert.Equal(t, "default", cfg.Style)
			assert.True(t, cfg.TSX)
			assert.Equal(t, "jade", cfg.Theme)
			assert.Equal(t, tt.wantCSS, cfg.Tailwind.CSS)
			assert.Equal(t, tt.wantConfig, cfg.Tailwind.Config)
			assert.Equal(t, tt.wantAlias, cfg.Aliases)
			assert.NoError(t, Validate(cfg))
		})
	}
}

func TestNewPresetUnknown(t *testing.T) {
	_, err := NewPreset(framework.Detection{Framework: framework.Unknown}, PresetOptions{Theme: "charcoal"})
	assert.Error(t, err)
}

func TestTailwindConfigPath(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{"typescript default", fstest.MapFS{"tsconfig.json": {}}, "tailwind.config.ts"},
		{"javascript default", fstest.MapFS{"package.json": {Data: []byte(`{}`)}}, "tailwind.config.js"},
		{"existing js in typescript project", fstest.MapFS{"tsconfig.json": {}, "tailwind.config.js": {}}, "tailwind.config.js"},
		{"existing ts preferred", fstest.MapFS{"tsconfig.json": {}, "tailwind.config.js": {}, "tailwind.config.ts": {}}, "tailwind.config.ts"},
		{"existing ts ignored in javascript project", fstest.MapFS{"tailwind.config.ts": {}}, "tailwind.config.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TailwindConfigPath(tt.fsys))
		})
	}
}
