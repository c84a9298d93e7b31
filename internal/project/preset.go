package project

import (
	"fmt"
	"io/fs"

	"github.com/ruixen-labs/ruixen-ui/internal/framework"
	"github.com/ruixen-labs/ruixen-ui/internal/manifest"
)

// PresetOptions are the inputs to NewPreset besides the framework.
type PresetOptions struct {
	Theme              string
	TailwindV4         bool
	TailwindConfigPath string // used only when TailwindV4 is false
}

// NewPreset returns the default configuration for a detected framework.
func NewPreset(det framework.Detection, opts PresetOptions) (*Config, error) {
	cfg := &Config{
		Style: "default",
		TSX:   true,
		Theme: opts.Theme,
	}
	if !opts.TailwindV4 {
		cfg.Tailwind.Config = opts.TailwindConfigPath
	}

	switch det.Framework {
	case framework.NextJS:
		cfg.Tailwind.CSS = "styles/globals.css"
		if det.Details.AppStructure == framework.AppRouter {
			cfg.Tailwind.CSS = "app/globals.css"
		}
		cfg.Aliases = Aliases{Components: "components", Utils: "lib/utils"}
	case framework.ViteReact:
		cfg.Tailwind.CSS = "src/App.css"
		cfg.Aliases = Aliases{Components: "src/components", Utils: "src/lib/utils"}
	case framework.ReactRouter:
		cfg.Tailwind.CSS = "app/app.css"
		cfg.Aliases = Aliases{Components: "app/components", Utils: "app/lib/utils"}
	default:
		return nil, fmt.Errorf("no configuration preset for framework %q", det.Framework)
	}

	return cfg, nil
}

// TailwindConfigPath picks the Tailwind configuration file for the project:
// an existing tailwind.config.ts in a TypeScript project, then an existing
// tailwind.config.js, then the extension matching the project language.
func TailwindConfigPath(fsys fs.FS) string {
	typed := manifest.IsTypeScript(fsys)

	if typed && fileExists(fsys, "tailwind.config.ts") {
		return "tailwind.config.ts"
	}
	if fileExists(fsys, "tailwind.config.js") {
		return "tailwind.config.js"
	}
	if typed {
		return "tailwind.config.ts"
	}
	return "tailwind.config.js"
}

func fileExists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	return err == nil
}
