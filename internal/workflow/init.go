package workflow

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/deps"
	"github.com/ruixen-labs/ruixen-ui/internal/framework"
	"github.com/ruixen-labs/ruixen-ui/internal/logging"
	"github.com/ruixen-labs/ruixen-ui/internal/manifest"
	"github.com/ruixen-labs/ruixen-ui/internal/project"
	"github.com/ruixen-labs/ruixen-ui/internal/scaffold"
	"github.com/ruixen-labs/ruixen-ui/internal/theme"
	"github.com/ruixen-labs/ruixen-ui/internal/tokens"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
)

// SupportPackages are installed by init for the generated utils module and
// component styling.
func SupportPackages() map[string]string {
	return map[string]string{
		"clsx":                     "^2.1.1",
		"tailwind-merge":           "^3.3.1",
		"class-variance-authority": "^0.7.1",
	}
}

// InitResult reports what init did.
type InitResult struct {
	Outcome   Outcome
	State     State // last state reached
	Detection framework.Detection
	Tailwind  manifest.TailwindStatus
	Config    *project.Config

	SupportInstalled bool
	UtilsCreated     bool
	TokensFile       string // set when tokens were inserted
	RolledBack       []string
}

// Initializer sets up a project: it writes the project configuration, the
// utils module and the theme's design tokens.
type Initializer struct {
	Root      string
	FS        fs.FS // project file system; defaults to os.DirFS(Root)
	Prompter  Prompter
	Installer Installer
	Printer   *ui.Printer
	Logger    *logging.Logger
}

func (in *Initializer) setDefaults() {
	if in.FS == nil {
		in.FS = os.DirFS(in.Root)
	}
	if in.Printer == nil {
		in.Printer = ui.NewPrinter(io.Discard)
	}
	if in.Logger == nil {
		in.Logger = logging.Nop()
	}
}

// Run executes init. Guided early exits (already initialized, Tailwind
// missing, unsupported framework) return a result with a nil error. Any
// other failure removes the files init created and returns the error.
func (in *Initializer) Run(ctx context.Context) (res *InitResult, err error) {
	in.setDefaults()
	p := in.Printer
	res = &InitResult{State: StateUninitialized}

	if project.Exists(in.Root) {
		p.Warn("%s already exists!", branding.ConfigFile())
		p.Muted("Your project is already initialized.")
		res.Outcome = AlreadyInitialized
		return res, nil
	}

	checkpoint := project.NewCheckpoint(in.Root)
	defer func() {
		if err == nil {
			return
		}
		in.Logger.Error(err, "init failed", "state", res.State.String())
		res.State = StateFailed
		res.RolledBack = checkpoint.Rollback()
		p.Error("Failed to initialize %s", branding.DisplayName())
		if len(res.RolledBack) > 0 {
			p.Warn("Rolled back partial changes")
			for _, rel := range res.RolledBack {
				p.Item("%s", rel)
			}
		}
	}()

	res.State = StateDetecting
	res.Tailwind = manifest.CheckTailwind(in.FS)
	if !res.Tailwind.Installed {
		in.printTailwindMissing()
		res.Outcome = TailwindMissing
		return res, nil
	}
	in.Logger.Debug("tailwind found", "version", res.Tailwind.Version)

	res.Detection = framework.Detect(in.FS)
	if !res.Detection.Supported() {
		in.printUnsupported(res.Detection)
		res.Outcome = UnsupportedFramework
		return res, nil
	}
	p.Success("Found %s", describeFramework(res.Detection))

	if err := ctx.Err(); err != nil {
		return res, err
	}

	res.State = StateThemeSelection
	name, err := in.Prompter.SelectTheme(theme.All())
	if err != nil {
		return res, fmt.Errorf("selecting theme: %w", err)
	}
	selected, err := theme.Get(name)
	if err != nil {
		return res, err
	}
	p.Success("Selected theme: %s", selected.DisplayName)

	v4 := isTailwindV4(res.Tailwind.Version)
	cfg, err := project.NewPreset(res.Detection, project.PresetOptions{
		Theme:              selected.Name,
		TailwindV4:         v4,
		TailwindConfigPath: project.TailwindConfigPath(in.FS),
	})
	if err != nil {
		return res, err
	}
	if err := project.Save(in.Root, cfg); err != nil {
		return res, err
	}
	res.Config = cfg
	res.State = StateConfigWritten
	in.Logger.Debug("project config written", "path", project.ConfigPath(in.Root))

	if err := in.Installer.Install(ctx, SupportPackages()); err != nil {
		if ctx.Err() != nil {
			return res, err
		}
		in.Logger.Warn("support package install failed", "error", err.Error())
		p.Warn("Dependencies installation failed, but you can install them manually")
		p.Warn("Run: npm install %s", strings.Join(sortedKeys(SupportPackages()), " "))
	} else {
		res.SupportInstalled = true
	}
	res.State = StateDependenciesInstalled

	created, err := scaffold.WriteUtils(filepath.Join(in.Root, filepath.FromSlash(cfg.UtilsFile())))
	if err != nil {
		return res, err
	}
	res.UtilsCreated = created
	if !created {
		p.Warn("%s already exists - skipping creation", cfg.UtilsFile())
	}

	target := cfg.TokenTarget()
	tokenPath := filepath.Join(in.Root, filepath.FromSlash(target))
	var added bool
	if v4 {
		added, err = tokens.ApplyCSS(tokenPath, selected)
	} else {
		added, err = tokens.ApplyConfig(tokenPath, selected, scaffold.ContentGlobs(cfg.Aliases.Components))
	}
	switch {
	case err != nil:
		in.Logger.Warn("design tokens not added", "file", target, "error", err.Error())
		p.Warn("Design tokens installation failed, but you can add them manually")
	case added:
		res.TokensFile = target
	}
	res.State = StateTokensAdded

	res.State = StateDone
	res.Outcome = Initialized
	in.printSummary(res, selected, v4)
	return res, nil
}

// isTailwindV4 reports whether the version string names Tailwind 4 or later.
func isTailwindV4(version string) bool {
	major, ok := deps.Major(version)
	return ok && major >= 4
}

func describeFramework(det framework.Detection) string {
	version := strings.TrimSpace(det.Version)
	name := det.Framework.DisplayName()
	if version != "" {
		name += " " + version
	}
	if det.Framework == framework.NextJS {
		switch det.Details.AppStructure {
		case framework.AppRouter:
			name += " (App Router)"
		case framework.PagesRouter:
			name += " (Pages Router)"
		default:
			name += " (Unknown Router)"
		}
	}
	return name
}

func (in *Initializer) printTailwindMissing() {
	p := in.Printer
	p.Error("Tailwind CSS is required but not found!")
	p.Blank()
	p.Warn("Please install Tailwind CSS first:")
	p.Item("npm install -D tailwindcss")
	p.Item("# or")
	p.Item("yarn add -D tailwindcss")
	p.Item("# or")
	p.Item("pnpm add -D tailwindcss")
	p.Blank()
	p.Info("Visit https://tailwindcss.com/docs/installation for setup guide")
}

func (in *Initializer) printUnsupported(det framework.Detection) {
	p := in.Printer
	p.Error("Could not detect a supported React framework")
	p.Warn("%s supports:", branding.CLIName())
	p.Item("• Next.js (App Router or Pages Router)")
	p.Item("• Vite + React")
	p.Item("• React Router 7 (Framework Mode)")
	p.Blank()
	p.Info("Detection details:")
	p.Item("React dependency: %s", mark(det.Details.HasReactDependency))
	p.Item("Framework config: %s", mark(det.Details.HasConfig))
	found := strings.Join(det.Details.ConfigFiles, ", ")
	if found == "" {
		found = "none"
	}
	p.Item("Config files found: %s", found)
	p.Blank()

	if !det.Details.HasReactDependency {
		p.Warn("Install React first:")
		p.Item("npm install react react-dom")
		p.Item("npm install -D @types/react @types/react-dom")
		return
	}
	p.Warn("Set up a supported framework:")
	p.Item("Next.js: npx create-next-app@latest")
	p.Item("Vite + React: npm create vite@latest . -- --template react-ts")
	p.Item("React Router 7: npx create-react-router@latest")
}

func (in *Initializer) printSummary(res *InitResult, t theme.Theme, v4 bool) {
	p := in.Printer
	p.Blank()
	p.Success("%s initialized successfully!", branding.DisplayName())

	p.Blank()
	p.Success("Configuration created:")
	p.Item("%s (%s)", branding.ConfigFile(), describeFramework(res.Detection))

	p.Blank()
	p.Info("Theme selected:")
	p.Item("%s (%s)", t.DisplayName, t.Name)

	if res.SupportInstalled {
		p.Blank()
		p.Info("Dependencies installed:")
		support := SupportPackages()
		for _, name := range sortedKeys(support) {
			p.Item("%s@%s", name, support[name])
		}
	}

	if res.UtilsCreated {
		p.Blank()
		p.Success("Utility functions created:")
		p.Item("%s", res.Config.UtilsFile())
		p.Item("• cn() function for className merging")
	}

	ns := branding.TokenNamespace()
	if res.TokensFile != "" {
		p.Blank()
		p.Success("Design tokens added:")
		p.Item("%s", res.TokensFile)
		p.Item("• %s color palette (%s-50 to %s-950)", t.DisplayName, ns, ns)
		p.Item("• Use: text-%s-500, bg-%s-100, etc.", ns, ns)
	} else {
		p.Blank()
		p.Warn("Design tokens skipped (already exist or error occurred)")
	}

	if v4 {
		p.Blank()
		p.Info("Tailwind v4 detected!")
		p.Item(`Make sure your CSS file includes @import "tailwindcss";`)
	}

	p.Blank()
	p.Info("You can now add components:")
	p.Item("npx %s add button", branding.CLIName())
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
