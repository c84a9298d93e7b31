package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/deps"
	"github.com/ruixen-labs/ruixen-ui/internal/framework"
	"github.com/ruixen-labs/ruixen-ui/internal/logging"
	"github.com/ruixen-labs/ruixen-ui/internal/manifest"
	"github.com/ruixen-labs/ruixen-ui/internal/project"
	"github.com/ruixen-labs/ruixen-ui/internal/registry"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
)

// ErrNoComponents is returned by Adder.Run when no names are given.
var ErrNoComponents = errors.New("no components requested")

// AddResult reports what add did.
type AddResult struct {
	Outcome    Outcome
	Components []registry.Component // install order
	Files      []registry.ResolvedFile
	Existing   []string // targets that were already present
	Reconciled deps.Result
	Installed  map[string]string // packages handed to the installer
}

// Adder copies registry components into an initialized project.
type Adder struct {
	Root      string
	FS        fs.FS // project file system; defaults to os.DirFS(Root)
	Source    ComponentFetcher
	Prompter  Prompter
	Installer Installer
	Printer   *ui.Printer
	Logger    *logging.Logger
}

func (a *Adder) setDefaults() {
	if a.FS == nil {
		a.FS = os.DirFS(a.Root)
	}
	if a.Printer == nil {
		a.Printer = ui.NewPrinter(io.Discard)
	}
	if a.Logger == nil {
		a.Logger = logging.Nop()
	}
}

// Run adds the named components and everything they depend on. An
// uninitialized project ends with NotInitialized before anything is fetched.
// A declined overwrite ends with Cancelled before anything is written.
func (a *Adder) Run(ctx context.Context, names []string) (*AddResult, error) {
	if len(names) == 0 {
		return nil, ErrNoComponents
	}
	a.setDefaults()
	p := a.Printer
	res := &AddResult{}

	cfg, err := project.Load(a.Root)
	if errors.Is(err, project.ErrConfigMissing) {
		p.Error("Project not initialized")
		p.Error("%s not found", branding.ConfigFile())
		p.Warn(`Run "npx %s init" first`, branding.CLIName())
		res.Outcome = NotInitialized
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	det := framework.Detect(a.FS)
	a.Logger.Debug("framework detected", "framework", string(det.Framework))

	roots, err := registry.NewResolver(a.Source).BuildDependencyTree(ctx, names)
	if err != nil {
		var nf *registry.ComponentNotFoundError
		if errors.As(err, &nf) {
			p.Error("Component %q not found", nf.Name)
			p.Warn(`Run "npx %s list" to see available components`, branding.CLIName())
		}
		return nil, err
	}
	res.Components = registry.FlattenTree(roots)
	a.Logger.Debug("components resolved", "order", componentNames(res.Components))

	registry.PrintPlan(p.Writer(), roots, res.Components)

	files, err := registry.FetchFiles(ctx, a.Source, res.Components)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("component files fetched", "count", len(files))

	for i := range files {
		files[i].Content = project.RewriteImports(files[i].Content, det.Framework)
		files[i].Target = project.ResolveComponentPath(files[i].Path, cfg.Aliases)
	}
	res.Files = files

	for _, f := range files {
		if _, err := os.Stat(a.abs(f.Target)); err == nil {
			res.Existing = append(res.Existing, f.Target)
		}
	}

	if len(res.Existing) > 0 {
		p.Warn("The following files already exist:")
		for _, t := range res.Existing {
			p.Item("%s", t)
		}
		ok, err := a.Prompter.ConfirmOverwrite(res.Existing)
		if err != nil {
			return nil, fmt.Errorf("confirming overwrite: %w", err)
		}
		if !ok {
			p.Error("Installation cancelled")
			res.Outcome = Cancelled
			return res, nil
		}
	}

	for _, f := range files {
		if err := a.write(f); err != nil {
			return nil, err
		}
	}

	if err := a.installDependencies(ctx, res); err != nil {
		return nil, err
	}

	res.Outcome = Added
	a.printSummary(res, names, det)
	return res, nil
}

func (a *Adder) abs(rel string) string {
	return filepath.Join(a.Root, filepath.FromSlash(rel))
}

func (a *Adder) write(f registry.ResolvedFile) error {
	target := a.abs(f.Target)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Target, err)
	}
	if err := os.WriteFile(target, []byte(f.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Target, err)
	}
	return nil
}

// installDependencies reconciles the components' package requirements with
// the project and installs what is missing or incompatible. When installed
// versions cannot be read, every required package is installed.
func (a *Adder) installDependencies(ctx context.Context, res *AddResult) error {
	required := make(map[string]string)
	for _, c := range res.Components {
		for pkg, rng := range c.Dependencies {
			required[pkg] = rng
		}
	}
	if len(required) == 0 {
		return nil
	}

	p := a.Printer
	installed, err := manifest.InstalledVersions(a.FS)
	if err != nil {
		a.Logger.Warn("could not read installed dependencies", "error", err.Error())
		p.Warn("[WARN] Could not check existing dependencies: %v", err)
		p.Warn("Installing all dependencies...")
		res.Installed = required
	} else {
		res.Reconciled = deps.Reconcile(required, installed)
		for _, w := range res.Reconciled.Warnings {
			a.Logger.Warn("version comparison failed", "package", w.Package, "error", w.Err.Error())
			p.Warn("[WARN] %s", w.String())
		}
		res.Installed = res.Reconciled.ToInstall
	}

	if err := a.Installer.Install(ctx, res.Installed); err != nil {
		return err
	}

	if len(res.Reconciled.Satisfied) > 0 {
		p.Blank()
		p.Success("Dependencies already satisfied:")
		for _, name := range res.Reconciled.Satisfied {
			p.Item("%s", res.Reconciled.Notes[name])
		}
	}
	if len(res.Reconciled.Incompatible) > 0 {
		p.Blank()
		p.Warn("Incompatible dependencies updated:")
		for _, name := range res.Reconciled.Incompatible {
			p.Item("%s", res.Reconciled.Notes[name])
		}
	}
	if len(res.Installed) > 0 {
		p.Blank()
		p.Info("Dependencies installed:")
		for _, name := range sortedKeys(res.Installed) {
			p.Item("%s@%s", name, res.Installed[name])
		}
	}
	return nil
}

func (a *Adder) printSummary(res *AddResult, names []string, det framework.Detection) {
	p := a.Printer

	label := names[0]
	if len(names) > 1 {
		label = fmt.Sprintf("%d components", len(names))
	}
	p.Blank()
	p.Success("%s added successfully!", label)

	p.Blank()
	p.Success("Components installed:")
	for _, f := range res.Files {
		p.Item("%s (%s)", f.Target, f.Component)
	}

	byName := make(map[string]registry.Component, len(res.Components))
	for _, c := range res.Components {
		byName[c.Name] = c
	}
	targets := make(map[string]string)
	for _, f := range res.Files {
		if _, ok := targets[f.Component]; !ok {
			targets[f.Component] = f.Target
		}
	}

	alias := project.ImportAlias(det.Framework)
	p.Blank()
	p.Info("Import and use:")
	for _, name := range names {
		c, ok := byName[name]
		if !ok || targets[name] == "" {
			continue
		}
		target := targets[name]
		module := strings.TrimSuffix(target, path.Ext(target))
		p.Item(`import { %s } from "%s/%s"; // %s`, strings.Join(c.Exports, ", "), alias, module, c.Name)
	}

	var variants, sizes []string
	for _, name := range names {
		c := byName[name]
		if len(c.Variants) > 0 {
			variants = append(variants, fmt.Sprintf("%s: %s", c.Name, strings.Join(c.Variants, ", ")))
		}
		if len(c.Sizes) > 0 {
			sizes = append(sizes, fmt.Sprintf("%s: %s", c.Name, strings.Join(c.Sizes, ", ")))
		}
	}
	if len(variants) > 0 {
		p.Blank()
		p.Info("Available variants:")
		for _, v := range variants {
			p.Item("%s", v)
		}
	}
	if len(sizes) > 0 {
		p.Blank()
		p.Info("Available sizes:")
		for _, s := range sizes {
			p.Item("%s", s)
		}
	}
}

func componentNames(components []registry.Component) []string {
	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.Name
	}
	return names
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
