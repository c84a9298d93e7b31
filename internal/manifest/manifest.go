package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// FileName is the project manifest file name.
const FileName = "package.json"

// PackageJSON holds the package.json fields the CLI reads.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Read parses package.json at the root of fsys. A missing file is reported
// as an error matching fs.ErrNotExist.
func Read(fsys fs.FS) (*PackageJSON, error) {
	return readAt(fsys, FileName)
}

func readAt(fsys fs.FS, name string) (*PackageJSON, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return &pkg, nil
}

// All returns dependencies and devDependencies merged. A package listed in
// both takes its devDependencies range.
func (p *PackageJSON) All() map[string]string {
	all := make(map[string]string, len(p.Dependencies)+len(p.DevDependencies))
	for k, v := range p.Dependencies {
		all[k] = v
	}
	for k, v := range p.DevDependencies {
		all[k] = v
	}
	return all
}

// Declared returns the declared range for a package, checking dependencies
// before devDependencies.
func (p *PackageJSON) Declared(name string) (string, bool) {
	if v, ok := p.Dependencies[name]; ok {
		return v, true
	}
	v, ok := p.DevDependencies[name]
	return v, ok
}

// Has reports whether the package is declared in either dependency list.
func (p *PackageJSON) Has(name string) bool {
	_, ok := p.Declared(name)
	return ok
}

// InstalledVersion returns the version recorded in node_modules/<name>/package.json.
func InstalledVersion(fsys fs.FS, name string) (string, bool) {
	pkg, err := readAt(fsys, path.Join("node_modules", name, FileName))
	if err != nil || pkg.Version == "" {
		return "", false
	}
	return pkg.Version, true
}

// InstalledVersions maps every declared dependency to its installed version,
// falling back to the declared range when the package is not in
// node_modules. A project without package.json has no dependencies.
func InstalledVersions(fsys fs.FS) (map[string]string, error) {
	pkg, err := Read(fsys)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	versions := pkg.All()
	for name := range versions {
		if v, ok := InstalledVersion(fsys, name); ok {
			versions[name] = v
		}
	}
	return versions, nil
}

// TailwindStatus describes the project's Tailwind CSS installation.
type TailwindStatus struct {
	Installed bool
	Declared  string // range from package.json
	Version   string // installed version, or Declared when unknown
}

// CheckTailwind reports whether tailwindcss is both declared and present in
// node_modules.
func CheckTailwind(fsys fs.FS) TailwindStatus {
	pkg, err := Read(fsys)
	if err != nil {
		return TailwindStatus{}
	}

	declared, ok := pkg.Declared("tailwindcss")
	if !ok {
		return TailwindStatus{}
	}

	status := TailwindStatus{Declared: declared, Version: declared}
	if _, err := fs.Stat(fsys, path.Join("node_modules", "tailwindcss")); err == nil {
		status.Installed = true
	}
	if v, ok := InstalledVersion(fsys, "tailwindcss"); ok {
		status.Version = v
	}
	return status
}

// IsTypeScript reports whether the project uses TypeScript: a typescript or
// @types/node dependency, or a tsconfig.json.
func IsTypeScript(fsys fs.FS) bool {
	if pkg, err := Read(fsys); err == nil {
		if pkg.Has("typescript") || pkg.Has("@types/node") {
			return true
		}
	}
	_, err := fs.Stat(fsys, "tsconfig.json")
	return err == nil
}
