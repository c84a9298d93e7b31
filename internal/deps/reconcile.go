package deps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// forwardCompatible lists packages whose newer or equal major versions are
// accepted without checking the full range.
var forwardCompatible = map[string]bool{
	"react":     true,
	"react-dom": true,
}

// VersionWarning records a package whose versions could not be compared.
// The package is installed anyway.
type VersionWarning struct {
	Package   string
	Installed string
	Required  string
	Err       error
}

func (w VersionWarning) String() string {
	return fmt.Sprintf("could not compare versions for %s: %v", w.Package, w.Err)
}

// Result is the outcome of Reconcile.
type Result struct {
	ToInstall    map[string]string // package → required range
	Satisfied    []string          // sorted package names
	Incompatible []string          // sorted package names
	Warnings     []VersionWarning
	Notes        map[string]string // package → human-readable reason
}

// Reconcile compares required ranges against installed versions. It has no
// side effects.
func Reconcile(required, installed map[string]string) Result {
	res := Result{
		ToInstall: make(map[string]string),
		Notes:     make(map[string]string),
	}

	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		req := required[name]
		inst, ok := installed[name]
		if !ok || inst == "" {
			res.ToInstall[name] = req
			continue
		}

		satisfied, note, err := check(name, req, inst)
		if err != nil {
			res.Warnings = append(res.Warnings, VersionWarning{
				Package:   name,
				Installed: inst,
				Required:  req,
				Err:       err,
			})
			res.ToInstall[name] = req
			continue
		}

		res.Notes[name] = note
		if satisfied {
			res.Satisfied = append(res.Satisfied, name)
		} else {
			res.Incompatible = append(res.Incompatible, name)
			res.ToInstall[name] = req
		}
	}

	return res
}

// check decides whether installed satisfies required for one package.
func check(name, required, installed string) (bool, string, error) {
	iv, err := semver.NewVersion(strings.TrimPrefix(installed, "v"))
	if err != nil {
		return false, "", fmt.Errorf("parsing installed version %q: %w", installed, err)
	}

	if forwardCompatible[name] {
		rv, err := parseBare(required)
		if err != nil {
			return false, "", err
		}
		if iv.Major() >= rv.Major() {
			return true, fmt.Sprintf("%s@%s (newer version compatible with %s)", name, installed, required), nil
		}
	}

	if c, err := semver.NewConstraint(required); err == nil && c.Check(iv) {
		return true, fmt.Sprintf("%s@%s (satisfies %s)", name, installed, required), nil
	}

	rv, err := parseBare(required)
	if err != nil {
		return false, "", err
	}
	if iv.Major() > rv.Major() {
		return true, fmt.Sprintf("%s@%s (newer major version, assuming compatibility)", name, installed), nil
	}
	return false, fmt.Sprintf("%s: installed %s, required %s", name, installed, required), nil
}

// parseBare strips one leading range operator (^, ~ or v) and parses the rest
// as a version.
func parseBare(required string) (*semver.Version, error) {
	bare := required
	if bare != "" && strings.ContainsAny(bare[:1], "^~v") {
		bare = bare[1:]
	}
	v, err := semver.NewVersion(bare)
	if err != nil {
		return nil, fmt.Errorf("parsing required version %q: %w", required, err)
	}
	return v, nil
}

// Major returns the major version of a declared or installed version string,
// tolerating a leading range operator. ok is false when no version can be
// parsed (e.g. "latest").
func Major(version string) (uint64, bool) {
	v := strings.TrimSpace(version)
	v = strings.TrimLeft(v, "^~>=<v ")
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return 0, false
	}
	return parsed.Major(), true
}
