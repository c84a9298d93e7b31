package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInstallFailed wraps any failure to run the package manager.
var ErrInstallFailed = errors.New("package installation failed")

// Manager is a JavaScript package manager.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// Detect picks the package manager from the lock file in root: yarn.lock,
// then pnpm-lock.yaml, defaulting to npm.
func Detect(root string) Manager {
	if fileExists(filepath.Join(root, "yarn.lock")) {
		return Yarn
	}
	if fileExists(filepath.Join(root, "pnpm-lock.yaml")) {
		return PNPM
	}
	return NPM
}

// Args returns the command-line arguments that add packages, each given as
// name@range, sorted by name.
func (m Manager) Args(packages map[string]string) []string {
	verb := "add"
	if m == NPM {
		verb = "install"
	}

	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	args := []string{verb}
	for _, name := range names {
		args = append(args, name+"@"+packages[name])
	}
	return args
}

// Installer runs the package manager in a project directory.
type Installer struct {
	Root string

	// Manager overrides lock-file detection when set.
	Manager Manager

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Install adds the packages to the project. It blocks until the package
// manager exits. An empty set is a no-op.
func (i *Installer) Install(ctx context.Context, packages map[string]string) error {
	if len(packages) == 0 {
		return nil
	}

	m := i.Manager
	if m == "" {
		m = Detect(i.Root)
	}

	bin, err := exec.LookPath(string(m))
	if err != nil {
		return fmt.Errorf("%w: %s not found: %w", ErrInstallFailed, m, err)
	}

	args := m.Args(packages)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = i.Root
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if i.Stdin != nil {
		cmd.Stdin = i.Stdin
	}
	if i.Stdout != nil {
		cmd.Stdout = i.Stdout
	}
	if i.Stderr != nil {
		cmd.Stderr = i.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrInstallFailed, m, strings.Join(args, " "), err)
	}
	return nil
}

// ManagerFor returns the manager Install would use.
func (i *Installer) ManagerFor() Manager {
	if i.Manager != "" {
		return i.Manager
	}
	return Detect(i.Root)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
