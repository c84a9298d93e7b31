package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/ruixen-labs/ruixen-ui/internal/registry"
	"github.com/ruixen-labs/ruixen-ui/internal/theme"
)

// fakeSource serves components and files from memory and counts lookups.
type fakeSource struct {
	mu         sync.Mutex
	components map[string]registry.Component
	categories map[string]registry.Category
	files      map[string]string

	componentCalls int
	fileCalls      int
}

func (f *fakeSource) Component(_ context.Context, name string) (registry.Component, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.componentCalls++
	c, ok := f.components[name]
	if !ok {
		return registry.Component{}, &registry.ComponentNotFoundError{Name: name}
	}
	return c, nil
}

func (f *fakeSource) File(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fileCalls++
	content, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", registry.ErrComponentFileUnavailable, path)
	}
	return content, nil
}

func (f *fakeSource) Components(context.Context) ([]registry.Component, error) {
	out := make([]registry.Component, 0, len(f.components))
	for _, c := range f.components {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeSource) Categories(context.Context) (map[string]registry.Category, error) {
	return f.categories, nil
}

func (f *fakeSource) lookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.componentCalls + f.fileCalls
}

// fakePrompter returns canned answers and records what it was asked.
type fakePrompter struct {
	theme     string
	overwrite bool
	err       error

	themeAsked  bool
	overwriteOf []string
}

func (p *fakePrompter) SelectTheme([]theme.Theme) (string, error) {
	p.themeAsked = true
	if p.err != nil {
		return "", p.err
	}
	if p.theme == "" {
		return theme.DefaultName, nil
	}
	return p.theme, nil
}

func (p *fakePrompter) ConfirmOverwrite(paths []string) (bool, error) {
	p.overwriteOf = paths
	return p.overwrite, p.err
}

// fakeInstaller records each install request.
type fakeInstaller struct {
	calls []map[string]string
	err   error
}

func (i *fakeInstaller) Install(_ context.Context, packages map[string]string) error {
	i.calls = append(i.calls, packages)
	return i.err
}

var errBoom = errors.New("boom")

// writeProject creates a project directory holding the given files.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func fileExists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}
