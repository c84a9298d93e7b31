package tokens

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruixen-labs/ruixen-ui/internal/theme"
)

// ErrTokenMerge wraps I/O failures while adding tokens to a project file.
var ErrTokenMerge = errors.New("adding design tokens")

// ApplyCSS merges the theme into the stylesheet at path, creating it when
// missing. It reports whether the file gained tokens.
func ApplyCSS(path string, t theme.Theme) (bool, error) {
	return apply(path, func(existing string) (string, bool) {
		return MergeCSS(existing, t)
	})
}

// ApplyConfig merges the theme into the Tailwind configuration at path. A
// missing file is created from the default skeleton scanning the content
// globs; a .ts suffix selects the TypeScript variant.
func ApplyConfig(path string, t theme.Theme, content []string) (bool, error) {
	skel := Skeleton{Typed: strings.HasSuffix(path, ".ts"), Content: content}
	return apply(path, func(existing string) (string, bool) {
		return MergeConfig(existing, t, skel)
	})
}

func apply(path string, merge func(string) (string, bool)) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: reading %s: %w", ErrTokenMerge, path, err)
	}

	merged, changed := merge(string(data))
	if !changed {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("%w: creating directory for %s: %w", ErrTokenMerge, path, err)
	}
	if err := os.WriteFile(path, []byte(merged), 0644); err != nil {
		return false, fmt.Errorf("%w: writing %s: %w", ErrTokenMerge, path, err)
	}
	return true, nil
}
