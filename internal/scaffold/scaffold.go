package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Data holds the variables available to templates.
type Data struct {
	Content []string // Tailwind content globs, e.g. "./src/**/*.{ts,tsx}"
}

// ContentGlobs returns the Tailwind content globs for a components directory.
func ContentGlobs(componentsDir string) []string {
	root := filepath.ToSlash(filepath.Dir(componentsDir))
	if root == "." {
		return []string{"./components/**/*.{ts,tsx}", "./app/**/*.{ts,tsx}"}
	}
	return []string{"./" + root + "/**/*.{ts,tsx,js,jsx}"}
}

// Render executes the named template (without the .tmpl suffix).
func Render(name string, data Data) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("template %q not found: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// TailwindConfig renders the default Tailwind configuration. typed selects the
// TypeScript variant.
func TailwindConfig(typed bool, content []string) (string, error) {
	name := "tailwind.config.js"
	if typed {
		name = "tailwind.config.ts"
	}
	return Render(name, Data{Content: content})
}

// WriteUtils writes the utils module to path unless a file already exists
// there. It reports whether the file was created.
func WriteUtils(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	content, err := Render("utils.ts", Data{})
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
