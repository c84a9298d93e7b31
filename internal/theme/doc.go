// Package theme holds the static catalog of color themes that can be written
// into a project as design tokens. Themes are looked up by name and never
// mutated.
package theme
