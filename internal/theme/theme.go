package theme

import (
	"errors"
	"fmt"
)

// DefaultName is the theme selected when the user does not choose one.
const DefaultName = "charcoal"

// ErrThemeNotFound is returned when a theme name is not in the catalog.
var ErrThemeNotFound = errors.New("theme not found")

// Swatch is a single step of a theme's color scale.
type Swatch struct {
	Key   string // scale key, "50" through "950"
	Value string // CSS color value
}

// Theme is a named color scale.
type Theme struct {
	Name        string
	DisplayName string
	Description string
	Colors      []Swatch // ordered from lightest to darkest
}

// ColorMap returns the scale as a key → value map.
func (t Theme) ColorMap() map[string]string {
	m := make(map[string]string, len(t.Colors))
	for _, s := range t.Colors {
		m[s.Key] = s.Value
	}
	return m
}

var catalog = []Theme{
	{
		Name:        "charcoal",
		DisplayName: "Charcoal",
		Description: "Neutral gray theme (default)",
		Colors: scale(
			"oklch(.985 0 0)",
			"oklch(.97 0 0)",
			"oklch(.922 0 0)",
			"oklch(.87 0 0)",
			"oklch(.708 0 0)",
			"oklch(.556 0 0)",
			"oklch(.444 .011 73.639)",
			"oklch(.371 0 0)",
			"oklch(.269 0 0)",
			"oklch(.205 0 0)",
			"oklch(.145 0 0)",
		),
	},
	{
		Name:        "jade",
		DisplayName: "Jade",
		Description: "Subtle green theme",
		Colors: scale(
			"oklch(.985 .002 185)",
			"oklch(.97 .004 182)",
			"oklch(.922 .007 179)",
			"oklch(.87 .010 176)",
			"oklch(.708 .013 173)",
			"oklch(.556 .015 170)",
			"oklch(.444 .013 167)",
			"oklch(.371 .011 164)",
			"oklch(.269 .009 161)",
			"oklch(.205 .007 158)",
			"oklch(.145 .006 155)",
		),
	},
	{
		Name:        "copper",
		DisplayName: "Copper",
		Description: "Warm copper theme",
		Colors: scale(
			"oklch(.985 .003 84)",
			"oklch(.97 .005 80)",
			"oklch(.922 .007 76)",
			"oklch(.87 .010 72)",
			"oklch(.708 .013 68)",
			"oklch(.556 .015 64)",
			"oklch(.444 .014 60)",
			"oklch(.371 .012 56)",
			"oklch(.269 .010 52)",
			"oklch(.205 .009 48)",
			"oklch(.145 .008 45)",
		),
	},
	{
		Name:        "cobalt",
		DisplayName: "Cobalt",
		Description: "Cool blue theme",
		Colors: scale(
			"oklch(.985 .003 315)",
			"oklch(.97 .005 312)",
			"oklch(.922 .008 309)",
			"oklch(.87 .011 306)",
			"oklch(.708 .014 303)",
			"oklch(.556 .016 300)",
			"oklch(.444 .014 297)",
			"oklch(.371 .012 294)",
			"oklch(.269 .010 291)",
			"oklch(.205 .008 288)",
			"oklch(.145 .007 285)",
		),
	},
}

// scaleKeys are the color scale steps every theme defines, in order.
var scaleKeys = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

func scale(values ...string) []Swatch {
	swatches := make([]Swatch, len(values))
	for i, v := range values {
		swatches[i] = Swatch{Key: scaleKeys[i], Value: v}
	}
	return swatches
}

// All returns every theme in display order.
func All() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the names of all themes in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, t := range catalog {
		names[i] = t.Name
	}
	return names
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	_, err := Get(name)
	return err == nil
}

// Get looks up a theme by name.
func Get(name string) (Theme, error) {
	for _, t := range catalog {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
}

// Default returns the default theme.
func Default() Theme {
	t, _ := Get(DefaultName)
	return t
}
