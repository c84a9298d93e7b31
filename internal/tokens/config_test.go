package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConfigExistingColors(t *testing.T) {
	existing := strings.Join([]string{
		"module.exports = {",
		"  theme: {",
		"    extend: {",
		"      colors: {",
		`        brand: "#123456"`,
		"      },",
		"    },",
		"  },",
		"}",
	}, "\n")

	want := strings.Join([]string{
		"module.exports = {",
		"  theme: {",
		"    extend: {",
		"      colors: {",
		`        brand: "#123456",`,
		"        nocta: {",
		`          "50": "#fff",`,
		`          "950": "#000"`,
		"        }",
		"      },",
		"    },",
		"  },",
		"}",
	}, "\n")

	got, changed := MergeConfig(existing, testTheme, Skeleton{})
	require.True(t, changed)
	assert.Equal(t, want, got)
}

func TestMergeConfigNestedColorObject(t *testing.T) {
	existing := strings.Join([]string{
		"export default {",
		"  theme: {",
		"    extend: {",
		"      colors: {",
		"        primary: {",
		`          "500": "#333"`,
		"        }",
		"      }",
		"    }",
		"  }",
		"}",
	}, "\n")

	got, changed := MergeConfig(existing, testTheme, Skeleton{Typed: true})
	require.True(t, changed)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "        },", lines[6], "nested object closer gains a comma")
	assert.Equal(t, "        nocta: {", lines[7])
	assert.Equal(t, "      }", lines[11])
}

func TestMergeConfigExtendWithoutColors(t *testing.T) {
	existing := strings.Join([]string{
		"export default {",
		"  theme: {",
		"    extend: {",
		"      spacing: {",
		`        "128": "32rem"`,
		"      }",
		"    }",
		"  }",
		"}",
	}, "\n")

	want := strings.Join([]string{
		"export default {",
		"  theme: {",
		"    extend: {",
		"      spacing: {",
		`        "128": "32rem"`,
		"      },",
		"      colors: {",
		"        nocta: {",
		`          "50": "#fff",`,
		`          "950": "#000"`,
		"        }",
		"      }",
		"    }",
		"  }",
		"}",
	}, "\n")

	got, changed := MergeConfig(existing, testTheme, Skeleton{Typed: true})
	require.True(t, changed)
	assert.Equal(t, want, got)
}

func TestMergeConfigInlineEmptyExtend(t *testing.T) {
	existing := "module.exports = {\n  theme: {\n    extend: {},\n  },\n}"
	want := strings.Join([]string{
		"module.exports = {",
		"  theme: {",
		"    extend: {",
		"      colors: {",
		"        nocta: {",
		`          "50": "#fff",`,
		`          "950": "#000"`,
		"        }",
		"      }",
		"    },",
		"  },",
		"}",
	}, "\n")

	got, changed := MergeConfig(existing, testTheme, Skeleton{})
	require.True(t, changed)
	assert.Equal(t, want, got)
}

func TestMergeConfigEmptyThemeFallback(t *testing.T) {
	existing := "module.exports = {\n  content: [],\n  theme: {},\n}"

	got, changed := MergeConfig(existing, testTheme, Skeleton{})
	require.True(t, changed)
	assert.Contains(t, got, "  theme: {\n    extend: {\n      colors: {\n        nocta: {\n")
	assert.True(t, strings.HasSuffix(got, "      }\n    }\n  },\n}"))
}

func TestMergeConfigUnrecognizedLeftAlone(t *testing.T) {
	existing := "import config from './base';\nexport default config;\n"

	got, changed := MergeConfig(existing, testTheme, Skeleton{Typed: true})
	assert.False(t, changed)
	assert.Equal(t, existing, got)
}

func TestMergeConfigSkeleton(t *testing.T) {
	t.Run("typed", func(t *testing.T) {
		got, changed := MergeConfig("", testTheme, Skeleton{Typed: true})
		require.True(t, changed)
		assert.True(t, strings.HasPrefix(got, `import type { Config } from "tailwindcss";`))
		assert.Contains(t, got, "        nocta: {")
		assert.Contains(t, got, "satisfies Config;")
	})

	t.Run("content globs", func(t *testing.T) {
		got, changed := MergeConfig("", testTheme, Skeleton{Content: []string{"./src/**/*.{ts,tsx,js,jsx}"}})
		require.True(t, changed)
		assert.Contains(t, got, `  content: ["./src/**/*.{ts,tsx,js,jsx}"],`)
		assert.Contains(t, got, "        nocta: {")
	})

	t.Run("untyped", func(t *testing.T) {
		got, changed := MergeConfig("   \n", testTheme, Skeleton{})
		require.True(t, changed)
		assert.Contains(t, got, "module.exports = {")
		assert.NotContains(t, got, "import type")
		assert.Contains(t, got, "        nocta: {")
	})
}

func TestMergeConfigIsIdempotent(t *testing.T) {
	for _, marker := range []string{"nocta: {}", `"nocta": {}`} {
		existing := "module.exports = { theme: { extend: { colors: { " + marker + " } } } }"
		got, changed := MergeConfig(existing, testTheme, Skeleton{})
		assert.False(t, changed)
		assert.Equal(t, existing, got)
	}

	once, changed := MergeConfig("", testTheme, Skeleton{Typed: true})
	require.True(t, changed)
	twice, changed := MergeConfig(once, testTheme, Skeleton{Typed: true})
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestScanConfigStates(t *testing.T) {
	lines := []string{
		"export default {",  // 0
		"  theme: {",        // 1
		"    extend: {",     // 2
		"      colors: {",   // 3
		"        a: 'b',",   // 4
		"      },",          // 5
		"      spacing: {",  // 6
		"      },",          // 7
		"    },",            // 8
		"  },",              // 9
		"}",                 // 10
	}
	l := scanConfig(lines)
	assert.Equal(t, 2, l.extendOpen)
	assert.Equal(t, 3, l.colorsOpen)
	assert.Equal(t, 5, l.colorsClose)
	assert.Equal(t, 8, l.extendClose)
	assert.Equal(t, "    ", l.extendIndent)
	assert.Equal(t, "      ", l.colorsIndent)
	assert.Equal(t, -1, l.inline)
}

func TestMergeConfigOneLineColorsInsideExtend(t *testing.T) {
	existing := "module.exports = {\n  theme: {\n    extend: {\n      colors: { brand: \"#fff\" },\n    },\n  },\n}"
	want := strings.Join([]string{
		"module.exports = {",
		"  theme: {",
		"    extend: {",
		`      colors: { brand: "#fff", nocta: { "50": "#fff", "950": "#000" } },`,
		"    },",
		"  },",
		"}",
	}, "\n")

	got, changed := MergeConfig(existing, testTheme, Skeleton{})
	require.True(t, changed)
	assert.Equal(t, want, got)

	again, changed := MergeConfig(got, testTheme, Skeleton{})
	assert.False(t, changed)
	assert.Equal(t, got, again)
}

func TestMergeConfigOneLineTheme(t *testing.T) {
	existing := strings.Join([]string{
		"module.exports = {",
		"  content: [],",
		`  theme: { extend: { colors: { brand: "#fff" } } },`,
		"}",
	}, "\n")
	want := strings.Join([]string{
		"module.exports = {",
		"  content: [],",
		`  theme: { extend: { colors: { brand: "#fff", nocta: { "50": "#fff", "950": "#000" } } } },`,
		"}",
	}, "\n")

	got, changed := MergeConfig(existing, testTheme, Skeleton{})
	require.True(t, changed)
	assert.Equal(t, want, got)
}

func TestMergeConfigOneLineExtendWithoutColors(t *testing.T) {
	existing := "export default {\n  theme: {\n    extend: { spacing: { \"128\": \"32rem\" } },\n  },\n}"

	got, changed := MergeConfig(existing, testTheme, Skeleton{Typed: true})
	require.True(t, changed)
	assert.Contains(t, got, `    extend: { spacing: { "128": "32rem" }, colors: { nocta: { "50": "#fff", "950": "#000" } } },`)
	assert.True(t, strings.HasSuffix(got, "\n  },\n}"))
}

func TestMergeConfigExtendAndColorsOpenTogether(t *testing.T) {
	existing := "module.exports = {\n  theme: {\n    extend: { colors: {\n      brand: \"#fff\",\n    } },\n  },\n}"

	got, changed := MergeConfig(existing, testTheme, Skeleton{})
	assert.False(t, changed)
	assert.Equal(t, existing, got)
}

func TestBraceSpan(t *testing.T) {
	line := `  theme: { extend: { colors: { a: "b" } } },`
	open, close, ok := braceSpan(line, "colors:")
	require.True(t, ok)
	assert.Equal(t, `{ a: "b" }`, line[open:close+1])

	_, _, ok = braceSpan("    extend: {", "extend:")
	assert.False(t, ok)
	_, _, ok = braceSpan("    spacing: {}", "extend:")
	assert.False(t, ok)
}
