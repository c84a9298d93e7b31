package tokens

import (
	"fmt"
	"strings"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/theme"
)

// cssVarPrefix is the custom property prefix of every generated color.
func cssVarPrefix() string {
	return "--color-" + branding.TokenNamespace() + "-"
}

// CSSBlock renders the theme as a Tailwind v4 @theme block.
func CSSBlock(t theme.Theme) string {
	var b strings.Builder
	b.WriteString("@theme {\n")
	for _, s := range t.Colors {
		fmt.Fprintf(&b, "  %s%s: %s;\n", cssVarPrefix(), s.Key, s.Value)
	}
	b.WriteString("}")
	return b.String()
}

// MergeCSS inserts the theme's @theme block into a stylesheet. The block goes
// after the last @import of the leading import section, surrounded by blank
// lines, or at the top of the file when there are no imports. The bool
// result is false when the stylesheet already carries the tokens.
func MergeCSS(existing string, t theme.Theme) (string, bool) {
	if strings.Contains(existing, "@theme") && strings.Contains(existing, cssVarPrefix()) {
		return existing, false
	}

	block := CSSBlock(t)
	lines := strings.Split(existing, "\n")

	last := lastImport(lines)
	if last < 0 {
		return block + "\n\n" + existing, true
	}

	out := make([]string, 0, len(lines)+3)
	out = append(out, lines[:last+1]...)
	out = append(out, "", block, "")
	out = append(out, lines[last+1:]...)
	return strings.Join(out, "\n"), true
}

// lastImport returns the index of the last @import line in the leading run of
// imports, blank lines and comments, or -1.
func lastImport(lines []string) int {
	last := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "@import"):
			last = i
		case trimmed == "", isComment(trimmed):
		default:
			return last
		}
	}
	return last
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "//")
}
