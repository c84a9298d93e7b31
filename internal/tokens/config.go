package tokens

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/scaffold"
	"github.com/ruixen-labs/ruixen-ui/internal/theme"
)

var (
	// emptyBlock matches a one-line empty object such as "extend: {},".
	emptyBlock = regexp.MustCompile(`^(extend|colors):\s*\{\s*\}(,?)$`)
	emptyTheme = regexp.MustCompile(`theme:\s*\{\s*\}`)
)

// scanState is the position of the line scanner within the configuration.
type scanState int

const (
	stateOutside scanState = iota
	stateInExtend
	stateInColors
)

// layout records what the scanner found. Line indexes are -1 when absent.
type layout struct {
	extendOpen, extendClose int
	colorsOpen, colorsClose int
	extendIndent            string
	colorsIndent            string

	// inline is a one-line empty extend or colors block, expanded in place.
	inline       int
	inlineKey    string
	inlineIndent string
	inlineComma  string

	// oneLine is an extend or colors block with content that opens and
	// closes on the same line. The entries are spliced inside its braces.
	oneLine    int
	oneLineKey string
}

func scanConfig(lines []string) layout {
	l := layout{extendOpen: -1, extendClose: -1, colorsOpen: -1, colorsClose: -1, inline: -1, oneLine: -1}
	state := stateOutside

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch state {
		case stateOutside:
			if !opensBlock(trimmed, "extend:") {
				continue
			}
			if m := emptyBlock.FindStringSubmatch(trimmed); m != nil && m[1] == "extend" {
				l.inline, l.inlineKey, l.inlineIndent, l.inlineComma = i, "extend", indentOf(line, "  "), m[2]
				return l
			}
			if _, _, ok := braceSpan(line, "extend:"); ok {
				l.oneLine, l.oneLineKey = i, "extend"
				return l
			}
			if strings.Contains(trimmed, "colors:") {
				// extend and colors both left open on one line.
				return l
			}
			l.extendOpen = i
			l.extendIndent = indentOf(line, "  ")
			state = stateInExtend

		case stateInExtend:
			if opensBlock(trimmed, "colors:") {
				if m := emptyBlock.FindStringSubmatch(trimmed); m != nil && m[1] == "colors" {
					l.inline, l.inlineKey, l.inlineIndent, l.inlineComma = i, "colors", indentOf(line, "    "), m[2]
					return l
				}
				if _, _, ok := braceSpan(line, "colors:"); ok {
					l.oneLine, l.oneLineKey = i, "colors"
					return l
				}
				l.colorsOpen = i
				l.colorsIndent = indentOf(line, "    ")
				state = stateInColors
				continue
			}
			if closesBlock(trimmed) && len(indentOf(line, "")) <= len(l.extendIndent) {
				l.extendClose = i
				return l
			}

		case stateInColors:
			if closesBlock(trimmed) && len(indentOf(line, "")) <= len(l.colorsIndent) {
				l.colorsClose = i
				state = stateInExtend
			}
		}
	}
	return l
}

// Skeleton describes the configuration written when the project has none.
type Skeleton struct {
	Typed   bool     // TypeScript variant
	Content []string // content globs
}

// MergeConfig inserts the theme's color scale into a Tailwind configuration
// as extend.colors.<namespace>. An empty input is replaced by the rendered
// skeleton first. The bool result is false when the tokens are already
// present or no insertion point was recognized.
func MergeConfig(existing string, t theme.Theme, skel Skeleton) (string, bool) {
	ns := branding.TokenNamespace()
	if strings.Contains(existing, ns+":") || strings.Contains(existing, `"`+ns+`"`) {
		return existing, false
	}

	content := existing
	if strings.TrimSpace(content) == "" {
		content = skel.render()
	}

	lines := strings.Split(content, "\n")
	l := scanConfig(lines)

	switch {
	case l.inline >= 0:
		return strings.Join(expandInline(lines, l, t), "\n"), true

	case l.oneLine >= 0:
		merged, ok := spliceOneLine(lines[l.oneLine], l.oneLineKey, t)
		if !ok {
			return existing, false
		}
		lines[l.oneLine] = merged
		return strings.Join(lines, "\n"), true

	case l.colorsClose >= 0:
		terminateLast(lines, l.colorsOpen, l.colorsClose)
		entries := colorLines(t, l.colorsIndent+"  ")
		return strings.Join(splice(lines, l.colorsClose, entries), "\n"), true

	case l.extendClose >= 0:
		terminateLast(lines, l.extendOpen, l.extendClose)
		block := []string{l.extendIndent + "  colors: {"}
		block = append(block, colorLines(t, l.extendIndent+"    ")...)
		block = append(block, l.extendIndent+"  }")
		return strings.Join(splice(lines, l.extendClose, block), "\n"), true
	}

	if loc := emptyTheme.FindStringIndex(content); loc != nil {
		replacement := "theme: {\n    extend: {\n      colors: {\n" +
			strings.Join(colorLines(t, "        "), "\n") +
			"\n      }\n    }\n  }"
		return content[:loc[0]] + replacement + content[loc[1]:], true
	}

	return existing, false
}

// colorLines renders "<namespace>: { ... }" with the given indent.
func colorLines(t theme.Theme, indent string) []string {
	lines := make([]string, 0, len(t.Colors)+2)
	lines = append(lines, indent+branding.TokenNamespace()+": {")
	for i, s := range t.Colors {
		sep := ","
		if i == len(t.Colors)-1 {
			sep = ""
		}
		lines = append(lines, fmt.Sprintf("%s  %q: %q%s", indent, s.Key, s.Value, sep))
	}
	return append(lines, indent+"}")
}

func expandInline(lines []string, l layout, t theme.Theme) []string {
	ind := l.inlineIndent
	block := []string{ind + l.inlineKey + ": {"}
	if l.inlineKey == "extend" {
		block = append(block, ind+"  colors: {")
		block = append(block, colorLines(t, ind+"    ")...)
		block = append(block, ind+"  }")
	} else {
		block = append(block, colorLines(t, ind+"  ")...)
	}
	block = append(block, ind+"}"+l.inlineComma)

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:l.inline]...)
	out = append(out, block...)
	return append(out, lines[l.inline+1:]...)
}

// spliceOneLine adds the color scale inside the braces of a key whose value
// opens and closes on line. An extend value without its own colors key gets
// a new one.
func spliceOneLine(line, key string, t theme.Theme) (string, bool) {
	open, close, ok := braceSpan(line, key+":")
	if !ok {
		return line, false
	}
	entry := inlineColors(t)
	if key == "extend" {
		body := line[open : close+1]
		co, cc, ok := braceSpan(body, "colors:")
		switch {
		case ok:
			open, close = open+co, open+cc
		case strings.Contains(body, "colors:"):
			return line, false
		default:
			entry = "colors: { " + entry + " }"
		}
	}

	inner := strings.TrimSpace(line[open+1 : close])
	if inner != "" && !strings.HasSuffix(inner, ",") {
		inner += ","
	}
	if inner != "" {
		inner += " "
	}
	return line[:open+1] + " " + inner + entry + " " + line[close:], true
}

// inlineColors renders "<namespace>: { ... }" on a single line.
func inlineColors(t theme.Theme) string {
	pairs := make([]string, 0, len(t.Colors))
	for _, s := range t.Colors {
		pairs = append(pairs, fmt.Sprintf("%q: %q", s.Key, s.Value))
	}
	return branding.TokenNamespace() + ": { " + strings.Join(pairs, ", ") + " }"
}

// braceSpan finds the braces delimiting the value of key within line. ok is
// false when the key is absent or its value continues past the line.
func braceSpan(line, key string) (open, close int, ok bool) {
	k := strings.Index(line, key)
	if k < 0 {
		return -1, -1, false
	}
	rel := strings.IndexByte(line[k:], '{')
	if rel < 0 {
		return -1, -1, false
	}
	open = k + rel
	depth := 0
	for i := open; i < len(line); i++ {
		switch line[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return open, i, true
			}
		}
	}
	return open, -1, false
}

// terminateLast appends a comma to the last content line between open and
// close (exclusive) when it does not already end a list item.
func terminateLast(lines []string, open, close int) {
	for i := close - 1; i > open; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || isComment(trimmed) {
			continue
		}
		if !strings.HasSuffix(trimmed, ",") && !strings.HasSuffix(trimmed, "{") && !strings.HasSuffix(trimmed, "[") {
			lines[i] = strings.TrimRight(lines[i], " \t") + ","
		}
		return
	}
}

// splice inserts block before lines[at].
func splice(lines []string, at int, block []string) []string {
	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	return append(out, lines[at:]...)
}

func opensBlock(trimmed, key string) bool {
	return strings.Contains(trimmed, key) && strings.Contains(trimmed, "{")
}

func closesBlock(trimmed string) bool {
	return trimmed == "}" || trimmed == "},"
}

// indentOf returns the leading whitespace of line, or def when there is none.
func indentOf(line, def string) string {
	ind := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	if ind == "" {
		return def
	}
	return ind
}

func (skel Skeleton) render() string {
	s, err := scaffold.TailwindConfig(skel.Typed, skel.Content)
	if err != nil {
		// Templates are embedded; a failure here is a build defect.
		panic(err)
	}
	return s
}
