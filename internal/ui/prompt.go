package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ruixen-labs/ruixen-ui/internal/theme"
)

// LinePrompter asks questions on a line-oriented terminal.
type LinePrompter struct {
	reader *bufio.Reader
	out    *Printer
}

// NewLinePrompter reads answers from in and writes questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: NewPrinter(out)}
}

// SelectTheme shows a numbered theme menu. An empty answer picks the default
// theme.
func (p *LinePrompter) SelectTheme(themes []theme.Theme) (string, error) {
	if len(themes) == 0 {
		return "", errors.New("no themes to choose from")
	}

	p.out.Blank()
	p.out.Info("Select a color theme:")
	def := 1
	for i, t := range themes {
		suffix := ""
		if t.Name == theme.DefaultName {
			def = i + 1
			suffix = p.out.Dim(" (default)")
		}
		p.out.Plain("  %d. %s - %s%s", i+1, p.out.Accent(t.DisplayName), p.out.Dim(t.Description), suffix)
	}
	fmt.Fprintf(p.out.Writer(), "Choose your theme [%d]: ", def)

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	if line == "" {
		return themes[def-1].Name, nil
	}

	// Accept a theme name as well as its number.
	for _, t := range themes {
		if strings.EqualFold(line, t.Name) {
			return t.Name, nil
		}
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(themes) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(themes))
	}
	return themes[num-1].Name, nil
}

// ConfirmOverwrite asks whether to replace files the caller has already
// listed. The default answer is no.
func (p *LinePrompter) ConfirmOverwrite(paths []string) (bool, error) {
	object := "them"
	if len(paths) == 1 {
		object = "it"
	}
	fmt.Fprintf(p.out.Writer(), "Do you want to overwrite %s? [y/N]: ", object)

	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine returns the next trimmed line. EOF after a partial line is not an
// error.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// FixedPrompter answers without asking. It backs the --yes and --theme flags.
type FixedPrompter struct {
	Theme     string // empty selects the default theme
	Overwrite bool
}

// SelectTheme returns the preset theme.
func (f FixedPrompter) SelectTheme([]theme.Theme) (string, error) {
	if f.Theme == "" {
		return theme.DefaultName, nil
	}
	return f.Theme, nil
}

// ConfirmOverwrite returns the preset answer.
func (f FixedPrompter) ConfirmOverwrite([]string) (bool, error) {
	return f.Overwrite, nil
}
