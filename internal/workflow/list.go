package workflow

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/logging"
	"github.com/ruixen-labs/ruixen-ui/internal/registry"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
)

// Lister prints the registry catalog grouped by category.
type Lister struct {
	Source  Catalog
	Printer *ui.Printer
	Logger  *logging.Logger
}

// Run fetches the catalog and prints it. Categories appear in key order.
func (l *Lister) Run(ctx context.Context) error {
	p := l.Printer
	if p == nil {
		p = ui.NewPrinter(io.Discard)
	}
	logger := l.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	components, err := l.Source.Components(ctx)
	if err != nil {
		return fmt.Errorf("fetching components: %w", err)
	}
	categories, err := l.Source.Categories(ctx)
	if err != nil {
		return fmt.Errorf("fetching categories: %w", err)
	}
	logger.Debug("catalog fetched", "components", len(components), "categories", len(categories))

	byCategory := make(map[string][]registry.Component)
	for _, c := range components {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p.Blank()
	p.Info("Available %s components:", branding.CLIName())
	p.Blank()

	for _, key := range keys {
		cat := categories[key]
		p.Warn("%s:", cat.Name)
		p.Muted("  %s", cat.Description)
		p.Blank()

		for _, c := range byCategory[key] {
			p.Success("  %s", strings.ToLower(c.Name))
			p.Muted("    %s", c.Description)
			if len(c.Variants) > 0 {
				p.Plain("  Variants: %s", strings.Join(c.Variants, ", "))
			}
			if len(c.Sizes) > 0 {
				p.Plain("  Sizes: %s", strings.Join(c.Sizes, ", "))
			}
			p.Blank()
		}
	}

	p.Info("Add a component:")
	p.Muted("  npx %s add <component-name>", branding.CLIName())
	if len(components) > 0 {
		p.Blank()
		p.Info("Examples:")
		p.Muted("  npx %s add %s", branding.CLIName(), components[0].Name)
	}
	return nil
}
