package workflow

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruixen-labs/ruixen-ui/internal/registry"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
)

func TestListGroupsByCategory(t *testing.T) {
	src := buttonRegistry()
	src.categories = map[string]registry.Category{
		"overlay": {Name: "Overlay", Description: "Dialogs and popovers"},
		"forms":   {Name: "Forms", Description: "Inputs and buttons"},
	}

	var out bytes.Buffer
	l := &Lister{Source: src, Printer: ui.NewPrinter(&out)}
	require.NoError(t, l.Run(context.Background()))

	text := out.String()
	forms := strings.Index(text, "Forms:")
	overlay := strings.Index(text, "Overlay:")
	require.NotEqual(t, -1, forms)
	require.NotEqual(t, -1, overlay)
	assert.Less(t, forms, overlay, "categories are listed in key order")

	assert.Contains(t, text, "Variants: primary, ghost")
	assert.Contains(t, text, "Sizes: sm, md")
	assert.Contains(t, text, "npx ruixen-ui add <component-name>")
	assert.Contains(t, text, "npx ruixen-ui add button")

	button := strings.Index(text, "  button")
	dialog := strings.Index(text, "  dialog")
	assert.Less(t, forms, button)
	assert.Less(t, overlay, dialog)
}

func TestListEmptyCatalog(t *testing.T) {
	var out bytes.Buffer
	l := &Lister{Source: &fakeSource{}, Printer: ui.NewPrinter(&out)}
	require.NoError(t, l.Run(context.Background()))
	assert.NotContains(t, out.String(), "Examples:")
}
