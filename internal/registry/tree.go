package registry

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PrintTree prints the dependency tree with box-drawing characters.
func PrintTree(w io.Writer, node *DependencyNode, prefix string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	label := node.Name
	if node.Deduped {
		label += " (already included)"
	}

	// For the root node, don't print a connector.
	if prefix == "" {
		fmt.Fprintf(w, "  %s\n", label)
	} else {
		fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, label)
	}

	childPrefix := prefix
	if prefix != "" {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	} else {
		childPrefix = " "
	}

	for i, child := range node.Children {
		PrintTree(w, child, childPrefix, i == len(node.Children)-1)
	}
}

// PrintPlan prints the trees followed by a summary of what will be written.
func PrintPlan(w io.Writer, roots []*DependencyNode, components []Component) {
	for _, root := range roots {
		PrintTree(w, root, "", true)
	}
	fmt.Fprintln(w)

	files := 0
	packages := make(map[string]bool)
	for _, c := range components {
		files += len(c.Files)
		for pkg := range c.Dependencies {
			packages[pkg] = true
		}
	}

	noun := "components"
	if len(components) == 1 {
		noun = "component"
	}
	fmt.Fprintf(w, "  Install: %d %s (%d files)\n", len(components), noun, files)

	if len(packages) > 0 {
		names := make([]string, 0, len(packages))
		for p := range packages {
			names = append(names, p)
		}
		sort.Strings(names)
		fmt.Fprintf(w, "  Packages required: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintln(w)
}
