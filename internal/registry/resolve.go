package registry

import (
	"context"
	"fmt"
)

// Resolver expands component requests into install order.
type Resolver struct {
	source ComponentSource
}

// NewResolver creates a Resolver that looks components up in source.
func NewResolver(source ComponentSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve returns the requested components and their internal dependencies,
// each exactly once, with every dependency ahead of its dependents. Cyclic
// edges are dropped. A missing component anywhere in the graph fails the
// whole call.
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]Component, error) {
	roots, err := r.BuildDependencyTree(ctx, names)
	if err != nil {
		return nil, err
	}
	return FlattenTree(roots), nil
}

// BuildDependencyTree builds one tree per requested name. A name is looked up
// and expanded only the first time it is reached across all trees; later
// occurrences become Deduped leaves.
func (r *Resolver) BuildDependencyTree(ctx context.Context, names []string) ([]*DependencyNode, error) {
	seen := make(map[string]bool)
	roots := make([]*DependencyNode, 0, len(names))
	for _, name := range names {
		node, err := r.buildNode(ctx, name, seen)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}
	return roots, nil
}

func (r *Resolver) buildNode(ctx context.Context, name string, seen map[string]bool) (*DependencyNode, error) {
	node := &DependencyNode{Name: name}

	if seen[name] {
		node.Deduped = true
		return node, nil
	}
	seen[name] = true

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	comp, err := r.source.Component(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}
	node.Component = &comp

	for _, dep := range comp.InternalDependencies {
		child, err := r.buildNode(ctx, dep, seen)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// FlattenTree returns the components of the trees in dependency-first order
// with duplicates removed.
func FlattenTree(roots []*DependencyNode) []Component {
	seen := make(map[string]bool)
	var result []Component
	for _, root := range roots {
		flattenRecursive(root, seen, &result)
	}
	return result
}

func flattenRecursive(node *DependencyNode, seen map[string]bool, result *[]Component) {
	if node == nil || node.Deduped || seen[node.Name] {
		return
	}

	// Process children first (dependencies before dependents).
	for _, child := range node.Children {
		flattenRecursive(child, seen, result)
	}

	if node.Component != nil {
		seen[node.Name] = true
		*result = append(*result, *node.Component)
	}
}
