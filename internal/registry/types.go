package registry

// File is one source file of a component.
type File struct {
	Name string `json:"name"`
	Path string `json:"path"` // relative to the components base URL
	Type string `json:"type"`
}

// Component is a registry entry.
type Component struct {
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Category             string              `json:"category"`
	Files                []File              `json:"files"`
	Dependencies         map[string]string   `json:"dependencies"` // package → semver range
	InternalDependencies []string            `json:"internalDependencies,omitempty"`
	Exports              []string            `json:"exports"`
	Props                map[string][]string `json:"props,omitempty"`
	Variants             []string            `json:"variants,omitempty"`
	Sizes                []string            `json:"sizes,omitempty"`
	Features             []string            `json:"features"`
}

// Category groups components for listing.
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
}

// Registry is the decoded registry document.
type Registry struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Version      string               `json:"version"`
	Components   map[string]Component `json:"components"`
	Categories   map[string]Category  `json:"categories"`
	Features     []string             `json:"features"`
	Requirements map[string]string    `json:"requirements"`
}

// ResolvedFile is a component file with its fetched content.
type ResolvedFile struct {
	File
	Content   string
	Component string // owning component name
	Target    string // project-relative destination, set by the caller
}

// DependencyNode represents a node in the dependency tree.
type DependencyNode struct {
	Name      string
	Component *Component
	Children  []*DependencyNode
	Deduped   bool // true if this component was already expanded earlier in the tree
}
