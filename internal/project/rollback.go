package project

import (
	"os"
	"path/filepath"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
)

// initArtifacts lists the files init may create, relative to the project root.
func initArtifacts() []string {
	return []string{
		branding.ConfigFile(),
		"tailwind.config.js",
		"tailwind.config.ts",
		"lib/utils.ts",
		"src/lib/utils.ts",
		"app/lib/utils.ts",
	}
}

// Checkpoint remembers which init artifacts existed before init ran.
type Checkpoint struct {
	root    string
	existed map[string]bool
}

// NewCheckpoint records the current state of the project at root.
func NewCheckpoint(root string) *Checkpoint {
	cp := &Checkpoint{root: root, existed: make(map[string]bool)}
	for _, rel := range initArtifacts() {
		if _, err := os.Lstat(filepath.Join(root, rel)); err == nil {
			cp.existed[rel] = true
		}
	}
	return cp
}

// Rollback deletes init artifacts created since the checkpoint. Deletion
// errors are ignored. It returns the paths that were removed.
func (c *Checkpoint) Rollback() []string {
	var removed []string
	for _, rel := range initArtifacts() {
		if c.existed[rel] {
			continue
		}
		full := filepath.Join(c.root, rel)
		if _, err := os.Lstat(full); err != nil {
			continue
		}
		if err := os.Remove(full); err == nil {
			removed = append(removed, rel)
		}
	}
	return removed
}
