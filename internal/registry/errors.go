package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrComponentNotFound is matched by every *ComponentNotFoundError.
	ErrComponentNotFound = errors.New("component not found")

	ErrRegistryUnavailable      = errors.New("registry unavailable")
	ErrComponentFileUnavailable = errors.New("component file unavailable")
	ErrInvalidRegistry          = errors.New("invalid registry document")
)

// ComponentNotFoundError names a component missing from the registry.
type ComponentNotFoundError struct {
	Name string
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %q not found", e.Name)
}

func (e *ComponentNotFoundError) Is(target error) bool {
	return target == ErrComponentNotFound
}
