package workflow

import (
	"context"

	"github.com/ruixen-labs/ruixen-ui/internal/registry"
	"github.com/ruixen-labs/ruixen-ui/internal/theme"
)

// Prompter asks the user the questions the workflows need answered.
type Prompter interface {
	SelectTheme(themes []theme.Theme) (string, error)
	ConfirmOverwrite(paths []string) (bool, error)
}

// Installer adds packages to the project.
type Installer interface {
	Install(ctx context.Context, packages map[string]string) error
}

// ComponentFetcher resolves components and downloads their files.
type ComponentFetcher interface {
	registry.ComponentSource
	registry.FileSource
}

// Catalog lists the registry contents.
type Catalog interface {
	Components(ctx context.Context) ([]registry.Component, error)
	Categories(ctx context.Context) (map[string]registry.Category, error)
}

// Outcome is how a workflow ended when it did not fail.
type Outcome string

const (
	Initialized          Outcome = "initialized"
	AlreadyInitialized   Outcome = "already-initialized"
	TailwindMissing      Outcome = "tailwind-missing"
	UnsupportedFramework Outcome = "unsupported-framework"
	Added                Outcome = "added"
	NotInitialized       Outcome = "not-initialized"
	Cancelled            Outcome = "cancelled"
)

// State is a step of the init workflow.
type State int

const (
	StateUninitialized State = iota
	StateDetecting
	StateThemeSelection
	StateConfigWritten
	StateDependenciesInstalled
	StateTokensAdded
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateUninitialized:         "uninitialized",
	StateDetecting:             "detecting",
	StateThemeSelection:        "theme-selection",
	StateConfigWritten:         "config-written",
	StateDependenciesInstalled: "dependencies-installed",
	StateTokensAdded:           "tokens-added",
	StateDone:                  "done",
	StateFailed:                "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
