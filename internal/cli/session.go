package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ruixen-labs/ruixen-ui/internal/config"
	"github.com/ruixen-labs/ruixen-ui/internal/logging"
	"github.com/ruixen-labs/ruixen-ui/internal/pkgmanager"
	"github.com/ruixen-labs/ruixen-ui/internal/registry"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
)

// session carries the collaborators a command needs.
type session struct {
	root    string
	printer *ui.Printer
	logger  *logging.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	return &session{
		root:    root,
		printer: ui.NewPrinter(cmd.OutOrStdout()),
		logger:  logger.With("root", root),
	}, nil
}

func projectRoot() (string, error) {
	if flagCwd != "" {
		abs, err := filepath.Abs(flagCwd)
		if err != nil {
			return "", fmt.Errorf("resolving project directory: %w", err)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

func newLogger(cmd *cobra.Command) (*logging.Logger, error) {
	level := config.LogLevel()
	if flagVerbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", config.KeyLogLevel, level, err)
	}
	return logger, nil
}

func (s *session) registry() *registry.Client {
	s.logger.Debug("registry configured", "url", config.RegistryURL(), "files", config.ComponentsBaseURL())
	return registry.NewClient(config.RegistryURL(), config.ComponentsBaseURL())
}

func (s *session) installer() *pkgmanager.Installer {
	inst := &pkgmanager.Installer{Root: s.root}
	s.logger.Debug("package manager selected", "manager", string(inst.ManagerFor()))
	return inst
}
