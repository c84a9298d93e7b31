package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/theme"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
	"github.com/ruixen-labs/ruixen-ui/internal/workflow"
)

var (
	initTheme string
	initYes   bool
)

func init() {
	initCmd.Flags().StringVar(&initTheme, "theme", "", "Color theme ("+strings.Join(theme.Names(), ", ")+")")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Use the default theme without asking")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the project",
	Long: `Initialize ` + branding.DisplayName() + ` in the current project.

Detects the framework and Tailwind CSS version, writes ` + branding.ConfigFile() + `,
installs the support packages, creates the cn() utility and adds the selected
theme's design tokens.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if initTheme != "" && !theme.Exists(initTheme) {
		return fmt.Errorf("unknown theme %q (available: %s)", initTheme, strings.Join(theme.Names(), ", "))
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	var prompter workflow.Prompter = ui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	if initYes || initTheme != "" {
		prompter = ui.FixedPrompter{Theme: initTheme}
	}

	in := &workflow.Initializer{
		Root:      s.root,
		Prompter:  prompter,
		Installer: s.installer(),
		Printer:   s.printer,
		Logger:    s.logger,
	}
	_, err = in.Run(cmd.Context())
	return err
}
