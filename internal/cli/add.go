package cli

import (
	"github.com/spf13/cobra"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
	"github.com/ruixen-labs/ruixen-ui/internal/workflow"
)

var addYes bool

func init() {
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Overwrite existing files without asking")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <component> [component...]",
	Short: "Add components to the project",
	Long: `Add one or more components and the components they depend on.

Files are written under <components>/ui/ as configured in ` + branding.ConfigFile() + `.
Missing or incompatible npm packages are installed with the project's
package manager.`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.Error("Please specify at least one component name")
		p.Warn("Usage: npx %s add <component1> [component2] [component3] ...", branding.CLIName())
		return nil
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	var prompter workflow.Prompter = ui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	if addYes {
		prompter = ui.FixedPrompter{Overwrite: true}
	}

	a := &workflow.Adder{
		Root:      s.root,
		Source:    s.registry(),
		Prompter:  prompter,
		Installer: s.installer(),
		Printer:   s.printer,
		Logger:    s.logger,
	}
	_, err = a.Run(cmd.Context(), args)
	return err
}
