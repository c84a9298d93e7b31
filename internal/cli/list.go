package cli

import (
	"github.com/spf13/cobra"

	"github.com/ruixen-labs/ruixen-ui/internal/workflow"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available components",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		l := &workflow.Lister{Source: s.registry(), Printer: s.printer, Logger: s.logger}
		return l.Run(cmd.Context())
	},
}
