package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/config"
	"github.com/ruixen-labs/ruixen-ui/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagVerbose bool
	flagCwd     string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies UI components from the registry into your React project,
installs the packages they need and sets up the theme's design tokens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostic detail to stderr")
	rootCmd.PersistentFlags().StringVarP(&flagCwd, "cwd", "C", "", "Project directory (defaults to the current directory)")
}

// Execute runs the root command with build info injected via ldflags. A
// returned error has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		ui.NewPrinter(os.Stderr).Error("Error: %v", err)
		return err
	}
	return nil
}
