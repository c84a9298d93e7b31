package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
	"github.com/ruixen-labs/ruixen-ui/internal/config"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo is the --json payload, including the active registry.
type versionInfo struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	Commit            string `json:"commit"`
	Date              string `json:"date"`
	RegistryURL       string `json:"registry_url"`
	ComponentsBaseURL string `json:"components_base_url"`
	ConfigFile        string `json:"config_file"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			info := versionInfo{
				Name:              branding.CLIName(),
				Version:           buildVersion,
				Commit:            buildCommit,
				Date:              buildDate,
				RegistryURL:       config.RegistryURL(),
				ComponentsBaseURL: config.ComponentsBaseURL(),
				ConfigFile:        config.FilePath(),
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		fmt.Fprintf(out, "registry: %s\n", config.RegistryURL())
		return nil
	},
}
