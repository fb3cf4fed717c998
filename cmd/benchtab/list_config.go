// cmd/benchtab/list_config.go
package benchtab

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// configCmd implements 'list config', which dumps the effective settings
// after defaults, config file and environment have been merged.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `The 'config' subcommand prints the configuration benchtab would run with, after applying compiled-in defaults, the optional config file and BENCHTAB_* environment variables.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := pp.Fprintln(cmd.OutOrStdout(), appConfig)
		return err
	},
}

func init() {
	listCmd.AddCommand(configCmd)
}
