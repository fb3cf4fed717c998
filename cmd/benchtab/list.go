// cmd/benchtab/list.go
package benchtab

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group and acts as a namespace
// for subcommands that print reference information.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing commands, modes and settings",
	Long:  `The 'list' command groups subcommands that print the command tree, the report modes or the effective configuration. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
