// cmd/benchtab/list_commands.go
package benchtab

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listAllCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

type commandInfo struct {
	path        string
	description string
}

// listAllCommands writes every command path below root with its short
// description, padded into two columns.
func listAllCommands(w io.Writer, root *cobra.Command) error {
	entries := collectCommandData(root, "", "")

	width := 0
	for _, e := range entries {
		width = max(width, len(e.path))
	}

	if _, err := fmt.Fprintln(w, "Commands and Subcommands:"); err != nil {
		return err
	}
	for _, e := range entries {
		pad := strings.Repeat(" ", width-len(e.path)+2)
		if _, err := fmt.Fprintf(w, "  %s%s%s\n", e.path, pad, e.description); err != nil {
			return err
		}
	}
	return nil
}

// collectCommandData walks the command tree depth first and flattens it
// into path/description pairs, indenting each level by two spaces.
func collectCommandData(cmd *cobra.Command, parentPath, indent string) []commandInfo {
	path := cmd.Name()
	if parentPath != "" {
		path = parentPath + " " + cmd.Name()
	}

	out := []commandInfo{{path: indent + path, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		if sub.Hidden {
			continue
		}
		out = append(out, collectCommandData(sub, path, indent+"  ")...)
	}
	return out
}
