// cmd/benchtab/list_modes.go
package benchtab

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/benchtab/internal/report"
)

var modeNameStyle = lipgloss.NewStyle().Bold(true).Width(16)

// modesCmd implements 'list modes'.
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the report modes with a short description",
	Long:  `The 'modes' subcommand prints every mode accepted by 'report', 'pipeline' and 'browse', one per line with its description.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, m := range report.Modes() {
			if _, err := fmt.Fprintln(w, modeNameStyle.Render(string(m))+m.Description()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(modesCmd)
}
