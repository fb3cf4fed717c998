// cmd/benchtab/browse.go
package benchtab

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/benchtab/internal/browse"
	"github.com/mwiater/benchtab/internal/report"
)

// startBrowser is replaced in tests so no terminal program is started.
var startBrowser = browse.Run

// browseCmd implements 'browse <path> <mode>'.
var browseCmd = &cobra.Command{
	Use:   "browse <path> <mode>",
	Short: "Browse a report in an interactive table",
	Long: `The 'browse' command computes a report like 'report' does and shows it in a
scrollable terminal table. Use the arrow keys to move, enter to show every column of the
selected row, and q or esc to quit.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := report.ParseMode(args[1])
		if err != nil {
			return err
		}
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		tbl, err := report.NewEngine(appConfig.ReportConfig()).Run(ds, mode)
		if err != nil {
			return err
		}
		return startBrowser(tbl, string(mode))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
