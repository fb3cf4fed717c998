// cmd/benchtab/pipeline.go
package benchtab

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/benchtab/internal/extract"
	"github.com/mwiater/benchtab/internal/report"
)

var pipelineFormat string

// pipelineCmd implements 'pipeline <mode>': extract followed by report
// without writing the intermediate results file.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline <mode>",
	Short: "Extract the results directory and report in one step",
	Long: `The 'pipeline' command runs 'extract' over the configured results directory and
feeds the records straight into 'report' with the given mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := report.ParseMode(args[0])
		if err != nil {
			return err
		}
		records, err := collectRecords()
		if err != nil {
			return err
		}
		ds, err := extract.ToDataset(records)
		if err != nil {
			return err
		}
		return runReport(cmd.OutOrStdout(), ds, mode, pipelineFormat)
	},
}

func init() {
	pipelineCmd.Flags().StringVarP(&pipelineFormat, "format", "f", formatTSV, "output format (tsv or pretty)")
	rootCmd.AddCommand(pipelineCmd)
}
