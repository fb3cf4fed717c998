// cmd/benchtab/report.go
package benchtab

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/benchtab/internal/dataset"
	"github.com/mwiater/benchtab/internal/report"
)

const (
	formatTSV    = "tsv"
	formatPretty = "pretty"
)

var reportFormat string

// reportCmd implements 'report <path> <mode>'.
var reportCmd = &cobra.Command{
	Use:   "report <path> <mode>",
	Short: "Run a report mode over an extracted results file",
	Long: `The 'report' command loads a tab-separated results file produced by 'extract'
and prints the requested report: BASE, AGGREGATE, FULL_TABLE, TABLE or RUNTIME_TABLE.
Run 'benchtab list modes' for a description of each mode.`,
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
		return runReport(cmd.OutOrStdout(), ds, mode, reportFormat)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", formatTSV, "output format (tsv or pretty)")
	rootCmd.AddCommand(reportCmd)
}

// loadDataset reads the results file at path.
func loadDataset(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open results file: %w", err)
	}
	defer f.Close()

	ds, err := dataset.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// runReport evaluates mode over ds and writes the table in format.
// An empty dataset produces no output.
func runReport(w io.Writer, ds *dataset.Dataset, mode report.Mode, format string) error {
	if format != formatTSV && format != formatPretty {
		return fmt.Errorf("unknown format %q (expected %s or %s)", format, formatTSV, formatPretty)
	}
	if ds.Len() == 0 {
		return nil
	}
	tbl, err := report.NewEngine(appConfig.ReportConfig()).Run(ds, mode)
	if err != nil {
		return err
	}
	if format == formatPretty {
		return tbl.WritePretty(w)
	}
	return tbl.WriteTSV(w)
}
