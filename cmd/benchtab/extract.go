// cmd/benchtab/extract.go
package benchtab

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwiater/benchtab/internal/dataset"
	"github.com/mwiater/benchtab/internal/extract"
)

// extractCmd implements 'extract', which turns every run log below the
// results directory into one tab-separated record on stdout.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract run records from the results directory",
	Long: `The 'extract' command walks the configured results directory, parses every
run log (out.txt by default) and writes one tab-separated row per run, preceded by a header.
Logs that cannot be parsed are reported on stderr and skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

// collectRecords discovers and parses the run logs named by the loaded
// configuration. Unparseable logs are logged and left out.
func collectRecords() ([]extract.Record, error) {
	paths, err := extract.Discover(appConfig.ResultsDir, appConfig.LogFilename)
	if err != nil {
		return nil, err
	}
	records, errs := extract.ExtractAll(paths)
	if len(errs) > 0 {
		log.Warn().Int("skipped", len(errs)).Int("parsed", len(records)).Msg("some run logs were skipped")
	}
	return records, nil
}

func runExtract(w io.Writer) error {
	records, err := collectRecords()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return dataset.WriteTSV(w, dataset.Header, extract.Rows(records))
}
