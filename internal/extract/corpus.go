package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mwiater/benchtab/internal/dataset"
	"github.com/rs/zerolog/log"
)

// DefaultLogFilename is the name every run writes its log under.
const DefaultLogFilename = "out.txt"

// Discover returns the path of every file called filename at any depth
// below root, sorted.
func Discover(root, filename string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("failed to scan results: %w", err)
	}
	paths, err := doublestar.FilepathGlob(filepath.Join(root, "**", filename), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to scan results: %w", err)
	}
	sort.Strings(paths)
	log.Debug().Str("root", root).Int("logs", len(paths)).Msg("discovered run logs")
	return paths, nil
}

// ExtractAll parses every path. A file that fails to parse is reported in
// errs and skipped; it never prevents the other files from being read.
func ExtractAll(paths []string) (records []Record, errs []error) {
	for _, p := range paths {
		rec, err := ParseFile(p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("skipping run log")
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}

// Rows renders records as interchange rows in dataset.Header order.
func Rows(records []Record) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Row(dataset.Header)
	}
	return rows
}

// ToDataset runs records through the same typed path as a loaded
// interchange file.
func ToDataset(records []Record) (*dataset.Dataset, error) {
	return dataset.FromRows(dataset.Header, Rows(records))
}
