package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// some eval_raw cells carry every evaluation line of a run
const scanBufferCapacity = 1024 * 1024

var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// Load reads the interchange format: the first non-blank line is the
// header, every following non-blank line one record. Cells are
// tab-separated; an empty cell is null.
func Load(r io.Reader) (*Dataset, error) {
	scn := bufio.NewScanner(r)
	buf := make([]byte, scanBufferCapacity)
	scn.Buffer(buf, scanBufferCapacity)

	var ds *Dataset
	row := 0
	for scn.Scan() {
		line := strings.Trim(scn.Text(), " \r\n")
		if line == "" {
			continue
		}
		cells := strings.Split(line, "\t")
		if ds == nil {
			ds = New(cells)
			continue
		}
		row++
		if err := ds.AppendStrings(row, cells); err != nil {
			return nil, err
		}
	}
	if err := scn.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	if ds == nil {
		ds = New(nil)
	}
	return ds, nil
}

// WriteTSV writes header and rows as tab-joined lines. Tabs and line
// breaks inside cells are replaced by spaces so every record stays on one
// line.
func WriteTSV(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	if err := writeLine(bw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeLine(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeLine(w *bufio.Writer, cells []string) error {
	for i, c := range cells {
		if i > 0 {
			if err := w.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(cellReplacer.Replace(c)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
