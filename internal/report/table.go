package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/benchtab/internal/dataset"
)

// Table is a rendered report: a header and rows of nullable cells.
type Table struct {
	Columns []string
	Rows    [][]dataset.Value
}

// Strings returns every row with cells stringified; nulls become "".
func (t *Table) Strings() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		out[i] = cells
	}
	return out
}

// WriteTSV writes the header and rows as tab-separated lines.
func (t *Table) WriteTSV(w io.Writer) error {
	return dataset.WriteTSV(w, t.Columns, t.Strings())
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// WritePretty writes the table with box borders for reading in a terminal.
func (t *Table) WritePretty(w io.Writer) error {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(t.Columns...).
		Rows(t.Strings()...)
	_, err := io.WriteString(w, tbl.String()+"\n")
	return err
}
