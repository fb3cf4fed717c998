package report

import (
	"math"
	"sort"

	"github.com/mwiater/benchtab/internal/dataset"
)

// DatasetColumn heads the row-label column of the pivot tables.
const DatasetColumn = "Dataset"

// pivot describes one engine-per-column table.
type pivot struct {
	// label is paired with the example to form a row.
	label string
	// value is the metric shown in the cells.
	value string
	// engines are the columns, in order.
	engines []string
	// excludeExamples drops rows; when set, rows without an example go too.
	excludeExamples map[string]struct{}
	// showLabel renders "<example> (<label>)" instead of the bare example.
	showLabel bool
}

type pivotRow struct {
	example dataset.Value
	label   dataset.Value
}

func (e *Engine) pivotTable(ds *dataset.Dataset, p pivot) *Table {
	aggregates := e.Aggregate(ds)

	seen := map[[2]string]struct{}{}
	var rows []pivotRow
	for _, row := range e.baseRows(ds) {
		example := ds.Get(row, dataset.ColExample)
		label := ds.Get(row, p.label)
		if !label.Valid {
			continue
		}
		if p.excludeExamples != nil {
			name, ok := example.Text()
			if !ok {
				continue
			}
			if _, skip := p.excludeExamples[name]; skip {
				continue
			}
		}
		k := [2]string{nullMarked(example), label.String()}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		rows = append(rows, pivotRow{example: example, label: label})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := dataset.Compare(rows[i].example, rows[j].example); c != 0 {
			return c < 0
		}
		return dataset.Compare(rows[i].label, rows[j].label) < 0
	})

	t := &Table{Columns: append([]string{DatasetColumn}, p.engines...)}
	for _, r := range rows {
		cells := make([]dataset.Value, 0, len(t.Columns))
		cells = append(cells, p.rowLabel(r))
		for _, engine := range p.engines {
			cells = append(cells, p.cell(aggregates, r.example, engine))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func nullMarked(v dataset.Value) string {
	if !v.Valid {
		return "\x00"
	}
	return v.String()
}

func (p pivot) rowLabel(r pivotRow) dataset.Value {
	example, ok := r.example.Text()
	if !ok {
		return dataset.Null(dataset.Text)
	}
	if !p.showLabel {
		return dataset.TextValue(example)
	}
	return dataset.TextValue(example + " (" + r.label.String() + ")")
}

// cell formats the first aggregate row, in aggregate order, matching
// example and engine. The label plays no part in the lookup.
func (p pivot) cell(aggregates []AggregateRow, example dataset.Value, engine string) dataset.Value {
	for _, a := range aggregates {
		name, ok := a.Engine.Text()
		if !ok || name != engine || !a.Example.Equal(example) {
			continue
		}
		sum, _ := a.Metric(p.value)
		mean, okMean := sum.Mean.Number()
		std, okStd := sum.Std.Number()
		if !okMean || !okStd {
			return dataset.Null(dataset.Text)
		}
		return dataset.TextValue(formatRounded(mean) + " ± " + formatRounded(std))
	}
	return dataset.Null(dataset.Text)
}

// formatRounded rounds half away from zero to two decimals.
func formatRounded(v float64) string {
	return dataset.FormatFloat(math.Round(v*100) / 100)
}
