// internal/report/aggregate.go
// Package: report
package report

import (
	"sort"

	"github.com/mwiater/benchtab/internal/dataset"
	"github.com/mwiater/benchtab/internal/extract"
	"github.com/mwiater/benchtab/internal/stats"
)

// groupColumns is the AGGREGATE grouping (and ordering) key.
var groupColumns = []string{
	dataset.ColExperiment,
	dataset.ColExample,
	dataset.ColEngine,
	dataset.ColEval0ID,
	dataset.ColEval1ID,
}

// metricColumns are reduced to mean/std per group.
var metricColumns = []string{
	dataset.ColRuntime,
	dataset.ColLearnTime,
	dataset.ColInferTime,
	dataset.ColEval0Value,
	dataset.ColEval1Value,
}

// Summary is the mean and sample standard deviation of one metric. Either
// may be null: Mean when the group had no values, Std when it had fewer
// than three.
type Summary struct {
	Mean dataset.Value
	Std  dataset.Value
}

// AggregateRow summarizes one (experiment, example, engine, eval_0_id,
// eval_1_id) group.
type AggregateRow struct {
	Experiment dataset.Value
	Example    dataset.Value
	Engine     dataset.Value
	Eval0ID    dataset.Value
	Eval1ID    dataset.Value

	Count int

	Runtime    Summary
	LearnTime  Summary
	InferTime  Summary
	Eval0Value Summary
	Eval1Value Summary
}

// Metric returns the summary of a metric column by name.
func (a AggregateRow) Metric(column string) (Summary, bool) {
	switch column {
	case dataset.ColRuntime:
		return a.Runtime, true
	case dataset.ColLearnTime:
		return a.LearnTime, true
	case dataset.ColInferTime:
		return a.InferTime, true
	case dataset.ColEval0Value:
		return a.Eval0Value, true
	case dataset.ColEval1Value:
		return a.Eval1Value, true
	}
	return Summary{}, false
}

type groupKey [5]struct {
	valid bool
	s     string
}

type group struct {
	key     []dataset.Value
	count   int
	metrics [5]stats.Stdev
}

// Aggregate groups the base set, minus incomplete runs, and reduces every
// metric. Timed-out runs stay in: their sentinel runtime is averaged in
// with the measured ones. Rows come back ordered by the group key with
// nulls first.
func (e *Engine) Aggregate(ds *dataset.Dataset) []AggregateRow {
	groups := map[groupKey]*group{}
	var order []*group

	for _, row := range e.baseRows(ds) {
		runtime, ok := ds.Get(row, dataset.ColRuntime).Int()
		if !ok || runtime == extract.Incomplete {
			continue
		}

		var k groupKey
		keyVals := make([]dataset.Value, len(groupColumns))
		for i, col := range groupColumns {
			v := ds.Get(row, col)
			keyVals[i] = v
			k[i].valid = v.Valid
			k[i].s = v.String()
		}
		g, ok := groups[k]
		if !ok {
			g = &group{key: keyVals}
			groups[k] = g
			order = append(order, g)
		}

		g.count++
		for i, col := range metricColumns {
			if v, ok := ds.Get(row, col).Number(); ok {
				g.metrics[i].Observe(v)
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		for c := range groupColumns {
			if cmp := dataset.Compare(order[i].key[c], order[j].key[c]); cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})

	out := make([]AggregateRow, 0, len(order))
	for _, g := range order {
		out = append(out, AggregateRow{
			Experiment: g.key[0],
			Example:    g.key[1],
			Engine:     g.key[2],
			Eval0ID:    g.key[3],
			Eval1ID:    g.key[4],
			Count:      g.count,
			Runtime:    summarize(&g.metrics[0]),
			LearnTime:  summarize(&g.metrics[1]),
			InferTime:  summarize(&g.metrics[2]),
			Eval0Value: summarize(&g.metrics[3]),
			Eval1Value: summarize(&g.metrics[4]),
		})
	}
	return out
}

func summarize(s *stats.Stdev) Summary {
	sum := Summary{Mean: dataset.Null(dataset.Float), Std: dataset.Null(dataset.Float)}
	if mean, ok := s.Mean(); ok {
		sum.Mean = dataset.FloatValue(mean)
	}
	if std, ok := s.Finalize(); ok {
		sum.Std = dataset.FloatValue(std)
	}
	return sum
}

// aggregateColumns is the AGGREGATE report header.
var aggregateColumns = []string{
	dataset.ColExperiment,
	dataset.ColExample,
	dataset.ColEngine,
	"aggregate_count",
	"runtime_mean",
	"runtime_std",
	"learn_time_mean",
	"learn_time_std",
	"infer_time_mean",
	"infer_time_std",
	dataset.ColEval0ID,
	"eval_0_value_mean",
	"eval_0_value_std",
	dataset.ColEval1ID,
	"eval_1_value_mean",
	"eval_1_value_std",
}

func aggregateTable(rows []AggregateRow) *Table {
	t := &Table{Columns: append([]string(nil), aggregateColumns...)}
	for _, a := range rows {
		t.Rows = append(t.Rows, []dataset.Value{
			a.Experiment,
			a.Example,
			a.Engine,
			dataset.IntValue(int64(a.Count)),
			a.Runtime.Mean, a.Runtime.Std,
			a.LearnTime.Mean, a.LearnTime.Std,
			a.InferTime.Mean, a.InferTime.Std,
			a.Eval0ID,
			a.Eval0Value.Mean, a.Eval0Value.Std,
			a.Eval1ID,
			a.Eval1Value.Mean, a.Eval1Value.Std,
		})
	}
	return t
}
