// Package report aggregates a results dataset into grouped statistics and
// engine comparison tables.
package report

import (
	"github.com/mwiater/benchtab/internal/dataset"
)

// Engine answers report queries over a dataset.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine for cfg. An empty Experiment falls back to
// DefaultExperiment.
func NewEngine(cfg Config) *Engine {
	if cfg.Experiment == "" {
		cfg.Experiment = DefaultExperiment
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Run executes one report mode.
func (e *Engine) Run(ds *dataset.Dataset, mode Mode) (*Table, error) {
	switch mode {
	case ModeBase:
		return &Table{
			Columns: append([]string(nil), ds.Columns...),
			Rows:    e.baseRows(ds),
		}, nil
	case ModeAggregate:
		return aggregateTable(e.Aggregate(ds)), nil
	case ModeFullTable:
		return e.pivotTable(ds, pivot{
			label:     dataset.ColEval0ID,
			value:     dataset.ColEval0Value,
			engines:   e.cfg.EngineAllowList,
			showLabel: true,
		}), nil
	case ModeTable:
		return e.pivotTable(ds, pivot{
			label:           dataset.ColEval0ID,
			value:           dataset.ColEval0Value,
			engines:         e.cfg.TableEngines(),
			excludeExamples: toSet(e.cfg.ExampleExcludeList),
			showLabel:       true,
		}), nil
	case ModeRuntimeTable:
		return e.pivotTable(ds, pivot{
			label:           dataset.ColExample,
			value:           dataset.ColRuntime,
			engines:         e.cfg.TableEngines(),
			excludeExamples: toSet(e.cfg.ExampleExcludeList),
		}), nil
	}
	return nil, &UnknownModeError{Mode: string(mode)}
}

// baseRows returns the rows of the configured experiment, in input order.
func (e *Engine) baseRows(ds *dataset.Dataset) [][]dataset.Value {
	var rows [][]dataset.Value
	for _, row := range ds.Rows {
		if exp, ok := ds.Get(row, dataset.ColExperiment).Text(); ok && exp == e.cfg.Experiment {
			rows = append(rows, row)
		}
	}
	return rows
}
