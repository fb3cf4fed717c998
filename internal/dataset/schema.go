package dataset

// ColumnType is the declared type of an interchange column.
type ColumnType int

const (
	Text ColumnType = iota
	Bool
	Int
	Float
)

func (t ColumnType) String() string {
	switch t {
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "float"
	default:
		return "text"
	}
}

// Column names of the interchange format.
const (
	ColExperiment = "experiment"
	ColIteration  = "iteration"
	ColExample    = "example"
	ColSplit      = "split"
	ColEngine     = "engine"
	ColRuntime    = "runtime"
	ColLearnTime  = "learn_time"
	ColInferTime  = "infer_time"
	ColTimeout    = "timeout"
	ColEval0ID    = "eval_0_id"
	ColEval0Value = "eval_0_value"
	ColEval1ID    = "eval_1_id"
	ColEval1Value = "eval_1_value"
	ColEvalRaw    = "eval_raw"
)

// Header is the fixed column order written by the extractor.
var Header = []string{
	// identifiers
	ColExperiment,
	ColIteration,
	ColExample,
	ColSplit,
	ColEngine,
	// results
	ColRuntime,
	ColLearnTime,
	ColInferTime,
	ColTimeout,
	// evaluation
	ColEval0ID,
	ColEval0Value,
	ColEval1ID,
	ColEval1Value,
	ColEvalRaw,
}

var columnTypes = map[string]ColumnType{
	ColTimeout:    Bool,
	ColIteration:  Int,
	ColSplit:      Int,
	ColRuntime:    Int,
	ColLearnTime:  Int,
	ColInferTime:  Int,
	ColEval0Value: Float,
	ColEval1Value: Float,
}

// ColumnTypeOf classifies a column by name. The table is fixed; types are
// never inferred from data since nulls would make inference unreliable.
func ColumnTypeOf(name string) ColumnType {
	if t, ok := columnTypes[name]; ok {
		return t
	}
	return Text
}
