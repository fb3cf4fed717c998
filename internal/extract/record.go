package extract

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mwiater/benchtab/internal/dataset"
)

// Sentinel values stored in runtime, learn_time and infer_time when no
// elapsed time could be measured.
const (
	Incomplete int64 = -1
	TimedOut   int64 = -2
)

// maxEvals is the number of evaluation results promoted to eval_N columns.
const maxEvals = 2

// Eval is one "Evaluation Result" line.
type Eval struct {
	Relation string
	Metric   string
	Value    float64
}

// ID is the eval_N_id form, "<relation>: <metric>".
func (e Eval) ID() string {
	return e.Relation + ": " + e.Metric
}

// Record is the outcome of one run log.
type Record struct {
	Path string
	// Identifiers holds every key::value segment found in Path.
	Identifiers map[string]string

	Timeout   bool
	Runtime   int64
	LearnTime int64
	InferTime int64

	Evals []Eval
}

// Row renders the record as interchange cells in header order. Unknown
// columns and missing identifiers are empty (null).
func (r Record) Row(header []string) []string {
	row := make([]string, len(header))
	for i, col := range header {
		row[i] = r.cell(col)
	}
	return row
}

func (r Record) cell(col string) string {
	switch col {
	case dataset.ColRuntime:
		return strconv.FormatInt(r.Runtime, 10)
	case dataset.ColLearnTime:
		return strconv.FormatInt(r.LearnTime, 10)
	case dataset.ColInferTime:
		return strconv.FormatInt(r.InferTime, 10)
	case dataset.ColTimeout:
		return strconv.FormatBool(r.Timeout)
	case dataset.ColEvalRaw:
		return FormatEvalRaw(r.Evals)
	}
	for n := 0; n < maxEvals; n++ {
		switch col {
		case fmt.Sprintf("eval_%d_id", n):
			if n < len(r.Evals) {
				return r.Evals[n].ID()
			}
			return ""
		case fmt.Sprintf("eval_%d_value", n):
			if n < len(r.Evals) {
				return dataset.FormatFloat(r.Evals[n].Value)
			}
			return ""
		}
	}
	return r.Identifiers[col]
}

// FormatEvalRaw serializes all evaluations as a JSON array of
// [relation, metric, value] triples. No evaluations give "".
func FormatEvalRaw(evals []Eval) string {
	if len(evals) == 0 {
		return ""
	}
	triples := make([][3]any, len(evals))
	for i, e := range evals {
		triples[i] = [3]any{e.Relation, e.Metric, e.Value}
	}
	b, err := json.Marshal(triples)
	if err != nil {
		// only reachable with non-finite values, which the parser rejects
		return ""
	}
	return string(b)
}

// ParseEvalRaw is the inverse of FormatEvalRaw.
func ParseEvalRaw(raw string) ([]Eval, error) {
	if raw == "" {
		return nil, nil
	}
	var triples [][]any
	if err := json.Unmarshal([]byte(raw), &triples); err != nil {
		return nil, fmt.Errorf("failed to decode eval_raw: %w", err)
	}
	evals := make([]Eval, 0, len(triples))
	for i, t := range triples {
		if len(t) != 3 {
			return nil, fmt.Errorf("failed to decode eval_raw: entry %d has %d items", i, len(t))
		}
		relation, ok1 := t[0].(string)
		metric, ok2 := t[1].(string)
		value, ok3 := t[2].(float64)
		if !ok1 || !ok2 || !ok3 {
			return nil, fmt.Errorf("failed to decode eval_raw: entry %d is not [relation, metric, value]", i)
		}
		evals = append(evals, Eval{Relation: relation, Metric: metric, Value: value})
	}
	return evals, nil
}
