package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/benchtab/internal/dataset"
)

const runPath = "results/experiment::quality/example::citeseer/engine::PSL/split::3/iteration::1/out.txt"

func parse(t *testing.T, text string) Record {
	t.Helper()
	rec, err := ParseLog(runPath, strings.NewReader(text))
	require.NoError(t, err)
	return rec
}

func TestIdentifiers(t *testing.T) {
	ids := Identifiers(runPath)
	assert.Equal(t, map[string]string{
		"experiment": "quality",
		"example":    "citeseer",
		"engine":     "PSL",
		"split":      "3",
		"iteration":  "1",
	}, ids)
	assert.Empty(t, Identifiers("results/plain/out.txt"))
}

func TestIdentifiers_UnicodeValues(t *testing.T) {
	ids := Identifiers("results/experiment::quality/example::café/engine::PSL_2/out.txt")
	assert.Equal(t, "café", ids["example"])
	assert.Equal(t, "PSL_2", ids["engine"])
}

func TestParseLog_LearningRun(t *testing.T) {
	rec := parse(t, `
1000 -- Starting learning engine.
some engine chatter
1040 -- Loading inference data.
1050 -- Starting inference engine.
1075 -- Starting evaluation.
Evaluation Result -- Metric: F1, Relation: HASCAT, Value: 0.8125
Evaluation Result -- Metric: AUROC, Relation: HASCAT, Value: 0.9
Evaluation Result -- Metric: Accuracy, Relation: LINK, Value: 0.5
`)
	assert.False(t, rec.Timeout)
	assert.Equal(t, int64(40), rec.LearnTime)
	assert.Equal(t, int64(25), rec.InferTime)
	assert.Equal(t, rec.LearnTime+rec.InferTime, rec.Runtime)
	require.Len(t, rec.Evals, 3)
	assert.Equal(t, "HASCAT: F1", rec.Evals[0].ID())
	assert.Equal(t, 0.8125, rec.Evals[0].Value)
	assert.Equal(t, "HASCAT: AUROC", rec.Evals[1].ID())
}

func TestParseLog_InferenceOnly(t *testing.T) {
	rec := parse(t, "  200 -- Starting inference engine.  \n\n230 -- Starting evaluation.\n")
	assert.Equal(t, int64(0), rec.LearnTime)
	assert.Equal(t, int64(30), rec.InferTime)
	assert.Equal(t, int64(30), rec.Runtime)
}

func TestParseLog_LastMarkerWins(t *testing.T) {
	rec := parse(t, "100 -- Starting inference engine.\n150 -- Starting inference engine.\n170 -- Starting evaluation.\n")
	assert.Equal(t, int64(20), rec.InferTime)
}

func TestParseLog_TimeoutOnly(t *testing.T) {
	rec := parse(t, "-- TIMEOUT --\n")
	assert.True(t, rec.Timeout)
	assert.Equal(t, TimedOut, rec.Runtime)
	assert.Equal(t, TimedOut, rec.LearnTime)
	assert.Equal(t, TimedOut, rec.InferTime)
}

func TestParseLog_TimeoutWithPartialTimestamps(t *testing.T) {
	rec := parse(t, "10 -- Starting learning engine.\n20 -- Loading inference data.\n25 -- Starting inference engine.\n-- TIMEOUT --\n")
	assert.True(t, rec.Timeout)
	assert.Equal(t, TimedOut, rec.Runtime)
	assert.Equal(t, TimedOut, rec.LearnTime)
	assert.Equal(t, TimedOut, rec.InferTime)
}

func TestParseLog_Incomplete(t *testing.T) {
	rec := parse(t, "nothing useful here\n-- TIMEOUT -- later\n")
	assert.False(t, rec.Timeout)
	assert.Equal(t, Incomplete, rec.Runtime)
	assert.Equal(t, Incomplete, rec.LearnTime)
	assert.Equal(t, Incomplete, rec.InferTime)
}

func TestParseLog_MarkersAreCaseSensitiveAndAnchored(t *testing.T) {
	rec := parse(t, "100 -- starting inference engine.\nx 120 -- Starting evaluation.\n")
	assert.Equal(t, Incomplete, rec.Runtime)
}

func TestParseLog_MalformedEvalValue(t *testing.T) {
	_, err := ParseLog(runPath, strings.NewReader("ok\nEvaluation Result -- Metric: F1, Relation: R, Value: high\n"))
	var malformed *MalformedLogError
	require.True(t, errors.As(err, &malformed), "got %v", err)
	assert.Equal(t, runPath, malformed.Path)
	assert.Equal(t, 2, malformed.Line)
	assert.Contains(t, err.Error(), runPath+":2")
}

func TestParseLog_NonFiniteEvalValue(t *testing.T) {
	_, err := ParseLog(runPath, strings.NewReader("Evaluation Result -- Metric: F1, Relation: R, Value: NaN\n"))
	var malformed *MalformedLogError
	assert.True(t, errors.As(err, &malformed))
}

func TestParseLog_LearningRunMissingInferenceMarkers(t *testing.T) {
	_, err := ParseLog(runPath, strings.NewReader("1 -- Starting learning engine.\n9 -- Starting evaluation.\n"))
	var malformed *MalformedLogError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Line)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "out.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRecord_Row(t *testing.T) {
	rec := parse(t, `
5 -- Starting inference engine.
20 -- Starting evaluation.
Evaluation Result -- Metric: F1, Relation: LINK, Value: 0.75
Evaluation Result -- Metric: AUPRC, Relation: LINK, Value: 1
Evaluation Result -- Metric: AUROC, Relation: LINK, Value: 0.5
`)
	row := rec.Row(dataset.Header)
	got := map[string]string{}
	for i, c := range dataset.Header {
		got[c] = row[i]
	}
	assert.Equal(t, "quality", got[dataset.ColExperiment])
	assert.Equal(t, "1", got[dataset.ColIteration])
	assert.Equal(t, "15", got[dataset.ColRuntime])
	assert.Equal(t, "0", got[dataset.ColLearnTime])
	assert.Equal(t, "false", got[dataset.ColTimeout])
	assert.Equal(t, "LINK: F1", got[dataset.ColEval0ID])
	assert.Equal(t, "0.75", got[dataset.ColEval0Value])
	assert.Equal(t, "LINK: AUPRC", got[dataset.ColEval1ID])
	assert.Equal(t, "1.0", got[dataset.ColEval1Value])

	evals, err := ParseEvalRaw(got[dataset.ColEvalRaw])
	require.NoError(t, err)
	assert.Equal(t, rec.Evals, evals)
}

func TestRecord_RowWithoutIdentifiersOrEvals(t *testing.T) {
	rec, err := ParseLog("out.txt", strings.NewReader(""))
	require.NoError(t, err)
	row := rec.Row(dataset.Header)
	for i, c := range dataset.Header {
		switch c {
		case dataset.ColRuntime, dataset.ColLearnTime, dataset.ColInferTime:
			assert.Equal(t, "-1", row[i])
		case dataset.ColTimeout:
			assert.Equal(t, "false", row[i])
		default:
			assert.Empty(t, row[i], c)
		}
	}
}

func TestParseEvalRaw_Errors(t *testing.T) {
	for _, raw := range []string{"nope", `[["a","b"]]`, `[[1,"b",0.5]]`} {
		_, err := ParseEvalRaw(raw)
		assert.Error(t, err, raw)
	}
	evals, err := ParseEvalRaw("")
	assert.NoError(t, err)
	assert.Nil(t, evals)
}
