package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/benchtab/internal/dataset"
)

func writeLog(t *testing.T, root, rel, text string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(text), 0o644))
	return p
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	b := writeLog(t, root, "experiment::quality/example::b/engine::PSL/out.txt", "")
	a := writeLog(t, root, "experiment::quality/example::a/engine::PSL/iteration::0/out.txt", "")
	top := writeLog(t, root, "out.txt", "")
	writeLog(t, root, "experiment::quality/example::a/engine::PSL/other.txt", "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir", "out.txt"), 0o755))

	paths, err := Discover(root, DefaultLogFilename)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b, top}, paths)
	assert.IsNonDecreasing(t, paths)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), DefaultLogFilename)
	assert.Error(t, err)
}

func TestExtractAll_SkipsMalformedFiles(t *testing.T) {
	root := t.TempDir()
	good := writeLog(t, root, "experiment::quality/example::a/engine::PSL/out.txt",
		"1 -- Starting inference engine.\n4 -- Starting evaluation.\n")
	bad := writeLog(t, root, "experiment::quality/example::a/engine::Tuffy/out.txt",
		"Evaluation Result -- Metric: F1, Relation: R, Value: ???\n")

	records, errs := ExtractAll([]string{bad, good})
	require.Len(t, records, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, good, records[0].Path)
	assert.Equal(t, int64(3), records[0].Runtime)

	ds, err := ToDataset(records)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	engine, _ := ds.Get(ds.Rows[0], dataset.ColEngine).Text()
	assert.Equal(t, "PSL", engine)
}
