package stats

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func relEqual(t *testing.T, want, got float64) {
	t.Helper()
	tol := 1e-9 * math.Max(1, math.Abs(want))
	assert.InDelta(t, want, got, tol)
}

func TestStdev_Empty(t *testing.T) {
	var s Stdev
	_, ok := s.Mean()
	assert.False(t, ok)
	_, ok = s.Finalize()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count())
}

func TestStdev_SingleValueHasNoStd(t *testing.T) {
	var s Stdev
	s.Observe(42)
	mean, ok := s.Mean()
	require.True(t, ok)
	assert.Equal(t, 42.0, mean)
	_, ok = s.Finalize()
	assert.False(t, ok)
}

func TestStdev_TwoValuesHaveNoStd(t *testing.T) {
	for _, pair := range [][2]float64{{10, 20}, {7, 7}} {
		var s Stdev
		s.ObserveAll(pair[0], pair[1])
		mean, ok := s.Mean()
		require.True(t, ok)
		assert.Equal(t, (pair[0]+pair[1])/2, mean)
		_, ok = s.Finalize()
		assert.False(t, ok, "pair %v", pair)
	}
}

func TestStdev_ThreeValues(t *testing.T) {
	var s Stdev
	s.ObserveAll(10, 20, 30)
	mean, _ := s.Mean()
	std, ok := s.Finalize()
	require.True(t, ok)
	assert.Equal(t, 20.0, mean)
	relEqual(t, 10.0, std)
}

func TestStdev_MeanIsExactQuotient(t *testing.T) {
	values := []float64{3, 5, 7, 11, 13, 17}
	var s Stdev
	s.ObserveAll(values...)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean, ok := s.Mean()
	require.True(t, ok)
	assert.Equal(t, sum/float64(len(values)), mean)
	assert.Equal(t, "9.333333333333334", strconv.FormatFloat(mean, 'f', -1, 64))
}

func TestStdev_MatchesTwoPass(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 3; n < 60; n += 7 {
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.NormFloat64()*25 + 300
		}
		var s Stdev
		s.ObserveAll(values...)

		wantMean, wantStd := stat.MeanStdDev(values, nil)
		gotMean, _ := s.Mean()
		gotStd, ok := s.Finalize()
		require.True(t, ok)
		relEqual(t, wantMean, gotMean)
		relEqual(t, wantStd, gotStd)
	}
}

func TestStdev_LargeMagnitudeRuntimes(t *testing.T) {
	// Epoch-sized values wreck the sum-of-squares formula.
	base := 1.7e9
	values := []float64{base + 4, base + 7, base + 13, base + 16}
	var s Stdev
	s.ObserveAll(values...)
	std, ok := s.Finalize()
	require.True(t, ok)
	relEqual(t, stat.StdDev([]float64{4, 7, 13, 16}, nil), std)
}

func TestStdev_OrderInvariant(t *testing.T) {
	values := []float64{3.5, 900, -2, -2, 17.25, 64, 0.125}
	var a Stdev
	a.ObserveAll(values...)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		perm := make([]float64, len(values))
		for j, k := range rng.Perm(len(values)) {
			perm[j] = values[k]
		}
		var b Stdev
		b.ObserveAll(perm...)

		ma, _ := a.Mean()
		mb, _ := b.Mean()
		sa, _ := a.Finalize()
		sb, _ := b.Finalize()
		relEqual(t, ma, mb)
		relEqual(t, sa, sb)
	}
}
