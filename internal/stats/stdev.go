// internal/stats/stdev.go
// Package: stats
package stats

import "math"

// Stdev is a single-pass mean/variance accumulator (Welford).
// The zero value is ready to use. Values are fed with Observe and the
// sample standard deviation is read with Finalize.
//
// In the usual formulation the counter k starts at 1 before any value is
// seen; here n = k - 1 is stored instead, so the zero value needs no
// constructor. The divisor S/(n-1) is S/(k-2). A std needs at least three
// values; two give null.
//
// The running Welford mean only feeds the variance update. Mean reports
// the exact sum / n.
type Stdev struct {
	mean float64
	sq   float64
	sum  float64
	n    int
}

// Observe folds one value into the accumulator.
func (s *Stdev) Observe(v float64) {
	delta := v - s.mean
	s.n++
	s.sum += v
	s.mean += delta / float64(s.n)
	s.sq += delta * (v - s.mean)
}

// ObserveAll folds every value of values, in order.
func (s *Stdev) ObserveAll(values ...float64) {
	for _, v := range values {
		s.Observe(v)
	}
}

// Count returns the number of observed values.
func (s *Stdev) Count() int {
	return s.n
}

// Mean returns sum / n. ok is false when nothing was observed.
func (s *Stdev) Mean() (mean float64, ok bool) {
	if s.n == 0 {
		return 0, false
	}
	return s.sum / float64(s.n), true
}

// Finalize returns the sample standard deviation (n-1 divisor).
// ok is false with fewer than three observed values.
func (s *Stdev) Finalize() (std float64, ok bool) {
	if s.n < 3 {
		return 0, false
	}
	return math.Sqrt(s.sq / float64(s.n-1)), true
}
