// Package stats provides the descriptive-statistics helpers used by the
// analytics engine. Undefined results (empty samples, zero variance) are
// reported as nil rather than NaN so callers can omit them explicitly.
package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean of the sample, or nil for an empty sample.
func Mean(sample []float64) *float64 {
	m, err := mstats.Mean(sample)
	if err != nil {
		return nil
	}
	return &m
}

// StdDevSample returns the sample standard deviation, or nil when the
// sample has fewer than two values.
func StdDevSample(sample []float64) *float64 {
	if len(sample) < 2 {
		return nil
	}
	sd, err := mstats.StandardDeviationSample(sample)
	if err != nil {
		return nil
	}
	return &sd
}

// Min returns the smallest value in the sample, or nil for an empty sample.
func Min(sample []float64) *float64 {
	m, err := mstats.Min(sample)
	if err != nil {
		return nil
	}
	return &m
}

// Max returns the largest value in the sample, or nil for an empty sample.
func Max(sample []float64) *float64 {
	m, err := mstats.Max(sample)
	if err != nil {
		return nil
	}
	return &m
}

// Quantile returns the q-th quantile (0 <= q <= 1) of the sample using
// linear interpolation between ranks. Returns nil for an empty sample or
// an out-of-range q.
//
// This does not delegate to the stats library because its Percentile uses
// nearest-rank semantics; the reports require interpolated quartiles.
func Quantile(sample []float64, q float64) *float64 {
	if len(sample) == 0 || q < 0 || q > 1 || math.IsNaN(q) {
		return nil
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return &sorted[lo]
	}

	frac := pos - float64(lo)
	v := sorted[lo] + frac*(sorted[hi]-sorted[lo])
	return &v
}

// Pearson returns the Pearson correlation coefficient between x and y,
// or nil when the coefficient is undefined (mismatched or short series,
// or zero variance in either series).
func Pearson(x, y []float64) *float64 {
	if len(x) != len(y) || len(x) < 2 {
		return nil
	}
	if isConstant(x) || isConstant(y) {
		return nil
	}
	r, err := mstats.Pearson(x, y)
	if err != nil || math.IsNaN(r) {
		return nil
	}
	return &r
}

// isConstant reports whether every value in the series is identical, in
// which case a correlation coefficient is undefined.
func isConstant(series []float64) bool {
	for _, v := range series[1:] {
		if v != series[0] {
			return false
		}
	}
	return true
}
