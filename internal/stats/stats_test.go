package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
		want   *float64
	}{
		{name: "empty sample", sample: nil, want: nil},
		{name: "single value", sample: []float64{5}, want: ptr(5.0)},
		{name: "mixed values", sample: []float64{10, 20, 90}, want: ptr(40.0)},
		{name: "negative values", sample: []float64{-5, 5}, want: ptr(0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.sample)
			assertFloatPtr(t, "Mean", got, tt.want)
		})
	}
}

func TestStdDevSample(t *testing.T) {
	if got := StdDevSample(nil); got != nil {
		t.Errorf("StdDevSample(nil) = %v, want nil", *got)
	}
	if got := StdDevSample([]float64{7}); got != nil {
		t.Errorf("StdDevSample(single) = %v, want nil", *got)
	}

	got := StdDevSample([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if got == nil {
		t.Fatal("StdDevSample returned nil for valid sample")
	}
	// Sample variance of this set is 32/7.
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(*got-want) > 1e-9 {
		t.Errorf("StdDevSample = %v, want %v", *got, want)
	}
}

func TestQuantile(t *testing.T) {
	sample := []float64{15, 20, 35, 40, 50}

	tests := []struct {
		name string
		q    float64
		want float64
	}{
		{name: "median", q: 0.5, want: 35},
		{name: "first quartile", q: 0.25, want: 20},
		{name: "third quartile", q: 0.75, want: 40},
		{name: "minimum", q: 0, want: 15},
		{name: "maximum", q: 1, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(sample, tt.q)
			if got == nil {
				t.Fatalf("Quantile(%v) = nil", tt.q)
			}
			if *got != tt.want {
				t.Errorf("Quantile(%v) = %v, want %v", tt.q, *got, tt.want)
			}
		})
	}
}

func TestQuantileInterpolation(t *testing.T) {
	// Even-length sample: the median falls between ranks.
	got := Quantile([]float64{10, 20, 30, 40}, 0.5)
	if got == nil {
		t.Fatal("Quantile returned nil")
	}
	if *got != 25 {
		t.Errorf("Quantile(0.5) = %v, want 25", *got)
	}
}

func TestQuantileMonotonic(t *testing.T) {
	samples := [][]float64{
		{10, 20, 90},
		{0, 0, 0, 1},
		{5},
		{-10, 3, 3, 17, 42, 42, 100},
	}

	for _, sample := range samples {
		q1 := Quantile(sample, 0.25)
		median := Quantile(sample, 0.5)
		q3 := Quantile(sample, 0.75)
		if q1 == nil || median == nil || q3 == nil {
			t.Fatalf("Quantile returned nil for non-empty sample %v", sample)
		}
		if *q1 > *median || *median > *q3 {
			t.Errorf("quantiles not monotonic for %v: q1=%v median=%v q3=%v", sample, *q1, *median, *q3)
		}
	}
}

func TestQuantileInvalid(t *testing.T) {
	if got := Quantile(nil, 0.5); got != nil {
		t.Errorf("Quantile(empty) = %v, want nil", *got)
	}
	if got := Quantile([]float64{1, 2}, 1.5); got != nil {
		t.Errorf("Quantile(q>1) = %v, want nil", *got)
	}
	if got := Quantile([]float64{1, 2}, -0.1); got != nil {
		t.Errorf("Quantile(q<0) = %v, want nil", *got)
	}
}

func TestPearson(t *testing.T) {
	// Perfect positive correlation.
	got := Pearson([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 40})
	if got == nil {
		t.Fatal("Pearson returned nil for correlated series")
	}
	if math.Abs(*got-1) > 1e-9 {
		t.Errorf("Pearson = %v, want 1", *got)
	}

	// Perfect negative correlation.
	got = Pearson([]float64{1, 2, 3, 4}, []float64{40, 30, 20, 10})
	if got == nil {
		t.Fatal("Pearson returned nil for anti-correlated series")
	}
	if math.Abs(*got+1) > 1e-9 {
		t.Errorf("Pearson = %v, want -1", *got)
	}
}

func TestPearsonUndefined(t *testing.T) {
	if got := Pearson([]float64{1, 2}, []float64{1, 2, 3}); got != nil {
		t.Errorf("Pearson(mismatched) = %v, want nil", *got)
	}
	if got := Pearson([]float64{1}, []float64{2}); got != nil {
		t.Errorf("Pearson(short) = %v, want nil", *got)
	}
	// Zero variance in one series makes the coefficient undefined.
	if got := Pearson([]float64{5, 5, 5}, []float64{1, 2, 3}); got != nil {
		t.Errorf("Pearson(constant series) = %v, want nil", *got)
	}
}

func ptr(v float64) *float64 {
	return &v
}

func assertFloatPtr(t *testing.T, name string, got, want *float64) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("%s = %v, want %v", name, fmtPtr(got), fmtPtr(want))
	}
	if got != nil && math.Abs(*got-*want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func fmtPtr(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
