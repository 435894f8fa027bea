package analytics

import (
	"testing"
	"time"

	"github.com/flightperf/flightdash/internal/storage/models"
)

func routeKeyFn(r *models.FlightRecord) ([]string, bool) {
	return []string{r.Origin, r.Dest}, true
}

func TestAggregateSupportThreshold(t *testing.T) {
	// Route A has exactly 3 flights, route B has 4.
	var records []*models.FlightRecord
	for i := 0; i < 3; i++ {
		records = append(records, testFlight("AA", "JFK", "LAX", 10))
	}
	for i := 0; i < 4; i++ {
		records = append(records, testFlight("AA", "ORD", "DFW", 10))
	}

	rows := aggregate(records, routeKeyFn, depDelaySample, 3)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (group at the threshold must be excluded)", len(rows))
	}
	if rows[0].Key[0] != "ORD" {
		t.Errorf("surviving group = %v, want ORD-DFW", rows[0].Key)
	}
	if rows[0].Count != 4 {
		t.Errorf("Count = %d, want 4", rows[0].Count)
	}
}

func TestAggregateCancelledExcludedFromSample(t *testing.T) {
	records := []*models.FlightRecord{
		testFlight("AA", "JFK", "LAX", 10),
		testFlight("AA", "JFK", "LAX", 20),
		testFlight("AA", "JFK", "LAX", 90),
		cancelledFlight("AA", "JFK", "LAX", "B"),
	}

	rows := aggregate(records, routeKeyFn, depDelaySample, 0)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]

	// Count includes the cancellation, the delay sample does not.
	if row.Count != 4 {
		t.Errorf("Count = %d, want 4", row.Count)
	}
	if row.AvgDelay == nil || *row.AvgDelay != 40 {
		t.Errorf("AvgDelay = %v, want 40", fmtFloatPtr(row.AvgDelay))
	}
	if row.CancelRate != 25 {
		t.Errorf("CancelRate = %v, want 25", row.CancelRate)
	}
	// Two of four flights departed within 15 minutes and flew.
	if row.OnTimeRate != 50 {
		t.Errorf("OnTimeRate = %v, want 50", row.OnTimeRate)
	}
}

func TestAggregateAllCancelledGroup(t *testing.T) {
	records := []*models.FlightRecord{
		cancelledFlight("AA", "JFK", "LAX", "A"),
		cancelledFlight("AA", "JFK", "LAX", "B"),
	}

	rows := aggregate(records, routeKeyFn, depDelaySample, 0)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.AvgDelay != nil {
		t.Errorf("AvgDelay = %v, want nil for empty delay sample", *row.AvgDelay)
	}
	if row.CancelRate != 100 {
		t.Errorf("CancelRate = %v, want 100", row.CancelRate)
	}
	if row.OnTimeRate != 0 {
		t.Errorf("OnTimeRate = %v, want 0", row.OnTimeRate)
	}
}

func TestAggregateQuartiles(t *testing.T) {
	delays := []float64{15, 20, 35, 40, 50}
	var records []*models.FlightRecord
	for _, d := range delays {
		records = append(records, testFlight("AA", "JFK", "LAX", d))
	}

	rows := aggregate(records, routeKeyFn, depDelaySample, 0)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]

	checks := []struct {
		name string
		got  *float64
		want float64
	}{
		{"Q1", row.Q1, 20},
		{"Median", row.Median, 35},
		{"Q3", row.Q3, 40},
		{"MinDelay", row.MinDelay, 15},
		{"MaxDelay", row.MaxDelay, 50},
		{"AvgDelay", row.AvgDelay, 32},
	}
	for _, c := range checks {
		if c.got == nil {
			t.Errorf("%s = nil, want %v", c.name, c.want)
			continue
		}
		if *c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, *c.got, c.want)
		}
	}
}

func TestClampedDelaySample(t *testing.T) {
	early := testFlight("AA", "JFK", "LAX", -8)
	if v, ok := clampedDelaySample(early); !ok || v != 0 {
		t.Errorf("clampedDelaySample(early) = (%v, %v), want (0, true)", v, ok)
	}

	late := testFlight("AA", "JFK", "LAX", 22)
	if v, ok := clampedDelaySample(late); !ok || v != 22 {
		t.Errorf("clampedDelaySample(late) = (%v, %v), want (22, true)", v, ok)
	}

	if _, ok := clampedDelaySample(cancelledFlight("AA", "JFK", "LAX", "A")); ok {
		t.Error("clampedDelaySample should drop cancelled flights")
	}
}

func TestTimeOfDayBucket(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 5, want: "Morning"},
		{hour: 11, want: "Morning"},
		{hour: 12, want: "Afternoon"},
		{hour: 17, want: "Afternoon"},
		{hour: 18, want: "Evening"},
		{hour: 23, want: "Evening"},
		{hour: 0, want: "Evening"},
		{hour: 4, want: "Evening"},
	}

	for _, tt := range tests {
		if got := TimeOfDayBucket(tt.hour); got != tt.want {
			t.Errorf("TimeOfDayBucket(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestSequenceObservations(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Out of order in the input; positions follow scheduled departure.
	second := flightAt("AA", day, 10, 0, 25)
	first := flightAt("AA", day, 6, 0, 5)
	third := flightAt("AA", day, 18, 30, 40)
	otherDay := flightAt("AA", day.AddDate(0, 0, 1), 6, 0, 12)
	otherCarrier := flightAt("DL", day, 7, 0, 3)
	cancelled := flightAt("AA", day, 8, 0, 0)
	cancelled.Cancelled = true

	obs := sequenceObservations([]*models.FlightRecord{
		second, first, third, otherDay, otherCarrier, cancelled,
	})

	if len(obs) != 5 {
		t.Fatalf("got %d observations, want 5", len(obs))
	}

	byDelay := make(map[float64]seqObservation)
	for _, o := range obs {
		byDelay[o.DepDelay] = o
	}

	tests := []struct {
		delay    float64
		airline  string
		position int
	}{
		{delay: 5, airline: "AA", position: 1},
		{delay: 25, airline: "AA", position: 2},
		{delay: 40, airline: "AA", position: 3},
		{delay: 12, airline: "AA", position: 1}, // next day restarts at 1
		{delay: 3, airline: "DL", position: 1},
	}
	for _, tt := range tests {
		o, ok := byDelay[tt.delay]
		if !ok {
			t.Errorf("no observation with delay %v", tt.delay)
			continue
		}
		if o.Airline != tt.airline || o.Position != tt.position {
			t.Errorf("observation(delay=%v) = {%s pos %d}, want {%s pos %d}",
				tt.delay, o.Airline, o.Position, tt.airline, tt.position)
		}
	}
}

func TestSequenceObservationsPositionCap(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	var records []*models.FlightRecord
	for i := 0; i < maxSequencePosition+5; i++ {
		records = append(records, flightAt("AA", day, 5, i, float64(i)))
	}

	obs := sequenceObservations(records)
	if len(obs) != maxSequencePosition {
		t.Fatalf("got %d observations, want %d", len(obs), maxSequencePosition)
	}
	for _, o := range obs {
		if o.Position > maxSequencePosition {
			t.Errorf("position %d exceeds cap", o.Position)
		}
	}
}

func TestSortByAvgDelayDesc(t *testing.T) {
	rows := []AggregateRow{
		{Key: []string{"low"}, Count: 10, AvgDelay: floatPtr(5)},
		{Key: []string{"undefined"}, Count: 99},
		{Key: []string{"high"}, Count: 10, AvgDelay: floatPtr(50)},
		{Key: []string{"tie-big"}, Count: 40, AvgDelay: floatPtr(20)},
		{Key: []string{"tie-small"}, Count: 4, AvgDelay: floatPtr(20)},
	}

	sortByAvgDelayDesc(rows)

	want := []string{"high", "tie-big", "tie-small", "low", "undefined"}
	for i, w := range want {
		if rows[i].Key[0] != w {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].Key[0], w)
		}
	}
}
