package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// TimeOfDayStats is one row of the departure-time breakdown.
type TimeOfDayStats struct {
	Bucket           string
	FlightCount      int
	AvgDelay         float64
	OnTimePercentage float64
}

// DayOfWeekStats is one row of the day-of-week breakdown. Every day is
// reported even when it has no flights.
type DayOfWeekStats struct {
	DayOfWeek        string // Monday, Tuesday, etc.
	DayNumber        int    // 0=Sunday ... 6=Saturday
	FlightCount      int
	AvgDelay         float64
	CancellationRate float64
	OnTimePercentage float64
}

// CancellationBreakdown is one row of the cancellation-reason view.
type CancellationBreakdown struct {
	Code       string
	Reason     string
	Count      int
	Percentage float64 // Share of all cancellations
}

// cancellationReasons maps dataset cancellation codes to display names.
var cancellationReasons = map[string]string{
	"A": "Carrier",
	"B": "Weather",
	"C": "NAS",
	"D": "Security",
}

// TimeOfDayReport aggregates departures by time-of-day bucket, in fixed
// Morning/Afternoon/Evening order.
func (a *Analyzer) TimeOfDayReport(ctx context.Context) ([]TimeOfDayStats, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for time-of-day report: %w", err)
	}

	rows := aggregate(records, func(r *models.FlightRecord) ([]string, bool) {
		return []string{TimeOfDayBucket(r.ScheduledDep.Hour())}, true
	}, depDelaySample, 0)

	byBucket := make(map[string]AggregateRow, len(rows))
	for _, row := range rows {
		byBucket[row.Key[0]] = row
	}

	var out []TimeOfDayStats
	for _, bucket := range timeOfDayBuckets {
		row, ok := byBucket[bucket]
		if !ok {
			continue
		}
		ts := TimeOfDayStats{
			Bucket:           bucket,
			FlightCount:      row.Count,
			OnTimePercentage: row.OnTimeRate,
		}
		if row.AvgDelay != nil {
			ts.AvgDelay = *row.AvgDelay
		}
		out = append(out, ts)
	}

	return out, nil
}

// DayOfWeekReport aggregates flights by day of week, Sunday through
// Saturday.
func (a *Analyzer) DayOfWeekReport(ctx context.Context) ([]DayOfWeekStats, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for day-of-week report: %w", err)
	}

	dayNames := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	rows := aggregate(records, func(r *models.FlightRecord) ([]string, bool) {
		return []string{dayNames[int(r.FlightDate.Weekday())]}, true
	}, depDelaySample, 0)

	byDay := make(map[string]AggregateRow, len(rows))
	for _, row := range rows {
		byDay[row.Key[0]] = row
	}

	out := make([]DayOfWeekStats, 0, 7)
	for i := 0; i < 7; i++ {
		ds := DayOfWeekStats{
			DayOfWeek: dayNames[time.Weekday(i)],
			DayNumber: i,
		}
		if row, ok := byDay[dayNames[i]]; ok {
			ds.FlightCount = row.Count
			ds.CancellationRate = row.CancelRate
			ds.OnTimePercentage = row.OnTimeRate
			if row.AvgDelay != nil {
				ds.AvgDelay = *row.AvgDelay
			}
		}
		out = append(out, ds)
	}

	return out, nil
}

// CancellationReport breaks cancellations down by recorded reason code,
// most common first. Cancellations with no code are reported as Unknown.
func (a *Analyzer) CancellationReport(ctx context.Context) ([]CancellationBreakdown, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for cancellation report: %w", err)
	}

	counts := make(map[string]int)
	total := 0
	for _, r := range records {
		if !r.Cancelled {
			continue
		}
		code := ""
		if r.CancellationCode != nil {
			code = *r.CancellationCode
		}
		counts[code]++
		total++
	}

	out := make([]CancellationBreakdown, 0, len(counts))
	for code, count := range counts {
		reason, ok := cancellationReasons[code]
		if !ok {
			reason = "Unknown"
		}
		out = append(out, CancellationBreakdown{
			Code:       code,
			Reason:     reason,
			Count:      count,
			Percentage: float64(count) * 100 / float64(total),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Code < out[j].Code
	})

	return out, nil
}
