package analytics

import (
	"sort"
	"strings"

	"github.com/flightperf/flightdash/internal/stats"
	"github.com/flightperf/flightdash/internal/storage/models"
)

// AggregateRow holds the descriptive statistics for one group of flights.
// Rows are request-scoped and never persisted.
type AggregateRow struct {
	Key   []string // Group key values in key-function order
	Count int      // All flights in the group, cancelled included

	// Delay statistics over the group's delay sample. A cancelled
	// flight's delay fields are not counted, so the sample may be
	// smaller than Count. Nil means undefined (empty sample).
	AvgDelay    *float64
	StdDevDelay *float64
	Q1          *float64
	Median      *float64
	Q3          *float64
	MinDelay    *float64
	MaxDelay    *float64

	CancelRate float64 // Percentage of the group's flights that were cancelled
	OnTimeRate float64 // Percentage with dep_delay <= 15 and not cancelled
}

// keyFunc derives the group key for a record. Returning ok=false drops
// the record from the grouping entirely.
type keyFunc func(r *models.FlightRecord) (key []string, ok bool)

// valueFunc extracts the delay sample value for a record. Returning
// ok=false keeps the record in the group count but out of the sample.
type valueFunc func(r *models.FlightRecord) (v float64, ok bool)

// depDelaySample is the standard delay sample: departure delay of
// non-cancelled flights.
func depDelaySample(r *models.FlightRecord) (float64, bool) {
	if r.Cancelled {
		return 0, false
	}
	return r.DepDelay, true
}

// clampedDelaySample counts early and on-schedule departures as zero
// delay, matching the route/airline performance averages.
func clampedDelaySample(r *models.FlightRecord) (float64, bool) {
	if r.Cancelled {
		return 0, false
	}
	if r.DepDelay < 0 {
		return 0, true
	}
	return r.DepDelay, true
}

// aggregate groups records by key and computes per-group statistics.
// Groups whose flight count does not exceed minSupport are excluded;
// a group exactly at the threshold is dropped. Output preserves the
// order in which groups first appear in the input, so rankings applied
// afterwards keep a stable underlying order for ties.
func aggregate(records []*models.FlightRecord, key keyFunc, value valueFunc, minSupport int) []AggregateRow {
	type group struct {
		key       []string
		count     int
		cancelled int
		onTime    int
		sample    []float64
	}

	groups := make(map[string]*group)
	var order []string

	for _, r := range records {
		kv, ok := key(r)
		if !ok {
			continue
		}
		id := strings.Join(kv, "\x1f")
		g := groups[id]
		if g == nil {
			g = &group{key: kv}
			groups[id] = g
			order = append(order, id)
		}

		g.count++
		if r.Cancelled {
			g.cancelled++
		} else if r.DepDelay <= 15 {
			g.onTime++
		}
		if v, ok := value(r); ok {
			g.sample = append(g.sample, v)
		}
	}

	rows := make([]AggregateRow, 0, len(order))
	for _, id := range order {
		g := groups[id]
		if g.count <= minSupport {
			continue
		}

		row := AggregateRow{
			Key:         g.key,
			Count:       g.count,
			AvgDelay:    stats.Mean(g.sample),
			StdDevDelay: stats.StdDevSample(g.sample),
			Q1:          stats.Quantile(g.sample, 0.25),
			Median:      stats.Quantile(g.sample, 0.5),
			Q3:          stats.Quantile(g.sample, 0.75),
			MinDelay:    stats.Min(g.sample),
			MaxDelay:    stats.Max(g.sample),
			CancelRate:  float64(g.cancelled) * 100 / float64(g.count),
			OnTimeRate:  float64(g.onTime) * 100 / float64(g.count),
		}
		rows = append(rows, row)
	}

	return rows
}

// sortByAvgDelayDesc ranks rows by average delay descending, breaking
// ties by flight count descending. Rows with no defined average sort last.
func sortByAvgDelayDesc(rows []AggregateRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		ai, aj := rows[i].AvgDelay, rows[j].AvgDelay
		switch {
		case ai == nil:
			return false
		case aj == nil:
			return true
		case *ai != *aj:
			return *ai > *aj
		}
		return rows[i].Count > rows[j].Count
	})
}

// TimeOfDayBucket assigns a departure hour to its fixed display bucket.
// Hours 5-11 are Morning, 12-17 Afternoon, everything else Evening.
func TimeOfDayBucket(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return "Morning"
	case hour >= 12 && hour <= 17:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// timeOfDayBuckets is the fixed display order for time-of-day reports.
var timeOfDayBuckets = []string{"Morning", "Afternoon", "Evening"}

// seqObservation is one flight's position within its carrier's daily
// rotation, paired with the departure delay it accrued.
type seqObservation struct {
	Airline  string
	Position int
	DepDelay float64
}

// maxSequencePosition bounds cascade analysis to the first flights of a
// carrier's day; later positions are too sparse to compare.
const maxSequencePosition = 20

// sequenceObservations orders each carrier's non-cancelled flights within
// a calendar day by scheduled departure and assigns ascending positions
// starting at 1. Positions beyond maxSequencePosition are dropped.
func sequenceObservations(records []*models.FlightRecord) []seqObservation {
	type dayKey struct {
		airline string
		date    string
	}

	days := make(map[dayKey][]*models.FlightRecord)
	var order []dayKey
	for _, r := range records {
		if r.Cancelled {
			continue
		}
		k := dayKey{airline: r.Airline, date: r.FlightDate.Format("2006-01-02")}
		if _, seen := days[k]; !seen {
			order = append(order, k)
		}
		days[k] = append(days[k], r)
	}

	var obs []seqObservation
	for _, k := range order {
		flights := days[k]
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].ScheduledDep.Before(flights[j].ScheduledDep)
		})
		for i, f := range flights {
			pos := i + 1
			if pos > maxSequencePosition {
				break
			}
			obs = append(obs, seqObservation{Airline: k.airline, Position: pos, DepDelay: f.DepDelay})
		}
	}

	return obs
}
