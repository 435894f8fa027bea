package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/flightperf/flightdash/internal/stats"
	"github.com/flightperf/flightdash/internal/storage/models"
)

// MonthlyTrend is one row of the year-over-year trend view: a carrier's
// average delay for one calendar month, with the delta against the same
// month a year earlier. YoYDelta is nil for the first year of a series.
type MonthlyTrend struct {
	Airline     string
	Year        int
	Month       int
	FlightCount int
	AvgDelay    float64
	YoYDelta    *float64
}

// CascadeStat quantifies the cascade effect for one carrier: the Pearson
// correlation between a flight's position in the day's rotation and its
// departure delay. Positive values mean delay accumulates through the day.
type CascadeStat struct {
	Airline      string
	Observations int
	Correlation  float64
}

// trendMinSupport excludes (airline, month) groups too small for a
// stable monthly average.
const trendMinSupport = 20

// cascadeMinObservations excludes carriers without enough sequenced
// flights for a meaningful correlation.
const cascadeMinObservations = 50

// YearOverYearTrends reports monthly average delay per carrier with the
// delta against the immediately preceding year for the same month.
// Output is ordered by airline, year, month.
func (a *Analyzer) YearOverYearTrends(ctx context.Context) ([]MonthlyTrend, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{ExcludeCancelled: true})
	if err != nil {
		return nil, fmt.Errorf("query flights for trend analysis: %w", err)
	}

	type monthAgg struct {
		airline     string
		year, month int
		delaySum    float64
		count       int
	}
	months := make(map[string]*monthAgg)
	for _, r := range records {
		y, m := r.FlightDate.Year(), int(r.FlightDate.Month())
		id := fmt.Sprintf("%s\x1f%04d\x1f%02d", r.Airline, y, m)
		agg := months[id]
		if agg == nil {
			agg = &monthAgg{airline: r.Airline, year: y, month: m}
			months[id] = agg
		}
		agg.delaySum += r.DepDelay
		agg.count++
	}

	var trends []MonthlyTrend
	for _, agg := range months {
		if agg.count <= trendMinSupport {
			continue
		}
		trends = append(trends, MonthlyTrend{
			Airline:     agg.airline,
			Year:        agg.year,
			Month:       agg.month,
			FlightCount: agg.count,
			AvgDelay:    agg.delaySum / float64(agg.count),
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		if trends[i].Airline != trends[j].Airline {
			return trends[i].Airline < trends[j].Airline
		}
		if trends[i].Year != trends[j].Year {
			return trends[i].Year < trends[j].Year
		}
		return trends[i].Month < trends[j].Month
	})

	// Link each row to the same airline+month one year earlier.
	prior := make(map[string]float64, len(trends))
	for i := range trends {
		t := &trends[i]
		if prev, ok := prior[fmt.Sprintf("%s\x1f%04d\x1f%02d", t.Airline, t.Year-1, t.Month)]; ok {
			delta := t.AvgDelay - prev
			t.YoYDelta = &delta
		}
		prior[fmt.Sprintf("%s\x1f%04d\x1f%02d", t.Airline, t.Year, t.Month)] = t.AvgDelay
	}

	return trends, nil
}

// CascadeEffect reports the per-carrier correlation between daily flight
// sequence position and departure delay, strongest cascade first.
// Carriers whose correlation is undefined (constant delay or position)
// are omitted rather than reported as a fault.
func (a *Analyzer) CascadeEffect(ctx context.Context) ([]CascadeStat, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for cascade analysis: %w", err)
	}

	obs := sequenceObservations(records)

	type series struct {
		positions []float64
		delays    []float64
	}
	byAirline := make(map[string]*series)
	var order []string
	for _, o := range obs {
		s := byAirline[o.Airline]
		if s == nil {
			s = &series{}
			byAirline[o.Airline] = s
			order = append(order, o.Airline)
		}
		s.positions = append(s.positions, float64(o.Position))
		s.delays = append(s.delays, o.DepDelay)
	}

	var out []CascadeStat
	for _, airline := range order {
		s := byAirline[airline]
		if len(s.positions) < cascadeMinObservations {
			continue
		}
		r := stats.Pearson(s.positions, s.delays)
		if r == nil {
			continue
		}
		out = append(out, CascadeStat{
			Airline:      a.airlineName(ctx, airline),
			Observations: len(s.positions),
			Correlation:  *r,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Correlation > out[j].Correlation
	})

	return out, nil
}
