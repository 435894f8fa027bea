package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// WeatherImpact is one row of the weather impact view.
type WeatherImpact struct {
	Condition        string
	FlightCount      int
	AvgDelay         float64
	CancellationRate float64
}

// RegionWeatherImpact aggregates weather disruption per state/province.
type RegionWeatherImpact struct {
	State            string
	TotalFlights     int
	WeatherAffected  int     // Flights with any weather delay
	ImpactPercentage float64 // WeatherAffected / TotalFlights * 100
	AvgWeatherDelay  float64 // Mean weather delay over affected flights
}

// regionMinSupport excludes low-traffic regions from the regional
// weather report.
const regionMinSupport = 1000

// WeatherImpactSummary buckets every flight by weather condition and
// reports each populated bucket in the fixed Severe/Moderate/Minor/Clear
// order.
func (a *Analyzer) WeatherImpactSummary(ctx context.Context) ([]WeatherImpact, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for weather impact: %w", err)
	}

	rows := aggregate(records, func(r *models.FlightRecord) ([]string, bool) {
		return []string{WeatherBucket(r.WeatherDelay)}, true
	}, depDelaySample, 0)

	byCondition := make(map[string]AggregateRow, len(rows))
	for _, row := range rows {
		byCondition[row.Key[0]] = row
	}

	var out []WeatherImpact
	for _, condition := range weatherBucketOrder {
		row, ok := byCondition[condition]
		if !ok {
			continue
		}
		impact := WeatherImpact{
			Condition:        condition,
			FlightCount:      row.Count,
			CancellationRate: row.CancelRate,
		}
		if row.AvgDelay != nil {
			impact.AvgDelay = *row.AvgDelay
		}
		out = append(out, impact)
	}

	return out, nil
}

// WeatherImpactByRegion rolls airport weather disruption up to the
// containing state via the airport reference table. Airports missing
// from the reference table are excluded from the rollup, and regions at
// or below the support threshold are dropped.
func (a *Analyzer) WeatherImpactByRegion(ctx context.Context) ([]RegionWeatherImpact, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for regional weather impact: %w", err)
	}

	airports, err := a.refs.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("load airport reference data: %w", err)
	}
	stateOf := make(map[string]string, len(airports))
	for _, ap := range airports {
		stateOf[ap.Code] = ap.State
	}

	type regionAgg struct {
		total          int
		affected       int
		weatherMinutes float64
	}
	regions := make(map[string]*regionAgg)
	for _, r := range records {
		state, ok := stateOf[r.Origin]
		if !ok || state == "" {
			continue
		}
		agg := regions[state]
		if agg == nil {
			agg = &regionAgg{}
			regions[state] = agg
		}
		agg.total++
		if r.WeatherDelay > 0 {
			agg.affected++
			agg.weatherMinutes += r.WeatherDelay
		}
	}

	var out []RegionWeatherImpact
	for state, agg := range regions {
		if agg.total <= regionMinSupport {
			continue
		}
		impact := RegionWeatherImpact{
			State:            state,
			TotalFlights:     agg.total,
			WeatherAffected:  agg.affected,
			ImpactPercentage: float64(agg.affected) * 100 / float64(agg.total),
		}
		if agg.affected > 0 {
			impact.AvgWeatherDelay = agg.weatherMinutes / float64(agg.affected)
		}
		out = append(out, impact)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ImpactPercentage != out[j].ImpactPercentage {
			return out[i].ImpactPercentage > out[j].ImpactPercentage
		}
		return out[i].State < out[j].State
	})

	return out, nil
}
