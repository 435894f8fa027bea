package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/flightperf/flightdash/internal/stats"
	"github.com/flightperf/flightdash/internal/storage/models"
)

// RoutePerformance is one row of the route performance view.
type RoutePerformance struct {
	Route            string
	FlightCount      int
	AvgDelay         float64 // Mean delay with early departures counted as zero
	CancellationRate float64
	OnTimePercentage float64
}

// topRoutesMinSupport excludes thin routes from the top-routes ranking;
// a route needs more than this many flights to appear.
const topRoutesMinSupport = 100

// reliabilityMinSupport excludes thin routes from the reliability ranking.
const reliabilityMinSupport = 50

// RoutePerformanceFor reports performance for a single (origin, dest)
// route. The result is empty when the route has no flights.
func (a *Analyzer) RoutePerformanceFor(ctx context.Context, origin, dest string) ([]RoutePerformance, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{Origin: &origin, Dest: &dest})
	if err != nil {
		return nil, fmt.Errorf("query flights for route %s-%s: %w", origin, dest, err)
	}

	rows := aggregate(records, routeKey, clampedDelaySample, 0)
	return routeRows(rows), nil
}

// TopRoutes ranks the busiest routes by flight count descending. Routes
// with flight counts at or below the support threshold are excluded.
func (a *Analyzer) TopRoutes(ctx context.Context, limit int) ([]RoutePerformance, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for top routes: %w", err)
	}

	rows := aggregate(records, routeKey, clampedDelaySample, topRoutesMinSupport)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return routeRows(rows), nil
}

// RouteTimeOfDay breaks a single route's performance down by departure
// time-of-day bucket, in fixed Morning/Afternoon/Evening order.
func (a *Analyzer) RouteTimeOfDay(ctx context.Context, origin, dest string) ([]RoutePerformance, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{Origin: &origin, Dest: &dest})
	if err != nil {
		return nil, fmt.Errorf("query flights for route %s-%s: %w", origin, dest, err)
	}

	rows := aggregate(records, func(r *models.FlightRecord) ([]string, bool) {
		return []string{r.Origin, r.Dest, TimeOfDayBucket(r.ScheduledDep.Hour())}, true
	}, clampedDelaySample, 0)

	byBucket := make(map[string]AggregateRow, len(rows))
	for _, row := range rows {
		byBucket[row.Key[2]] = row
	}

	var out []RoutePerformance
	for _, bucket := range timeOfDayBuckets {
		row, ok := byBucket[bucket]
		if !ok {
			continue
		}
		rp := routeRows([]AggregateRow{row})[0]
		rp.Route = fmt.Sprintf("%s (%s)", routeLabel(row.Key[0], row.Key[1]), bucket)
		out = append(out, rp)
	}

	return out, nil
}

// RouteReliability is one row of the reliability ranking: the coefficient
// of variation of departure delay per route, lower meaning more
// predictable.
type RouteReliability struct {
	Route       string
	FlightCount int
	AvgDelay    float64
	StdDevDelay float64
	CV          float64
}

// ReliabilityRanking ranks routes by delay coefficient of variation
// ascending. Routes where the coefficient is undefined (zero mean
// absolute delay) are omitted rather than reported as a fault.
func (a *Analyzer) ReliabilityRanking(ctx context.Context) ([]RouteReliability, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{ExcludeCancelled: true})
	if err != nil {
		return nil, fmt.Errorf("query flights for reliability ranking: %w", err)
	}

	type routeSample struct {
		key    []string
		delays []float64
	}
	samples := make(map[string]*routeSample)
	var order []string
	for _, r := range records {
		id := r.Origin + "\x1f" + r.Dest
		s := samples[id]
		if s == nil {
			s = &routeSample{key: []string{r.Origin, r.Dest}}
			samples[id] = s
			order = append(order, id)
		}
		s.delays = append(s.delays, r.DepDelay)
	}

	var out []RouteReliability
	for _, id := range order {
		s := samples[id]
		if len(s.delays) <= reliabilityMinSupport {
			continue
		}
		cv := CoefficientOfVariation(s.delays)
		if cv == nil {
			continue
		}

		rel := RouteReliability{
			Route:       routeLabel(s.key[0], s.key[1]),
			FlightCount: len(s.delays),
			CV:          *cv,
		}
		if m := stats.Mean(s.delays); m != nil {
			rel.AvgDelay = *m
		}
		if sd := stats.StdDevSample(s.delays); sd != nil {
			rel.StdDevDelay = *sd
		}
		out = append(out, rel)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CV < out[j].CV
	})

	return out, nil
}

func routeKey(r *models.FlightRecord) ([]string, bool) {
	return []string{r.Origin, r.Dest}, true
}

func routeRows(rows []AggregateRow) []RoutePerformance {
	out := make([]RoutePerformance, 0, len(rows))
	for _, row := range rows {
		rp := RoutePerformance{
			Route:            routeLabel(row.Key[0], row.Key[1]),
			FlightCount:      row.Count,
			CancellationRate: row.CancelRate,
			OnTimePercentage: row.OnTimeRate,
		}
		if row.AvgDelay != nil {
			rp.AvgDelay = *row.AvgDelay
		}
		out = append(out, rp)
	}
	return out
}
