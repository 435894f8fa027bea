package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// RouteRisk is one row of the delay-risk view: the composite risk score
// and tier for an (airline, route) pair over the trailing window.
type RouteRisk struct {
	Airline          string
	Route            string
	FlightCount      int
	AvgDelay         float64
	SevereDelayRate  float64 // Percentage of flights with dep_delay > 30
	AvgWeatherImpact float64 // Mean weather delay, minutes
	Score            float64
	Level            string
}

// riskWindowDays is the trailing window the risk score is computed over.
const riskWindowDays = 90

// riskMinSupport excludes (airline, route) pairs with too few recent
// flights to score.
const riskMinSupport = 10

// DelayRiskReport scores every (airline, route) pair seen in the
// trailing 90-day window, riskiest first. The numeric score and the tier
// derive from the same function, so they cannot drift apart.
func (a *Analyzer) DelayRiskReport(ctx context.Context) ([]RouteRisk, error) {
	start := a.now().AddDate(0, 0, -riskWindowDays)
	records, err := a.flights.List(ctx, models.FlightFilter{
		StartDate:        &start,
		ExcludeCancelled: true,
	})
	if err != nil {
		return nil, fmt.Errorf("query flights for risk report: %w", err)
	}

	type riskAgg struct {
		key      []string
		count    int
		delaySum float64
		severe   int
		weather  float64
	}
	pairs := make(map[string]*riskAgg)
	var order []string
	for _, r := range records {
		id := r.Airline + "\x1f" + r.Origin + "\x1f" + r.Dest
		agg := pairs[id]
		if agg == nil {
			agg = &riskAgg{key: []string{r.Airline, r.Origin, r.Dest}}
			pairs[id] = agg
			order = append(order, id)
		}
		agg.count++
		if r.DepDelay > 0 {
			agg.delaySum += r.DepDelay
		}
		if r.DepDelay > 30 {
			agg.severe++
		}
		agg.weather += r.WeatherDelay
	}

	out := make([]RouteRisk, 0, len(pairs))
	for _, id := range order {
		agg := pairs[id]
		if agg.count <= riskMinSupport {
			continue
		}

		n := float64(agg.count)
		risk := RouteRisk{
			Airline:          a.airlineName(ctx, agg.key[0]),
			Route:            routeLabel(agg.key[1], agg.key[2]),
			FlightCount:      agg.count,
			AvgDelay:         agg.delaySum / n,
			SevereDelayRate:  float64(agg.severe) * 100 / n,
			AvgWeatherImpact: agg.weather / n,
		}
		risk.Score = DelayRiskScore(risk.AvgDelay, risk.SevereDelayRate, risk.AvgWeatherImpact)
		risk.Level = RiskLevel(risk.Score)
		out = append(out, risk)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}
