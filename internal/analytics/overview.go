package analytics

import (
	"context"
	"fmt"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// notAvailable is the sentinel shown for scalar lookups that matched no
// rows; a missing aggregate is never an error.
const notAvailable = "N/A"

// OverviewStats summarizes the whole dataset for the overview panel.
type OverviewStats struct {
	TotalFlights           int
	DelayedFlights         int // dep_delay > 15, not cancelled
	DelayPercentage        float64
	CancelledFlights       int
	CancellationPercentage float64
	AvgDelay               float64 // Mean dep_delay over late flights only
	WorstRoute             string  // Route with the highest average delay, or "N/A"
	BestAirline            string  // Carrier with the highest on-time percentage, or "N/A"
}

// Overview computes the dataset-wide summary statistics.
func (a *Analyzer) Overview(ctx context.Context) (*OverviewStats, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for overview: %w", err)
	}

	overview := &OverviewStats{
		TotalFlights: len(records),
		WorstRoute:   notAvailable,
		BestAirline:  notAvailable,
	}

	var delaySum float64
	var delayCount int
	for _, r := range records {
		if r.Cancelled {
			overview.CancelledFlights++
			continue
		}
		if r.DepDelay > 15 {
			overview.DelayedFlights++
		}
		if r.DepDelay > 0 {
			delaySum += r.DepDelay
			delayCount++
		}
	}

	if overview.TotalFlights > 0 {
		total := float64(overview.TotalFlights)
		overview.DelayPercentage = float64(overview.DelayedFlights) * 100 / total
		overview.CancellationPercentage = float64(overview.CancelledFlights) * 100 / total
	}
	if delayCount > 0 {
		overview.AvgDelay = delaySum / float64(delayCount)
	}

	// Worst route: highest average departure delay among late flights.
	late := filterRecords(records, func(r *models.FlightRecord) bool {
		return !r.Cancelled && r.DepDelay > 0
	})
	routes := aggregate(late, func(r *models.FlightRecord) ([]string, bool) {
		return []string{r.Origin, r.Dest}, true
	}, depDelaySample, 0)
	sortByAvgDelayDesc(routes)
	if len(routes) > 0 {
		overview.WorstRoute = routeLabel(routes[0].Key[0], routes[0].Key[1])
	}

	// Best airline: highest on-time percentage across all its flights.
	airlines := aggregate(records, func(r *models.FlightRecord) ([]string, bool) {
		return []string{r.Airline}, true
	}, depDelaySample, 0)
	best := -1
	for i, row := range airlines {
		if best < 0 || row.OnTimeRate > airlines[best].OnTimeRate {
			best = i
		}
	}
	if best >= 0 {
		overview.BestAirline = a.airlineName(ctx, airlines[best].Key[0])
	}

	return overview, nil
}

// filterRecords returns the records for which keep reports true,
// preserving input order.
func filterRecords(records []*models.FlightRecord, keep func(*models.FlightRecord) bool) []*models.FlightRecord {
	var out []*models.FlightRecord
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
