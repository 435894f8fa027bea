package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// AirlinePerformance is one row of the airline comparison view.
type AirlinePerformance struct {
	Airline          string
	FlightCount      int
	AvgDelay         float64
	CancellationRate float64
	OnTimePercentage float64
}

// AirlineScore is one row of the airline ranking view: the comparison
// metrics plus the composite performance score.
type AirlineScore struct {
	Airline          string
	FlightCount      int
	AvgDelay         float64
	CancellationRate float64
	OnTimePercentage float64
	Score            float64
}

// airlineComparisonMinSupport excludes minor carriers from the
// comparison; an airline needs more than this many flights to appear.
const airlineComparisonMinSupport = 1000

// airlineRankingMinSupport is the lower bar used for the score ranking,
// which tolerates smaller carriers than the head-to-head comparison.
const airlineRankingMinSupport = 500

// AirlineComparison compares major carriers, ordered by on-time
// percentage descending.
func (a *Analyzer) AirlineComparison(ctx context.Context) ([]AirlinePerformance, error) {
	rows, err := a.airlineAggregates(ctx, airlineComparisonMinSupport)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OnTimeRate > rows[j].OnTimeRate
	})

	out := make([]AirlinePerformance, 0, len(rows))
	for _, row := range rows {
		perf := AirlinePerformance{
			Airline:          a.airlineName(ctx, row.Key[0]),
			FlightCount:      row.Count,
			CancellationRate: row.CancelRate,
			OnTimePercentage: row.OnTimeRate,
		}
		if row.AvgDelay != nil {
			perf.AvgDelay = *row.AvgDelay
		}
		out = append(out, perf)
	}

	return out, nil
}

// AirlineRankings ranks carriers by composite performance score
// descending, ties broken by higher on-time percentage.
func (a *Analyzer) AirlineRankings(ctx context.Context) ([]AirlineScore, error) {
	rows, err := a.airlineAggregates(ctx, airlineRankingMinSupport)
	if err != nil {
		return nil, err
	}

	out := make([]AirlineScore, 0, len(rows))
	for _, row := range rows {
		score := AirlineScore{
			Airline:          a.airlineName(ctx, row.Key[0]),
			FlightCount:      row.Count,
			CancellationRate: row.CancelRate,
			OnTimePercentage: row.OnTimeRate,
		}
		if row.AvgDelay != nil {
			score.AvgDelay = *row.AvgDelay
		}
		score.Score = PerformanceScore(score.OnTimePercentage, score.CancellationRate, score.AvgDelay)
		out = append(out, score)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].OnTimePercentage > out[j].OnTimePercentage
	})

	return out, nil
}

func (a *Analyzer) airlineAggregates(ctx context.Context, minSupport int) ([]AggregateRow, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for airline comparison: %w", err)
	}

	return aggregate(records, func(r *models.FlightRecord) ([]string, bool) {
		return []string{r.Airline}, true
	}, clampedDelaySample, minSupport), nil
}
