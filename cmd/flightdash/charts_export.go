package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/flightperf/flightdash/internal/analytics"
	"github.com/flightperf/flightdash/internal/charts"
)

// exportCharts renders the airline comparison and trend reports as
// interactive HTML charts.
func exportCharts(ctx context.Context, analyzer *analytics.Analyzer, outDir string) error {
	airlines, err := analyzer.AirlineComparison(ctx)
	if err != nil {
		return err
	}

	if len(airlines) > 0 {
		points := make([]charts.DataPoint, 0, len(airlines))
		for _, ap := range airlines {
			points = append(points, charts.DataPoint{Label: ap.Airline, Value: ap.OnTimePercentage})
		}

		cfg := charts.DefaultChartConfig()
		cfg.Title = "Airline On-Time Performance"
		cfg.SeriesName = "On-Time %"
		out := filepath.Join(outDir, "airline_comparison.html")
		if err := charts.RenderBarChart(points, cfg, out); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", out)
	}

	trends, err := analyzer.YearOverYearTrends(ctx)
	if err != nil {
		return err
	}

	if len(trends) > 0 {
		points := make([]charts.DataPoint, 0, len(trends))
		for _, t := range trends {
			points = append(points, charts.DataPoint{
				Label: fmt.Sprintf("%s %04d-%02d", t.Airline, t.Year, t.Month),
				Value: t.AvgDelay,
			})
		}

		cfg := charts.DefaultChartConfig()
		cfg.Title = "Monthly Average Delay"
		cfg.SeriesName = "Avg Delay (min)"
		out := filepath.Join(outDir, "delay_trends.html")
		if err := charts.RenderLineChart(points, cfg, out); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", out)
	}

	return nil
}
