package main

import (
	"fmt"
	"strings"

	"github.com/flightperf/flightdash/internal/analytics"
)

// displayTrends renders the year-over-year monthly trend table.
func displayTrends(trends []analytics.MonthlyTrend) {
	fmt.Println("=== YEAR-OVER-YEAR DELAY TRENDS ===")
	fmt.Println()

	if len(trends) == 0 {
		fmt.Println("No months meet the support threshold.")
		return
	}

	fmt.Printf("%-10s %-10s %-10s %-12s %-12s\n", "Airline", "Month", "Flights", "Avg Delay", "YoY Change")
	fmt.Println(strings.Repeat("-", 60))

	for _, t := range trends {
		delta := "-"
		if t.YoYDelta != nil {
			delta = fmt.Sprintf("%+.2f", *t.YoYDelta)
		}
		fmt.Printf("%-10s %04d-%02d    %-10d %-12.2f %-12s\n",
			t.Airline, t.Year, t.Month, t.FlightCount, t.AvgDelay, delta)
	}
}

// displayCascade renders the per-carrier cascade correlation table.
func displayCascade(cascades []analytics.CascadeStat) {
	fmt.Println("=== DELAY CASCADE EFFECT ===")
	fmt.Println()

	if len(cascades) == 0 {
		fmt.Println("No carriers meet the observation threshold.")
		return
	}

	fmt.Printf("%-25s %-14s %-12s\n", "Airline", "Observations", "Correlation")
	fmt.Println(strings.Repeat("-", 55))

	for _, cs := range cascades {
		fmt.Printf("%-25s %-14d %+-.3f\n", cs.Airline, cs.Observations, cs.Correlation)
	}
}
