package main

import (
	"fmt"
	"strings"

	"github.com/flightperf/flightdash/internal/analytics"
)

// displayRoutePerformance renders a route performance table.
func displayRoutePerformance(title string, routes []analytics.RoutePerformance) {
	fmt.Printf("=== %s ===\n\n", title)

	if len(routes) == 0 {
		fmt.Println("No flights found for this route.")
		return
	}

	fmt.Printf("%-32s %-10s %-12s %-13s %-10s\n", "Route", "Flights", "Avg Delay", "Cancel Rate", "On-Time %")
	fmt.Println(strings.Repeat("-", 90))

	for _, rp := range routes {
		fmt.Printf("%-32s %-10d %-12.2f %-12.2f%% %-9.2f%%\n",
			rp.Route, rp.FlightCount, rp.AvgDelay, rp.CancellationRate, rp.OnTimePercentage)
	}
}

// displayReliability renders the route reliability ranking.
func displayReliability(routes []analytics.RouteReliability) {
	fmt.Println("=== ROUTE RELIABILITY RANKING ===")
	fmt.Println()

	if len(routes) == 0 {
		fmt.Println("No routes meet the support threshold.")
		return
	}

	fmt.Printf("%-32s %-10s %-12s %-12s %-8s\n", "Route", "Flights", "Avg Delay", "Std Dev", "CV")
	fmt.Println(strings.Repeat("-", 80))

	for _, rel := range routes {
		fmt.Printf("%-32s %-10d %-12.2f %-12.2f %-8.3f\n",
			rel.Route, rel.FlightCount, rel.AvgDelay, rel.StdDevDelay, rel.CV)
	}
}
