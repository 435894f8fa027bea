package main

import (
	"fmt"

	"github.com/flightperf/flightdash/internal/analytics"
)

// displayOverview renders the dataset-wide summary.
func displayOverview(stats *analytics.OverviewStats) {
	fmt.Println("=== FLIGHT PERFORMANCE OVERVIEW ===")
	fmt.Println()
	fmt.Printf("Total Flights: %d\n", stats.TotalFlights)
	fmt.Printf("Delayed Flights: %d (%.2f%%)\n", stats.DelayedFlights, stats.DelayPercentage)
	fmt.Printf("Cancelled Flights: %d (%.2f%%)\n", stats.CancelledFlights, stats.CancellationPercentage)
	fmt.Printf("Average Delay: %.2f minutes\n", stats.AvgDelay)
	fmt.Println()
	fmt.Printf("Most Delayed Route: %s\n", stats.WorstRoute)
	fmt.Printf("Best Performing Airline: %s\n", stats.BestAirline)
}
