package main

import (
	"fmt"
	"strings"

	"github.com/flightperf/flightdash/internal/analytics"
)

// displayDelayAnalysis renders the delay ranking for the chosen type.
func displayDelayAnalysis(delayType string, delays []analytics.DelayInfo) {
	fmt.Printf("=== %s DELAY ANALYSIS ===\n\n", strings.ToUpper(delayType))

	if len(delays) == 0 {
		fmt.Println("No delayed flights found.")
		return
	}

	fmt.Printf("%-25s %-30s %-12s %-10s\n", "Airline", "Route", "Avg Delay", "Count")
	fmt.Println(strings.Repeat("-", 80))

	for _, info := range delays {
		fmt.Printf("%-25s %-30s %-12.2f %-10d\n", info.Airline, info.Route, info.AvgDelay, info.Count)
	}
}
