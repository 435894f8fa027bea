package main

import (
	"fmt"
	"strings"

	"github.com/flightperf/flightdash/internal/analytics"
)

// displayWeatherImpact renders the weather impact table.
func displayWeatherImpact(impacts []analytics.WeatherImpact) {
	fmt.Println("=== WEATHER IMPACT ANALYSIS ===")
	fmt.Println()

	if len(impacts) == 0 {
		fmt.Println("No flights found.")
		return
	}

	fmt.Printf("%-20s %-12s %-12s %-12s\n", "Condition", "Flights", "Avg Delay", "Cancel Rate")
	fmt.Println(strings.Repeat("-", 70))

	for _, wi := range impacts {
		fmt.Printf("%-20s %-12d %-12.2f %-11.2f%%\n",
			wi.Condition, wi.FlightCount, wi.AvgDelay, wi.CancellationRate)
	}
}

// displayRegionImpact renders the per-state weather disruption rollup.
func displayRegionImpact(impacts []analytics.RegionWeatherImpact) {
	fmt.Println("=== WEATHER IMPACT BY REGION ===")
	fmt.Println()

	if len(impacts) == 0 {
		fmt.Println("No regions meet the support threshold.")
		return
	}

	fmt.Printf("%-8s %-12s %-12s %-10s %-18s\n", "State", "Flights", "Affected", "Impact %", "Avg Weather Delay")
	fmt.Println(strings.Repeat("-", 70))

	for _, ri := range impacts {
		fmt.Printf("%-8s %-12d %-12d %-9.2f%% %-18.2f\n",
			ri.State, ri.TotalFlights, ri.WeatherAffected, ri.ImpactPercentage, ri.AvgWeatherDelay)
	}
}
