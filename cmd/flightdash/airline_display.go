package main

import (
	"fmt"
	"strings"

	"github.com/flightperf/flightdash/internal/analytics"
)

// displayAirlineComparison renders the airline comparison table.
func displayAirlineComparison(airlines []analytics.AirlinePerformance) {
	fmt.Println("=== AIRLINE PERFORMANCE COMPARISON ===")
	fmt.Println()

	if len(airlines) == 0 {
		fmt.Println("No airlines meet the support threshold.")
		return
	}

	fmt.Printf("%-25s %-10s %-12s %-13s %-10s\n", "Airline", "Flights", "Avg Delay", "Cancel Rate", "On-Time %")
	fmt.Println(strings.Repeat("-", 80))

	for _, ap := range airlines {
		fmt.Printf("%-25s %-10d %-12.2f %-12.2f%% %-9.2f%%\n",
			ap.Airline, ap.FlightCount, ap.AvgDelay, ap.CancellationRate, ap.OnTimePercentage)
	}
}

// displayAirlineRankings renders the composite score ranking.
func displayAirlineRankings(scores []analytics.AirlineScore) {
	fmt.Println("=== AIRLINE PERFORMANCE RANKING ===")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No airlines meet the support threshold.")
		return
	}

	fmt.Printf("%-5s %-25s %-10s %-8s %-10s %-13s %-12s\n",
		"Rank", "Airline", "Flights", "Score", "On-Time %", "Cancel Rate", "Avg Delay")
	fmt.Println(strings.Repeat("-", 90))

	for i, as := range scores {
		fmt.Printf("%-5d %-25s %-10d %-8.2f %-9.2f%% %-12.2f%% %-12.2f\n",
			i+1, as.Airline, as.FlightCount, as.Score, as.OnTimePercentage, as.CancellationRate, as.AvgDelay)
	}
}
