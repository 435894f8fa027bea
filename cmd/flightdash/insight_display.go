package main

import (
	"fmt"
	"strings"

	"github.com/flightperf/flightdash/internal/analytics"
)

// displayRiskReport renders the route delay-risk table.
func displayRiskReport(risks []analytics.RouteRisk) {
	fmt.Println("=== ROUTE DELAY RISK (90-DAY WINDOW) ===")
	fmt.Println()

	if len(risks) == 0 {
		fmt.Println("No routes meet the support threshold.")
		return
	}

	fmt.Printf("%-25s %-32s %-10s %-8s %-15s\n", "Airline", "Route", "Flights", "Score", "Risk Level")
	fmt.Println(strings.Repeat("-", 95))

	for _, rr := range risks {
		fmt.Printf("%-25s %-32s %-10d %-8.2f %-15s\n",
			rr.Airline, rr.Route, rr.FlightCount, rr.Score, rr.Level)
	}
}

// displayCongestion renders the airport congestion table.
func displayCongestion(slots []analytics.CongestionInfo) {
	fmt.Println("=== AIRPORT CONGESTION BY HOUR ===")
	fmt.Println()

	if len(slots) == 0 {
		fmt.Println("No slots meet the support threshold.")
		return
	}

	fmt.Printf("%-10s %-6s %-10s %-12s %-20s\n", "Airport", "Hour", "Flights", "Avg Delay", "Level")
	fmt.Println(strings.Repeat("-", 60))

	for _, ci := range slots {
		fmt.Printf("%-10s %02d:00  %-10d %-12.2f %-20s\n",
			ci.Airport, ci.Hour, ci.FlightCount, ci.AvgDelay, ci.Level)
	}
}

// displayHubs renders the hub classification table.
func displayHubs(hubs []analytics.HubInfo) {
	fmt.Println("=== AIRPORT HUB CLASSIFICATION ===")
	fmt.Println()

	if len(hubs) == 0 {
		fmt.Println("No airports found.")
		return
	}

	fmt.Printf("%-10s %-35s %-14s %-10s %-18s\n", "Code", "Airport", "Destinations", "Airlines", "Class")
	fmt.Println(strings.Repeat("-", 90))

	for _, hub := range hubs {
		fmt.Printf("%-10s %-35s %-14d %-10d %-18s\n",
			hub.Airport, hub.Name, hub.UniqueDestinations, hub.AirlinesOperating, hub.Class)
	}
}

// displayCancellations renders the cancellation reason breakdown.
func displayCancellations(breakdown []analytics.CancellationBreakdown) {
	fmt.Println("=== CANCELLATION REASONS ===")
	fmt.Println()

	if len(breakdown) == 0 {
		fmt.Println("No cancellations recorded.")
		return
	}

	fmt.Printf("%-6s %-12s %-10s %-8s\n", "Code", "Reason", "Count", "Share")
	fmt.Println(strings.Repeat("-", 40))

	for _, cb := range breakdown {
		code := cb.Code
		if code == "" {
			code = "-"
		}
		fmt.Printf("%-6s %-12s %-10d %-7.2f%%\n", code, cb.Reason, cb.Count, cb.Percentage)
	}
}
