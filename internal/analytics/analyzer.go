// Package analytics computes aggregate performance reports over the
// historical flight dataset: delay rankings, route and airline
// performance, weather impact, risk scoring, and trend analysis.
//
// The package is storage-agnostic: it reads flight records and reference
// data through the FlightSource and ReferenceSource interfaces and
// allocates fresh request-scoped aggregates on every call. Store failures
// propagate to the caller unchanged; a report is never partially filled.
package analytics

import (
	"context"
	"time"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// FlightSource provides read access to the flight fact table.
type FlightSource interface {
	// List returns the flight records matching the filter. Implementations
	// must honor context cancellation.
	List(ctx context.Context, filter models.FlightFilter) ([]*models.FlightRecord, error)
}

// ReferenceSource resolves airport and airline codes to reference data.
// Lookups return (nil, nil) for unknown codes.
type ReferenceSource interface {
	GetAirport(ctx context.Context, code string) (*models.Airport, error)
	GetAirline(ctx context.Context, code string) (*models.Airline, error)
	ListAirports(ctx context.Context) ([]*models.Airport, error)
}

// Analyzer computes analytics reports from an injected record store.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	flights FlightSource
	refs    ReferenceSource
	now     func() time.Time
}

// NewAnalyzer creates an analyzer backed by the given sources.
func NewAnalyzer(flights FlightSource, refs ReferenceSource) *Analyzer {
	return &Analyzer{
		flights: flights,
		refs:    refs,
		now:     time.Now,
	}
}

// airlineName resolves a carrier code to its display name, falling back
// to the code when the reference table has no entry.
func (a *Analyzer) airlineName(ctx context.Context, code string) string {
	if a.refs == nil {
		return code
	}
	airline, err := a.refs.GetAirline(ctx, code)
	if err != nil || airline == nil {
		return code
	}
	return airline.Name
}

// routeLabel formats an (origin, dest) pair the way the dashboard
// displays routes.
func routeLabel(origin, dest string) string {
	return origin + " → " + dest
}
