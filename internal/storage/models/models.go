// Package models defines the data structures persisted in the flight store.
package models

import "time"

// FlightRecord represents a single flight from the historical on-time
// performance dataset. Records are immutable once loaded; the analytics
// layer only reads them.
type FlightRecord struct {
	ID                int
	FlightDate        time.Time
	Airline           string // Carrier code (e.g., "AA")
	FlightNumber      string
	Origin            string // Origin airport code (e.g., "JFK")
	Dest              string // Destination airport code
	ScheduledDep      time.Time
	ActualDep         *time.Time // Nullable: missing for cancelled flights
	ScheduledArr      time.Time
	ActualArr         *time.Time // Nullable
	DepDelay          float64    // Minutes; negative or zero means not late
	ArrDelay          float64
	Cancelled         bool
	CancellationCode  *string // Nullable: "A" carrier, "B" weather, "C" NAS, "D" security
	Distance          float64 // Miles
	CarrierDelay      float64 // Delay cause components, minutes
	WeatherDelay      float64
	NASDelay          float64
	SecurityDelay     float64
	LateAircraftDelay float64
}

// Airport represents a static airport reference entry.
type Airport struct {
	Code    string
	Name    string
	City    string
	State   string // Containing state/province, used for regional rollups
	Country string
}

// Airline represents a static carrier reference entry.
type Airline struct {
	Code string
	Name string
}

// FlightFilter restricts which flight records a query returns.
// Nil fields are ignored. The SQL repositories and the in-memory test
// fixture apply identical semantics.
type FlightFilter struct {
	StartDate        *time.Time // Inclusive, compared against flight_date
	EndDate          *time.Time // Inclusive
	Origin           *string
	Dest             *string
	Airline          *string
	ExcludeCancelled bool
}

// Matches reports whether a record passes the filter. The repositories
// push these predicates into SQL; this is the reference semantics used
// by in-memory sources.
func (f FlightFilter) Matches(r *FlightRecord) bool {
	if f.StartDate != nil && r.FlightDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && r.FlightDate.After(*f.EndDate) {
		return false
	}
	if f.Origin != nil && r.Origin != *f.Origin {
		return false
	}
	if f.Dest != nil && r.Dest != *f.Dest {
		return false
	}
	if f.Airline != nil && r.Airline != *f.Airline {
		return false
	}
	if f.ExcludeCancelled && r.Cancelled {
		return false
	}
	return true
}
