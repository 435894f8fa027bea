package storage

import (
	"context"
	"fmt"

	"github.com/flightperf/flightdash/internal/storage/repository"
)

// Service provides high-level access to the flight store's repositories.
type Service struct {
	db      *DB
	flights repository.FlightRepository
	refs    repository.ReferenceRepository
}

// NewService creates a new storage service.
func NewService(db *DB) *Service {
	return &Service{
		db:      db,
		flights: repository.NewFlightRepository(db.Conn(), db.Driver()),
		refs:    repository.NewReferenceRepository(db.Conn(), db.Driver()),
	}
}

// Flights returns the flight record repository.
func (s *Service) Flights() repository.FlightRepository {
	return s.flights
}

// References returns the reference data repository.
func (s *Service) References() repository.ReferenceRepository {
	return s.refs
}

// FlightCount returns the total number of flight records in the store.
func (s *Service) FlightCount(ctx context.Context) (int, error) {
	count, err := s.flights.CountAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return count, nil
}

// Close closes the underlying database.
func (s *Service) Close() error {
	return s.db.Close()
}
