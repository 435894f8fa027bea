package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// ReferenceRepository resolves airport and airline codes to their static
// reference entries. Reference data is load-once: the first lookup reads
// both tables into memory and later lookups are served from the cache.
type ReferenceRepository interface {
	GetAirport(ctx context.Context, code string) (*models.Airport, error)
	GetAirline(ctx context.Context, code string) (*models.Airline, error)
	ListAirports(ctx context.Context) ([]*models.Airport, error)

	// UpsertAirport and UpsertAirline seed the reference tables.
	UpsertAirport(ctx context.Context, airport *models.Airport) error
	UpsertAirline(ctx context.Context, airline *models.Airline) error
}

// referenceRepository is the concrete implementation of ReferenceRepository.
type referenceRepository struct {
	db     *sql.DB
	driver string

	once     sync.Once
	loadErr  error
	airports map[string]*models.Airport
	airlines map[string]*models.Airline
	ordered  []*models.Airport
}

// NewReferenceRepository creates a new reference repository.
func NewReferenceRepository(db *sql.DB, driver string) ReferenceRepository {
	return &referenceRepository{db: db, driver: driver}
}

func (r *referenceRepository) load(ctx context.Context) error {
	r.once.Do(func() {
		r.airports = make(map[string]*models.Airport)
		r.airlines = make(map[string]*models.Airline)

		rows, err := r.db.QueryContext(ctx, "SELECT code, name, city, state, country FROM airports ORDER BY code ASC")
		if err != nil {
			r.loadErr = fmt.Errorf("failed to load airports: %w", err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			ap := &models.Airport{}
			if err := rows.Scan(&ap.Code, &ap.Name, &ap.City, &ap.State, &ap.Country); err != nil {
				r.loadErr = fmt.Errorf("failed to scan airport: %w", err)
				return
			}
			r.airports[ap.Code] = ap
			r.ordered = append(r.ordered, ap)
		}
		if err := rows.Err(); err != nil {
			r.loadErr = fmt.Errorf("error iterating airports: %w", err)
			return
		}

		alRows, err := r.db.QueryContext(ctx, "SELECT code, name FROM airlines ORDER BY code ASC")
		if err != nil {
			r.loadErr = fmt.Errorf("failed to load airlines: %w", err)
			return
		}
		defer alRows.Close()

		for alRows.Next() {
			al := &models.Airline{}
			if err := alRows.Scan(&al.Code, &al.Name); err != nil {
				r.loadErr = fmt.Errorf("failed to scan airline: %w", err)
				return
			}
			r.airlines[al.Code] = al
		}
		if err := alRows.Err(); err != nil {
			r.loadErr = fmt.Errorf("error iterating airlines: %w", err)
		}
	})
	return r.loadErr
}

// GetAirport returns the airport for a code, or (nil, nil) when unknown.
func (r *referenceRepository) GetAirport(ctx context.Context, code string) (*models.Airport, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r.airports[code], nil
}

// GetAirline returns the airline for a code, or (nil, nil) when unknown.
func (r *referenceRepository) GetAirline(ctx context.Context, code string) (*models.Airline, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r.airlines[code], nil
}

// ListAirports returns all airports ordered by code.
func (r *referenceRepository) ListAirports(ctx context.Context) ([]*models.Airport, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r.ordered, nil
}

// UpsertAirport inserts or updates an airport reference entry.
// Intended for seeding before any lookup; the load-once cache does not
// observe later writes.
func (r *referenceRepository) UpsertAirport(ctx context.Context, airport *models.Airport) error {
	query := rebind(r.driver, `
		INSERT INTO airports (code, name, city, state, country)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			city = excluded.city,
			state = excluded.state,
			country = excluded.country
	`)

	_, err := r.db.ExecContext(ctx, query, airport.Code, airport.Name, airport.City, airport.State, airport.Country)
	if err != nil {
		return fmt.Errorf("failed to upsert airport %s: %w", airport.Code, err)
	}
	return nil
}

// UpsertAirline inserts or updates an airline reference entry.
func (r *referenceRepository) UpsertAirline(ctx context.Context, airline *models.Airline) error {
	query := rebind(r.driver, `
		INSERT INTO airlines (code, name)
		VALUES (?, ?)
		ON CONFLICT(code) DO UPDATE SET name = excluded.name
	`)

	_, err := r.db.ExecContext(ctx, query, airline.Code, airline.Name)
	if err != nil {
		return fmt.Errorf("failed to upsert airline %s: %w", airline.Code, err)
	}
	return nil
}
