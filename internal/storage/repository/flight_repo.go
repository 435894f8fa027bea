// Package repository implements SQL-backed access to the flight fact
// table and the reference tables.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// FlightRepository handles database operations for flight records.
type FlightRepository interface {
	// List retrieves the flight records matching the filter, in
	// insertion order.
	List(ctx context.Context, filter models.FlightFilter) ([]*models.FlightRecord, error)

	// CountAll returns the total number of flight records.
	CountAll(ctx context.Context) (int, error)

	// InsertBatch inserts records inside a single transaction.
	InsertBatch(ctx context.Context, records []*models.FlightRecord) error
}

// flightRepository is the concrete implementation of FlightRepository.
type flightRepository struct {
	db     *sql.DB
	driver string
}

// NewFlightRepository creates a new flight repository. The driver name
// selects the placeholder style ("sqlite" uses ?, "postgres" uses $n).
func NewFlightRepository(db *sql.DB, driver string) FlightRepository {
	return &flightRepository{db: db, driver: driver}
}

// rebind rewrites ? placeholders to $n for Postgres.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

const flightColumns = `
	id, flight_date, airline, flight_number, origin, dest,
	scheduled_dep, actual_dep, scheduled_arr, actual_arr,
	dep_delay, arr_delay, cancelled, cancellation_code, distance,
	carrier_delay, weather_delay, nas_delay, security_delay, late_aircraft_delay
`

// List retrieves the flight records matching the filter.
func (r *flightRepository) List(ctx context.Context, filter models.FlightFilter) ([]*models.FlightRecord, error) {
	var conditions []string
	var args []any

	if filter.StartDate != nil {
		conditions = append(conditions, "flight_date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "flight_date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Origin != nil {
		conditions = append(conditions, "origin = ?")
		args = append(args, *filter.Origin)
	}
	if filter.Dest != nil {
		conditions = append(conditions, "dest = ?")
		args = append(args, *filter.Dest)
	}
	if filter.Airline != nil {
		conditions = append(conditions, "airline = ?")
		args = append(args, *filter.Airline)
	}
	if filter.ExcludeCancelled {
		conditions = append(conditions, "cancelled = 0")
	}

	query := "SELECT " + flightColumns + " FROM flights"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, rebind(r.driver, query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	defer rows.Close()

	var records []*models.FlightRecord
	for rows.Next() {
		record, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flights: %w", err)
	}

	return records, nil
}

// CountAll returns the total number of flight records.
func (r *flightRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM flights").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return count, nil
}

// InsertBatch inserts records inside a single transaction.
func (r *flightRepository) InsertBatch(ctx context.Context, records []*models.FlightRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := rebind(r.driver, `
		INSERT INTO flights (
			flight_date, airline, flight_number, origin, dest,
			scheduled_dep, actual_dep, scheduled_arr, actual_arr,
			dep_delay, arr_delay, cancelled, cancellation_code, distance,
			carrier_delay, weather_delay, nas_delay, security_delay, late_aircraft_delay
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		cancelled := 0
		if rec.Cancelled {
			cancelled = 1
		}
		_, err := stmt.ExecContext(ctx,
			rec.FlightDate,
			rec.Airline,
			rec.FlightNumber,
			rec.Origin,
			rec.Dest,
			rec.ScheduledDep,
			rec.ActualDep,
			rec.ScheduledArr,
			rec.ActualArr,
			rec.DepDelay,
			rec.ArrDelay,
			cancelled,
			rec.CancellationCode,
			rec.Distance,
			rec.CarrierDelay,
			rec.WeatherDelay,
			rec.NASDelay,
			rec.SecurityDelay,
			rec.LateAircraftDelay,
		)
		if err != nil {
			return fmt.Errorf("failed to insert flight %s %s: %w", rec.Airline, rec.FlightNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit flight batch: %w", err)
	}
	return nil
}

func scanFlight(rows *sql.Rows) (*models.FlightRecord, error) {
	rec := &models.FlightRecord{}
	var actualDep, actualArr sql.NullTime
	var cancelled int
	var cancellationCode sql.NullString

	err := rows.Scan(
		&rec.ID,
		&rec.FlightDate,
		&rec.Airline,
		&rec.FlightNumber,
		&rec.Origin,
		&rec.Dest,
		&rec.ScheduledDep,
		&actualDep,
		&rec.ScheduledArr,
		&actualArr,
		&rec.DepDelay,
		&rec.ArrDelay,
		&cancelled,
		&cancellationCode,
		&rec.Distance,
		&rec.CarrierDelay,
		&rec.WeatherDelay,
		&rec.NASDelay,
		&rec.SecurityDelay,
		&rec.LateAircraftDelay,
	)
	if err != nil {
		return nil, err
	}

	if actualDep.Valid {
		rec.ActualDep = &actualDep.Time
	}
	if actualArr.Valid {
		rec.ActualArr = &actualArr.Time
	}
	rec.Cancelled = cancelled != 0
	if cancellationCode.Valid {
		rec.CancellationCode = &cancellationCode.String
	}

	return rec, nil
}
