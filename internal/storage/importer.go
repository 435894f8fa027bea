package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// importBatchSize is the number of rows inserted per transaction during
// a dataset import.
const importBatchSize = 5000

// Importer bulk-loads a historical on-time performance CSV export into
// the flights table. This is a one-shot dataset load, not live ingestion.
type Importer struct {
	service *Service
	logger  *slog.Logger
}

// NewImporter creates an importer writing through the given service.
// A nil logger falls back to slog.Default().
func NewImporter(service *Service, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{service: service, logger: logger}
}

// ImportFile loads the CSV file at path and returns the number of rows
// imported. Rows that cannot be parsed are skipped and counted.
func (im *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	return im.importReader(ctx, csv.NewReader(f))
}

func (im *Importer) importReader(ctx context.Context, reader *csv.Reader) (int, error) {
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read dataset header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	var batch []*models.FlightRecord
	imported := 0
	skipped := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("failed to read dataset row: %w", err)
		}

		record, err := parseFlightRow(cols, row)
		if err != nil {
			skipped++
			continue
		}

		batch = append(batch, record)
		if len(batch) >= importBatchSize {
			if err := im.service.Flights().InsertBatch(ctx, batch); err != nil {
				return imported, fmt.Errorf("failed to store flight batch: %w", err)
			}
			imported += len(batch)
			batch = batch[:0]
			im.logger.Info("import progress", "imported", imported, "skipped", skipped)
		}
	}

	if len(batch) > 0 {
		if err := im.service.Flights().InsertBatch(ctx, batch); err != nil {
			return imported, fmt.Errorf("failed to store flight batch: %w", err)
		}
		imported += len(batch)
	}

	im.logger.Info("import complete", "imported", imported, "skipped", skipped)
	return imported, nil
}

// parseFlightRow converts one CSV row to a FlightRecord using the
// header's column positions. Field names follow the BTS on-time
// performance export.
func parseFlightRow(cols map[string]int, row []string) (*models.FlightRecord, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	getFloat := func(name string) float64 {
		v, err := strconv.ParseFloat(get(name), 64)
		if err != nil {
			return 0
		}
		return v
	}

	flightDate, err := time.Parse("2006-01-02", get("FL_DATE"))
	if err != nil {
		return nil, fmt.Errorf("invalid flight date %q: %w", get("FL_DATE"), err)
	}

	airline := get("OP_CARRIER")
	origin := get("ORIGIN")
	dest := get("DEST")
	if airline == "" || origin == "" || dest == "" {
		return nil, fmt.Errorf("missing carrier or route")
	}

	scheduledDep, err := combineHHMM(flightDate, get("CRS_DEP_TIME"))
	if err != nil {
		return nil, err
	}
	scheduledArr, err := combineHHMM(flightDate, get("CRS_ARR_TIME"))
	if err != nil {
		scheduledArr = scheduledDep
	}

	record := &models.FlightRecord{
		FlightDate:        flightDate,
		Airline:           airline,
		FlightNumber:      get("OP_CARRIER_FL_NUM"),
		Origin:            origin,
		Dest:              dest,
		ScheduledDep:      scheduledDep,
		ScheduledArr:      scheduledArr,
		DepDelay:          getFloat("DEP_DELAY"),
		ArrDelay:          getFloat("ARR_DELAY"),
		Cancelled:         getFloat("CANCELLED") != 0,
		Distance:          getFloat("DISTANCE"),
		CarrierDelay:      getFloat("CARRIER_DELAY"),
		WeatherDelay:      getFloat("WEATHER_DELAY"),
		NASDelay:          getFloat("NAS_DELAY"),
		SecurityDelay:     getFloat("SECURITY_DELAY"),
		LateAircraftDelay: getFloat("LATE_AIRCRAFT_DELAY"),
	}

	if code := get("CANCELLATION_CODE"); code != "" {
		record.CancellationCode = &code
	}
	if actual, err := combineHHMM(flightDate, get("DEP_TIME")); err == nil && !record.Cancelled {
		record.ActualDep = &actual
	}
	if actual, err := combineHHMM(flightDate, get("ARR_TIME")); err == nil && !record.Cancelled {
		record.ActualArr = &actual
	}

	return record, nil
}

// combineHHMM merges a date with an HHMM local time string. The dataset
// encodes midnight as 2400.
func combineHHMM(date time.Time, hhmm string) (time.Time, error) {
	if hhmm == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	v, err := strconv.Atoi(hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	if v == 2400 {
		v = 0
	}
	hour, minute := v/100, v%100
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time %q", hhmm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
