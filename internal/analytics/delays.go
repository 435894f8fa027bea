package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// ErrUnknownDelayType is returned when a caller requests a delay type
// that has no matching dataset field. The request is rejected before any
// query executes.
var ErrUnknownDelayType = errors.New("unknown delay type")

// DelayType names a delay-cause field of the dataset for the delay
// analysis view.
type DelayType string

// Delay types accepted by DelayAnalysis.
const (
	DelayAll          DelayType = "All Delays"
	DelayWeather      DelayType = "Weather"
	DelayCarrier      DelayType = "Carrier"
	DelayNAS          DelayType = "NAS"
	DelaySecurity     DelayType = "Security"
	DelayLateAircraft DelayType = "Late Aircraft"
)

// delayFieldValue maps each delay type to its record field.
func delayFieldValue(t DelayType) (func(*models.FlightRecord) float64, error) {
	switch t {
	case DelayAll:
		return func(r *models.FlightRecord) float64 { return r.DepDelay }, nil
	case DelayWeather:
		return func(r *models.FlightRecord) float64 { return r.WeatherDelay }, nil
	case DelayCarrier:
		return func(r *models.FlightRecord) float64 { return r.CarrierDelay }, nil
	case DelayNAS:
		return func(r *models.FlightRecord) float64 { return r.NASDelay }, nil
	case DelaySecurity:
		return func(r *models.FlightRecord) float64 { return r.SecurityDelay }, nil
	case DelayLateAircraft:
		return func(r *models.FlightRecord) float64 { return r.LateAircraftDelay }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDelayType, string(t))
	}
}

// DelayInfo is one row of the delay analysis view: the average delay of
// the chosen type for an (airline, route) pair.
type DelayInfo struct {
	Airline  string
	Route    string
	AvgDelay float64
	Count    int
}

// delayAnalysisLimit bounds the delay analysis ranking, matching the
// dashboard's 50-row table.
const delayAnalysisLimit = 50

// DelayAnalysis ranks (airline, route) pairs by the average delay of the
// requested type, worst first. Only flights where the chosen field is
// positive contribute. An unrecognized delay type fails fast with
// ErrUnknownDelayType.
func (a *Analyzer) DelayAnalysis(ctx context.Context, delayType DelayType) ([]DelayInfo, error) {
	field, err := delayFieldValue(delayType)
	if err != nil {
		return nil, err
	}

	records, err := a.flights.List(ctx, models.FlightFilter{ExcludeCancelled: true})
	if err != nil {
		return nil, fmt.Errorf("query flights for delay analysis: %w", err)
	}

	affected := filterRecords(records, func(r *models.FlightRecord) bool {
		return field(r) > 0
	})

	rows := aggregate(affected, func(r *models.FlightRecord) ([]string, bool) {
		return []string{r.Airline, r.Origin, r.Dest}, true
	}, func(r *models.FlightRecord) (float64, bool) {
		return field(r), true
	}, 0)
	sortByAvgDelayDesc(rows)

	if len(rows) > delayAnalysisLimit {
		rows = rows[:delayAnalysisLimit]
	}

	infos := make([]DelayInfo, 0, len(rows))
	for _, row := range rows {
		info := DelayInfo{
			Airline: a.airlineName(ctx, row.Key[0]),
			Route:   routeLabel(row.Key[1], row.Key[2]),
			Count:   row.Count,
		}
		if row.AvgDelay != nil {
			info.AvgDelay = *row.AvgDelay
		}
		infos = append(infos, info)
	}

	return infos, nil
}
