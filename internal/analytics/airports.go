package analytics

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/flightperf/flightdash/internal/storage/models"
)

// CongestionInfo is one row of the airport congestion view: departure
// volume and delay for an (airport, hour) slot with its classification.
type CongestionInfo struct {
	Airport     string
	Hour        int
	FlightCount int
	AvgDelay    float64
	Level       string
}

// HubInfo classifies an airport by the breadth of its operations.
type HubInfo struct {
	Airport            string
	Name               string
	UniqueDestinations int
	AirlinesOperating  int
	Class              string
}

// congestionMinSupport trims slots too thin to be worth listing; the
// classification thresholds themselves are fixed in CongestionLevel.
const congestionMinSupport = 10

// CongestionReport classifies (origin, departure hour) slots, busiest
// first.
func (a *Analyzer) CongestionReport(ctx context.Context) ([]CongestionInfo, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for congestion report: %w", err)
	}

	rows := aggregate(records, func(r *models.FlightRecord) ([]string, bool) {
		return []string{r.Origin, strconv.Itoa(r.ScheduledDep.Hour())}, true
	}, depDelaySample, congestionMinSupport)

	out := make([]CongestionInfo, 0, len(rows))
	for _, row := range rows {
		hour, err := strconv.Atoi(row.Key[1])
		if err != nil {
			continue
		}
		info := CongestionInfo{
			Airport:     row.Key[0],
			Hour:        hour,
			FlightCount: row.Count,
		}
		if row.AvgDelay != nil {
			info.AvgDelay = *row.AvgDelay
		}
		info.Level = CongestionLevel(info.FlightCount, info.AvgDelay)
		out = append(out, info)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FlightCount > out[j].FlightCount
	})

	return out, nil
}

// HubReport classifies every origin airport by unique destinations
// served and carriers operating, largest networks first. Airport display
// names come from the reference table when available.
func (a *Analyzer) HubReport(ctx context.Context) ([]HubInfo, error) {
	records, err := a.flights.List(ctx, models.FlightFilter{})
	if err != nil {
		return nil, fmt.Errorf("query flights for hub report: %w", err)
	}

	type network struct {
		dests    map[string]struct{}
		airlines map[string]struct{}
	}
	networks := make(map[string]*network)
	var order []string
	for _, r := range records {
		n := networks[r.Origin]
		if n == nil {
			n = &network{dests: make(map[string]struct{}), airlines: make(map[string]struct{})}
			networks[r.Origin] = n
			order = append(order, r.Origin)
		}
		n.dests[r.Dest] = struct{}{}
		n.airlines[r.Airline] = struct{}{}
	}

	out := make([]HubInfo, 0, len(order))
	for _, code := range order {
		n := networks[code]
		info := HubInfo{
			Airport:            code,
			Name:               code,
			UniqueDestinations: len(n.dests),
			AirlinesOperating:  len(n.airlines),
		}
		info.Class = HubClass(info.UniqueDestinations, info.AirlinesOperating)
		if a.refs != nil {
			if ap, err := a.refs.GetAirport(ctx, code); err == nil && ap != nil {
				info.Name = ap.Name
			}
		}
		out = append(out, info)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UniqueDestinations != out[j].UniqueDestinations {
			return out[i].UniqueDestinations > out[j].UniqueDestinations
		}
		return out[i].AirlinesOperating > out[j].AirlinesOperating
	})

	return out, nil
}
