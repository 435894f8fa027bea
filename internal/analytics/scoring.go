package analytics

import (
	"math"

	"github.com/flightperf/flightdash/internal/stats"
)

// Risk classification labels.
const (
	RiskHigh     = "High Risk"
	RiskModerate = "Moderate Risk"
	RiskLow      = "Low Risk"
)

// Congestion classification labels.
const (
	CongestionHigh     = "High Congestion"
	CongestionModerate = "Moderate Congestion"
	CongestionNormal   = "Normal"
)

// Hub classification labels.
const (
	HubMajor    = "Major Hub"
	HubRegional = "Regional Hub"
	HubStandard = "Standard Airport"
)

// Weather condition buckets, in fixed display order.
const (
	WeatherSevere   = "Severe Weather"
	WeatherModerate = "Moderate Weather"
	WeatherMinor    = "Minor Weather"
	WeatherClear    = "Clear"
)

// weatherBucketOrder is the fixed display order for weather impact
// reports, independent of which buckets are populated.
var weatherBucketOrder = []string{WeatherSevere, WeatherModerate, WeatherMinor, WeatherClear}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// PerformanceScore computes the composite airline performance score.
// Each component is clamped to its cap before weighting, so the result
// stays in [0, 100] for any on-time and cancellation percentages in
// [0, 100] and any non-negative average delay. Higher is better.
func PerformanceScore(onTimePct, cancelPct, avgDelay float64) float64 {
	onTime := clamp(onTimePct, 0, 100)
	cancelPenalty := 100 - clamp(cancelPct*10, 0, 100)
	delayPenalty := 100 - clamp(avgDelay, 0, 100)
	return onTime*0.4 + cancelPenalty*0.3 + delayPenalty*0.3
}

// DelayRiskScore computes the composite delay-risk score for a route and
// carrier over its trailing window. severeRate is the percentage of
// flights with dep_delay > 30; avgWeatherImpact is the mean weather
// delay in minutes. Higher means riskier.
func DelayRiskScore(avgDelay, severeRate, avgWeatherImpact float64) float64 {
	delayPart := clamp(avgDelay, 0, 60) / 60 * 40
	severePart := clamp(severeRate, 0, 100) * 0.4
	weatherPart := clamp(avgWeatherImpact, 0, 30) / 30 * 20
	return delayPart + severePart + weatherPart
}

// RiskLevel classifies a delay-risk score. A score of exactly 60 is
// Moderate, not High; exactly 30 is Moderate, not Low.
func RiskLevel(score float64) string {
	switch {
	case score > 60:
		return RiskHigh
	case score >= 30:
		return RiskModerate
	default:
		return RiskLow
	}
}

// CongestionLevel classifies an (airport, hour) group. Conditions are
// evaluated in priority order: the High test wins even when the Moderate
// test also holds.
func CongestionLevel(count int, avgDelay float64) string {
	switch {
	case count > 100 && avgDelay > 30:
		return CongestionHigh
	case count > 50 && avgDelay > 15:
		return CongestionModerate
	default:
		return CongestionNormal
	}
}

// HubClass classifies an airport by the breadth of its operations.
func HubClass(uniqueDestinations, airlinesOperating int) string {
	switch {
	case uniqueDestinations > 50 && airlinesOperating > 5:
		return HubMajor
	case uniqueDestinations > 25:
		return HubRegional
	default:
		return HubStandard
	}
}

// WeatherBucket assigns a flight's weather delay to its condition bucket.
func WeatherBucket(weatherDelay float64) string {
	switch {
	case weatherDelay > 60:
		return WeatherSevere
	case weatherDelay > 30:
		return WeatherModerate
	case weatherDelay > 0:
		return WeatherMinor
	default:
		return WeatherClear
	}
}

// CoefficientOfVariation returns stddev(delays) / mean(|delays|), the
// route reliability indicator (lower is more consistent). Nil when the
// coefficient is undefined: fewer than two samples, or a zero mean of
// absolute delays (every recorded delay is zero).
func CoefficientOfVariation(delays []float64) *float64 {
	sd := stats.StdDevSample(delays)
	if sd == nil {
		return nil
	}

	abs := make([]float64, len(delays))
	for i, d := range delays {
		abs[i] = math.Abs(d)
	}
	mean := stats.Mean(abs)
	if mean == nil || *mean == 0 {
		return nil
	}

	cv := *sd / *mean
	return &cv
}
