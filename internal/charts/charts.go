// Package charts renders analytics results as interactive HTML charts.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title      string // Chart title
	Subtitle   string // Chart subtitle
	SeriesName string // Name of the plotted series
	Width      string // Chart width (e.g., "900px")
	Height     string // Chart height (e.g., "500px")
	Smooth     bool   // Smooth line (for line charts)
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "500px",
		Smooth: true,
	}
}

// DataPoint represents a single data point in a chart.
type DataPoint struct {
	Label string
	Value float64
}

// RenderLineChart creates an interactive line chart HTML file.
func RenderLineChart(data []DataPoint, config ChartConfig, outputPath string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(config)...)

	xLabels := make([]string, len(data))
	yData := make([]opts.LineData, len(data))
	for i, point := range data {
		xLabels[i] = point.Label
		yData[i] = opts.LineData{Value: point.Value}
	}

	line.SetXAxis(xLabels).
		AddSeries(config.SeriesName, yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(config.Smooth),
			}),
		)

	return renderToFile(line, outputPath)
}

// RenderBarChart creates an interactive bar chart HTML file.
func RenderBarChart(data []DataPoint, config ChartConfig, outputPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(config)...)

	xLabels := make([]string, len(data))
	yData := make([]opts.BarData, len(data))
	for i, point := range data {
		xLabels[i] = point.Label
		yData[i] = opts.BarData{Value: point.Value}
	}

	bar.SetXAxis(xLabels).AddSeries(config.SeriesName, yData)

	return renderToFile(bar, outputPath)
}

func globalOptions(config ChartConfig) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	}
}

type renderer interface {
	Render(w io.Writer) error
}

func renderToFile(chart renderer, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
