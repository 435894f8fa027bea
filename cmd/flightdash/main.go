// Command flightdash computes flight performance analytics over the
// historical on-time dataset and renders them as text reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flightperf/flightdash/internal/analytics"
	"github.com/flightperf/flightdash/internal/config"
	"github.com/flightperf/flightdash/internal/storage"
	"github.com/flightperf/flightdash/internal/version"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: flightdash <command> [options]

Commands:
  overview       Dataset-wide performance summary
  delays         Delay analysis by type (-type "All Delays"|Weather|Carrier|NAS|Security|"Late Aircraft")
  routes         Route performance (-origin XXX -dest YYY, or -top N for the busiest routes)
  weather        Weather impact by condition
  regions        Weather impact by state
  airlines       Airline comparison by on-time percentage
  rank           Airline ranking by composite performance score
  risk           Route delay-risk report (90-day window)
  congestion     Airport congestion by departure hour
  hubs           Airport hub classification
  reliability    Route reliability ranking (delay coefficient of variation)
  trends         Year-over-year monthly delay trends
  cascade        Delay cascade effect per carrier
  cancellations  Cancellation reasons breakdown
  import         Load a flight dataset CSV (-file path)
  charts         Export airline comparison and trend charts as HTML
  version        Print the application version`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}
	command := os.Args[1]
	args := os.Args[2:]

	if command == "version" {
		fmt.Println("flightdash", version.GetVersion())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := storage.Open(&storage.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		BusyTimeout:     storage.DefaultConfig(cfg.Database.Path).BusyTimeout,
		ConnMaxLifetime: storage.DefaultConfig(cfg.Database.Path).ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
	})
	if err != nil {
		log.Fatalf("open flight store: %v", err)
	}
	service := storage.NewService(db)
	defer service.Close()

	analyzer := analytics.NewAnalyzer(service.Flights(), service.References())
	ctx := context.Background()

	if err := run(ctx, command, args, cfg, service, analyzer); err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

func run(ctx context.Context, command string, args []string, cfg *config.Config, service *storage.Service, analyzer *analytics.Analyzer) error {
	switch command {
	case "overview":
		stats, err := analyzer.Overview(ctx)
		if err != nil {
			return err
		}
		displayOverview(stats)

	case "delays":
		fs := flag.NewFlagSet("delays", flag.ExitOnError)
		delayType := fs.String("type", string(analytics.DelayAll), "delay type to analyze")
		fs.Parse(args) //nolint:errcheck // ExitOnError
		delays, err := analyzer.DelayAnalysis(ctx, analytics.DelayType(*delayType))
		if err != nil {
			return err
		}
		displayDelayAnalysis(*delayType, delays)

	case "routes":
		fs := flag.NewFlagSet("routes", flag.ExitOnError)
		origin := fs.String("origin", "", "origin airport code")
		dest := fs.String("dest", "", "destination airport code")
		top := fs.Int("top", 20, "number of busiest routes when no route is given")
		byTimeOfDay := fs.Bool("tod", false, "break the route down by time of day")
		fs.Parse(args) //nolint:errcheck // ExitOnError
		return runRoutes(ctx, analyzer, *origin, *dest, *top, *byTimeOfDay)

	case "weather":
		impacts, err := analyzer.WeatherImpactSummary(ctx)
		if err != nil {
			return err
		}
		displayWeatherImpact(impacts)

	case "regions":
		impacts, err := analyzer.WeatherImpactByRegion(ctx)
		if err != nil {
			return err
		}
		displayRegionImpact(impacts)

	case "airlines":
		airlines, err := analyzer.AirlineComparison(ctx)
		if err != nil {
			return err
		}
		displayAirlineComparison(airlines)

	case "rank":
		scores, err := analyzer.AirlineRankings(ctx)
		if err != nil {
			return err
		}
		displayAirlineRankings(scores)

	case "risk":
		risks, err := analyzer.DelayRiskReport(ctx)
		if err != nil {
			return err
		}
		displayRiskReport(risks)

	case "congestion":
		slots, err := analyzer.CongestionReport(ctx)
		if err != nil {
			return err
		}
		displayCongestion(slots)

	case "hubs":
		hubs, err := analyzer.HubReport(ctx)
		if err != nil {
			return err
		}
		displayHubs(hubs)

	case "reliability":
		routes, err := analyzer.ReliabilityRanking(ctx)
		if err != nil {
			return err
		}
		displayReliability(routes)

	case "trends":
		trends, err := analyzer.YearOverYearTrends(ctx)
		if err != nil {
			return err
		}
		displayTrends(trends)

	case "cascade":
		cascades, err := analyzer.CascadeEffect(ctx)
		if err != nil {
			return err
		}
		displayCascade(cascades)

	case "cancellations":
		breakdown, err := analyzer.CancellationReport(ctx)
		if err != nil {
			return err
		}
		displayCancellations(breakdown)

	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		file := fs.String("file", "", "path to the dataset CSV")
		fs.Parse(args) //nolint:errcheck // ExitOnError
		if *file == "" {
			return fmt.Errorf("-file is required")
		}
		importer := storage.NewImporter(service, nil)
		imported, err := importer.ImportFile(ctx, *file)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d flights from %s\n", imported, *file)
		total, err := service.FlightCount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Store now holds %d flights\n", total)

	case "charts":
		return exportCharts(ctx, analyzer, cfg.Output.ChartsDir)

	default:
		usage()
	}

	return nil
}

func runRoutes(ctx context.Context, analyzer *analytics.Analyzer, origin, dest string, top int, byTimeOfDay bool) error {
	if origin == "" || dest == "" {
		routes, err := analyzer.TopRoutes(ctx, top)
		if err != nil {
			return err
		}
		displayRoutePerformance(fmt.Sprintf("TOP %d ROUTES", top), routes)
		return nil
	}

	if byTimeOfDay {
		routes, err := analyzer.RouteTimeOfDay(ctx, origin, dest)
		if err != nil {
			return err
		}
		displayRoutePerformance(origin+" → "+dest+" BY TIME OF DAY", routes)
		return nil
	}

	routes, err := analyzer.RoutePerformanceFor(ctx, origin, dest)
	if err != nil {
		return err
	}
	displayRoutePerformance(origin+" → "+dest, routes)
	return nil
}
