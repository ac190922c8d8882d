package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/erp-rates/api"
	"github.com/theoremus-urban-solutions/erp-rates/config"
	"github.com/theoremus-urban-solutions/erp-rates/interval"
	"github.com/theoremus-urban-solutions/erp-rates/internal"
	"github.com/theoremus-urban-solutions/erp-rates/utils"
)

func main() {
	mode := flag.String("mode", "build", "build|serve|lookup")
	configPath := flag.String("config", "", "path to config.yml")
	ratesURL := flag.String("rates", "", "rates URL or file (overrides config)")
	gantriesURL := flag.String("gantries", "", "gantries URL or file (overrides config)")
	featuresPath := flag.String("features", "", "features NDJSON path (overrides config)")
	splitsPath := flag.String("splits", "", "splits JSON path (overrides config)")
	statusPath := flag.String("status", "", "status JSON path (overrides config)")
	watch := flag.Bool("watch", false, "serve: reload when the output files change")
	gantryID := flag.String("gantry", "", "lookup: gantry id")
	vehicleType := flag.String("vehicleType", "Passenger Cars/Light Goods Vehicles/Taxis", "lookup: vehicle type")
	dayType := flag.String("dayType", "Weekdays", "lookup: day type")
	view := flag.String("view", "", "lookup: all|minimal (overrides config)")
	at := flag.String("time", "", "lookup: HH:MM, defaults to now")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(*configPath); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if *ratesURL != "" {
		cfg.Source.RatesURL = *ratesURL
	}
	if *gantriesURL != "" {
		cfg.Source.GantriesURL = *gantriesURL
	}
	if *featuresPath != "" {
		cfg.Output.FeaturesPath = *featuresPath
	}
	if *splitsPath != "" {
		cfg.Output.SplitsPath = *splitsPath
	}
	if *statusPath != "" {
		cfg.Output.StatusPath = *statusPath
	}
	if *view != "" {
		cfg.Display.ViewType = *view
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "build":
		f := newFetcher(time.Duration(cfg.Source.TimeoutMS)*time.Millisecond, cfg.Source.AccountKey)
		if err := runBuild(ctx, f, cfg.Source, cfg.Output); err != nil {
			log.Fatalf("build: %v", err)
		}
	case "serve":
		store := api.NewStore(nil)
		if err := store.LoadFiles(cfg.Output.FeaturesPath, cfg.Output.SplitsPath); err != nil {
			log.Fatalf("load: %v", err)
		}
		if cfg.Output.StatusPath != "" {
			if err := store.LoadStatusFile(cfg.Output.StatusPath); err != nil {
				log.Fatalf("load status: %v", err)
			}
		}
		if *watch {
			if err := watchFiles(ctx, store, cfg.Output); err != nil {
				log.Fatalf("watch: %v", err)
			}
		}
		srv := api.NewServer(cfg, store)
		srv.Start()
		<-ctx.Done()
		log.Printf("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	case "lookup":
		if err := runLookup(cfg, *gantryID, *vehicleType, *dayType, *at); err != nil {
			log.Fatalf("lookup: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func runLookup(cfg config.AppConfig, gantryID, vehicleType, dayType, at string) error {
	d, err := api.ReadDataset(cfg.Output.FeaturesPath, cfg.Output.SplitsPath)
	if err != nil {
		return err
	}
	v, err := interval.ParseView(cfg.Display.ViewType)
	if err != nil {
		return err
	}
	t, err := utils.ParseClock(at, cfg.Display.Timezone)
	if err != nil {
		return err
	}
	full, window, err := d.Rates(gantryID, vehicleType, dayType, v, t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"gantryId":      gantryID,
		"time":          t,
		"maxRateAmount": full.MaxRateAmount,
		"rates":         window,
	})
}
