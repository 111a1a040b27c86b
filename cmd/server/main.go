// Package main is the entry point for the pricecalc API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"pricecalc/api"
	"pricecalc/core/connectivity"
	"pricecalc/core/estimate"
	"pricecalc/core/fallback"
	"pricecalc/core/pricing"
	"pricecalc/internal/config"
	"pricecalc/internal/logging"
	"pricecalc/remote/awspricing"
)

const version = "0.1.0"

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		cfgFile = flag.String("config", "", "config file path")
		offline = flag.Bool("offline", false, "skip the pricing API and use only bundled prices")
	)
	flag.Parse()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	monitor := connectivity.NewMonitor(
		connectivity.WithEndpoint(cfg.Probe.EndpointURL),
		connectivity.WithTimeout(time.Duration(cfg.Probe.TimeoutSeconds)*time.Second),
		connectivity.WithRetries(cfg.Probe.MaxRetries, time.Duration(cfg.Probe.RetryDelaySeconds)*time.Second),
	)
	if *offline {
		monitor.ForceOffline()
	}

	var live pricing.LiveSource
	if !*offline {
		client, err := awspricing.NewClient(context.Background(), awspricing.Options{
			Profile:    cfg.AWS.Profile,
			Region:     cfg.AWS.PricingRegion,
			MaxResults: int32(cfg.Pricing.MaxResults),
		})
		if err != nil {
			logging.Warn("pricing API client unavailable, using bundled prices: " + err.Error())
		} else {
			live = client
		}
	}

	resolver := pricing.NewResolver(
		estimate.NewDefaultRegistry(),
		fallback.NewDispatcher(monitor),
		live,
		cfg.Pricing.HoursPerMonth,
	)

	server := api.NewServer(version, resolver)
	logging.Info("starting API server on " + *addr)
	if err := server.ListenAndServe(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
