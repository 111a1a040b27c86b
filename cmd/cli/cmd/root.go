// Package cmd provides the CLI commands for pricecalc.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pricecalc/core/connectivity"
	"pricecalc/core/estimate"
	"pricecalc/core/fallback"
	"pricecalc/core/pricing"
	"pricecalc/internal/config"
	"pricecalc/internal/logging"
	"pricecalc/remote/awspricing"
)

var (
	cfgFile      string
	verbose      bool
	forceOffline bool
	forceOnline  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricecalc",
	Short: "Estimate AWS service costs",
	Long: `pricecalc estimates monthly AWS costs per service and resolves
live on-demand instance prices, falling back to a bundled price
catalog when the pricing API is unreachable.

Examples:
  pricecalc estimate EC2 --param instance_type=t3.micro --param quantity=2
  pricecalc estimate --file resources.hcl --export costs.json
  pricecalc price t3.micro --region eu-west-1 --os Windows
  pricecalc instances`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pricecalc.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&forceOffline, "offline", false, "skip the pricing API and use only bundled prices")
	rootCmd.PersistentFlags().BoolVar(&forceOnline, "online", false, "assume the pricing API is reachable without probing")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(instancesCmd)
	rootCmd.AddCommand(specsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildResolver wires the monitor, dispatcher, and live source from
// the active configuration and the connectivity override flags
func buildResolver(ctx context.Context) *pricing.Resolver {
	cfg := config.Get()

	monitor := connectivity.NewMonitor(
		connectivity.WithEndpoint(cfg.Probe.EndpointURL),
		connectivity.WithTimeout(time.Duration(cfg.Probe.TimeoutSeconds)*time.Second),
		connectivity.WithRetries(cfg.Probe.MaxRetries, time.Duration(cfg.Probe.RetryDelaySeconds)*time.Second),
	)
	if forceOffline {
		monitor.ForceOffline()
	} else if forceOnline {
		monitor.ForceOnline()
	}

	var live pricing.LiveSource
	if !forceOffline {
		client, err := awspricing.NewClient(ctx, awspricing.Options{
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

	return pricing.NewResolver(
		estimate.NewDefaultRegistry(),
		fallback.NewDispatcher(monitor),
		live,
		cfg.Pricing.HoursPerMonth,
	)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pricecalc version 0.1.0")
	},
}
