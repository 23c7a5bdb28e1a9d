package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/techno-hippies/dotheaven-sub003/cache"
	"github.com/techno-hippies/dotheaven-sub003/config"
	"github.com/techno-hippies/dotheaven-sub003/logging"
	"github.com/techno-hippies/dotheaven-sub003/metrics"
	"github.com/techno-hippies/dotheaven-sub003/registry"
)

var fetchNoCache bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <address>",
	Short: "Fetch and decode the profile of an account",
	Long: `Fetch the on-chain profile of an account and print it as JSON.

Example:
  profilectl fetch 0x8ba1f109551bd432803012645ac136ddd64dba72`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "bypass the local profile cache")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := createLogger(cfg.Logging)

	cacheCfg := cfg.Cache
	if fetchNoCache {
		cacheCfg.Backend = config.BackendNone
	}
	pc, err := cache.New(cacheCfg)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer pc.Close()
	logger.Debug("cache ready", logging.Backend(string(cacheCfg.Backend)))

	var met metrics.Metrics = metrics.NewNopMetrics()
	if cfg.Metrics.Enabled {
		met = metrics.NewPrometheusMetrics(cfg.Metrics.Namespace)
	}

	client, err := registry.NewClient(cfg.Chain.RPCURL, cfg.Chain.ContractAddress,
		registry.WithLogger(logger),
		registry.WithMetrics(met),
		registry.WithCache(pc),
		registry.WithTimeout(cfg.Chain.RequestTimeout.Duration()),
	)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Chain.RequestTimeout.Duration())
	defer cancel()

	rec, err := client.FetchProfile(ctx, args[0])
	if errors.Is(err, registry.ErrProfileNotFound) {
		fmt.Fprintln(os.Stderr, "No on-chain profile for", args[0])
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
