package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/techno-hippies/dotheaven-sub003/config"
)

var (
	initRPCURL   string
	initContract string
	initChainID  int64
	initDataDir  string
	initOverride bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Initialize a profilectl working directory.

This command creates:
  - config.toml: Client configuration
  - data/: Directory for the profile cache

Example:
  profilectl init --rpc-url https://rpc.example.org --contract 0x1234...`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initRPCURL, "rpc-url", "http://localhost:8545", "JSON-RPC endpoint")
	initCmd.Flags().StringVar(&initContract, "contract", "", "profile registry contract address")
	initCmd.Flags().Int64Var(&initChainID, "chain-id", 1, "chain ID of the network")
	initCmd.Flags().StringVar(&initDataDir, "data-dir", ".", "directory for configuration and cache data")
	initCmd.Flags().BoolVar(&initOverride, "force", false, "override existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	dataDir := initDataDir
	if dataDir == "" {
		dataDir = "."
	}

	configPath := filepath.Join(dataDir, "config.toml")
	if _, err := os.Stat(configPath); err == nil && !initOverride {
		return fmt.Errorf("config.toml already exists; use --force to override")
	}

	cfg := config.DefaultConfig()
	cfg.Chain.RPCURL = initRPCURL
	cfg.Chain.ChainID = initChainID
	if initContract != "" {
		cfg.Chain.ContractAddress = initContract
	}
	cfg.Cache.Path = filepath.Join(dataDir, "data", "profiles")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "data"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := config.SaveConfig(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized profilectl in %s\n", dataDir)
	fmt.Printf("  Config:  %s\n", configPath)
	fmt.Printf("  RPC URL: %s\n", cfg.Chain.RPCURL)
	return nil
}
