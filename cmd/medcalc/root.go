package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/medcalc/internal/cli"
	"github.com/aretw0/medcalc/internal/config"
	"github.com/aretw0/medcalc/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "medcalc",
	Short: "MedCalc serves clinical calculators behind one contract",
	Long: `MedCalc loads a catalog of clinical calculators from two metadata documents
and exposes them over HTTP, MCP or the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().String("source", "", "Metadata source: embedded, file or redis (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
}

// loadConfig resolves the configuration for cmd: file, then environment, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("source") {
		cfg.Metadata.Source, _ = cmd.Flags().GetString("source")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, cfg.Validate()
}

// setup loads the configuration and builds the runtime shared by every command.
func setup(cmd *cobra.Command) (config.Config, *cli.Runtime, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger := logging.New(level)

	rt, err := cli.NewRuntime(cfg, logger)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("error initializing medcalc: %w", err)
	}
	return cfg, rt, logger, nil
}
