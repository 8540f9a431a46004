package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eloyz/pynab-go/internal/config"
	"github.com/eloyz/pynab-go/ynab"
)

var cfgFile string

var errMissingToken = errors.New("missing token: pass --token or set PYNAB_TOKEN")

var rootCmd = &cobra.Command{
	Use:   "pynab",
	Short: "Read-only command-line client for the YNAB API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file (default: $HOME/.config/pynab/config.yaml)")
	rootCmd.PersistentFlags().String("token", "",
		"YNAB personal access token (env: PYNAB_TOKEN)")
	rootCmd.PersistentFlags().String("budget-name", "",
		"Budget to operate on (default: first budget)")
	rootCmd.PersistentFlags().StringP("output", "o", "table",
		"Output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Debug logging and raw record dumps")
}

// setup builds the merged config and a ready-to-use client for a subcommand,
// resolving the configured budget name up front when one is set.
func setup(cmd *cobra.Command) (*config.Config, *ynab.Client, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	if cfg.Token == "" {
		return nil, nil, errMissingToken
	}

	level := log.WarnLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pynab",
		Level:           level,
	})

	client := ynab.NewWithOptions(cfg.Token, ynab.Options{Logger: logger})

	if cfg.BudgetName != "" {
		if _, err := client.GetBudgetIDByName(cmd.Context(), cfg.BudgetName); err != nil {
			return nil, nil, err
		}
	}

	return cfg, client, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
