package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/SscSPs/grn_tracker/internal/middleware"
	"github.com/SscSPs/grn_tracker/internal/platform/config"
)

var (
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "grn_backend",
	Short: "GRN tracker backend",
	Long:  `Records Goods Received Notes against vendors and branches and produces the GRN register.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("load env file %s: %w", envFile, err)
			}
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger = middleware.NewLogger(cfg.LogLevel)
		slog.SetDefault(logger)
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before the environment (default is ./.env when present)")
}
