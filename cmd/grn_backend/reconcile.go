package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/grn_tracker/internal/adapters/export/xlsx"
	"github.com/SscSPs/grn_tracker/internal/core/services"
	"github.com/SscSPs/grn_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/grn_tracker/pkg/database"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recalculate the stored totals of every GRN from its line items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
		if err != nil {
			return fmt.Errorf("initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool)

		workbook := xlsx.NewWorkbook()
		svc := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), workbook, workbook)

		count, err := svc.GRN.RecalculateAllTotals(ctx)
		logger.Info("Reconciled GRN totals", slog.Int("grns", count))
		if err != nil {
			return fmt.Errorf("reconcile totals: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
