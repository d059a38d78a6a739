// Command rfidctl runs the RFID assignment reconciler as a one-shot CLI:
// assign tags to untagged supplies, show coverage statistics, validate stored
// tags, or export the full report. It talks straight to the supply database
// and the tag file; no Redis, event bus, or HTTP server is involved.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghuser/cims/pkg/config"
	"github.com/ghuser/cims/pkg/database"
	"github.com/ghuser/cims/pkg/logger"
	appsvcs "github.com/ghuser/cims/services/rfid/application/services"
	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
	domainsvcs "github.com/ghuser/cims/services/rfid/domain/services"
	"github.com/ghuser/cims/services/rfid/infrastructure/catalog"
	"github.com/ghuser/cims/services/rfid/infrastructure/persistence/tagfile"
	supplypg "github.com/ghuser/cims/services/supply/infrastructure/persistence/postgres"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dryRun         bool
		showStats      bool
		validate       bool
		exportReport   bool
		reportFilename string
	)

	cmd := &cobra.Command{
		Use:          "rfidctl",
		Short:        "RFID tag assignment for the clinic supply catalog",
		Long:         "Assigns RFID tags to medical supplies that lack them, and reports on tag coverage and integrity.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, cfg, cleanup, err := buildReconciler(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			switch {
			case showStats:
				return runStatistics(cmd, rec)
			case validate:
				return runValidate(cmd, rec)
			case exportReport:
				return runExportReport(cmd, rec, cfg.ReportDir, reportFilename)
			default:
				return runAssign(cmd, rec, dryRun)
			}
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate assignment without saving")
	cmd.Flags().BoolVar(&showStats, "statistics", false, "show RFID coverage statistics")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate existing RFID tags")
	cmd.Flags().BoolVar(&exportReport, "export-report", false, "export RFID report to JSON")
	cmd.Flags().StringVar(&reportFilename, "report-filename", "rfid_report.json", "report filename")
	cmd.MarkFlagsMutuallyExclusive("statistics", "validate", "export-report", "dry-run")

	return cmd
}

// buildReconciler wires a reconciler over the Postgres catalog and the
// configured tag file. A corrupt tag file is reported loudly and the run
// continues with an empty collection.
func buildReconciler(ctx context.Context) (*appsvcs.Reconciler, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(cfg)

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to supply database: %w", err)
	}

	store := tagfile.NewStore(cfg.TagStorePath)
	tags, err := store.Load()
	if err != nil {
		if !errors.Is(err, rfiddomain.ErrCorruptStore) {
			pool.Close()
			return nil, nil, nil, err
		}
		log.Warn("tag store unreadable, continuing with empty collection",
			"path", store.Path(), "error", err)
	}

	supplyCatalog := catalog.NewSupplyCatalogAdapter(supplypg.NewSupplyRepository(pool, nil))
	rec := appsvcs.NewReconciler(supplyCatalog, store, tags, domainsvcs.NewGenerator(), nil, log)
	return rec, cfg, pool.Close, nil
}

func runAssign(cmd *cobra.Command, rec *appsvcs.Reconciler, dryRun bool) error {
	mode := "LIVE MODE"
	if dryRun {
		mode = "DRY RUN MODE"
	}
	cmd.Printf("\n%s\n", mode)
	cmd.Println("==================================================")

	result, err := rec.Assign(cmd.Context(), dryRun)
	if err != nil {
		return err
	}

	cmd.Println("\n=== RFID Assignment Results ===")
	cmd.Printf("Status: %s\n", result.Status)
	cmd.Printf("Message: %s\n", result.Message)
	cmd.Printf("Assigned: %d\n", result.AssignedCount)
	cmd.Printf("Failed: %d\n", result.FailedCount)
	cmd.Printf("Total Supplies: %d\n", result.TotalSupplies)
	cmd.Printf("Supplies without RFID: %d\n", result.SuppliesWithoutRFID)

	if len(result.AssignedTags) > 0 {
		cmd.Println("\nAssigned RFID Tags:")
		for _, a := range result.AssignedTags {
			cmd.Printf("  - %s: %s\n", a.ItemName, a.RFIDTag)
		}
	}
	if len(result.FailedAssignments) > 0 {
		cmd.Println("\nFailed Assignments:")
		for _, f := range result.FailedAssignments {
			cmd.Printf("  - %s: %s\n", f.ItemName, f.Error)
		}
	}

	if result.Status != "success" {
		return fmt.Errorf("assignment pass failed: %s", result.Message)
	}
	return nil
}

func runStatistics(cmd *cobra.Command, rec *appsvcs.Reconciler) error {
	stats, err := rec.Statistics(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println("\n=== RFID Assignment Statistics ===")
	cmd.Printf("Total Supplies: %d\n", stats.TotalSupplies)
	cmd.Printf("Supplies with RFID: %d\n", stats.SuppliesWithRFID)
	cmd.Printf("Supplies without RFID: %d\n", stats.SuppliesWithoutRFID)
	cmd.Printf("RFID Coverage: %.1f%%\n", stats.RFIDCoveragePercentage)
	cmd.Printf("Total RFID Tags: %d\n", stats.TotalRFIDTags)
	cmd.Printf("Active RFID Tags: %d\n", stats.ActiveRFIDTags)
	cmd.Printf("Inactive RFID Tags: %d\n", stats.InactiveRFIDTags)
	return nil
}

func runValidate(cmd *cobra.Command, rec *appsvcs.Reconciler) error {
	validation := rec.Validate()

	cmd.Println("\n=== RFID Tag Validation ===")
	cmd.Printf("Total Tags: %d\n", validation.TotalTags)
	cmd.Printf("Valid Tags: %d\n", validation.ValidTags)
	cmd.Printf("Invalid Tags: %d\n", validation.InvalidTags)

	if len(validation.Errors) > 0 {
		cmd.Println("\nErrors:")
		for _, e := range validation.Errors {
			cmd.Printf("  - %s: %s (expected %s, actual %s)\n", e.TagID, e.Error, e.Expected, e.Actual)
		}
	}
	return nil
}

func runExportReport(cmd *cobra.Command, rec *appsvcs.Reconciler, reportDir, filename string) error {
	path, err := appsvcs.ReportPath(reportDir, filename)
	if err != nil {
		return err
	}

	written, err := rec.ExportReport(cmd.Context(), path)
	if err != nil {
		return err
	}
	cmd.Printf("\nRFID report exported to: %s\n", written)
	return nil
}
