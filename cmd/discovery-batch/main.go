package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/catalog"
	"github.com/machinehub/discovery-pipeline/internal/classify"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/dedup"
	"github.com/machinehub/discovery-pipeline/internal/export"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	repo "github.com/machinehub/discovery-pipeline/internal/repository"
	"github.com/machinehub/discovery-pipeline/internal/scrape"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem        = flag.Bool("inmem", false, "use in-memory SQLite database")
		manufacturer = flag.String("manufacturer", "", "manufacturer UUID to scope the run (optional)")
		runClassify  = flag.Bool("classify", true, "run the classification gate before scraping")
		runScrape    = flag.Bool("scrape", true, "dispatch a scrape batch over pending URLs")
		runDedup     = flag.Bool("dedup", true, "run duplicate detection over scraped URLs")
		maxWorkers   = flag.Int("max-workers", 0, "concurrent extraction calls (default from config)")
		out          = flag.String("out", "", "output XLSX review file path (optional)")
	)
	flag.Parse()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var manufacturerID *uuid.UUID
	if *manufacturer != "" {
		parsed, err := uuid.Parse(*manufacturer)
		if err != nil {
			printError("Error: invalid --manufacturer UUID: %v\n", err)
			os.Exit(1)
		}
		manufacturerID = &parsed
	}

	// Initialize database
	db, err := repo.InitDatabase(ctx, cfg.Database, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	// Wire repositories
	urlsRepo := repo.NewDiscoveredURLRepository(db.Client, logger)
	machinesRepo := repo.NewCatalogMachineRepository(db.Client, logger)

	// Wire pipeline services
	ledgerSvc := ledger.NewService(urlsRepo, machinesRepo, logger)
	index := catalog.NewIndex(machinesRepo, cfg.Dedup.MaxCandidates, logger)
	resolver := dedup.NewResolver(ledgerSvc, index, urlsRepo, cfg.Dedup, logger)

	// 1) Classification gate
	if *runClassify {
		if cfg.Classifier.BaseURL == "" {
			logger.Warn("classifier URL not configured, skipping classification pass")
		} else {
			gate := classify.NewGate(ledgerSvc, classify.NewClient(cfg.Classifier), urlsRepo, cfg.Classifier.AutoSkipThreshold, logger)
			stats, err := gate.ClassifyPending(ctx, manufacturerID)
			if err != nil {
				logger.Error("classification pass failed", "error", err)
				os.Exit(1)
			}
			logger.Info("classification pass complete",
				"classified", stats.Classified, "auto_skipped", stats.AutoSkipped, "failed", stats.Failed)
		}
	}

	// 2) Scrape batch over pending, non-auto-skipped URLs
	if *runScrape {
		if cfg.Extraction.BaseURL == "" {
			logger.Warn("extraction URL not configured, skipping scrape batch")
		} else {
			pendingStatus := constants.ScrapePending
			pending, err := urlsRepo.List(ctx, repo.URLFilter{
				ManufacturerID:  manufacturerID,
				Status:          &pendingStatus,
				ExcludeAutoSkip: true,
			})
			if err != nil {
				logger.Error("failed to list pending urls", "error", err)
				os.Exit(1)
			}
			if len(pending) == 0 {
				logger.Info("no pending urls to scrape")
			} else {
				extractor, err := scrape.NewClient(cfg.Extraction, logger)
				if err != nil {
					logger.Error("failed to build extraction client", "error", err)
					os.Exit(1)
				}
				orchestrator := scrape.NewOrchestrator(ledgerSvc, extractor, logger)

				workers := *maxWorkers
				if workers <= 0 {
					workers = cfg.Extraction.MaxWorkers
				}
				mID := uuid.Nil
				if manufacturerID != nil {
					mID = *manufacturerID
				}
				handle, err := orchestrator.Dispatch(ctx, pending, mID, workers)
				if err != nil {
					logger.Error("scrape dispatch failed", "error", err)
					os.Exit(1)
				}
				if err := handle.Wait(ctx); err != nil {
					logger.Error("scrape batch interrupted", "error", err)
					os.Exit(1)
				}
				succeeded, failed := 0, 0
				for _, o := range handle.Snapshot() {
					if o.Success {
						succeeded++
					} else {
						failed++
					}
				}
				logger.Info("scrape batch complete", "batch_id", handle.ID, "succeeded", succeeded, "failed", failed)
			}
		}
	}

	// 3) Duplicate detection
	var dedupStats struct{ Checked, DuplicatesFound int }
	if *runDedup {
		stats, err := resolver.RunDuplicateCheck(ctx, manufacturerID)
		if err != nil {
			logger.Error("duplicate detection failed", "error", err)
			os.Exit(1)
		}
		dedupStats.Checked = stats.Checked
		dedupStats.DuplicatesFound = stats.DuplicatesFound
		logger.Info("duplicate detection complete",
			"checked", stats.Checked, "duplicates_found", stats.DuplicatesFound)
	}

	// 4) Review export
	if *out != "" {
		exporter := export.NewService(urlsRepo, machinesRepo, logger)
		xlsx, err := exporter.ExportReviewXLSX(ctx, repo.URLFilter{ManufacturerID: manufacturerID})
		if err != nil {
			logger.Error("failed to export review workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsx, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("review workbook written", "path", *out)
	}

	fmt.Printf("Batch run complete!\n")
	fmt.Printf("- Duplicates checked: %d\n", dedupStats.Checked)
	fmt.Printf("- Duplicates found: %d\n", dedupStats.DuplicatesFound)
	if *out != "" {
		fmt.Printf("- Review workbook: %s\n", *out)
	}
}
