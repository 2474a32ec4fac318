package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/datasmith/datasmith/config"
	"github.com/datasmith/datasmith/logger"
	"github.com/datasmith/datasmith/metrics"
	"github.com/datasmith/datasmith/pkg/catalog"
	"github.com/datasmith/datasmith/pkg/core"
	"github.com/datasmith/datasmith/pkg/corrupt"
	"github.com/datasmith/datasmith/pkg/generator"
	"github.com/datasmith/datasmith/pkg/runner"
	"github.com/datasmith/datasmith/pkg/writers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GenerateOptions represents the flag overrides for the generate command.
type GenerateOptions struct {
	ConfigPath  string
	TotalRows   int64
	BatchSize   int64
	OutputPath  string
	Seed        int64
	SummaryPath string
}

// newGenerateCommand creates the generate command.
func newGenerateCommand() *cobra.Command {
	options := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a messy e-commerce CSV dataset",
		Long: `The generate command streams batches of internally-consistent but
intentionally-defective e-commerce rows to a CSV file.

Same seed, same row/batch configuration: byte-identical output. Interrupting a
run (Ctrl-C) leaves a valid partial file: header plus whole flushed batches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadGenerateConfig(cmd, options)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGenerate(cfg)
		},
	}

	cmd.Flags().StringVar(&options.ConfigPath, "config", "", "Path to YAML configuration file")
	cmd.Flags().Int64Var(&options.TotalRows, "rows", 0, "Total number of rows to generate")
	cmd.Flags().Int64VarP(&options.BatchSize, "batch-size", "b", 0, "Rows per batch")
	cmd.Flags().StringVarP(&options.OutputPath, "output", "o", "", "Output CSV path")
	cmd.Flags().Int64Var(&options.Seed, "seed", 0, "Random seed (same seed reproduces the file)")
	cmd.Flags().StringVar(&options.SummaryPath, "summary", "", "Optional path for a JSON run summary")

	return cmd
}

// loadGenerateConfig merges the config file (or defaults) with explicit flag
// overrides.
func loadGenerateConfig(cmd *cobra.Command, options *GenerateOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if options.ConfigPath != "" {
		cfg, err = config.LoadConfig(options.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	if cmd.Flags().Changed("rows") {
		cfg.Generator.TotalRows = options.TotalRows
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.Generator.BatchSize = options.BatchSize
	}
	if cmd.Flags().Changed("output") {
		cfg.Generator.OutputPath = options.OutputPath
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generator.Seed = options.Seed
	}
	if cmd.Flags().Changed("summary") {
		cfg.Generator.SummaryPath = options.SummaryPath
	}

	return cfg, nil
}

// runGenerate executes the generation run with the given configuration.
func runGenerate(cfg *config.Config) error {
	log := logger.GetLogger()
	defer logger.Sync()

	gc := cfg.Generator

	// Set up context with signal handling so interruption leaves the sink in
	// a valid, readable partial state.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\nCancelling generation...")
		cancel()
	}()

	start := time.Now()

	cat, err := catalog.Build(gc.Seed)
	if err != nil {
		return fmt.Errorf("failed to build catalogs: %w", err)
	}
	log.Info("catalogs ready",
		zap.Int("customers", cat.Customers.Len()),
		zap.Int("products", cat.Products.Len()),
		zap.Int("warehouses", cat.Warehouses.Len()),
		zap.Int("zip_codes", cat.Geography.ZipCount()),
		zap.Int("calendar_days", cat.Calendar.Len()),
	)

	collector := metrics.NewCollector()
	injector := corrupt.NewInjector(corrupt.WithObserver(collector.Observe))
	zipRule := corrupt.NewZipRule(cat.Geography, collector.Observe)

	gen, err := generator.New(generator.Options{
		Catalog:           cat,
		Seed:              gc.Seed,
		WarehouseAffinity: gc.WarehouseAffinity,
		ShippingAffinity:  gc.ShippingAffinity,
		Rates:             gc.Rates,
		Injector:          injector,
		ZipRule:           zipRule,
	})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	writer, err := writers.DefaultFactory.Create(core.WriterConfig{
		Type: "csv",
		Path: gc.OutputPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer writer.Close()

	run, err := runner.New(runner.Options{
		Generator:     gen,
		Writer:        writer,
		Logger:        log,
		ProgressEvery: gc.ProgressEvery,
	})
	if err != nil {
		return err
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = fmt.Sprintf(" generating %d rows...", gc.TotalRows)
	spin.Start()

	result, err := run.Run(ctx, gc.TotalRows, gc.BatchSize)
	spin.Stop()

	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	if closeErr := writer.Close(); closeErr != nil {
		return fmt.Errorf("failed to close writer: %w", closeErr)
	}

	summary := &metrics.Summary{
		Run: metrics.RunMetadata{
			Seed:          gc.Seed,
			TotalRows:     gc.TotalRows,
			BatchSize:     gc.BatchSize,
			Batches:       result.Batches,
			RowsWritten:   result.RowsWritten,
			Columns:       len(generator.Columns()),
			OutputPath:    gc.OutputPath,
			StartTime:     start,
			EndTime:       time.Now(),
			Duration:      result.Duration,
			RowsPerSecond: float64(result.RowsWritten) / result.Duration.Seconds(),
		},
		Defects: collector.Snapshot(),
	}

	if gc.SummaryPath != "" {
		if err := metrics.WriteSummary(gc.SummaryPath, summary); err != nil {
			return err
		}
	}

	if interrupted {
		log.Warn("generation interrupted; partial file is valid",
			zap.Int64("rows_written", result.RowsWritten),
			zap.Int("batches", result.Batches),
			zap.String("output", gc.OutputPath),
		)
		return nil
	}

	log.Info("generation complete",
		zap.Int64("rows_written", result.RowsWritten),
		zap.Int("batches", result.Batches),
		zap.Int("columns", len(generator.Columns())),
		zap.Duration("duration", result.Duration),
		zap.Float64("rows_per_second", summary.Run.RowsPerSecond),
		zap.Int64("defects_injected", collector.Total()),
		zap.String("output", gc.OutputPath),
	)
	return nil
}
