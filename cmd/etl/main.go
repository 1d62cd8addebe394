package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/lwisniewski/retail-analytics-api/infrastructure/database/postgres"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository"
	"github.com/lwisniewski/retail-analytics-api/internal/config"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/lwisniewski/retail-analytics-api/internal/etl"
	"github.com/lwisniewski/retail-analytics-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// The ETL binary reads the raw orders CSV, cleans and derives the money and
// date fields, optionally writes the cleaned CSV back to disk and replaces
// the orders table in a single transaction.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.Fatal(err)
	}
	logger := logrus.WithField("run_id", runID)

	startTime := time.Now()
	logger.WithField("input", cfg.ETL.InputPath).Info("Starting orders ETL run")

	input, err := os.Open(cfg.ETL.InputPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open input CSV")
	}
	defer input.Close()

	orders, report, err := etl.ParseOrders(input)
	if err != nil {
		logger.WithError(err).Fatal("Failed to parse orders CSV")
	}

	logger.WithFields(logrus.Fields{
		"total_rows":   report.TotalRows,
		"cleaned_rows": report.CleanedRows,
		"skipped_rows": report.SkippedRows,
	}).Info("Orders CSV cleaned")

	for _, rowErr := range report.Errors {
		logger.WithFields(logrus.Fields{
			"line":   rowErr.Line,
			"reason": rowErr.Reason,
		}).Warn("Skipped row")
	}

	if len(orders) == 0 {
		logger.Fatal("No valid orders found in input CSV")
	}

	if cfg.ETL.WriteOutput {
		if err := writeCleanCSV(cfg.ETL.OutputPath, orders); err != nil {
			logger.WithError(err).Fatal("Failed to write cleaned CSV")
		}
		logger.WithField("output", cfg.ETL.OutputPath).Info("Cleaned CSV written")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn, cfg.ETL.BatchSize)

	loaded, err := orderRepo.ReplaceAll(ctx, orders)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load orders into PostgreSQL")
	}

	count, err := orderRepo.Count()
	if err != nil {
		logger.WithError(err).Fatal("Failed to verify loaded row count")
	}

	if count != int64(len(orders)) {
		logger.WithFields(logrus.Fields{
			"expected": len(orders),
			"actual":   count,
		}).Fatal("Loaded row count does not match cleaned rows")
	}

	fields := logrus.Fields{
		"rows_loaded": loaded,
		"row_count":   count,
		"duration":    time.Since(startTime).String(),
	}
	if !report.FirstDate.IsZero() && !report.LastDate.IsZero() {
		fields["first_order_date"] = report.FirstDate.Format(time.DateOnly)
		fields["last_order_date"] = report.LastDate.Format(time.DateOnly)
	}
	logger.WithFields(fields).Info("Orders ETL run completed")
}

func writeCleanCSV(path string, orders []domain.Order) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	output, err := os.Create(path)
	if err != nil {
		return err
	}
	defer output.Close()

	return etl.WriteCleanCSV(output, orders)
}
