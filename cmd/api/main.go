package main

import (
	"context"
	"time"

	"github.com/lwisniewski/retail-analytics-api/infrastructure/database/postgres"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/migration"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository"
	"github.com/lwisniewski/retail-analytics-api/internal/api"
	"github.com/lwisniewski/retail-analytics-api/internal/config"
	"github.com/lwisniewski/retail-analytics-api/internal/scheduler"
	"github.com/lwisniewski/retail-analytics-api/internal/usecases/authenticating"
	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.EnsureUsersTable(pgConn.DB); err != nil {
		logrus.WithError(err).Fatal("failed to ensure users table")
	}

	userRepo := repository.NewUserRepository(pgConn)
	summaryRepo := repository.NewSummaryRepository(pgConn)
	productRepo := repository.NewProductAnalyticsRepository(pgConn)
	regionRepo := repository.NewRegionAnalyticsRepository(pgConn)
	timeSeriesRepo := repository.NewTimeSeriesRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	reportService := reporting.NewService(summaryRepo, productRepo, regionRepo, timeSeriesRepo)

	summaryRefreshService := scheduler.NewSummaryRefreshService(summaryRepo, cfg)
	if err := summaryRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start summary refresh scheduler")
	} else {
		logrus.Info("summary refresh scheduler started")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
		summaryRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
