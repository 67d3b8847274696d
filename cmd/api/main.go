package main

// @title Station Dashboard API
// @version 1.0.0
// @description Traffic and location dashboard for the RATP and IDF rail stations.
// @description
// @description Features:
// @description - Top stations by traffic and traffic share per city
// @description - Station counts per operator and per line
// @description - Station location map
// @description - PNG export of any chart

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8050
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/station-dashboard/docs"
	"github.com/station-dashboard/internal/config"
	httpDelivery "github.com/station-dashboard/internal/delivery/http"
	"github.com/station-dashboard/internal/delivery/http/handler"
	"github.com/station-dashboard/internal/pkg/logger"
	"github.com/station-dashboard/internal/pkg/metrics"
	"github.com/station-dashboard/internal/repository/dataset"
	"github.com/station-dashboard/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Station Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load datasets
	tables, err := dataset.NewLoader(&cfg.Data, log).Load()
	if err != nil {
		log.Fatal("Failed to load datasets", zap.Error(err))
	}

	// 4. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		m.SetDatasetRows("traffic", tables.Traffic.Nrow())
		m.SetDatasetRows("locations", tables.Locations.Nrow())
	}

	// 5. Initialize Use Cases
	agg := usecase.NewAggregator(cfg.Dashboard)

	data, err := usecase.NewDataContext(tables, agg)
	if err != nil {
		log.Fatal("Failed to prepare dashboard data", zap.Error(err))
	}

	dashboardUC, err := usecase.NewDashboardUseCase(
		data,
		agg,
		usecase.NewDispatcher(m, log),
		cfg.Map,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize dashboard", zap.Error(err))
	}

	statsUC := usecase.NewStatsUseCase(data, log)

	log.Info("Use cases initialized",
		zap.Strings("networks", data.NetworkOptions()),
		zap.Strings("operators", data.OperatorOptions()),
	)

	// 6. Initialize HTTP Handlers
	pageHandler, err := handler.NewPageHandler(dashboardUC, log)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		m,
		pageHandler,
		dashboardHandler,
		statsHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
