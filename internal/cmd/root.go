// Package cmd implements railctl, a command line view of the dashboard
// tables and figures without starting the HTTP server.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/station-dashboard/internal/config"
	"github.com/station-dashboard/internal/pkg/logger"
	"github.com/station-dashboard/internal/repository/dataset"
	"github.com/station-dashboard/internal/usecase"
	"go.uber.org/zap"
)

type RailCtlApp struct {
	EnvFile       string
	TrafficPath   string
	LocationsPath string
	Verbose       bool
}

// session is everything a subcommand needs, built from the loaded tables.
type session struct {
	cfg       *config.Config
	logger    *zap.Logger
	agg       *usecase.Aggregator
	data      *usecase.DataContext
	dashboard *usecase.DashboardUseCase
}

func Execute() error {
	app := &RailCtlApp{}
	rootCmd := NewRootCmd(app)
	return rootCmd.Execute()
}

func NewRootCmd(app *RailCtlApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "railctl",
		Short:         "CLI tool used to inspect the station dashboard views and figures",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&app.EnvFile, "env-file", ".env", "Path to env file")
	cmd.PersistentFlags().StringVar(&app.TrafficPath, "traffic", "", "Traffic CSV path (overrides DATA_TRAFFIC_PATH)")
	cmd.PersistentFlags().StringVar(&app.LocationsPath, "locations", "", "Locations CSV path (overrides DATA_LOCATIONS_PATH)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging on stderr")

	cmd.AddCommand(NewViewCmd(app))
	cmd.AddCommand(NewFigureCmd(app))

	return cmd
}

func (app *RailCtlApp) open() (*session, error) {
	cfg, err := config.Load(app.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if app.TrafficPath != "" {
		cfg.Data.TrafficPath = app.TrafficPath
	}
	if app.LocationsPath != "" {
		cfg.Data.LocationsPath = app.LocationsPath
	}

	log, err := logger.NewCLI(app.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tables, err := dataset.NewLoader(&cfg.Data, log).Load()
	if err != nil {
		return nil, err
	}

	agg := usecase.NewAggregator(cfg.Dashboard)
	data, err := usecase.NewDataContext(tables, agg)
	if err != nil {
		return nil, err
	}

	dashboard, err := usecase.NewDashboardUseCase(data, agg, usecase.NewDispatcher(nil, log), cfg.Map, log)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: log, agg: agg, data: data, dashboard: dashboard}, nil
}
