// Package server initializes and runs the application: it loads
// configuration, wires the storage driver, the flows, and the HTTP server,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/enzomv1999/GloboClima/internal/logging"
	"github.com/enzomv1999/GloboClima/internal/server/config"
	"github.com/enzomv1999/GloboClima/internal/server/countries"
	"github.com/enzomv1999/GloboClima/internal/server/httpapi"
	"github.com/enzomv1999/GloboClima/internal/server/repositories/repomanager"
	"github.com/enzomv1999/GloboClima/internal/server/services"
	"github.com/enzomv1999/GloboClima/internal/server/weatherapi"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	// The signing secret and driver settings are required up front; a bad
	// config must fail here, not on the first request.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	repos, err := repomanager.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	userService := services.NewUserService(repos.Users(), cfg)
	favoriteService := services.NewFavoriteService(repos.Favorites())

	weatherClient := weatherapi.NewClient(cfg.OpenWeatherAPIKey)
	countryClient := countries.NewClient()

	srv := httpapi.NewServer(cfg, logger, userService, favoriteService, weatherClient, countryClient)

	return &App{config: cfg, logger: logger, repos: repos, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage_driver", app.config.StorageDriver)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing storage", "error", err.Error())
	}
}
