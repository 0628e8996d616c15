// Package server initializes and runs the GarageKeeper API server: it opens
// the database, applies migrations, wires the services into the HTTP router,
// and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dsavelev/garagekeeper/internal/logging"
	"github.com/dsavelev/garagekeeper/internal/server/config"
	"github.com/dsavelev/garagekeeper/internal/server/httpapi"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/repomanager"
	"github.com/dsavelev/garagekeeper/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	api    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	storage := services.NewStorageService(cfg)
	api := httpapi.NewServer(httpapi.Deps{
		Logger:         logger,
		JWTSecret:      []byte(cfg.SecretKey),
		Users:          services.NewUserService(db, rm, cfg, logger),
		Vehicles:       services.NewVehicleService(db, rm, storage, logger),
		ServiceRecords: services.NewServiceRecordService(db, rm),
		Expenses:       services.NewExpenseService(db, rm),
		Reminders:      services.NewReminderService(db, rm),
		Bookings:       services.NewBookingService(db, rm),
		Storage:        storage,
	})

	return &App{config: cfg, logger: logger, db: db, repos: rm, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run applies migrations and serves HTTP until the context is cancelled or a
// signal arrives, then shuts the server down with a 5 second drain window.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.api.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting http server", "addr", app.config.EndpointAddrHTTP)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return app.db.Close()
}
