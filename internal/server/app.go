// Package server initializes and runs the accounts application: it opens the
// configured storage backend, brings the schema up to date, and starts the
// HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/retail-hub/accounts/internal/logging"
	"github.com/retail-hub/accounts/internal/server/config"
	"github.com/retail-hub/accounts/internal/server/httpapi"
	"github.com/retail-hub/accounts/internal/server/repositories/repomanager"
	"github.com/retail-hub/accounts/internal/server/services"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(cfg.Env)

	db, manager, err := openStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := manager.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	service := services.NewAccountService(db, manager, cfg)
	httpServer := httpapi.NewServer(cfg, logger, service, db)

	return &App{config: cfg, logger: logger, db: db, httpServer: httpServer}, nil
}

func openStorage(cfg *config.Config) (*sql.DB, repomanager.RepositoryManager, error) {
	switch cfg.DatabaseClient {
	case config.ClientPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return db, repomanager.NewPostgresRepositoryManager(), nil
	case config.ClientSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		// modernc sqlite serializes writes; a single connection avoids
		// SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)
		return db, repomanager.NewSQLiteRepositoryManager(), nil
	default:
		return nil, nil, fmt.Errorf("unknown database client %q", cfg.DatabaseClient)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
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

	app.logger.Info(ctx, "starting app",
		"env", app.config.Env,
		"db_client", app.config.DatabaseClient,
	)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.httpServer.Run(); err != nil {
			app.logger.Error(ctx, "http server error", "error", err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err.Error())
	}
	app.logger.Info(shutdownCtx, "app stopped")
}
