// Package server wires configuration, storage, the user service and the gRPC
// transport together and runs them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vaccinehub/internal/dbx"
	"github.com/dmitrijs2005/vaccinehub/internal/logging"
	"github.com/dmitrijs2005/vaccinehub/internal/server/auth"
	"github.com/dmitrijs2005/vaccinehub/internal/server/config"
	"github.com/dmitrijs2005/vaccinehub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaccinehub/internal/server/services"

	gs "github.com/dmitrijs2005/vaccinehub/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

// NewApp builds the application from c. With StoragePostgres it connects to
// the database and applies migrations before returning.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	hasher, err := auth.NewBcryptHasher(c.BcryptWorkFactor)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	var db *sql.DB
	var rm repomanager.RepositoryManager

	switch c.StorageType {
	case config.StoragePostgres:
		db, err = dbx.Open(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
	case config.StorageMemory:
		rm = repomanager.NewInMemoryRepositoryManager()
	default:
		return nil, fmt.Errorf("unknown storage type %q", c.StorageType)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, hasher)

	return &App{config: c, logger: logger, db: db, userService: us}, nil
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

// Run serves gRPC until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageType)

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)
	err := s.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Warn(ctx, "error closing db", "error", cerr)
		}
	}

	return err
}
