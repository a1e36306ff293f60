// Package server wires the blog directory server: it opens the store, runs
// migrations, builds the services and runs the HTTP API next to the gRPC
// health endpoint until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/config"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloglist/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/bloglist/internal/server/grpc"
	hs "github.com/dmitrijs2005/bloglist/internal/server/http"
)

var ErrMissingSecret = errors.New("secret key is not configured")

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	handler     *hs.Handler
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if c.SecretKey == "" {
		return nil, ErrMissingSecret
	}

	app := &App{config: c, logger: logger}

	if c.UsesMemoryStore() {
		logger.Warn(ctx, "using the in-memory store, data is lost on exit")
		app.repomanager = repomanager.NewMemoryRepositoryManager()
	} else {
		db, err := sqlOpen("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		app.db = db
		app.repomanager = repomanager.NewPostgresRepositoryManager(db)
	}

	if err := app.repomanager.RunMigrations(ctx); err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var resetter hs.Resetter
	if c.IsTestMode() {
		resetter = services.NewTestingService(app.repomanager)
	}

	app.handler = hs.NewHandler(
		services.NewUserService(app.repomanager),
		services.NewAuthService(app.repomanager, c),
		services.NewBlogService(app.repomanager),
		resetter,
	)

	return app, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if !app.config.IsTestMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := hs.NewRouter(app.handler, hs.RouterOptions{
		Logger:   app.logger.With("module", "http"),
		TestMode: app.config.IsTestMode(),
	})

	s := hs.NewServer(app.config.EndpointAddrHTTP, router, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.EndpointAddrGRPC == "" {
		return
	}

	var store gs.Pinger
	if app.db != nil {
		store = app.db
	}

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, store, app.config.HealthCheckInterval)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "mode", app.config.Mode)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
	app.logger.Info(context.Background(), "App stopped")
}

func (app *App) close(ctx context.Context) {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
