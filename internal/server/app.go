// Package server wires the edutube services together: search aggregation,
// the upload broker and its metadata store, the JSON API and the gRPC
// health endpoint. It owns startup and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/edutube/internal/logging"
	"github.com/dmitrijs2005/edutube/internal/server/catalog"
	"github.com/dmitrijs2005/edutube/internal/server/config"
	"github.com/dmitrijs2005/edutube/internal/server/httpapi"
	"github.com/dmitrijs2005/edutube/internal/server/repositories/videos"
	"github.com/dmitrijs2005/edutube/internal/server/storage"
	"github.com/dmitrijs2005/edutube/internal/server/uploads"
	"github.com/dmitrijs2005/edutube/internal/server/youtube"

	gs "github.com/dmitrijs2005/edutube/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   videos.Store
	catalog *catalog.Service
	uploads *uploads.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	st, err := storage.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	store, err := videos.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("metadata store init error: %w", err)
	}

	yt := youtube.NewClient(youtube.Options{
		APIKey:    c.YouTubeAPIKey,
		BaseURL:   c.YouTubeBaseURL,
		Timeout:   c.YouTubeTimeout,
		RateLimit: c.YouTubeRateLimit,
		Logger:    logger,
	})
	if !yt.Configured() {
		logger.Warn(ctx, "YouTube API key is not configured, search endpoints will fail")
	}

	return &App{
		config:  c,
		logger:  logger,
		store:   store,
		catalog: catalog.NewService(yt, logger),
		uploads: uploads.NewService(st, store, logger, uploads.Options{
			URLExpiry:   c.UploadURLExpiry,
			MaxFileSize: c.MaxUploadSize,
		}),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP and gRPC until a signal arrives or either server fails,
// then closes the metadata store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"metadata_store", app.config.MetadataStore,
		"storage_provider", app.config.StorageProvider,
	)

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := httpapi.NewServer(app.config.HTTPAddr, app.catalog, app.uploads, app.logger, app.config.AllowedOrigins)
		return s.Run(ctx)
	})

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.store)
		return s.Run(ctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
	}

	if cerr := app.store.Close(); cerr != nil {
		app.logger.Error(ctx, "closing metadata store", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
