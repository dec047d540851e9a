// Package httpapi exposes the aggregation service and the upload broker as
// a JSON API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/edutube/internal/logging"
	"github.com/dmitrijs2005/edutube/internal/server/models"
	"github.com/dmitrijs2005/edutube/internal/server/uploads"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

type Catalog interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	HomeSections(ctx context.Context) (*models.HomeSections, error)
}

type Broker interface {
	CreateUploadTarget(ctx context.Context, req uploads.UploadRequest) (*models.UploadTarget, error)
	ConfirmUpload(ctx context.Context, c uploads.Confirmation) (*models.UploadedVideo, error)
	ListVideos(ctx context.Context) ([]models.UploadedVideo, error)
	DeleteVideo(ctx context.Context, id string) error
}

type Server struct {
	address        string
	catalog        Catalog
	broker         Broker
	logger         logging.Logger
	allowedOrigins []string
}

func NewServer(address string, catalog Catalog, broker Broker, logger logging.Logger, allowedOrigins []string) *Server {
	return &Server{
		address:        address,
		catalog:        catalog,
		broker:         broker,
		logger:         logger.With("module", "http_server"),
		allowedOrigins: allowedOrigins,
	}
}

// Handler returns the routed API wrapped in logging and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/home-sections", s.handleHomeSections)

	mux.HandleFunc("POST /api/generate-upload-url", s.handleGenerateUploadURL)
	mux.HandleFunc("POST /api/upload-complete", s.handleUploadComplete)
	mux.HandleFunc("GET /api/my-videos", s.handleListVideos)
	mux.HandleFunc("DELETE /api/videos/{id}", s.handleDeleteVideo)

	return loggingMiddleware(s.logger)(corsMiddleware(s.allowedOrigins)(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
