// Package grpc serves the standard gRPC health-checking protocol for the
// edutube server. Health follows the metadata store.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/edutube/internal/logging"
	"github.com/dmitrijs2005/edutube/internal/server/models"
)

// ServiceName is the service reported alongside the overall "" service.
const ServiceName = "edutube.Uploads"

// Prober is the dependency whose availability decides SERVING.
type Prober interface {
	List(ctx context.Context) ([]models.UploadedVideo, error)
}

type GRPCServer struct {
	grpc_health_v1.UnimplementedHealthServer
	address string
	probe   Prober
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, probe Prober) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		probe:   probe,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	grpc_health_v1.RegisterHealthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}
