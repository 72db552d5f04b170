package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// grpcServer exposes the standard gRPC health service. The vault API itself
// is HTTP-only; orchestrators that insist on gRPC health probes get this
// listener instead of parsing HTTP status codes.
type grpcServer struct {
	server          *grpc.Server
	healthServer    *health.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	return &grpcServer{
		server:          server,
		healthServer:    healthServer,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	g.server.GracefulStop()
}
