package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/intelli-scan/internal/config"
	myGRPC "github.com/MKhiriev/intelli-scan/internal/handler/grpc"
	"github.com/MKhiriev/intelli-scan/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) Listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", g.address, err)
	}
	g.gRPCNetListener = listener
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
	if g.gRPCNetListener != nil {
		_ = g.gRPCNetListener.Close()
	}
}
