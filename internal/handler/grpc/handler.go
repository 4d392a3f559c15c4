package grpc

import (
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It owns the health service and the unary interceptor chain that every
// registered service runs behind.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] backed by services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// ServerOptions returns the options the gRPC server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.auth),
	}
}

// Register attaches the handler's services to srv and marks them serving.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING to health watchers.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
