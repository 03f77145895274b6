package transport

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const ServiceName = "menuservice"

// HealthServer builds the gRPC server answering grpc.health.v1 checks for the menu service.
func HealthServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv, healthServer
}
