package grpc

import (
	"google.golang.org/protobuf/proto"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	pb "liyu1981.xyz/energy-monitor-service/pkg/grpc/energy_service"
)

type EnergyServer struct {
	Energy           *energy.Energy
	RateLimiterStore *energy.RateLimiterStore
	pb.UnimplementedEnergyServiceServer
}

func (s *EnergyServer) CheckDeviceLimiter(deviceID string) bool {
	return s.RateLimiterStore.Allow(deviceID)
}

// LimitedRequests lists the request types the rate limit interceptor
// applies to.
func LimitedRequests() []proto.Message {
	return []proto.Message{
		&pb.PostReadingRequest{},
		&pb.DeviceRequest{},
		&pb.SetRelayRequest{},
	}
}
