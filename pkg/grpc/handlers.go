package grpc

import (
	"context"
	"fmt"
	"time"

	z "github.com/Oudwins/zog"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/types/known/timestamppb"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	pb "liyu1981.xyz/energy-monitor-service/pkg/grpc/energy_service"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

func validateDeviceID(deviceID *string) z.ZogIssueList {
	var deviceIdValidator = z.String().Min(1).Required()
	return deviceIdValidator.Validate(deviceID)
}

func ok() *pb.StatusResponse {
	return &pb.StatusResponse{Success: true, Message: "OK"}
}

func failed(message string) *pb.StatusResponse {
	return &pb.StatusResponse{Success: false, Message: message}
}

func validationFailed(err any) *pb.StatusResponse {
	return failed(fmt.Sprintf("validation error: %v", err))
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toPbDecision(d monitor.RelayDecision) *pb.RelayDecision {
	return &pb.RelayDecision{
		State:    string(d.State),
		Previous: string(d.Previous),
		Cause:    string(d.Cause),
		Latched:  d.Latched,
		Changed:  d.Changed,
		At:       toTimestamp(d.At),
	}
}

var readingValidator = z.Struct(z.Shape{
	// presence only, range checks happen in the monitor
	"Voltage": z.Ptr(z.Float64()).NotNil(),
	"Current": z.Ptr(z.Float64()).NotNil(),
	"Power":   z.Ptr(z.Float64()).NotNil(),
})

func (s *EnergyServer) PostReading(ctx context.Context, req *pb.PostReadingRequest) (*pb.PostReadingResponse, error) {
	if err := validateDeviceID(&req.DeviceId); err != nil {
		return &pb.PostReadingResponse{Status: validationFailed(err)}, nil
	}
	if req.Reading == nil {
		return &pb.PostReadingResponse{Status: failed("validation error: reading can not be empty")}, nil
	}
	if err := readingValidator.Validate(req.Reading); err != nil {
		return &pb.PostReadingResponse{Status: validationFailed(err)}, nil
	}

	r := monitor.Reading{
		Voltage:     req.Reading.GetVoltage(),
		Current:     req.Reading.GetCurrent(),
		Power:       req.Reading.GetPower(),
		Energy:      req.Reading.GetEnergy(),
		Frequency:   req.Reading.GetFrequency(),
		PowerFactor: req.Reading.GetPowerFactor(),
	}
	if ts := req.Reading.GetTimestamp(); ts != nil {
		r.Timestamp = ts.AsTime()
	}

	outcome, err := s.Energy.Reading.RecordReading(req.DeviceId, &r)
	if err != nil {
		return &pb.PostReadingResponse{Status: failed(err.Error())}, nil
	}

	resp := &pb.PostReadingResponse{
		Status:   ok(),
		Decision: toPbDecision(outcome.Decision),
		Alerts: common.Mapper(outcome.Alerts, func(a monitor.Alert) *pb.Alert {
			return &pb.Alert{
				DeviceId:  req.DeviceId,
				Timestamp: toTimestamp(a.Timestamp),
				Type:      string(a.Kind),
				Message:   a.Message,
				Voltage:   a.Reading.Voltage,
				Current:   a.Reading.Current,
				Power:     a.Reading.Power,
			}
		}),
	}
	if outcome.Invalid != nil {
		resp.Invalid = outcome.Invalid.Error()
	}
	return resp, nil
}

func (s *EnergyServer) GetAlerts(ctx context.Context, req *pb.DeviceRequest) (*pb.GetAlertsResponse, error) {
	if err := validateDeviceID(&req.DeviceId); err != nil {
		return &pb.GetAlertsResponse{Status: validationFailed(err)}, nil
	}

	alerts, err := s.Energy.Alert.GetDeviceAlerts(req.DeviceId)

	if err != nil {
		return &pb.GetAlertsResponse{
			Status: failed(err.Error()),
			Alerts: nil,
		}, nil
	}

	return &pb.GetAlertsResponse{
		Status: ok(),
		Alerts: common.Mapper(alerts, func(a models.Alert) *pb.Alert {
			return &pb.Alert{
				Id:        uint64(a.ID),
				DeviceId:  a.DeviceID,
				Timestamp: toTimestamp(a.Timestamp),
				Type:      string(a.Type),
				Message:   a.Message,
				Voltage:   a.Voltage,
				Current:   a.Current,
				Power:     a.Power,
			}
		}),
	}, nil
}

func (s *EnergyServer) GetRelay(ctx context.Context, req *pb.DeviceRequest) (*pb.GetRelayResponse, error) {
	if err := validateDeviceID(&req.DeviceId); err != nil {
		return &pb.GetRelayResponse{Status: validationFailed(err)}, nil
	}

	st, err := s.Energy.Relay.GetRelay(req.DeviceId)
	if err != nil {
		return &pb.GetRelayResponse{Status: failed(err.Error())}, nil
	}

	return &pb.GetRelayResponse{
		Status: ok(),
		Relay: &pb.RelayStatus{
			State:   string(st.State),
			Cause:   string(st.Cause),
			Latched: st.Latched,
			Since:   toTimestamp(st.Since),
		},
	}, nil
}

func (s *EnergyServer) SetRelay(ctx context.Context, req *pb.SetRelayRequest) (*pb.RelayDecisionResponse, error) {
	if err := validateDeviceID(&req.DeviceId); err != nil {
		return &pb.RelayDecisionResponse{Status: validationFailed(err)}, nil
	}

	d, err := s.Energy.Relay.SetRelay(req.DeviceId, req.On)
	if err != nil {
		return &pb.RelayDecisionResponse{Status: failed(err.Error()), Decision: toPbDecision(d)}, nil
	}

	return &pb.RelayDecisionResponse{Status: ok(), Decision: toPbDecision(d)}, nil
}

func (s *EnergyServer) ResetRelay(ctx context.Context, req *pb.DeviceRequest) (*pb.RelayDecisionResponse, error) {
	if err := validateDeviceID(&req.DeviceId); err != nil {
		return &pb.RelayDecisionResponse{Status: validationFailed(err)}, nil
	}

	d, err := s.Energy.Relay.ResetRelay(req.DeviceId)
	if err != nil {
		return &pb.RelayDecisionResponse{Status: failed(err.Error())}, nil
	}

	return &pb.RelayDecisionResponse{Status: ok(), Decision: toPbDecision(d)}, nil
}

func (s *EnergyServer) PostLimiter(ctx context.Context, req *pb.PostLimiterRequest) (*pb.PostLimiterResponse, error) {
	if err := validateDeviceID(&req.DeviceId); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	var rateValidator = z.Float64().Required()
	if err := rateValidator.Validate(&req.DeviceRate); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	var burstValidator = z.Int32().Required()
	if err := burstValidator.Validate(&req.DeviceBurst); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	if s.RateLimiterStore == nil {
		return &pb.PostLimiterResponse{
			Status: failed("RateLimiterStore is not used. No effect."),
		}, nil
	}

	s.RateLimiterStore.SetLimiter(req.DeviceId, rate.Limit(req.DeviceRate), int(req.DeviceBurst))
	return &pb.PostLimiterResponse{Status: ok()}, nil
}
