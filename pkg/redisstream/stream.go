// Package redisstream appends alerts and relay decisions to a Redis stream
// for downstream consumers.
package redisstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

const (
	EventTypeAlert = "alert"
	EventTypeRelay = "relay"

	defaultMaxLen  = 10000
	publishTimeout = 2 * time.Second
)

// StreamAdder is the subset of *redis.Client the sink needs.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type Sink struct {
	client StreamAdder
	stream string
	maxLen int64
	now    func() time.Time
	logger *zap.Logger
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

func NewSink(client StreamAdder, stream string) *Sink {
	if stream == "" {
		stream = common.DefaultRedisStreamName
	}
	return &Sink{
		client: client,
		stream: stream,
		maxLen: defaultMaxLen,
		now:    time.Now,
		logger: common.GetLoggerWith(common.LoggerNameRedisStream),
	}
}

func (s *Sink) publish(deviceID, eventType string, data any) (string, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"event_id":  uuid.NewString(),
			"type":      eventType,
			"device_id": deviceID,
			"data":      string(body),
			"timestamp": fmt.Sprintf("%d", s.now().Unix()),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add %s event to stream %s: %w", eventType, s.stream, err)
	}

	s.logger.Debug("Event added to stream",
		zap.String("stream", s.stream),
		zap.String("id", id),
		zap.String("type", eventType),
		zap.String(common.LoggerFieldDeviceID, deviceID),
	)
	return id, nil
}

func (s *Sink) NotifyAlert(deviceID string, a monitor.Alert) error {
	_, err := s.publish(deviceID, EventTypeAlert, a)
	return err
}

func (s *Sink) ApplyRelay(deviceID string, d monitor.RelayDecision) error {
	_, err := s.publish(deviceID, EventTypeRelay, d)
	return err
}
