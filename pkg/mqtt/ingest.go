package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

// ReadingMessage is the JSON body the meter publishes on the data topic.
// Timestamp is in unix milliseconds.
type ReadingMessage struct {
	DeviceID    string  `json:"deviceId"`
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Power       float64 `json:"power"`
	Energy      float64 `json:"energy"`
	Frequency   float64 `json:"frequency"`
	PowerFactor float64 `json:"powerFactor"`
	RelayState  bool    `json:"relayState"`
	Timestamp   int64   `json:"timestamp"`
}

func (m ReadingMessage) Reading() monitor.Reading {
	r := monitor.Reading{
		Voltage:     m.Voltage,
		Current:     m.Current,
		Power:       m.Power,
		Energy:      m.Energy,
		Frequency:   m.Frequency,
		PowerFactor: m.PowerFactor,
	}
	if m.Timestamp > 0 {
		r.Timestamp = time.UnixMilli(m.Timestamp)
	}
	return r
}

type ResetMessage struct {
	DeviceID string `json:"deviceId"`
}

// Pusher takes readings for devices that are sampled on a fixed interval.
type Pusher interface {
	Push(r monitor.Reading)
}

// Ingestor feeds broker messages into the energy service. Readings for a
// device with a registered Pusher go to it; all others are recorded as
// they arrive.
type Ingestor struct {
	client          *Client
	reading         energy.IReading
	relay           energy.IRelay
	defaultDeviceID string
	pushers         map[string]Pusher
}

func NewIngestor(client *Client, e *energy.Energy, defaultDeviceID string) *Ingestor {
	return &Ingestor{
		client:          client,
		reading:         e.Reading,
		relay:           e.Relay,
		defaultDeviceID: defaultDeviceID,
		pushers:         map[string]Pusher{},
	}
}

// WithPusher must be called before Start.
func (in *Ingestor) WithPusher(deviceID string, p Pusher) *Ingestor {
	in.pushers[deviceID] = p
	return in
}

func (in *Ingestor) Start() error {
	if err := in.client.Subscribe(common.MqttTopicData, in.HandleData); err != nil {
		return err
	}
	return in.client.Subscribe(common.MqttTopicReset, in.HandleReset)
}

func (in *Ingestor) Stop() error {
	return in.client.Unsubscribe(common.MqttTopicData, common.MqttTopicReset)
}

func (in *Ingestor) deviceOrDefault(id string) string {
	if id == "" {
		return in.defaultDeviceID
	}
	return id
}

func (in *Ingestor) HandleData(topic string, payload []byte) error {
	var msg ReadingMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal reading: %w", err)
	}
	deviceID := in.deviceOrDefault(msg.DeviceID)
	logger := common.GetDeviceLogger(common.LoggerNameMqtt, common.LoggerCategoryIngest, deviceID)

	if p, ok := in.pushers[deviceID]; ok {
		p.Push(msg.Reading())
		logger.Debug("Reading queued for sampler", zap.String("topic", topic))
		return nil
	}

	r := msg.Reading()
	if _, err := in.reading.RecordReading(deviceID, &r); err != nil {
		return fmt.Errorf("failed to record reading: %w", err)
	}
	return nil
}

// HandleReset clears the fault latch. An empty payload resets the default
// device.
func (in *Ingestor) HandleReset(topic string, payload []byte) error {
	var msg ResetMessage
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal reset command: %w", err)
		}
	}
	deviceID := in.deviceOrDefault(msg.DeviceID)
	logger := common.GetDeviceLogger(common.LoggerNameMqtt, common.LoggerCategoryRelay, deviceID)

	d, err := in.relay.ResetRelay(deviceID)
	if err != nil {
		return fmt.Errorf("failed to reset relay: %w", err)
	}
	logger.Info("Reset command handled", zap.String("topic", topic), zap.Bool("changed", d.Changed))
	return nil
}
