package mqtt

import (
	"encoding/json"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

// ControlMessage is what the meter firmware listens for on the control
// topic.
type ControlMessage struct {
	DeviceID string `json:"deviceId"`
	Relay    bool   `json:"relay"`
}

type AlertMessage struct {
	DeviceID  string            `json:"deviceId"`
	Type      monitor.AlertKind `json:"type"`
	Message   string            `json:"message"`
	Voltage   float64           `json:"voltage"`
	Current   float64           `json:"current"`
	Power     float64           `json:"power"`
	Timestamp int64             `json:"timestamp"`
}

// Publisher forwards relay decisions and alerts to the broker. It is both
// an energy.Actuator and an energy.Notifier.
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) ApplyRelay(deviceID string, d monitor.RelayDecision) error {
	payload, err := json.Marshal(ControlMessage{DeviceID: deviceID, Relay: d.State.Bool()})
	if err != nil {
		return err
	}
	return p.client.Publish(common.MqttTopicControl, payload)
}

func (p *Publisher) NotifyAlert(deviceID string, a monitor.Alert) error {
	payload, err := json.Marshal(AlertMessage{
		DeviceID:  deviceID,
		Type:      a.Kind,
		Message:   a.Message,
		Voltage:   a.Reading.Voltage,
		Current:   a.Reading.Current,
		Power:     a.Reading.Power,
		Timestamp: a.Timestamp.UnixMilli(),
	})
	if err != nil {
		return err
	}
	return p.client.Publish(common.MqttTopicAlerts, payload)
}
