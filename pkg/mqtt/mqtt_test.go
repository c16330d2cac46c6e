package mqtt

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/config"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	"liyu1981.xyz/energy-monitor-service/pkg/energy/mocks"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

// fakeToken completes immediately unless pending, in which case it never
// completes, like a publish during a broker outage.
type fakeToken struct {
	err     error
	pending bool
}

func (t *fakeToken) Wait() bool {
	<-t.Done()
	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.Done():
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	if !t.pending {
		close(ch)
	}
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeMessage struct {
	paho.Message
	topic   string
	payload []byte
}

func (m *fakeMessage) Topic() string   { return m.topic }
func (m *fakeMessage) Payload() []byte { return m.payload }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeBroker implements the parts of paho.Client the wrapper uses and
// loops published messages back to subscribers.
type fakeBroker struct {
	paho.Client

	mu         sync.Mutex
	handlers   map[string]paho.MessageHandler
	published  []published
	publishErr error
	stalled    bool
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{handlers: map[string]paho.MessageHandler{}}
}

func (b *fakeBroker) Subscribe(topic string, _ byte, cb paho.MessageHandler) paho.Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = cb
	return &fakeToken{}
}

func (b *fakeBroker) Unsubscribe(topics ...string) paho.Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range topics {
		delete(b.handlers, t)
	}
	return &fakeToken{}
}

func (b *fakeBroker) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stalled {
		return &fakeToken{pending: true}
	}
	if b.publishErr != nil {
		return &fakeToken{err: b.publishErr}
	}
	b.published = append(b.published, published{topic, qos, retained, payload.([]byte)})
	return &fakeToken{}
}

func (b *fakeBroker) deliver(topic string, payload []byte) {
	b.mu.Lock()
	cb := b.handlers[topic]
	b.mu.Unlock()
	if cb != nil {
		cb(b, &fakeMessage{topic: topic, payload: payload})
	}
}

type recordingPusher struct {
	readings []monitor.Reading
}

func (p *recordingPusher) Push(r monitor.Reading) {
	p.readings = append(p.readings, r)
}

func testMQTTConfig() config.MQTTConfig {
	return config.MQTTConfig{Broker: "tcp://localhost:1883", ClientID: "test", QoS: 1, Retain: true}
}

func newTestIngestor(t *testing.T) (*fakeBroker, *Ingestor, *mocks.MockIReading, *mocks.MockIRelay) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	mockIReading := mocks.NewMockIReading(ctrl)
	mockIRelay := mocks.NewMockIRelay(ctrl)

	broker := newFakeBroker()
	client := Wrap(broker, testMQTTConfig())
	in := NewIngestor(client, &energy.Energy{Reading: mockIReading, Relay: mockIRelay}, "ESP32_001")
	return broker, in, mockIReading, mockIRelay
}

func TestIngestRecordsReading(t *testing.T) {
	broker, in, mockIReading, _ := newTestIngestor(t)
	require.NoError(t, in.Start())

	mockIReading.EXPECT().
		RecordReading(gomock.Eq("ESP32_SIM_001"), gomock.Cond(func(r *monitor.Reading) bool {
			return r.Voltage == 231.5 && r.PowerFactor == 0.95 && r.Timestamp.Equal(time.UnixMilli(1700000000000))
		})).
		Return(&monitor.Outcome{}, nil).
		Times(1)

	broker.deliver(common.MqttTopicData, []byte(`{
		"voltage": 231.5, "current": 2.1, "power": 461.9, "energy": 1.234,
		"frequency": 50.0, "powerFactor": 0.95, "relayState": true,
		"timestamp": 1700000000000, "deviceId": "ESP32_SIM_001"
	}`))
}

func TestIngestPushesToSampledDevice(t *testing.T) {
	broker, in, _, _ := newTestIngestor(t)
	pusher := &recordingPusher{}
	in.WithPusher("ESP32_001", pusher)
	require.NoError(t, in.Start())

	broker.deliver(common.MqttTopicData, []byte(`{"voltage": 229, "current": 1, "power": 220}`))

	require.Len(t, pusher.readings, 1)
	assert.Equal(t, 229.0, pusher.readings[0].Voltage)
	assert.True(t, pusher.readings[0].Timestamp.IsZero())
}

func TestIngestRejectsMalformedPayload(t *testing.T) {
	_, in, _, _ := newTestIngestor(t)
	assert.Error(t, in.HandleData(common.MqttTopicData, []byte(`{"voltage": "high"`)))
	assert.Error(t, in.HandleReset(common.MqttTopicReset, []byte(`nope`)))
}

func TestIngestReset(t *testing.T) {
	broker, in, _, mockIRelay := newTestIngestor(t)
	require.NoError(t, in.Start())

	mockIRelay.EXPECT().ResetRelay(gomock.Eq("ESP32_001")).Return(monitor.RelayDecision{Changed: true}, nil).Times(1)
	mockIRelay.EXPECT().ResetRelay(gomock.Eq("meter-7")).Return(monitor.RelayDecision{}, nil).Times(1)

	broker.deliver(common.MqttTopicReset, nil)
	broker.deliver(common.MqttTopicReset, []byte(`{"deviceId": "meter-7"}`))

	mockIRelay.EXPECT().ResetRelay(gomock.Any()).Return(monitor.RelayDecision{}, energy.ErrUnknownDevice).Times(1)
	assert.ErrorIs(t, in.HandleReset(common.MqttTopicReset, []byte(`{"deviceId": "ghost"}`)), energy.ErrUnknownDevice)

	require.NoError(t, in.Stop())
	assert.Empty(t, broker.handlers)
}

func TestPublisher(t *testing.T) {
	common.SetTestLoggerNop()

	broker := newFakeBroker()
	p := NewPublisher(Wrap(broker, testMQTTConfig()))

	require.NoError(t, p.ApplyRelay("ESP32_001", monitor.RelayDecision{State: monitor.RelayOff, Changed: true}))

	at := time.UnixMilli(1700000000000)
	require.NoError(t, p.NotifyAlert("ESP32_001", monitor.Alert{
		Kind:      monitor.AlertOvervoltage,
		Reading:   monitor.Reading{Voltage: 260, Current: 5, Power: 1300},
		Timestamp: at,
		Message:   "Voltage 260.00 exceeded threshold 250.00",
	}))

	require.Len(t, broker.published, 2)

	control := broker.published[0]
	assert.Equal(t, common.MqttTopicControl, control.topic)
	assert.Equal(t, byte(1), control.qos)
	assert.True(t, control.retained)
	assert.JSONEq(t, `{"deviceId": "ESP32_001", "relay": false}`, string(control.payload))

	var alert AlertMessage
	require.NoError(t, json.Unmarshal(broker.published[1].payload, &alert))
	assert.Equal(t, common.MqttTopicAlerts, broker.published[1].topic)
	assert.Equal(t, monitor.AlertOvervoltage, alert.Type)
	assert.Equal(t, int64(1700000000000), alert.Timestamp)
	assert.Equal(t, 260.0, alert.Voltage)

	broker.publishErr = errors.New("not connected")
	assert.Error(t, p.ApplyRelay("ESP32_001", monitor.RelayDecision{State: monitor.RelayOn}))
}

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.MQTTConfig{Broker: "tcp://localhost:1883", ClientID: "test", KeepAlive: 30})
	assert.False(t, opts.Order, "handlers must not run on the router goroutine")
	assert.Equal(t, int64(30), opts.KeepAlive)
	assert.True(t, opts.AutoReconnect)
	assert.Equal(t, operationTimeout, opts.WriteTimeout)
}

func TestPublishTimesOut(t *testing.T) {
	common.SetTestLoggerNop()

	broker := newFakeBroker()
	broker.stalled = true
	client := Wrap(broker, testMQTTConfig())
	client.timeout = 20 * time.Millisecond

	start := time.Now()
	err := NewPublisher(client).ApplyRelay("ESP32_001", monitor.RelayDecision{State: monitor.RelayOff, Changed: true})
	assert.ErrorIs(t, err, ErrOperationTimeout)
	assert.Less(t, time.Since(start), time.Second)
}
