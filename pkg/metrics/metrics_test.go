package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

func TestObserveOutcome(t *testing.T) {
	c := New()

	c.ObserveOutcome("ESP32_001", monitor.Reading{Voltage: 260, Current: 5, Power: 1300, Energy: 2.5}, &monitor.Outcome{
		Decision: monitor.RelayDecision{State: monitor.RelayOff, Latched: true, Changed: true},
		Alerts: []monitor.Alert{
			{Kind: monitor.AlertOvervoltage},
			{Kind: monitor.AlertHighPower},
		},
	})

	assert.Equal(t, 260.0, testutil.ToFloat64(c.voltage.WithLabelValues("ESP32_001")))
	assert.Equal(t, 1300.0, testutil.ToFloat64(c.power.WithLabelValues("ESP32_001")))
	assert.Equal(t, 2.5, testutil.ToFloat64(c.energy.WithLabelValues("ESP32_001")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.relayOn.WithLabelValues("ESP32_001")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.relayLatched.WithLabelValues("ESP32_001")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.alerts.WithLabelValues("ESP32_001", "overvoltage")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.readings.WithLabelValues("ESP32_001", "true")))
}

func TestObserveInvalidKeepsLastGauges(t *testing.T) {
	c := New()

	c.ObserveOutcome("ESP32_001", monitor.Reading{Voltage: 230, Current: 2, Power: 460}, &monitor.Outcome{
		Decision: monitor.RelayDecision{State: monitor.RelayOn},
	})
	c.ObserveOutcome("ESP32_001", monitor.Reading{Voltage: -1}, &monitor.Outcome{
		Decision: monitor.RelayDecision{State: monitor.RelayOn},
		Alerts:   []monitor.Alert{{Kind: monitor.AlertInvalidReading}},
		Invalid:  &monitor.InvalidReadingError{Field: monitor.FieldVoltage, Value: -1},
	})

	assert.Equal(t, 230.0, testutil.ToFloat64(c.voltage.WithLabelValues("ESP32_001")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.readings.WithLabelValues("ESP32_001", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.alerts.WithLabelValues("ESP32_001", "invalid_reading")))
}

func TestSensorUnavailableAndRelay(t *testing.T) {
	c := New()

	c.ObserveSensorUnavailable("ESP32_001")
	c.ObserveSensorUnavailable("ESP32_001")
	require.NoError(t, c.ApplyRelay("ESP32_001", monitor.RelayDecision{State: monitor.RelayOn}))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.sensorUnavailable.WithLabelValues("ESP32_001")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.relayOn.WithLabelValues("ESP32_001")))
}

func TestHandlerServesRegistry(t *testing.T) {
	c := New()
	c.ObserveSensorUnavailable("ESP32_001")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `energy_monitor_meter_unavailable_total{device="ESP32_001"} 1`)
}
