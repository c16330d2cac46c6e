// Package metrics exposes the monitoring cycle as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

const namespace = "energy_monitor"

// Collector is an energy.Observer. It owns its registry so several
// collectors can live in one process (tests, benchmarks).
type Collector struct {
	registry *prometheus.Registry

	voltage           *prometheus.GaugeVec
	current           *prometheus.GaugeVec
	power             *prometheus.GaugeVec
	energy            *prometheus.GaugeVec
	relayOn           *prometheus.GaugeVec
	relayLatched      *prometheus.GaugeVec
	readings          *prometheus.CounterVec
	alerts            *prometheus.CounterVec
	sensorUnavailable *prometheus.CounterVec
}

func gauge(subsystem, name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: namespace, Subsystem: subsystem, Name: name, Help: help},
		[]string{"device"},
	)
}

func New() *Collector {
	c := &Collector{
		registry:     prometheus.NewRegistry(),
		voltage:      gauge("meter", "voltage_volts", "Last valid voltage reading"),
		current:      gauge("meter", "current_amperes", "Last valid current reading"),
		power:        gauge("meter", "power_watts", "Last valid active power reading"),
		energy:       gauge("meter", "energy_kwh", "Cumulative energy counter reported by the meter"),
		relayOn:      gauge("relay", "on", "1 when the relay is closed"),
		relayLatched: gauge("relay", "latched", "1 while a fault latch is held"),
		readings: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "meter", Name: "readings_total", Help: "Processed readings by validity"},
			[]string{"device", "valid"},
		),
		alerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "monitor", Name: "alerts_total", Help: "Raised alerts by kind"},
			[]string{"device", "kind"},
		),
		sensorUnavailable: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "meter", Name: "unavailable_total", Help: "Cycles without a reading"},
			[]string{"device"},
		),
	}
	c.registry.MustRegister(
		c.voltage, c.current, c.power, c.energy,
		c.relayOn, c.relayLatched,
		c.readings, c.alerts, c.sensorUnavailable,
		collectors.NewGoCollector(),
	)
	return c
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (c *Collector) ObserveOutcome(deviceID string, r monitor.Reading, o *monitor.Outcome) {
	for _, a := range o.Alerts {
		c.alerts.WithLabelValues(deviceID, string(a.Kind)).Inc()
	}
	c.relayOn.WithLabelValues(deviceID).Set(boolGauge(o.Decision.State.Bool()))
	c.relayLatched.WithLabelValues(deviceID).Set(boolGauge(o.Decision.Latched))

	if o.Invalid != nil {
		c.readings.WithLabelValues(deviceID, "false").Inc()
		return
	}
	c.readings.WithLabelValues(deviceID, "true").Inc()
	c.voltage.WithLabelValues(deviceID).Set(r.Voltage)
	c.current.WithLabelValues(deviceID).Set(r.Current)
	c.power.WithLabelValues(deviceID).Set(r.Power)
	c.energy.WithLabelValues(deviceID).Set(r.Energy)
}

func (c *Collector) ObserveSensorUnavailable(deviceID string) {
	c.sensorUnavailable.WithLabelValues(deviceID).Inc()
	c.alerts.WithLabelValues(deviceID, string(monitor.AlertSensorUnavailable)).Inc()
}

// ApplyRelay records a relay decision made outside a reading cycle,
// e.g. an operator command. It is an energy.Actuator.
func (c *Collector) ApplyRelay(deviceID string, d monitor.RelayDecision) error {
	c.relayOn.WithLabelValues(deviceID).Set(boolGauge(d.State.Bool()))
	c.relayLatched.WithLabelValues(deviceID).Set(boolGauge(d.Latched))
	return nil
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
