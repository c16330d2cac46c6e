package config

import (
	"fmt"
	"sort"
	"strings"

	z "github.com/Oudwins/zog"
)

// ESP32 exposes GPIO 0..39.
const maxGPIO = 39

var hardwareSchema = z.Struct(z.Shape{
	"PzemRxPin":   z.Int().GTE(0).LTE(maxGPIO),
	"PzemTxPin":   z.Int().GTE(0).LTE(maxGPIO),
	"RelayPin":    z.Int().GTE(0).LTE(maxGPIO),
	"LedPin":      z.Int().GTE(0).LTE(maxGPIO),
	"ButtonPin":   z.Int().GTE(0).LTE(maxGPIO),
	"PzemAddress": z.Int().GTE(1).LTE(247).Required(),
})

var wifiSchema = z.Struct(z.Shape{
	"MaxRetries": z.Int().GTE(0),
})

var mqttSchema = z.Struct(z.Shape{
	"Broker":    z.String().Min(1).Required(),
	"ClientID":  z.String().Min(1).Required(),
	"KeepAlive": z.Int().GTE(0),
	"QoS":       z.Int().GTE(0).LTE(2),
})

var serviceSchema = z.Struct(z.Shape{
	"DeviceID":     z.String().Min(1).Required(),
	"DefaultRate":  z.Float64().GT(0).Required(),
	"DefaultBurst": z.Int().GTE(1).Required(),
	"TariffPerKWh": z.Float64().GTE(0),
})

func issuesToError(section string, issues z.ZogIssueMap) error {
	if len(issues) == 0 {
		return nil
	}
	keys := make([]string, 0, len(issues))
	for k := range issues {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return &ConfigurationError{Field: section, Reason: fmt.Sprintf("%v", issues)}
	}
	return &ConfigurationError{
		Field:  section + "." + keys[0],
		Reason: fmt.Sprintf("%v", issues[keys[0]]),
	}
}

// Validate rejects configurations the monitor must not start with.
func (c *Config) Validate() error {
	if err := issuesToError("hardware", hardwareSchema.Validate(&c.Hardware)); err != nil {
		return err
	}
	if err := issuesToError("wifi", wifiSchema.Validate(&c.WiFi)); err != nil {
		return err
	}
	if err := issuesToError("mqtt", mqttSchema.Validate(&c.MQTT)); err != nil {
		return err
	}
	if err := issuesToError("service", serviceSchema.Validate(&c.Service)); err != nil {
		return err
	}

	// zero is the unset value, so these are checked outside the schemas too
	if c.Hardware.PzemAddress < 1 {
		return &ConfigurationError{Field: "hardware.pzem_address", Reason: "must be between 1 and 247"}
	}
	if c.Service.DefaultRate <= 0 || c.Service.DefaultBurst < 1 {
		return &ConfigurationError{Field: "service.default_limiter", Reason: "rate and burst must be positive"}
	}

	pins := map[int]string{}
	for _, p := range []struct {
		name string
		pin  int
	}{
		{"pzem_rx_pin", c.Hardware.PzemRxPin},
		{"pzem_tx_pin", c.Hardware.PzemTxPin},
		{"relay_pin", c.Hardware.RelayPin},
		{"led_pin", c.Hardware.LedPin},
		{"button_pin", c.Hardware.ButtonPin},
	} {
		if other, ok := pins[p.pin]; ok {
			return &ConfigurationError{
				Field:  "hardware." + p.name,
				Reason: fmt.Sprintf("GPIO %d already assigned to %s", p.pin, other),
			}
		}
		pins[p.pin] = p.name
	}

	if c.Sensor.SampleInterval <= 0 {
		return &ConfigurationError{Field: "sensor.sample_interval", Reason: "must be positive"}
	}
	if c.Sensor.Timeout <= 0 || c.Sensor.Timeout > c.Sensor.SampleInterval {
		return &ConfigurationError{Field: "sensor.timeout", Reason: "must be positive and not exceed the sample interval"}
	}
	if c.WiFi.Timeout < 0 {
		return &ConfigurationError{Field: "wifi.timeout", Reason: "must not be negative"}
	}

	switch c.Service.Source {
	case SourceMQTT, SourceSimulator:
	default:
		return &ConfigurationError{Field: "service.source", Reason: fmt.Sprintf("unknown source %q", c.Service.Source)}
	}
	switch c.Service.DBType {
	case "file", "memory":
	default:
		return &ConfigurationError{Field: "service.db_type", Reason: fmt.Sprintf("unknown db type %q", c.Service.DBType)}
	}

	return c.Thresholds.Validate()
}
