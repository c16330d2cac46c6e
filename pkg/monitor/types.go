// Package monitor is the threshold-driven safety core: it validates meter
// readings, classifies them against operating thresholds and decides the
// relay state. It performs no I/O; callers deliver readings and forward the
// resulting decisions and alerts.
package monitor

import "time"

// Reading is one sample from the energy meter. Energy, Frequency and
// PowerFactor are optional and never take part in safety decisions.
type Reading struct {
	Voltage     float64   `json:"voltage"`
	Current     float64   `json:"current"`
	Power       float64   `json:"power"`
	Energy      float64   `json:"energy,omitempty"`
	Frequency   float64   `json:"frequency,omitempty"`
	PowerFactor float64   `json:"powerFactor,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type RelayState string

const (
	RelayOn  RelayState = "on"
	RelayOff RelayState = "off"
)

func (s RelayState) Bool() bool {
	return s == RelayOn
}

// RelayCause records why the relay sits in its current state.
type RelayCause string

const (
	CauseNone      RelayCause = "none"
	CauseFault     RelayCause = "fault"
	CauseHighPower RelayCause = "high_power"
	CauseManual    RelayCause = "manual"
	CauseReset     RelayCause = "reset"
)

type AlertKind string

const (
	AlertOvervoltage       AlertKind = "overvoltage"
	AlertUndervoltage      AlertKind = "undervoltage"
	AlertOvercurrent       AlertKind = "overcurrent"
	AlertHighPower         AlertKind = "high_power"
	AlertLowPower          AlertKind = "low_power"
	AlertInvalidReading    AlertKind = "invalid_reading"
	AlertSensorUnavailable AlertKind = "sensor_unavailable"
)

// AllAlertKinds lists every kind in a stable order.
var AllAlertKinds = []AlertKind{
	AlertOvervoltage,
	AlertUndervoltage,
	AlertOvercurrent,
	AlertHighPower,
	AlertLowPower,
	AlertInvalidReading,
	AlertSensorUnavailable,
}

// IsFault reports whether the kind forces the relay off and latches it.
func (k AlertKind) IsFault() bool {
	switch k {
	case AlertOvervoltage, AlertUndervoltage, AlertOvercurrent:
		return true
	}
	return false
}

type Alert struct {
	Kind      AlertKind `json:"kind"`
	Reading   Reading   `json:"reading"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Thresholds bundles the hard validation bounds and the soft alert
// thresholds. MaxOperatingCurrent of zero disables the overcurrent alert.
type Thresholds struct {
	MinVoltage float64 `json:"min_voltage" yaml:"min_voltage"`
	MaxVoltage float64 `json:"max_voltage" yaml:"max_voltage"`
	MinCurrent float64 `json:"min_current" yaml:"min_current"`
	MaxCurrent float64 `json:"max_current" yaml:"max_current"`
	MinPower   float64 `json:"min_power" yaml:"min_power"`
	MaxPower   float64 `json:"max_power" yaml:"max_power"`

	Overvoltage         float64 `json:"overvoltage" yaml:"overvoltage"`
	Undervoltage        float64 `json:"undervoltage" yaml:"undervoltage"`
	HighPower           float64 `json:"high_power" yaml:"high_power"`
	LowPower            float64 `json:"low_power" yaml:"low_power"`
	MaxOperatingCurrent float64 `json:"max_operating_current" yaml:"max_operating_current"`
}

// DefaultThresholds mirrors the stock PZEM-004T profile of the device
// firmware.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinVoltage:   0,
		MaxVoltage:   300,
		MinCurrent:   0,
		MaxCurrent:   100,
		MinPower:     0,
		MaxPower:     50000,
		Overvoltage:  250,
		Undervoltage: 180,
		HighPower:    1000,
		LowPower:     100,
	}
}

// Validate checks the ordering invariants between bounds and thresholds.
func (t Thresholds) Validate() error {
	checks := []struct {
		ok     bool
		field  string
		reason string
	}{
		{t.MinVoltage <= t.MaxVoltage, "voltage", "min_voltage must not exceed max_voltage"},
		{t.MinCurrent <= t.MaxCurrent, "current", "min_current must not exceed max_current"},
		{t.MinPower <= t.MaxPower, "power", "min_power must not exceed max_power"},
		{t.Undervoltage < t.Overvoltage, "undervoltage", "undervoltage must be below overvoltage"},
		{t.LowPower < t.HighPower, "low_power", "low_power must be below high_power"},
		{t.MaxOperatingCurrent >= 0, "max_operating_current", "max_operating_current must not be negative"},
		{t.MaxOperatingCurrent <= t.MaxCurrent, "max_operating_current", "max_operating_current must not exceed max_current"},
	}
	for _, c := range checks {
		if !c.ok {
			return &ConfigurationError{Field: c.field, Reason: c.reason}
		}
	}
	return nil
}
