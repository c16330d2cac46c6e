package models

import (
	"time"

	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

type Device struct {
	DeviceID     string `gorm:"primaryKey"`
	CreatedAt    time.Time
	RelayState   monitor.RelayState `gorm:"type:varchar(8)"`
	RelayCause   monitor.RelayCause `gorm:"type:varchar(16)"`
	RelayLatched bool
	RelaySince   time.Time

	Readings    []Reading    `gorm:"foreignKey:DeviceID;references:DeviceID"`
	Alerts      []Alert      `gorm:"foreignKey:DeviceID;references:DeviceID"`
	RelayEvents []RelayEvent `gorm:"foreignKey:DeviceID;references:DeviceID"`
}

func (d *Device) RelayStatus() monitor.RelayStatus {
	return monitor.RelayStatus{
		State:   d.RelayState,
		Cause:   d.RelayCause,
		Latched: d.RelayLatched,
		Since:   d.RelaySince,
	}
}

type Reading struct {
	ID          uint      `gorm:"primaryKey"`
	DeviceID    string    `gorm:"index:idx_reading_device_time"`
	Timestamp   time.Time `gorm:"index:idx_reading_device_time"`
	Voltage     float64
	Current     float64
	Power       float64
	Energy      float64
	Frequency   float64
	PowerFactor float64
	RelayState  monitor.RelayState `gorm:"type:varchar(8)"`
	Valid       bool
}

func NewReading(deviceID string, r monitor.Reading, relay monitor.RelayState, valid bool) Reading {
	return Reading{
		DeviceID:    deviceID,
		Timestamp:   r.Timestamp,
		Voltage:     r.Voltage,
		Current:     r.Current,
		Power:       r.Power,
		Energy:      r.Energy,
		Frequency:   r.Frequency,
		PowerFactor: r.PowerFactor,
		RelayState:  relay,
		Valid:       valid,
	}
}

func (r Reading) ToMonitor() monitor.Reading {
	return monitor.Reading{
		Voltage:     r.Voltage,
		Current:     r.Current,
		Power:       r.Power,
		Energy:      r.Energy,
		Frequency:   r.Frequency,
		PowerFactor: r.PowerFactor,
		Timestamp:   r.Timestamp,
	}
}

type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	DeviceID  string `gorm:"index"`
	Timestamp time.Time
	Type      monitor.AlertKind `gorm:"type:varchar(20);check:type IN ('overvoltage','undervoltage','overcurrent','high_power','low_power','invalid_reading','sensor_unavailable')"`
	Message   string
	Voltage   float64
	Current   float64
	Power     float64
}

func NewAlert(deviceID string, a monitor.Alert) Alert {
	return Alert{
		DeviceID:  deviceID,
		Timestamp: a.Timestamp,
		Type:      a.Kind,
		Message:   a.Message,
		Voltage:   a.Reading.Voltage,
		Current:   a.Reading.Current,
		Power:     a.Reading.Power,
	}
}

type RelayEvent struct {
	ID        uint   `gorm:"primaryKey"`
	DeviceID  string `gorm:"index"`
	Timestamp time.Time
	FromState monitor.RelayState `gorm:"type:varchar(8)"`
	ToState   monitor.RelayState `gorm:"type:varchar(8)"`
	Cause     monitor.RelayCause `gorm:"type:varchar(16)"`
	Latched   bool
}

// Analytics summarises the readings of a device over a time range.
type Analytics struct {
	DeviceID     string    `json:"device_id"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	TotalEnergy  float64   `json:"total_energy_kwh"`
	TotalCost    float64   `json:"total_cost"`
	AveragePower float64   `json:"average_power"`
	PeakPower    float64   `json:"peak_power"`
	DataPoints   int       `json:"data_points"`
}
