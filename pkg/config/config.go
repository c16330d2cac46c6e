// Package config assembles the typed device configuration from the
// environment and optional YAML hardware profiles. A Config is built once at
// startup and passed by value into the components that need it.
package config

import (
	"time"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

type ConfigurationError = monitor.ConfigurationError

type HardwareConfig struct {
	PzemRxPin   int
	PzemTxPin   int
	RelayPin    int
	LedPin      int
	ButtonPin   int
	PzemAddress int
}

type SensorConfig struct {
	SampleInterval time.Duration
	Timeout        time.Duration
}

type WiFiConfig struct {
	MaxRetries int
	Timeout    time.Duration
}

type MQTTConfig struct {
	Broker    string
	ClientID  string
	Username  string
	Password  string
	KeepAlive int // seconds
	QoS       int
	Retain    bool
}

type ServiceConfig struct {
	DeviceID     string
	Source       string
	DBType       string
	DBPath       string
	HTTPHostPort string
	GrpcHostPort string
	DefaultRate  float64
	DefaultBurst int
	TariffPerKWh float64
	RedisAddr    string
	RedisStream  string
}

const (
	SourceMQTT      = "mqtt"
	SourceSimulator = "simulator"
)

type Config struct {
	// Version of the hardware profile set the values came from; 0 when
	// only defaults and environment were used.
	Version    int
	Profiles   []string
	Hardware   HardwareConfig
	Sensor     SensorConfig
	WiFi       WiFiConfig
	MQTT       MQTTConfig
	Thresholds monitor.Thresholds
	Policy     monitor.Policy
	Service    ServiceConfig
}

func Default() Config {
	return Config{
		Hardware: HardwareConfig{
			PzemRxPin:   16,
			PzemTxPin:   17,
			RelayPin:    2,
			LedPin:      4,
			ButtonPin:   0,
			PzemAddress: 0x01,
		},
		Sensor: SensorConfig{
			SampleInterval: 5000 * time.Millisecond,
			Timeout:        2000 * time.Millisecond,
		},
		WiFi: WiFiConfig{
			MaxRetries: 10,
			Timeout:    10000 * time.Millisecond,
		},
		MQTT: MQTTConfig{
			Broker:    "tcp://localhost:1883",
			ClientID:  "energy-monitor-service",
			KeepAlive: 60,
			QoS:       1,
			Retain:    false,
		},
		Thresholds: monitor.DefaultThresholds(),
		Service: ServiceConfig{
			DeviceID:     common.DefaultDeviceID,
			Source:       SourceMQTT,
			DBType:       "file",
			HTTPHostPort: ":1080",
			DefaultRate:  5,
			DefaultBurst: 10,
			TariffPerKWh: common.DefaultTariffPerKWh,
			RedisStream:  common.DefaultRedisStreamName,
		},
	}
}

// SensorMaxAge is how old the newest pushed reading may be before the
// sensor counts as unavailable.
func (c Config) SensorMaxAge() time.Duration {
	return time.Duration(common.DefaultSensorMaxAgeFactor) * c.Sensor.SampleInterval
}
