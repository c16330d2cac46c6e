package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
)

// Load builds the configuration in three layers: defaults, hardware
// profiles named in ENERGY_HARDWARE_PROFILES, then individual ENERGY_*
// environment variables. A .env file in the working directory is read
// first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return LoadFromEnv()
}

func LoadFromEnv() (*Config, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameConfig,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLoad),
	)

	cfg := Default()

	if list, ok := common.LookupEnvTrimmed(common.EnvKeyEnergyHardwareProfiles); ok {
		var profiles []*Profile
		for _, path := range strings.Split(list, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			p, err := LoadProfile(path)
			if err != nil {
				return nil, err
			}
			profiles = append(profiles, p)
		}
		if err := ApplyProfiles(&cfg, profiles); err != nil {
			return nil, err
		}
		logger.Info("Hardware profiles applied",
			zap.Strings("profiles", cfg.Profiles), zap.Int("version", cfg.Version))
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.Reflect("hardware", cfg.Hardware),
		zap.Reflect("thresholds", cfg.Thresholds),
		zap.Duration("sample_interval", cfg.Sensor.SampleInterval),
	)
	return &cfg, nil
}

func ApplyProfiles(cfg *Config, profiles []*Profile) error {
	merged, err := mergeProfiles(profiles)
	if err != nil {
		return err
	}
	return merged.apply(cfg)
}

func envError(key string, err error) error {
	return &ConfigurationError{Field: key, Reason: err.Error()}
}

func applyEnv(cfg *Config) error {
	var err error

	ints := []struct {
		key string
		dst *int
	}{
		{common.EnvKeyPzemRxPin, &cfg.Hardware.PzemRxPin},
		{common.EnvKeyPzemTxPin, &cfg.Hardware.PzemTxPin},
		{common.EnvKeyRelayPin, &cfg.Hardware.RelayPin},
		{common.EnvKeyLedPin, &cfg.Hardware.LedPin},
		{common.EnvKeyButtonPin, &cfg.Hardware.ButtonPin},
		{common.EnvKeyPzemAddress, &cfg.Hardware.PzemAddress},
		{common.EnvKeyWifiMaxRetries, &cfg.WiFi.MaxRetries},
		{common.EnvKeyMqttKeepAlive, &cfg.MQTT.KeepAlive},
		{common.EnvKeyMqttQos, &cfg.MQTT.QoS},
		{common.EnvKeyEnergyDefaultBurst, &cfg.Service.DefaultBurst},
	}
	for _, i := range ints {
		if *i.dst, err = common.EnvIntOrDefault(i.key, *i.dst); err != nil {
			return envError(i.key, err)
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{common.EnvKeyHighPower, &cfg.Thresholds.HighPower},
		{common.EnvKeyLowPower, &cfg.Thresholds.LowPower},
		{common.EnvKeyOvervoltage, &cfg.Thresholds.Overvoltage},
		{common.EnvKeyUndervoltage, &cfg.Thresholds.Undervoltage},
		{common.EnvKeyMaxOpCurrent, &cfg.Thresholds.MaxOperatingCurrent},
		{common.EnvKeyMinVoltage, &cfg.Thresholds.MinVoltage},
		{common.EnvKeyMaxVoltage, &cfg.Thresholds.MaxVoltage},
		{common.EnvKeyMinCurrent, &cfg.Thresholds.MinCurrent},
		{common.EnvKeyMaxCurrent, &cfg.Thresholds.MaxCurrent},
		{common.EnvKeyMinPower, &cfg.Thresholds.MinPower},
		{common.EnvKeyMaxPower, &cfg.Thresholds.MaxPower},
		{common.EnvKeyEnergyDefaultRate, &cfg.Service.DefaultRate},
		{common.EnvKeyEnergyTariff, &cfg.Service.TariffPerKWh},
	}
	for _, f := range floats {
		if *f.dst, err = common.EnvFloatOrDefault(f.key, *f.dst); err != nil {
			return envError(f.key, err)
		}
	}

	if cfg.Sensor.SampleInterval, err = common.EnvMillisOrDefault(common.EnvKeySampleIntervalMs, cfg.Sensor.SampleInterval); err != nil {
		return envError(common.EnvKeySampleIntervalMs, err)
	}
	if cfg.Sensor.Timeout, err = common.EnvMillisOrDefault(common.EnvKeySensorTimeoutMs, cfg.Sensor.Timeout); err != nil {
		return envError(common.EnvKeySensorTimeoutMs, err)
	}
	if cfg.WiFi.Timeout, err = common.EnvMillisOrDefault(common.EnvKeyWifiTimeoutMs, cfg.WiFi.Timeout); err != nil {
		return envError(common.EnvKeyWifiTimeoutMs, err)
	}
	if cfg.MQTT.Retain, err = common.EnvBoolOrDefault(common.EnvKeyMqttRetain, cfg.MQTT.Retain); err != nil {
		return envError(common.EnvKeyMqttRetain, err)
	}
	if cfg.Policy.StrictHighPower, err = common.EnvBoolOrDefault(common.EnvKeyEnergyStrictHighPower, cfg.Policy.StrictHighPower); err != nil {
		return envError(common.EnvKeyEnergyStrictHighPower, err)
	}

	cfg.MQTT.Broker = common.EnvOrDefault(common.EnvKeyMqttBroker, cfg.MQTT.Broker)
	cfg.MQTT.ClientID = common.EnvOrDefault(common.EnvKeyMqttClientID, cfg.MQTT.ClientID)
	cfg.MQTT.Username = common.EnvOrDefault(common.EnvKeyMqttUsername, cfg.MQTT.Username)
	cfg.MQTT.Password = common.EnvOrDefault(common.EnvKeyMqttPassword, cfg.MQTT.Password)

	cfg.Service.DeviceID = common.EnvOrDefault(common.EnvKeyEnergyDeviceID, cfg.Service.DeviceID)
	cfg.Service.Source = common.EnvOrDefault(common.EnvKeyEnergySource, cfg.Service.Source)
	cfg.Service.DBType = common.EnvOrDefault(common.EnvKeyEnergyDBType, cfg.Service.DBType)
	cfg.Service.DBPath = common.EnvOrDefault(common.EnvKeyEnergyDbPath, cfg.Service.DBPath)
	cfg.Service.HTTPHostPort = common.EnvOrDefault(common.EnvKeyEnergyHttpHostPort, cfg.Service.HTTPHostPort)
	cfg.Service.GrpcHostPort = common.EnvOrDefault(common.EnvKeyEnergyGrpcHostPort, cfg.Service.GrpcHostPort)
	cfg.Service.RedisAddr = common.EnvOrDefault(common.EnvKeyEnergyRedisAddr, cfg.Service.RedisAddr)
	cfg.Service.RedisStream = common.EnvOrDefault(common.EnvKeyEnergyRedisStream, cfg.Service.RedisStream)

	return nil
}
