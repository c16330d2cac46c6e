package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyEnergyDBType string = "ENERGY_DB_TYPE"
	EnvKeyEnergyDbPath string = "ENERGY_DB_PATH"

	EnvKeyEnergyHttpHostPort string = "ENERGY_HTTP_HOST_PORT"
	EnvKeyEnergyGrpcHostPort string = "ENERGY_GRPC_HOST_PORT"

	EnvKeyEnergyDefaultRate  string = "ENERGY_DEFAULT_RATE"
	EnvKeyEnergyDefaultBurst string = "ENERGY_DEFAULT_BURST"

	EnvKeyEnergyHardwareProfiles string = "ENERGY_HARDWARE_PROFILES"
	EnvKeyEnergyDeviceID         string = "ENERGY_DEVICE_ID"
	EnvKeyEnergySource           string = "ENERGY_SOURCE"
	EnvKeyEnergyTariff           string = "ENERGY_TARIFF_PER_KWH"
	EnvKeyEnergyStrictHighPower  string = "ENERGY_STRICT_HIGH_POWER"
	EnvKeyEnergyRedisAddr        string = "ENERGY_REDIS_ADDR"
	EnvKeyEnergyRedisStream      string = "ENERGY_REDIS_STREAM"

	EnvKeySampleIntervalMs string = "ENERGY_SAMPLE_INTERVAL_MS"
	EnvKeySensorTimeoutMs  string = "ENERGY_SENSOR_TIMEOUT_MS"
	EnvKeyPzemAddress      string = "ENERGY_PZEM_ADDRESS"
	EnvKeyPzemRxPin        string = "ENERGY_PZEM_RX_PIN"
	EnvKeyPzemTxPin        string = "ENERGY_PZEM_TX_PIN"
	EnvKeyRelayPin         string = "ENERGY_RELAY_PIN"
	EnvKeyLedPin           string = "ENERGY_LED_PIN"
	EnvKeyButtonPin        string = "ENERGY_BUTTON_PIN"

	EnvKeyWifiMaxRetries string = "ENERGY_WIFI_MAX_RETRIES"
	EnvKeyWifiTimeoutMs  string = "ENERGY_WIFI_TIMEOUT_MS"

	EnvKeyMqttBroker    string = "ENERGY_MQTT_BROKER"
	EnvKeyMqttClientID  string = "ENERGY_MQTT_CLIENT_ID"
	EnvKeyMqttUsername  string = "ENERGY_MQTT_USERNAME"
	EnvKeyMqttPassword  string = "ENERGY_MQTT_PASSWORD"
	EnvKeyMqttKeepAlive string = "ENERGY_MQTT_KEEPALIVE"
	EnvKeyMqttQos       string = "ENERGY_MQTT_QOS"
	EnvKeyMqttRetain    string = "ENERGY_MQTT_RETAIN"

	EnvKeyHighPower    string = "ENERGY_HIGH_POWER_THRESHOLD"
	EnvKeyLowPower     string = "ENERGY_LOW_POWER_THRESHOLD"
	EnvKeyOvervoltage  string = "ENERGY_OVERVOLTAGE_THRESHOLD"
	EnvKeyUndervoltage string = "ENERGY_UNDERVOLTAGE_THRESHOLD"
	EnvKeyMaxOpCurrent string = "ENERGY_MAX_OPERATING_CURRENT"
	EnvKeyMinVoltage   string = "ENERGY_MIN_VOLTAGE"
	EnvKeyMaxVoltage   string = "ENERGY_MAX_VOLTAGE"
	EnvKeyMinCurrent   string = "ENERGY_MIN_CURRENT"
	EnvKeyMaxCurrent   string = "ENERGY_MAX_CURRENT"
	EnvKeyMinPower     string = "ENERGY_MIN_POWER"
	EnvKeyMaxPower     string = "ENERGY_MAX_POWER"

	MqttTopicData    string = "smartenergy/data"
	MqttTopicControl string = "smartenergy/control"
	MqttTopicAlerts  string = "smartenergy/alerts"
	MqttTopicReset   string = "smartenergy/reset"

	LoggerNameEnergyCore    string = "energy_core"
	LoggerNameMonitor       string = "monitor"
	LoggerNameSampler       string = "sampler"
	LoggerNameMqtt          string = "mqtt"
	LoggerNameRedisStream   string = "redis_stream"
	LoggerNameLive          string = "live"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameConfig        string = "config"

	LoggerFieldCategory       string = "category"
	LoggerCategoryReading     string = "reading"
	LoggerCategoryAlert       string = "alert"
	LoggerCategoryRelay       string = "relay"
	LoggerCategoryAnalytics   string = "analytics"
	LoggerCategoryNotify      string = "notify"
	LoggerCategoryIngest      string = "ingest"
	LoggerCategoryLoad        string = "load"
	LoggerFieldDeviceID       string = "device_id"
	DefaultDeviceID           string = "ESP32_001"
	DefaultTariffPerKWh       float64 = 0.12
	DefaultRedisStreamName    string = "smartenergy:events"
	DefaultSensorMaxAgeFactor int     = 3
)
