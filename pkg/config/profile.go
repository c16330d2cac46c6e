package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Profile is one hardware definition file. Constants use the firmware
// header names (RELAY_PIN, MAX_CURRENT, ...).
type Profile struct {
	Name      string            `yaml:"name"`
	Version   int               `yaml:"version"`
	Constants map[string]string `yaml:"constants"`

	path string
}

func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hardware profile %s: %w", path, err)
	}
	return ParseProfile(path, data)
}

func ParseProfile(path string, data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse hardware profile %s: %w", path, err)
	}
	p.path = path
	if p.Name == "" {
		p.Name = path
	}
	return &p, nil
}

type mergedProfiles struct {
	version   int
	names     []string
	constants map[string]string
	origin    map[string]string
}

// mergeProfiles unions the constants of every profile. The same constant
// defined with two different values is a ConfigurationError: neither value
// is taken as authoritative.
func mergeProfiles(profiles []*Profile) (*mergedProfiles, error) {
	m := &mergedProfiles{
		constants: map[string]string{},
		origin:    map[string]string{},
	}

	for _, p := range profiles {
		m.names = append(m.names, p.Name)

		if p.Version != 0 {
			if m.version != 0 && m.version != p.Version {
				return nil, &ConfigurationError{
					Field:  "version",
					Reason: fmt.Sprintf("profile %s has version %d, expected %d", p.Name, p.Version, m.version),
				}
			}
			m.version = p.Version
		}

		keys := make([]string, 0, len(p.Constants))
		for k := range p.Constants {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			name := strings.ToUpper(strings.TrimSpace(k))
			value := strings.TrimSpace(p.Constants[k])
			if prev, ok := m.constants[name]; ok && !sameValue(prev, value) {
				return nil, &ConfigurationError{
					Field: name,
					Reason: fmt.Sprintf("conflicting definitions: %q in %s and %q in %s",
						prev, m.origin[name], value, p.Name),
				}
			}
			m.constants[name] = value
			m.origin[name] = p.Name
		}
	}
	return m, nil
}

// sameValue compares numerically where possible so 0x01 and 1 agree.
func sameValue(a, b string) bool {
	if a == b {
		return true
	}
	if ai, err := strconv.ParseInt(a, 0, 64); err == nil {
		if bi, err := strconv.ParseInt(b, 0, 64); err == nil {
			return ai == bi
		}
	}
	if af, err := strconv.ParseFloat(a, 64); err == nil {
		if bf, err := strconv.ParseFloat(b, 64); err == nil {
			return af == bf
		}
	}
	return false
}

type setter func(c *Config, v string) error

func intSetter(dst func(*Config) *int) setter {
	return func(c *Config, v string) error {
		n, err := strconv.ParseInt(v, 0, 64)
		if err != nil {
			return err
		}
		*dst(c) = int(n)
		return nil
	}
}

func floatSetter(dst func(*Config) *float64) setter {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst(c) = f
		return nil
	}
}

func millisSetter(dst func(*Config) *time.Duration) setter {
	return func(c *Config, v string) error {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*dst(c) = time.Duration(ms) * time.Millisecond
		return nil
	}
}

func boolSetter(dst func(*Config) *bool) setter {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst(c) = b
		return nil
	}
}

var profileConstants = map[string]setter{
	"PZEM_SERIAL_RX":  intSetter(func(c *Config) *int { return &c.Hardware.PzemRxPin }),
	"PZEM_SERIAL_TX":  intSetter(func(c *Config) *int { return &c.Hardware.PzemTxPin }),
	"RELAY_PIN":       intSetter(func(c *Config) *int { return &c.Hardware.RelayPin }),
	"LED_PIN":         intSetter(func(c *Config) *int { return &c.Hardware.LedPin }),
	"BUTTON_PIN":      intSetter(func(c *Config) *int { return &c.Hardware.ButtonPin }),
	"PZEM_ADDRESS":    intSetter(func(c *Config) *int { return &c.Hardware.PzemAddress }),
	"SAMPLE_INTERVAL": millisSetter(func(c *Config) *time.Duration { return &c.Sensor.SampleInterval }),
	"SENSOR_TIMEOUT":  millisSetter(func(c *Config) *time.Duration { return &c.Sensor.Timeout }),

	"MAX_WIFI_RETRIES": intSetter(func(c *Config) *int { return &c.WiFi.MaxRetries }),
	"WIFI_TIMEOUT":     millisSetter(func(c *Config) *time.Duration { return &c.WiFi.Timeout }),
	"MQTT_KEEPALIVE":   intSetter(func(c *Config) *int { return &c.MQTT.KeepAlive }),
	"MQTT_QOS":         intSetter(func(c *Config) *int { return &c.MQTT.QoS }),
	"MQTT_RETAIN":      boolSetter(func(c *Config) *bool { return &c.MQTT.Retain }),

	"HIGH_POWER_THRESHOLD":   floatSetter(func(c *Config) *float64 { return &c.Thresholds.HighPower }),
	"LOW_POWER_THRESHOLD":    floatSetter(func(c *Config) *float64 { return &c.Thresholds.LowPower }),
	"OVERVOLTAGE_THRESHOLD":  floatSetter(func(c *Config) *float64 { return &c.Thresholds.Overvoltage }),
	"UNDERVOLTAGE_THRESHOLD": floatSetter(func(c *Config) *float64 { return &c.Thresholds.Undervoltage }),
	"MAX_OPERATING_CURRENT":  floatSetter(func(c *Config) *float64 { return &c.Thresholds.MaxOperatingCurrent }),
	"MIN_VOLTAGE":            floatSetter(func(c *Config) *float64 { return &c.Thresholds.MinVoltage }),
	"MAX_VOLTAGE":            floatSetter(func(c *Config) *float64 { return &c.Thresholds.MaxVoltage }),
	"MIN_CURRENT":            floatSetter(func(c *Config) *float64 { return &c.Thresholds.MinCurrent }),
	"MAX_CURRENT":            floatSetter(func(c *Config) *float64 { return &c.Thresholds.MaxCurrent }),
	"MIN_POWER":              floatSetter(func(c *Config) *float64 { return &c.Thresholds.MinPower }),
	"MAX_POWER":              floatSetter(func(c *Config) *float64 { return &c.Thresholds.MaxPower }),
	"STRICT_HIGH_POWER":      boolSetter(func(c *Config) *bool { return &c.Policy.StrictHighPower }),
}

func (m *mergedProfiles) apply(c *Config) error {
	keys := make([]string, 0, len(m.constants))
	for k := range m.constants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		set, ok := profileConstants[k]
		if !ok {
			return &ConfigurationError{Field: k, Reason: fmt.Sprintf("unknown constant in profile %s", m.origin[k])}
		}
		if err := set(c, m.constants[k]); err != nil {
			return &ConfigurationError{Field: k, Reason: fmt.Sprintf("invalid value %q in profile %s: %v", m.constants[k], m.origin[k], err)}
		}
	}
	c.Version = m.version
	c.Profiles = m.names
	return nil
}
