package energy

import (
	"errors"
	"sync"
	"time"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/db"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

var ErrUnknownDevice = errors.New("unknown device")

type IReading interface {
	RecordReading(deviceID string, input *monitor.Reading) (*monitor.Outcome, error)
	GetReadings(deviceID string, from, to time.Time) ([]models.Reading, error)
	GetLatestReading(deviceID string) (*models.Reading, error)
}

type IAlert interface {
	StoreAlerts(deviceID string, alerts []monitor.Alert) error
	GetDeviceAlerts(deviceID string) ([]models.Alert, error)
	ReportSensorUnavailable(deviceID string, cause error) error
}

type IRelay interface {
	GetRelay(deviceID string) (monitor.RelayStatus, error)
	SetRelay(deviceID string, on bool) (monitor.RelayDecision, error)
	ResetRelay(deviceID string) (monitor.RelayDecision, error)
	GetRelayEvents(deviceID string) ([]models.RelayEvent, error)
}

type IAnalytics interface {
	GetAnalytics(deviceID string, from, to time.Time) (*models.Analytics, error)
}

// Notifier receives every alert raised for a device.
type Notifier interface {
	NotifyAlert(deviceID string, alert monitor.Alert) error
}

// Actuator receives relay decisions that changed the relay status.
type Actuator interface {
	ApplyRelay(deviceID string, decision monitor.RelayDecision) error
}

// Observer sees every processed cycle, including skipped ones.
type Observer interface {
	ObserveOutcome(deviceID string, reading monitor.Reading, outcome *monitor.Outcome)
	ObserveSensorUnavailable(deviceID string)
}

type Energy struct {
	Db         db.DB
	Thresholds monitor.Thresholds
	Policy     monitor.Policy
	Tariff     float64
	// MaxSampleGap bounds the interval integrated between two readings;
	// longer gaps (device offline) contribute no energy.
	MaxSampleGap time.Duration

	Reading   IReading
	Alert     IAlert
	Relay     IRelay
	Analytics IAnalytics

	notifiers []Notifier
	actuators []Actuator
	observers []Observer

	mu       sync.Mutex
	monitors map[string]*monitor.Monitor
}

type ServiceOpts struct {
	Reading   IReading
	Alert     IAlert
	Relay     IRelay
	Analytics IAnalytics
}

func New(store db.DB, thresholds monitor.Thresholds, policy monitor.Policy) *Energy {
	e := &Energy{
		Db:           store,
		Thresholds:   thresholds,
		Policy:       policy,
		Tariff:       common.DefaultTariffPerKWh,
		MaxSampleGap: 5 * time.Minute,
	}
	return e.WithServices(ServiceOpts{
		Reading:   e.GetIReading(),
		Alert:     e.GetIAlert(),
		Relay:     e.GetIRelay(),
		Analytics: e.GetIAnalytics(),
	})
}

func (e *Energy) WithServices(opts ServiceOpts) *Energy {
	if opts.Reading != nil {
		e.Reading = opts.Reading
	}
	if opts.Alert != nil {
		e.Alert = opts.Alert
	}
	if opts.Relay != nil {
		e.Relay = opts.Relay
	}
	if opts.Analytics != nil {
		e.Analytics = opts.Analytics
	}
	return e
}

func (e *Energy) WithNotifiers(n ...Notifier) *Energy {
	e.notifiers = append(e.notifiers, n...)
	return e
}

func (e *Energy) WithActuators(a ...Actuator) *Energy {
	e.actuators = append(e.actuators, a...)
	return e
}

func (e *Energy) WithObservers(o ...Observer) *Energy {
	e.observers = append(e.observers, o...)
	return e
}

// monitorFor returns the device monitor, registering the device and
// restoring its persisted relay status on first use.
func (e *Energy) monitorFor(deviceID string) (*monitor.Monitor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.monitors == nil {
		e.monitors = map[string]*monitor.Monitor{}
	}
	if m, ok := e.monitors[deviceID]; ok {
		return m, nil
	}

	device := models.Device{
		DeviceID:   deviceID,
		RelayState: monitor.RelayOn,
		RelayCause: monitor.CauseNone,
		RelaySince: time.Now(),
	}
	if err := e.Db.Conn.Where(models.Device{DeviceID: deviceID}).FirstOrCreate(&device).Error; err != nil {
		return nil, err
	}

	m, err := monitor.New(deviceID, e.Thresholds,
		monitor.WithPolicy(e.Policy),
		monitor.WithInitialStatus(device.RelayStatus()),
	)
	if err != nil {
		return nil, err
	}
	e.monitors[deviceID] = m
	return m, nil
}

// existingMonitor is monitorFor for read paths: unknown devices are an
// error instead of being registered.
func (e *Energy) existingMonitor(deviceID string) (*monitor.Monitor, error) {
	e.mu.Lock()
	m, ok := e.monitors[deviceID]
	e.mu.Unlock()
	if ok {
		return m, nil
	}

	var count int64
	if err := e.Db.Conn.Model(&models.Device{}).Where("device_id = ?", deviceID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUnknownDevice
	}
	return e.monitorFor(deviceID)
}
