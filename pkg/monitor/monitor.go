package monitor

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
)

// Outcome is the result of one monitoring cycle. Invalid is set when the
// reading failed validation; the relay is then untouched.
type Outcome struct {
	Decision RelayDecision        `json:"decision"`
	Alerts   []Alert              `json:"alerts"`
	Invalid  *InvalidReadingError `json:"-"`
}

// Monitor runs the validate, classify, decide cycle for one device.
//
// Tick, Reset and SetManual are serialized and are the only writers of the
// relay status. Snapshot never blocks on them.
type Monitor struct {
	deviceID   string
	thresholds Thresholds
	policy     Policy
	now        func() time.Time
	logger     *zap.Logger

	mu     sync.Mutex
	status atomic.Pointer[RelayStatus]
}

type Option func(*Monitor)

func WithPolicy(p Policy) Option {
	return func(m *Monitor) { m.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// WithInitialStatus restores a previously committed status, e.g. a latch
// that was persisted before a restart.
func WithInitialStatus(s RelayStatus) Option {
	return func(m *Monitor) { m.status.Store(&s) }
}

func New(deviceID string, t Thresholds, opts ...Option) (*Monitor, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	m := &Monitor{
		deviceID:   deviceID,
		thresholds: t,
		now:        time.Now,
		logger:     common.GetDeviceLogger(common.LoggerNameMonitor, common.LoggerCategoryRelay, deviceID),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.status.Load() == nil {
		m.status.Store(&RelayStatus{State: RelayOn, Cause: CauseNone, Since: m.now()})
	}
	return m, nil
}

func (m *Monitor) DeviceID() string {
	return m.deviceID
}

func (m *Monitor) Thresholds() Thresholds {
	return m.thresholds
}

func (m *Monitor) Policy() Policy {
	return m.policy
}

// Snapshot returns a copy of the last committed relay status.
func (m *Monitor) Snapshot() RelayStatus {
	return *m.status.Load()
}

func (m *Monitor) stamp(r Reading) time.Time {
	if r.Timestamp.IsZero() {
		return m.now()
	}
	return r.Timestamp
}

// commit stores a changed decision and stamps it with its effective time.
func (m *Monitor) commit(d RelayDecision, at time.Time) RelayDecision {
	if !d.Changed {
		d.At = m.Snapshot().Since
		return d
	}
	d.At = at
	m.status.Store(&RelayStatus{State: d.State, Cause: d.Cause, Latched: d.Latched, Since: at})
	m.logger.Info("Relay transition",
		zap.String("from", string(d.Previous)),
		zap.String("to", string(d.State)),
		zap.String("cause", string(d.Cause)),
		zap.Bool("latched", d.Latched),
	)
	return d
}

// Tick processes one reading.
func (m *Monitor) Tick(r Reading) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	at := m.stamp(r)
	current := m.Snapshot()

	valid, err := Validate(r, m.thresholds)
	if err != nil {
		var invalid *InvalidReadingError
		errors.As(err, &invalid)
		m.logger.Warn("Invalid reading skipped", zap.Error(err))
		return Outcome{
			Decision: hold(current),
			Alerts: []Alert{{
				Kind:      AlertInvalidReading,
				Reading:   r,
				Timestamp: at,
				Message:   err.Error(),
			}},
			Invalid: invalid,
		}
	}

	c := Classify(valid, m.thresholds)
	alerts := make([]Alert, 0, len(c.Kinds))
	for _, kind := range c.Kinds {
		alerts = append(alerts, Alert{
			Kind:      kind,
			Reading:   r,
			Timestamp: at,
			Message:   alertMessage(kind, r, m.thresholds),
		})
	}

	d := m.commit(DecideRelay(c, current, m.policy), at)

	return Outcome{Decision: d, Alerts: alerts}
}

// Reset clears a fault latch and switches the relay back on. It is the
// transition driven by the manual reset button.
func (m *Monitor) Reset() RelayDecision {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.commit(transition(m.Snapshot(), RelayOn, CauseReset, false), m.now())
}

// SetManual applies an operator on/off command. Switching on while latched
// fails with ErrRelayLatched.
func (m *Monitor) SetManual(on bool) (RelayDecision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.Snapshot()
	if !on {
		if current.Latched {
			return hold(current), nil
		}
		return m.commit(transition(current, RelayOff, CauseManual, false), m.now()), nil
	}
	if current.Latched {
		return hold(current), ErrRelayLatched
	}
	return m.commit(transition(current, RelayOn, CauseNone, false), m.now()), nil
}

// SensorUnavailableAlert builds the alert emitted when a cycle produced no
// reading at all.
func SensorUnavailableAlert(err error, at time.Time) Alert {
	return Alert{
		Kind:      AlertSensorUnavailable,
		Timestamp: at,
		Message:   err.Error(),
	}
}
