package monitor

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	_ "liyu1981.xyz/energy-monitor-service/pkg/testing"
)

func scenarioThresholds() Thresholds {
	return Thresholds{
		MinVoltage:   0,
		MaxVoltage:   300,
		MinCurrent:   0,
		MaxCurrent:   100,
		MinPower:     0,
		MaxPower:     2500,
		Overvoltage:  250,
		Undervoltage: 180,
		HighPower:    1000,
		LowPower:     100,
	}
}

func newTestMonitor(t *testing.T, opts ...Option) *Monitor {
	common.SetTestLoggerNop()
	m, err := New("dev-test", scenarioThresholds(), opts...)
	require.NoError(t, err)
	return m
}

func kinds(alerts []Alert) []AlertKind {
	return common.Mapper(alerts, func(a Alert) AlertKind { return a.Kind })
}

func TestValidate_WithinBounds(t *testing.T) {
	th := scenarioThresholds()
	for _, r := range []Reading{
		{Voltage: 230, Current: 2, Power: 460},
		{Voltage: 0, Current: 0, Power: 0},
		{Voltage: 300, Current: 100, Power: 2500},
		{Voltage: 300, Current: 0, Power: 2500},
	} {
		v, err := Validate(r, th)
		assert.NoError(t, err, "reading %+v", r)
		assert.Equal(t, r, v.Reading())
	}
}

func TestValidate_OutOfBounds(t *testing.T) {
	th := scenarioThresholds()
	cases := []struct {
		reading Reading
		field   Field
		bound   float64
	}{
		{Reading{Voltage: -5, Current: 5, Power: 500}, FieldVoltage, 0},
		{Reading{Voltage: 300.01, Current: 5, Power: 500}, FieldVoltage, 300},
		{Reading{Voltage: 230, Current: -0.1, Power: 500}, FieldCurrent, 0},
		{Reading{Voltage: 230, Current: 101, Power: 500}, FieldCurrent, 100},
		{Reading{Voltage: 230, Current: 5, Power: -1}, FieldPower, 0},
		{Reading{Voltage: 230, Current: 5, Power: 2501}, FieldPower, 2500},
		{Reading{Voltage: math.NaN(), Current: 5, Power: 500}, FieldVoltage, 0},
		// voltage is reported first when several fields are out of range
		{Reading{Voltage: 400, Current: 500, Power: 9000}, FieldVoltage, 300},
	}

	for _, c := range cases {
		_, err := Validate(c.reading, th)
		require.Error(t, err)

		var invalid *InvalidReadingError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, c.field, invalid.Field)
		assert.Equal(t, c.bound, invalid.Bound)
	}
}

func TestClassify_Strict(t *testing.T) {
	th := scenarioThresholds()
	at := func(r Reading) Classification {
		v, err := Validate(r, th)
		require.NoError(t, err)
		return Classify(v, th)
	}

	assert.True(t, at(Reading{Voltage: 250, Current: 2, Power: 1000}).Empty())
	assert.True(t, at(Reading{Voltage: 180, Current: 2, Power: 100}).Empty())
	assert.Equal(t, []AlertKind{AlertOvervoltage}, at(Reading{Voltage: 250.1, Current: 2, Power: 500}).Kinds)
	assert.Equal(t, []AlertKind{AlertUndervoltage, AlertLowPower}, at(Reading{Voltage: 179.9, Current: 0.2, Power: 40}).Kinds)
}

func TestClassify_OvervoltageMonotonic(t *testing.T) {
	th := scenarioThresholds()
	for p := 0.0; p <= th.MaxPower; p += 125 {
		for v := th.Overvoltage + 0.5; v <= th.MaxVoltage; v += 10 {
			valid, err := Validate(Reading{Voltage: v, Current: 1, Power: p}, th)
			require.NoError(t, err)
			assert.True(t, Classify(valid, th).Has(AlertOvervoltage), "v=%v p=%v", v, p)
		}
	}
}

func TestClassify_Overcurrent(t *testing.T) {
	th := scenarioThresholds()

	valid, err := Validate(Reading{Voltage: 230, Current: 20, Power: 900}, th)
	require.NoError(t, err)
	assert.False(t, Classify(valid, th).Has(AlertOvercurrent), "disabled when zero")

	th.MaxOperatingCurrent = 16
	c := Classify(valid, th)
	assert.True(t, c.Has(AlertOvercurrent))
	assert.True(t, c.HasFault())
}

func TestThresholdsValidate(t *testing.T) {
	require.NoError(t, scenarioThresholds().Validate())
	require.NoError(t, DefaultThresholds().Validate())

	mutate := []func(*Thresholds){
		func(th *Thresholds) { th.MinVoltage = 301 },
		func(th *Thresholds) { th.MinCurrent = 200 },
		func(th *Thresholds) { th.MinPower = 3000 },
		func(th *Thresholds) { th.Undervoltage = 250 },
		func(th *Thresholds) { th.LowPower = 1000 },
		func(th *Thresholds) { th.MaxOperatingCurrent = 150 },
		func(th *Thresholds) { th.MaxOperatingCurrent = -1 },
	}
	for i, fn := range mutate {
		th := scenarioThresholds()
		fn(&th)
		err := th.Validate()
		var cfgErr *ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), "case %d", i)
	}

	_, err := New("dev", Thresholds{MinVoltage: 10, MaxVoltage: 5})
	assert.Error(t, err)
}

func TestTick_OvervoltageAndHighPower(t *testing.T) {
	m := newTestMonitor(t)

	out := m.Tick(Reading{Voltage: 260, Current: 5, Power: 1300})

	assert.Nil(t, out.Invalid)
	assert.Equal(t, []AlertKind{AlertOvervoltage, AlertHighPower}, kinds(out.Alerts))
	assert.Equal(t, RelayOff, out.Decision.State)
	assert.Equal(t, RelayOn, out.Decision.Previous)
	assert.True(t, out.Decision.Changed)
	assert.True(t, out.Decision.Latched)
	assert.Equal(t, "Voltage 260.00 exceeded threshold 250.00", out.Alerts[0].Message)
}

func TestTick_Undervoltage(t *testing.T) {
	m := newTestMonitor(t)

	out := m.Tick(Reading{Voltage: 150, Current: 5, Power: 750})

	assert.Equal(t, []AlertKind{AlertUndervoltage}, kinds(out.Alerts))
	assert.Equal(t, RelayOff, out.Decision.State)
	assert.Equal(t, CauseFault, m.Snapshot().Cause)
}

func TestTick_InvalidLeavesRelay(t *testing.T) {
	m := newTestMonitor(t)

	m.Tick(Reading{Voltage: 260, Current: 5, Power: 500})
	before := m.Snapshot()

	out := m.Tick(Reading{Voltage: -5, Current: 5, Power: 500})
	require.NotNil(t, out.Invalid)
	assert.Equal(t, FieldVoltage, out.Invalid.Field)
	assert.Equal(t, []AlertKind{AlertInvalidReading}, kinds(out.Alerts))
	assert.False(t, out.Decision.Changed)
	assert.Equal(t, before, m.Snapshot())

	fresh := newTestMonitor(t)
	out = fresh.Tick(Reading{Voltage: -5, Current: 5, Power: 500})
	assert.Equal(t, RelayOn, out.Decision.State)
	assert.Equal(t, RelayOn, fresh.Snapshot().State)
}

func TestTick_LatchHoldsUntilReset(t *testing.T) {
	m := newTestMonitor(t)
	nominal := Reading{Voltage: 230, Current: 2, Power: 460}

	m.Tick(Reading{Voltage: 270, Current: 2, Power: 500})
	for range 5 {
		out := m.Tick(nominal)
		assert.Empty(t, out.Alerts)
		assert.Equal(t, RelayOff, out.Decision.State)
		assert.False(t, out.Decision.Changed)
	}

	_, err := m.SetManual(true)
	assert.ErrorIs(t, err, ErrRelayLatched)
	assert.Equal(t, RelayOff, m.Snapshot().State)

	d := m.Reset()
	assert.True(t, d.Changed)
	assert.Equal(t, RelayOn, d.State)
	assert.False(t, m.Snapshot().Latched)

	out := m.Tick(nominal)
	assert.Equal(t, RelayOn, out.Decision.State)
}

func TestDecisionCarriesCommitTime(t *testing.T) {
	clock := time.Unix(1000, 0)
	m := newTestMonitor(t, WithClock(func() time.Time { return clock }))

	faultAt := time.Unix(1100, 0)
	out := m.Tick(Reading{Voltage: 270, Current: 2, Power: 500, Timestamp: faultAt})
	assert.Equal(t, faultAt, out.Decision.At)
	assert.Equal(t, m.Snapshot().Since, out.Decision.At)

	// held decisions report when the current status took effect
	out = m.Tick(Reading{Voltage: 230, Current: 2, Power: 460, Timestamp: time.Unix(1200, 0)})
	assert.False(t, out.Decision.Changed)
	assert.Equal(t, faultAt, out.Decision.At)

	clock = time.Unix(1300, 0)
	d := m.Reset()
	assert.Equal(t, time.Unix(1300, 0), d.At)

	// a later tick does not move the time of the reset decision
	m.Tick(Reading{Voltage: 260, Current: 2, Power: 500, Timestamp: time.Unix(1400, 0)})
	assert.Equal(t, time.Unix(1300, 0), d.At)
	assert.Equal(t, time.Unix(1400, 0), m.Snapshot().Since)

	clock = time.Unix(1500, 0)
	d, err := m.SetManual(true)
	assert.ErrorIs(t, err, ErrRelayLatched)
	assert.Equal(t, time.Unix(1400, 0), d.At)
}

func TestTick_Idempotent(t *testing.T) {
	m := newTestMonitor(t)
	nominal := Reading{Voltage: 230, Current: 2, Power: 460, Timestamp: time.Unix(100, 0)}

	first := m.Tick(nominal)
	s1 := m.Snapshot()
	second := m.Tick(nominal)
	s2 := m.Snapshot()

	assert.Empty(t, first.Alerts)
	assert.Empty(t, second.Alerts)
	assert.Equal(t, s1, s2)
	assert.Equal(t, first.Decision, second.Decision)
}

func TestTick_HighPowerPolicy(t *testing.T) {
	high := Reading{Voltage: 230, Current: 6, Power: 1400}
	nominal := Reading{Voltage: 230, Current: 2, Power: 460}

	advisory := newTestMonitor(t)
	out := advisory.Tick(high)
	assert.Equal(t, []AlertKind{AlertHighPower}, kinds(out.Alerts))
	assert.Equal(t, RelayOn, out.Decision.State)

	strict := newTestMonitor(t, WithPolicy(Policy{StrictHighPower: true}))
	out = strict.Tick(high)
	assert.Equal(t, RelayOff, out.Decision.State)
	assert.False(t, out.Decision.Latched)

	out = strict.Tick(nominal)
	assert.Equal(t, RelayOn, out.Decision.State)
	assert.True(t, out.Decision.Changed)
}

func TestManualOffHeld(t *testing.T) {
	m := newTestMonitor(t)

	d, err := m.SetManual(false)
	require.NoError(t, err)
	assert.Equal(t, RelayOff, d.State)

	out := m.Tick(Reading{Voltage: 230, Current: 2, Power: 460})
	assert.Equal(t, RelayOff, out.Decision.State)
	assert.Equal(t, CauseManual, m.Snapshot().Cause)

	d, err = m.SetManual(true)
	require.NoError(t, err)
	assert.Equal(t, RelayOn, d.State)
}

func TestInitialStatusRestored(t *testing.T) {
	latched := RelayStatus{State: RelayOff, Cause: CauseFault, Latched: true, Since: time.Unix(5, 0)}
	m := newTestMonitor(t, WithInitialStatus(latched))

	assert.Equal(t, latched, m.Snapshot())
	out := m.Tick(Reading{Voltage: 230, Current: 2, Power: 460})
	assert.Equal(t, RelayOff, out.Decision.State)
}

func TestSnapshotConcurrent(t *testing.T) {
	m := newTestMonitor(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 200 {
			if i%2 == 0 {
				m.Tick(Reading{Voltage: 260, Current: 2, Power: 500})
			} else {
				m.Reset()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			s := m.Snapshot()
			if s.Latched {
				assert.Equal(t, RelayOff, s.State)
			}
		}
	}()
	wg.Wait()
}
