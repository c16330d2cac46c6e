// Package simulator generates meter readings that follow a daily
// consumption pattern. It stands in for a PZEM meter when none is attached.
package simulator

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

const (
	baseVoltage     = 230.0
	baseCurrent     = 2.0
	basePowerFactor = 0.95
	baseFrequency   = 50.0

	spikeChance = 0.02
	dipChance   = 0.01
)

// Simulator is a sampler source. Each Read advances the pattern by one
// step and accumulates energy over the configured step length.
type Simulator struct {
	step time.Duration
	now  func() time.Time

	mu      sync.Mutex
	rnd     *rand.Rand
	counter int
	energy  float64
}

type Option func(*Simulator)

func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rnd = rand.New(rand.NewSource(seed)) }
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

func New(step time.Duration, opts ...Option) *Simulator {
	s := &Simulator{
		step: step,
		now:  time.Now,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// multiplier scales the base current by hour of day: morning and evening
// peaks, a lower daytime load and a night trough.
func multiplier(hour, counter int) float64 {
	c := float64(counter)
	switch {
	case hour >= 6 && hour < 9:
		return 1.3 + 0.2*math.Sin(c*0.1)
	case hour >= 9 && hour < 17:
		return 0.8 + 0.1*math.Sin(c*0.05)
	case hour >= 17 && hour < 22:
		return 1.5 + 0.3*math.Sin(c*0.08)
	default:
		return 0.4 + 0.05*math.Sin(c*0.02)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rnd.Float64()*(hi-lo)
}

func (s *Simulator) Read(ctx context.Context) (monitor.Reading, error) {
	if err := ctx.Err(); err != nil {
		return monitor.Reading{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	m := multiplier(now.Hour(), s.counter)
	s.counter++

	voltage := baseVoltage * (1 + s.rnd.NormFloat64()*2.0/100)
	current := baseCurrent * m * (1 + s.rnd.NormFloat64()*0.1/100)
	power := voltage * current * basePowerFactor

	// appliance startup
	if s.rnd.Float64() < spikeChance {
		power *= s.uniform(1.5, 2.5)
		current *= s.uniform(1.5, 2.5)
	}
	// appliance shutdown
	if s.rnd.Float64() < dipChance {
		power *= s.uniform(0.3, 0.7)
		current *= s.uniform(0.3, 0.7)
	}

	voltage = clamp(voltage, 200, 250)
	current = clamp(current, 0.1, 10)
	power = clamp(power, 20, 2500)

	s.energy += power / 1000 * s.step.Hours()
	pf := clamp(basePowerFactor+s.rnd.NormFloat64()*0.02, 0.8, 1.0)

	return monitor.Reading{
		Voltage:     round(voltage, 1),
		Current:     round(current, 2),
		Power:       round(power, 1),
		Energy:      round(s.energy, 3),
		Frequency:   round(baseFrequency+s.rnd.NormFloat64()*0.1, 1),
		PowerFactor: round(pf, 2),
		Timestamp:   now,
	}, nil
}
