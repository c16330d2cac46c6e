package sampler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

// ErrNoNewReading means the last pushed reading was already sampled and
// is still fresh. The cycle is skipped without an alert.
var ErrNoNewReading = errors.New("no new reading")

// LatestSource is fed by a push transport (MQTT) and read by the sampler.
// A reading older than maxAge counts as no reading. Between two samples
// only one reading is kept: the most severe one, newest on a tie, so a
// fault published between ticks still reaches the monitor.
type LatestSource struct {
	maxAge     time.Duration
	thresholds monitor.Thresholds
	now        func() time.Time

	mu        sync.Mutex
	pending   monitor.Reading
	pendingAt time.Time
	received  time.Time
	served    bool
}

func NewLatestSource(maxAge time.Duration, t monitor.Thresholds) *LatestSource {
	return &LatestSource{maxAge: maxAge, thresholds: t, now: time.Now}
}

const (
	severityNominal = iota
	severityInvalid
	severityFault
)

func (l *LatestSource) severity(r monitor.Reading) int {
	v, err := monitor.Validate(r, l.thresholds)
	if err != nil {
		return severityInvalid
	}
	if monitor.Classify(v, l.thresholds).HasFault() {
		return severityFault
	}
	return severityNominal
}

func (l *LatestSource) Push(r monitor.Reading) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.received = now
	if !l.served && !l.pendingAt.IsZero() && l.severity(r) < l.severity(l.pending) {
		return
	}
	l.pending = r
	l.pendingAt = now
	l.served = false
}

// Read returns the pending reading. A reading is served once; until
// the next push Read returns ErrNoNewReading, or the sensor unavailable
// error once maxAge has passed.
func (l *LatestSource) Read(ctx context.Context) (monitor.Reading, error) {
	if err := ctx.Err(); err != nil {
		return monitor.Reading{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.received.IsZero() {
		return monitor.Reading{}, fmt.Errorf("no reading received: %w", monitor.ErrSensorUnavailable)
	}
	if age := l.now().Sub(l.received); l.maxAge > 0 && age > l.maxAge {
		return monitor.Reading{}, fmt.Errorf("last reading is %s old: %w", age.Truncate(time.Millisecond), monitor.ErrSensorUnavailable)
	}
	if l.served {
		return monitor.Reading{}, ErrNoNewReading
	}

	r := l.pending
	if r.Timestamp.IsZero() {
		r.Timestamp = l.pendingAt
	}
	l.served = true
	return r, nil
}
