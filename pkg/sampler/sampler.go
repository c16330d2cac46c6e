// Package sampler drives the periodic monitoring cycle: read the meter,
// hand the reading to the energy service, repeat.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

// Source yields one reading per call. Implementations return
// monitor.ErrSensorUnavailable (possibly wrapped) when the meter did not
// answer.
type Source interface {
	Read(ctx context.Context) (monitor.Reading, error)
}

type Sampler struct {
	DeviceID string
	Source   Source
	Interval time.Duration
	Timeout  time.Duration

	Reading energy.IReading
	Alert   energy.IAlert

	logger *zap.Logger
}

func New(deviceID string, source Source, interval, timeout time.Duration, e *energy.Energy) *Sampler {
	return &Sampler{
		DeviceID: deviceID,
		Source:   source,
		Interval: interval,
		Timeout:  timeout,
		Reading:  e.Reading,
		Alert:    e.Alert,
		logger:   common.GetDeviceLogger(common.LoggerNameSampler, common.LoggerCategoryReading, deviceID),
	}
}

func (s *Sampler) read(ctx context.Context) (monitor.Reading, error) {
	if s.Timeout <= 0 {
		return s.Source.Read(ctx)
	}
	readCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	r, err := s.Source.Read(readCtx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return r, fmt.Errorf("no response within %s: %w", s.Timeout, monitor.ErrSensorUnavailable)
	}
	return r, err
}

// Step runs one cycle. A failed read is reported as sensor unavailable and
// the monitor is not ticked.
func (s *Sampler) Step(ctx context.Context) error {
	r, err := s.read(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, ErrNoNewReading) {
			return nil
		}
		if !errors.Is(err, monitor.ErrSensorUnavailable) {
			err = fmt.Errorf("%w: %v", monitor.ErrSensorUnavailable, err)
		}
		return s.Alert.ReportSensorUnavailable(s.DeviceID, err)
	}

	outcome, err := s.Reading.RecordReading(s.DeviceID, &r)
	if err != nil {
		return err
	}
	if outcome.Invalid != nil {
		s.logger.Debug("Sample rejected", zap.Error(outcome.Invalid))
	}
	return nil
}

// Run samples every Interval until ctx is cancelled.
func (s *Sampler) Run(ctx context.Context) error {
	s.logger.Info("Sampler started", zap.Duration("interval", s.Interval), zap.Duration("timeout", s.Timeout))

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sampler stopped")
			return nil
		case <-ticker.C:
			if err := s.Step(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("Sample cycle failed", zap.Error(err))
			}
		}
	}
}
