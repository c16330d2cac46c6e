package energy

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

const maxReadingsPerQuery = 5000

func (e *Energy) recordReading(deviceID string, input *monitor.Reading) (*monitor.Outcome, error) {
	logger := common.GetDeviceLogger(common.LoggerNameEnergyCore, common.LoggerCategoryReading, deviceID)

	if input == nil {
		return nil, fmt.Errorf("reading is required")
	}
	reading := *input
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	m, err := e.monitorFor(deviceID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Received reading for device", zap.Reflect("reading", reading))

	outcome := m.Tick(reading)

	err = e.Db.Conn.Transaction(func(tx *gorm.DB) error {
		row := models.NewReading(deviceID, reading, outcome.Decision.State, outcome.Invalid == nil)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if err := storeAlerts(tx, deviceID, outcome.Alerts); err != nil {
			return err
		}
		if outcome.Decision.Changed {
			return storeRelayChange(tx, deviceID, outcome.Decision)
		}
		return nil
	})
	if err != nil {
		// the monitor already committed the decision, so it still has to
		// reach the relay
		logger.Error("Failed to persist reading", zap.Error(err))
		if outcome.Decision.Changed {
			if relayErr := storeRelayChange(e.Db.Conn, deviceID, outcome.Decision); relayErr != nil {
				logger.Error("Failed to persist relay change", zap.Error(relayErr))
			}
		}
		e.dispatch(deviceID, reading, &outcome)
		return nil, err
	}

	logger.Info("Recorded reading for device",
		zap.Float64("voltage", reading.Voltage),
		zap.Float64("current", reading.Current),
		zap.Float64("power", reading.Power),
		zap.Int("alerts", len(outcome.Alerts)),
		zap.String("relay", string(outcome.Decision.State)),
	)

	e.dispatch(deviceID, reading, &outcome)
	return &outcome, nil
}

// dispatch hands the outcome to the collaborators after the monitor and the
// store are done with it. Delivery failures are logged per collaborator and
// do not undo the recorded cycle.
func (e *Energy) dispatch(deviceID string, reading monitor.Reading, outcome *monitor.Outcome) {
	logger := common.GetDeviceLogger(common.LoggerNameEnergyCore, common.LoggerCategoryNotify, deviceID)

	for _, a := range outcome.Alerts {
		for _, n := range e.notifiers {
			if err := n.NotifyAlert(deviceID, a); err != nil {
				logger.Error("Alert notification failed", zap.String("kind", string(a.Kind)), zap.Error(err))
			}
		}
	}
	if outcome.Decision.Changed {
		e.actuate(deviceID, outcome.Decision)
	}
	for _, o := range e.observers {
		o.ObserveOutcome(deviceID, reading, outcome)
	}
}

func (e *Energy) actuate(deviceID string, d monitor.RelayDecision) {
	logger := common.GetDeviceLogger(common.LoggerNameEnergyCore, common.LoggerCategoryRelay, deviceID)
	for _, a := range e.actuators {
		if err := a.ApplyRelay(deviceID, d); err != nil {
			logger.Error("Relay actuation failed", zap.String("state", string(d.State)), zap.Error(err))
		}
	}
}

func (e *Energy) getReadings(deviceID string, from, to time.Time) ([]models.Reading, error) {
	var readings []models.Reading
	q := e.Db.Conn.Where("device_id = ?", deviceID)
	if !from.IsZero() {
		q = q.Where("timestamp >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("timestamp <= ?", to)
	}
	err := q.Order("timestamp desc").Limit(maxReadingsPerQuery).Find(&readings).Error
	return readings, err
}

func (e *Energy) getLatestReading(deviceID string) (*models.Reading, error) {
	var reading models.Reading
	err := e.Db.Conn.
		Where("device_id = ? AND valid = ?", deviceID, true).
		Order("timestamp desc").
		First(&reading).Error
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

type IReadingImpl struct {
	energy *Energy
}

func (ir *IReadingImpl) RecordReading(deviceID string, input *monitor.Reading) (*monitor.Outcome, error) {
	return ir.energy.recordReading(deviceID, input)
}

func (ir *IReadingImpl) GetReadings(deviceID string, from, to time.Time) ([]models.Reading, error) {
	return ir.energy.getReadings(deviceID, from, to)
}

func (ir *IReadingImpl) GetLatestReading(deviceID string) (*models.Reading, error) {
	return ir.energy.getLatestReading(deviceID)
}

func (e *Energy) GetIReading() IReading {
	return &IReadingImpl{energy: e}
}
