package energy

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

func storeRelayChange(tx *gorm.DB, deviceID string, d monitor.RelayDecision) error {
	event := models.RelayEvent{
		DeviceID:  deviceID,
		Timestamp: d.At,
		FromState: d.Previous,
		ToState:   d.State,
		Cause:     d.Cause,
		Latched:   d.Latched,
	}
	if err := tx.Create(&event).Error; err != nil {
		return err
	}
	return tx.Model(&models.Device{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"relay_state":   d.State,
			"relay_cause":   d.Cause,
			"relay_latched": d.Latched,
			"relay_since":   d.At,
		}).Error
}

func (e *Energy) getRelay(deviceID string) (monitor.RelayStatus, error) {
	m, err := e.existingMonitor(deviceID)
	if err != nil {
		return monitor.RelayStatus{}, err
	}
	return m.Snapshot(), nil
}

// commandRelay runs an operator command against the device monitor, then
// persists and actuates the resulting decision. A committed change is
// actuated even when it could not be persisted.
func (e *Energy) commandRelay(deviceID string, command string, run func(*monitor.Monitor) (monitor.RelayDecision, error)) (monitor.RelayDecision, error) {
	logger := common.GetDeviceLogger(common.LoggerNameEnergyCore, common.LoggerCategoryRelay, deviceID)

	m, err := e.monitorFor(deviceID)
	if err != nil {
		return monitor.RelayDecision{}, err
	}

	d, err := run(m)
	if err != nil {
		logger.Warn("Relay command rejected", zap.String("command", command), zap.Error(err))
		return d, err
	}

	logger.Info("Relay command applied", zap.String("command", command), zap.Reflect("decision", d))

	if !d.Changed {
		return d, nil
	}
	err = storeRelayChange(e.Db.Conn, deviceID, d)
	if err != nil {
		logger.Error("Failed to persist relay change", zap.String("command", command), zap.Error(err))
	}
	e.actuate(deviceID, d)
	return d, err
}

func (e *Energy) setRelay(deviceID string, on bool) (monitor.RelayDecision, error) {
	command := "off"
	if on {
		command = "on"
	}
	return e.commandRelay(deviceID, command, func(m *monitor.Monitor) (monitor.RelayDecision, error) {
		return m.SetManual(on)
	})
}

func (e *Energy) resetRelay(deviceID string) (monitor.RelayDecision, error) {
	return e.commandRelay(deviceID, "reset", func(m *monitor.Monitor) (monitor.RelayDecision, error) {
		return m.Reset(), nil
	})
}

func (e *Energy) getRelayEvents(deviceID string) ([]models.RelayEvent, error) {
	var events []models.RelayEvent
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc, id desc").
		Find(&events).Error
	return events, err
}

type IRelayImpl struct {
	energy *Energy
}

func (ir *IRelayImpl) GetRelay(deviceID string) (monitor.RelayStatus, error) {
	return ir.energy.getRelay(deviceID)
}

func (ir *IRelayImpl) SetRelay(deviceID string, on bool) (monitor.RelayDecision, error) {
	return ir.energy.setRelay(deviceID, on)
}

func (ir *IRelayImpl) ResetRelay(deviceID string) (monitor.RelayDecision, error) {
	return ir.energy.resetRelay(deviceID)
}

func (ir *IRelayImpl) GetRelayEvents(deviceID string) ([]models.RelayEvent, error) {
	return ir.energy.getRelayEvents(deviceID)
}

func (e *Energy) GetIRelay() IRelay {
	return &IRelayImpl{energy: e}
}
