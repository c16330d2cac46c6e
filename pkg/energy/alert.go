package energy

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

func storeAlerts(tx *gorm.DB, deviceID string, alerts []monitor.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	logger := common.GetDeviceLogger(common.LoggerNameEnergyCore, common.LoggerCategoryAlert, deviceID)

	rows := common.Mapper(alerts, func(a monitor.Alert) models.Alert {
		return models.NewAlert(deviceID, a)
	})
	for _, row := range rows {
		logger.Info("Alert found", zap.Reflect("alert", row))
	}

	if err := tx.Create(&rows).Error; err != nil {
		return err
	}

	logger.Info("Alerts saved", zap.Int("count", len(rows)))
	return nil
}

func (e *Energy) storeAlerts(deviceID string, alerts []monitor.Alert) error {
	if _, err := e.monitorFor(deviceID); err != nil {
		return err
	}
	return storeAlerts(e.Db.Conn, deviceID, alerts)
}

func (e *Energy) getDeviceAlerts(deviceID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

// reportSensorUnavailable records a cycle in which no reading could be
// taken. The monitor is not ticked.
func (e *Energy) reportSensorUnavailable(deviceID string, cause error) error {
	logger := common.GetDeviceLogger(common.LoggerNameEnergyCore, common.LoggerCategoryAlert, deviceID)
	logger.Warn("Sensor unavailable, cycle skipped", zap.Error(cause))

	alert := monitor.SensorUnavailableAlert(cause, time.Now())
	if err := e.storeAlerts(deviceID, []monitor.Alert{alert}); err != nil {
		return err
	}

	for _, n := range e.notifiers {
		if err := n.NotifyAlert(deviceID, alert); err != nil {
			logger.Error("Alert notification failed", zap.String("kind", string(alert.Kind)), zap.Error(err))
		}
	}
	for _, o := range e.observers {
		o.ObserveSensorUnavailable(deviceID)
	}
	return nil
}

type IAlertImpl struct {
	energy *Energy
}

func (ia *IAlertImpl) StoreAlerts(deviceID string, alerts []monitor.Alert) error {
	return ia.energy.storeAlerts(deviceID, alerts)
}

func (ia *IAlertImpl) GetDeviceAlerts(deviceID string) ([]models.Alert, error) {
	return ia.energy.getDeviceAlerts(deviceID)
}

func (ia *IAlertImpl) ReportSensorUnavailable(deviceID string, cause error) error {
	return ia.energy.reportSensorUnavailable(deviceID, cause)
}

func (e *Energy) GetIAlert() IAlert {
	return &IAlertImpl{energy: e}
}
