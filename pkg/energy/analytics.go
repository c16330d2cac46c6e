package energy

import (
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
)

// summarize integrates power over time with the trapezoid rule. readings
// must be in ascending time order.
func summarize(readings []models.Reading, maxGap time.Duration, tariff float64) models.Analytics {
	var a models.Analytics
	if len(readings) == 0 {
		return a
	}

	a.DataPoints = len(readings)
	a.From = readings[0].Timestamp
	a.To = readings[len(readings)-1].Timestamp

	totalPower := 0.0
	for i, r := range readings {
		totalPower += r.Power
		if r.Power > a.PeakPower {
			a.PeakPower = r.Power
		}
		if i == 0 {
			continue
		}
		prev := readings[i-1]
		gap := r.Timestamp.Sub(prev.Timestamp)
		if gap <= 0 || (maxGap > 0 && gap > maxGap) {
			continue
		}
		a.TotalEnergy += (prev.Power + r.Power) / 2 / 1000 * gap.Hours()
	}

	a.AveragePower = totalPower / float64(len(readings))
	a.TotalCost = a.TotalEnergy * tariff
	return a
}

func (e *Energy) getAnalytics(deviceID string, from, to time.Time) (*models.Analytics, error) {
	logger := common.GetDeviceLogger(common.LoggerNameEnergyCore, common.LoggerCategoryAnalytics, deviceID)

	var readings []models.Reading
	q := e.Db.Conn.Where("device_id = ? AND valid = ?", deviceID, true)
	if !from.IsZero() {
		q = q.Where("timestamp >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("timestamp <= ?", to)
	}
	if err := q.Order("timestamp asc").Find(&readings).Error; err != nil {
		return nil, err
	}

	a := summarize(readings, e.MaxSampleGap, e.Tariff)
	a.DeviceID = deviceID
	if !from.IsZero() {
		a.From = from
	}
	if !to.IsZero() {
		a.To = to
	}

	logger.Info("Computed analytics", zap.Reflect("analytics", a))
	return &a, nil
}

type IAnalyticsImpl struct {
	energy *Energy
}

func (ia *IAnalyticsImpl) GetAnalytics(deviceID string, from, to time.Time) (*models.Analytics, error) {
	return ia.energy.getAnalytics(deviceID, from, to)
}

func (e *Energy) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{energy: e}
}
