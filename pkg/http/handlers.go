package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type ReadingRequest struct {
	Voltage     float64   `json:"voltage"`
	Current     float64   `json:"current"`
	Power       float64   `json:"power"`
	Energy      float64   `json:"energy"`
	Frequency   float64   `json:"frequency"`
	PowerFactor float64   `json:"powerFactor"`
	Timestamp   time.Time `json:"timestamp"`
}

// Range checks are the monitor's job: out of range values are accepted
// here and come back as an invalid_reading alert. Required only rejects
// missing keys, an explicit 0 is a valid sample.
var readingRequestSchema = z.Struct(z.Shape{
	"voltage":     z.Float64().Required(),
	"current":     z.Float64().Required(),
	"power":       z.Float64().Required(),
	"energy":      z.Float64(),
	"frequency":   z.Float64(),
	"powerFactor": z.Float64(),
	"timestamp":   z.Time(),
})

type OutcomeResponse struct {
	Decision monitor.RelayDecision `json:"decision"`
	Alerts   []monitor.Alert       `json:"alerts"`
	Invalid  string                `json:"invalid,omitempty"`
}

func newOutcomeResponse(o *monitor.Outcome) OutcomeResponse {
	resp := OutcomeResponse{Decision: o.Decision, Alerts: o.Alerts}
	if resp.Alerts == nil {
		resp.Alerts = []monitor.Alert{}
	}
	if o.Invalid != nil {
		resp.Invalid = o.Invalid.Error()
	}
	return resp
}

// ReadingResponse keeps the field names the meter dashboard expects.
// Timestamp is in unix milliseconds.
type ReadingResponse struct {
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Power       float64 `json:"power"`
	Energy      float64 `json:"energy"`
	Frequency   float64 `json:"frequency"`
	PowerFactor float64 `json:"powerFactor"`
	RelayState  bool    `json:"relayState"`
	Valid       bool    `json:"valid"`
	Timestamp   int64   `json:"timestamp"`
}

func newReadingResponse(r models.Reading) ReadingResponse {
	return ReadingResponse{
		Voltage:     r.Voltage,
		Current:     r.Current,
		Power:       r.Power,
		Energy:      r.Energy,
		Frequency:   r.Frequency,
		PowerFactor: r.PowerFactor,
		RelayState:  r.RelayState.Bool(),
		Valid:       r.Valid,
		Timestamp:   r.Timestamp.UnixMilli(),
	}
}

// parseTime accepts unix milliseconds or RFC3339. Empty means unbounded.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want unix milliseconds or RFC3339", s)
	}
	return t, nil
}

func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := parseTime(c.Query("start"))
	if err != nil {
		return from, time.Time{}, err
	}
	to, err := parseTime(c.Query("end"))
	if err != nil {
		return from, to, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("end is before start")
	}
	return from, to, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, energy.ErrUnknownDevice), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, monitor.ErrRelayLatched):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func (rs *RestfulServer) PostReading(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	outcome, err := rs.Energy.Reading.RecordReading(deviceID, &monitor.Reading{
		Voltage:     req.Voltage,
		Current:     req.Current,
		Power:       req.Power,
		Energy:      req.Energy,
		Frequency:   req.Frequency,
		PowerFactor: req.PowerFactor,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOutcomeResponse(outcome))
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	deviceID := c.Param("device_id")

	from, to, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	readings, err := rs.Energy.Reading.GetReadings(deviceID, from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(readings, newReadingResponse))
}

func (rs *RestfulServer) GetLatestReading(c *gin.Context) {
	deviceID := c.Param("device_id")

	reading, err := rs.Energy.Reading.GetLatestReading(deviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReadingResponse(*reading))
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	deviceID := c.Param("device_id")

	alerts, err := rs.Energy.Alert.GetDeviceAlerts(deviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetRelay(c *gin.Context) {
	deviceID := c.Param("device_id")

	status, err := rs.Energy.Relay.GetRelay(deviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

type RelayRequest struct {
	Relay *bool `json:"relay" binding:"required"`
}

func (rs *RestfulServer) PostRelay(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid relay state"})
		return
	}

	d, err := rs.Energy.Relay.SetRelay(deviceID, *req.Relay)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (rs *RestfulServer) PostRelayReset(c *gin.Context) {
	deviceID := c.Param("device_id")

	d, err := rs.Energy.Relay.ResetRelay(deviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (rs *RestfulServer) GetRelayEvents(c *gin.Context) {
	deviceID := c.Param("device_id")

	events, err := rs.Energy.Relay.GetRelayEvents(deviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (rs *RestfulServer) GetAnalytics(c *gin.Context) {
	deviceID := c.Param("device_id")

	from, to, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := rs.Energy.Analytics.GetAnalytics(deviceID, from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetLive upgrades to a websocket. The upgrader has already answered the
// client when the handshake fails.
func (rs *RestfulServer) GetLive(c *gin.Context) {
	if err := rs.Live.ServeWS(c.Writer, c.Request, c.Param("device_id")); err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("Live upgrade failed", zap.Error(err))
	}
}
