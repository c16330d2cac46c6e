package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	"liyu1981.xyz/energy-monitor-service/pkg/live"
)

type RestfulServer struct {
	Server           *gin.Engine
	Energy           *energy.Energy
	RateLimiterStore *energy.RateLimiterStore
	// Metrics is served on /metrics when set.
	Metrics http.Handler
	// Live streams alerts and relay transitions over websocket when set.
	Live *live.Hub
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	return rs.RateLimiterStore.Allow(deviceID)
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

// limited rejects the request with 429 when the device is over its rate.
func (rs *RestfulServer) limited(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckDeviceLimiter(c.Param("device_id")) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		handler(c)
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	if rs.Metrics != nil {
		rs.Server.GET("/metrics", gin.WrapH(rs.Metrics))
	}
	if rs.Live != nil {
		rs.Server.GET("/live", rs.GetLive)
	}

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/readings", rs.limited(rs.PostReading))
		devices.GET("/readings", rs.limited(rs.GetReadings))
		devices.GET("/readings/latest", rs.limited(rs.GetLatestReading))
		devices.GET("/alerts", rs.limited(rs.GetAlerts))
		devices.GET("/relay", rs.limited(rs.GetRelay))
		devices.POST("/relay", rs.limited(rs.PostRelay))
		devices.POST("/relay/reset", rs.limited(rs.PostRelayReset))
		devices.GET("/relay/events", rs.limited(rs.GetRelayEvents))
		devices.GET("/analytics", rs.limited(rs.GetAnalytics))
		devices.POST("/limiter", rs.PostLimiter)
		if rs.Live != nil {
			devices.GET("/live", rs.GetLive)
		}
	}
}
