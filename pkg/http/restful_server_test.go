package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/energy-monitor-service/pkg/energy/mocks"
	_ "liyu1981.xyz/energy-monitor-service/pkg/testing"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/db"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	"liyu1981.xyz/energy-monitor-service/pkg/live"
	"liyu1981.xyz/energy-monitor-service/pkg/metrics"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

func setupTestServerWithLimiter(t *testing.T, limiter *energy.RateLimiterStore) *RestfulServer {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	store, err := db.Open(db.UseIsolatedMemorySqliteDialector(name))
	require.NoError(t, err)

	thresholds := monitor.DefaultThresholds()
	thresholds.MaxPower = 2500

	collector := metrics.New()
	e := energy.New(*store, thresholds, monitor.Policy{}).WithObservers(collector)

	rs := &RestfulServer{
		Server:           gin.Default(),
		Energy:           e,
		RateLimiterStore: limiter,
		Metrics:          collector.Handler(),
	}

	rs.Setup()

	return rs
}

func setupTestServer(t *testing.T) *RestfulServer {
	// default we use no limiter, if need, use setupTestServerWithLimiter
	return setupTestServerWithLimiter(t, nil)
}

func doJSON(rs *RestfulServer, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPostReadingAndGetAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	deviceID := uuid.NewString()

	// overvoltage and high power in one reading
	w := doJSON(rs, "POST", "/devices/"+deviceID+"/readings", map[string]any{
		"voltage": 260.0, "current": 5.0, "power": 1300.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var outcome OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.Equal(t, monitor.RelayOff, outcome.Decision.State)
	assert.True(t, outcome.Decision.Latched)
	assert.Len(t, outcome.Alerts, 2)
	assert.Empty(t, outcome.Invalid)

	w = doJSON(rs, "GET", "/devices/"+deviceID+"/alerts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 2)

	alertTypes := map[monitor.AlertKind]bool{}
	for _, alert := range alerts {
		alertTypes[alert.Type] = true
	}
	assert.True(t, alertTypes[monitor.AlertOvervoltage])
	assert.True(t, alertTypes[monitor.AlertHighPower])
}

func TestPostReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs := setupTestServer(t)
		// empty payload should be rejected
		w := doJSON(rs, "POST", "/devices/"+uuid.NewString()+"/readings", []byte("{}"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer(t)
		// voltage alone or with one of current/power is not a complete sample
		for _, partial := range []map[string]any{
			{"voltage": 230.0},
			{"voltage": 230.0, "current": 1.0},
			{"voltage": 230.0, "power": 230.0},
			{"current": 1.0, "power": 230.0},
		} {
			w := doJSON(rs, "POST", "/devices/"+uuid.NewString()+"/readings", partial)
			assert.Equal(t, http.StatusBadRequest, w.Code, "%v", partial)
		}
	}

	{
		rs := setupTestServer(t)
		// explicit zeros are a present value
		w := doJSON(rs, "POST", "/devices/"+uuid.NewString()+"/readings", map[string]any{
			"voltage": 230.0, "current": 0.0, "power": 0.0,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var outcome OutcomeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
		assert.Empty(t, outcome.Invalid)
		require.Len(t, outcome.Alerts, 1)
		assert.Equal(t, monitor.AlertLowPower, outcome.Alerts[0].Kind)
	}

	{
		rs := setupTestServer(t)
		// out of range values are accepted and reported as invalid
		w := doJSON(rs, "POST", "/devices/"+uuid.NewString()+"/readings", map[string]any{
			"voltage": -5.0, "current": 1.0, "power": 100.0,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var outcome OutcomeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
		assert.Contains(t, outcome.Invalid, "voltage")
		require.Len(t, outcome.Alerts, 1)
		assert.Equal(t, monitor.AlertInvalidReading, outcome.Alerts[0].Kind)
		assert.Equal(t, monitor.RelayOn, outcome.Decision.State)
	}

	{
		rs := setupTestServer(t)
		deviceID := uuid.NewString()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIAlert := mocks.NewMockIAlert(ctrl)
		rs.Energy.Alert = mockIAlert
		mockIAlert.EXPECT().
			GetDeviceAlerts(gomock.Eq(deviceID)).
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		w := doJSON(rs, "GET", "/devices/"+deviceID+"/alerts", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestReadingsHistory(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	deviceID := uuid.NewString()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := range 4 {
		w := doJSON(rs, "POST", "/devices/"+deviceID+"/readings", map[string]any{
			"voltage": 230.0, "current": 2.0, "power": 460.0 + float64(i),
			"timestamp": base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	start := base.Add(time.Minute).UnixMilli()
	end := base.Add(2 * time.Minute).UnixMilli()
	w := doJSON(rs, "GET", fmt.Sprintf("/devices/%s/readings?start=%d&end=%d", deviceID, start, end), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var readings []ReadingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readings))
	require.Len(t, readings, 2)
	assert.Equal(t, end, readings[0].Timestamp)
	assert.True(t, readings[0].RelayState)

	w = doJSON(rs, "GET", "/devices/"+deviceID+"/readings/latest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var latest ReadingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
	assert.Equal(t, 463.0, latest.Power)

	w = doJSON(rs, "GET", "/devices/"+deviceID+"/readings?start=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "GET", "/devices/"+uuid.NewString()+"/readings/latest", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRelayControl(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	deviceID := uuid.NewString()

	w := doJSON(rs, "GET", "/devices/"+deviceID+"/relay", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// undervoltage latches the relay off
	w = doJSON(rs, "POST", "/devices/"+deviceID+"/readings", map[string]any{"voltage": 150.0, "current": 1.0, "power": 150.0})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/devices/"+deviceID+"/relay", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status monitor.RelayStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, monitor.RelayOff, status.State)
	assert.True(t, status.Latched)

	w = doJSON(rs, "POST", "/devices/"+deviceID+"/relay", map[string]any{"relay": true})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(rs, "POST", "/devices/"+deviceID+"/relay", []byte(`{"relay": "on"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "POST", "/devices/"+deviceID+"/relay", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "POST", "/devices/"+deviceID+"/relay/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var d monitor.RelayDecision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, monitor.RelayOn, d.State)
	assert.Equal(t, monitor.CauseReset, d.Cause)

	w = doJSON(rs, "POST", "/devices/"+deviceID+"/relay", map[string]any{"relay": false})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/devices/"+deviceID+"/relay/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []models.RelayEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 3)
	assert.Equal(t, monitor.CauseManual, events[0].Cause)
}

func TestRelayControl_WithMock(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	deviceID := uuid.NewString()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIRelay := mocks.NewMockIRelay(ctrl)
	rs.Energy.Relay = mockIRelay

	mockIRelay.EXPECT().
		ResetRelay(gomock.Eq(deviceID)).
		Return(monitor.RelayDecision{}, fmt.Errorf("just causing error")).
		Times(1)
	mockIRelay.EXPECT().
		SetRelay(gomock.Eq(deviceID), gomock.Eq(false)).
		Return(monitor.RelayDecision{State: monitor.RelayOff, Cause: monitor.CauseManual, Changed: true}, nil).
		Times(1)

	w := doJSON(rs, "POST", "/devices/"+deviceID+"/relay/reset", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(rs, "POST", "/devices/"+deviceID+"/relay", map[string]any{"relay": false})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyticsEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	deviceID := uuid.NewString()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := range 3 {
		w := doJSON(rs, "POST", "/devices/"+deviceID+"/readings", map[string]any{
			"voltage": 230.0, "current": 2.6, "power": 600.0,
			"timestamp": base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(rs, "GET", "/devices/"+deviceID+"/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var a models.Analytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	assert.Equal(t, 3, a.DataPoints)
	assert.InDelta(t, 0.02, a.TotalEnergy, 1e-9)
	assert.InDelta(t, 0.0024, a.TotalCost, 1e-9)
	assert.InDelta(t, 600.0, a.AveragePower, 1e-9)

	w = doJSON(rs, "GET", "/devices/"+deviceID+"/analytics?start=2026-01-02T00:00:00Z&end=2026-01-01T00:00:00Z", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	deviceID := uuid.NewString()

	w := doJSON(rs, "POST", "/devices/"+deviceID+"/readings", map[string]any{"voltage": 231.0, "current": 2.0, "power": 460.0})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`energy_monitor_meter_voltage_volts{device="%s"} 231`, deviceID))
}

func TestPostReadingWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, energy.NewRateLimiterStore(2, 2)) // 2 req/sec, burst 2

	deviceID := uuid.NewString()
	reading := map[string]any{"voltage": 230.0, "current": 2.0, "power": 460.0}

	// Simulate 3 requests in quick succession, only 2 should be allowed
	for i := range 3 {
		w := doJSON(rs, http.MethodPost, "/devices/"+deviceID+"/readings", reading)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	w := doJSON(rs, http.MethodPost, "/devices/"+deviceID+"/limiter", LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	w = doJSON(rs, http.MethodPost, "/devices/"+deviceID+"/readings", reading)
	require.Equal(t, http.StatusOK, w.Code, "request after limiter reset should be allowed")
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, energy.NewRateLimiterStore(2, 2))

	// empty payload should be rejected
	w := doJSON(rs, "POST", "/devices/"+uuid.NewString()+"/limiter", []byte("{}"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, energy.NewRateLimiterStore(0, 0)) // nothing passes

	deviceID := uuid.NewString()

	for _, route := range []struct{ method, path string }{
		{"POST", "/devices/" + deviceID + "/readings"},
		{"GET", "/devices/" + deviceID + "/alerts"},
		{"GET", "/devices/" + deviceID + "/relay"},
		{"POST", "/devices/" + deviceID + "/relay/reset"},
		{"GET", "/devices/" + deviceID + "/analytics"},
	} {
		w := doJSON(rs, route.method, route.path, map[string]any{"voltage": 230.0})
		assert.Equal(t, http.StatusTooManyRequests, w.Code, "%s %s", route.method, route.path)
	}
}

func TestSetLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t) // default without limiter store

	deviceID := uuid.NewString()

	{
		// without limiter store setup limiter should be allowed and just return ok (but no effect)
		w := doJSON(rs, http.MethodPost, "/devices/"+deviceID+"/limiter", LimiterRequest{Rate: 2, Burst: 2})
		require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")
	}

	{
		// and request to alert should return empty alerts instead of too many requests
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/alerts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	}
}

func TestLiveFeed(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	rs.Live = live.NewHub()
	rs.Energy.WithNotifiers(rs.Live).WithActuators(rs.Live)
	rs.Server = gin.New()
	rs.Setup()

	srv := httptest.NewServer(rs.Server)
	defer srv.Close()

	deviceID := uuid.NewString()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/devices/%s/live", deviceID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return rs.Live.Clients() == 1 }, time.Second, 10*time.Millisecond)

	w := doJSON(rs, "POST", fmt.Sprintf("/devices/%s/readings", deviceID), map[string]any{
		"voltage": 230, "current": 6, "power": 1380,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg live.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, live.MessageTypeAlert, msg.Type)
	assert.Equal(t, deviceID, msg.DeviceID)
	assert.Equal(t, "high_power", msg.Payload.(map[string]any)["kind"])
}
