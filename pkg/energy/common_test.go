package energy

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/energy-monitor-service/pkg/db"
	"liyu1981.xyz/energy-monitor-service/pkg/energy/mocks"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

func scenarioThresholds() monitor.Thresholds {
	th := monitor.DefaultThresholds()
	th.MaxPower = 2500
	return th
}

func openTestDB(t *testing.T) *db.DB {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	store, err := db.Open(db.UseIsolatedMemorySqliteDialector(name))
	require.NoError(t, err)
	return store
}

func GetMockEnergyWithMemorySqlite(t *testing.T, useMockIAlert, useMockIRelay bool) (
	*gomock.Controller,
	*Energy,
	*mocks.MockIAlert,
	*mocks.MockIRelay,
) {
	ctrl := gomock.NewController(t)

	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIRelay := mocks.NewMockIRelay(ctrl)

	e := New(*openTestDB(t), scenarioThresholds(), monitor.Policy{})

	opts := ServiceOpts{}
	if useMockIAlert {
		opts.Alert = mockIAlert
	}
	if useMockIRelay {
		opts.Relay = mockIRelay
	}
	e.WithServices(opts)

	return ctrl, e, mockIAlert, mockIRelay
}

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		var j map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
