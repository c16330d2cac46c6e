package db

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
	_ "liyu1981.xyz/energy-monitor-service/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	for _, table := range []string{"devices", "readings", "alerts", "relay_events"} {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestForeignKeyEnforced(t *testing.T) {
	common.SetTestLoggerNop()

	store, err := Open(UseIsolatedMemorySqliteDialector(t.Name()))
	require.NoError(t, err)

	orphan := models.Alert{DeviceID: "no-such-device", Timestamp: time.Now(), Type: monitor.AlertHighPower}
	assert.Error(t, store.Conn.Create(&orphan).Error)

	require.NoError(t, store.Conn.Create(&models.Device{DeviceID: "d1", RelayState: monitor.RelayOn, RelayCause: monitor.CauseNone}).Error)
	ok := models.Alert{DeviceID: "d1", Timestamp: time.Now(), Type: monitor.AlertHighPower}
	assert.NoError(t, store.Conn.Create(&ok).Error)

	bad := models.Alert{DeviceID: "d1", Timestamp: time.Now(), Type: "meltdown"}
	assert.Error(t, store.Conn.Create(&bad).Error, "alert type check constraint")
}
