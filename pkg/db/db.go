package db

import (
	"log"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// Open connects, migrates and tunes a database. It is used directly by
// tests that need an isolated store; the service shares GetInstance.
func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLoggerWith(common.LoggerNameEnergyCore, zap.String(common.LoggerFieldCategory, "db"))

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	if err := conn.AutoMigrate(&models.Device{}, &models.Reading{}, &models.Alert{}, &models.RelayEvent{}); err != nil {
		return nil, err
	}
	logger.Info("Database migration completed")

	if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, err
	}

	return &DB{Conn: conn}, nil
}

func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		if instance, err = Open(dialector); err != nil {
			log.Fatal("Failed to open database:", err)
		}
	})
	return instance
}

// withForeignKeys turns on foreign key enforcement for every pooled
// connection, not only the one the PRAGMA ran on.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = common.LookupEnvTrimmed(common.EnvKeyEnergyDbPath); !found {
		dbPath = "energy.db"
	}
	return sqlite.Open(withForeignKeys(dbPath))
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(withForeignKeys("file::memory:?cache=shared"))
}

// UseIsolatedMemorySqliteDialector opens a private in-memory database named
// after the caller, so parallel tests do not share rows.
func UseIsolatedMemorySqliteDialector(name string) gorm.Dialector {
	return sqlite.Open(withForeignKeys("file:" + name + "?mode=memory&cache=shared"))
}

// UseDialectorFor picks the dialector for ENERGY_DB_TYPE.
func UseDialectorFor(dbType string) gorm.Dialector {
	switch dbType {
	case "memory":
		return UseMemorySqliteDialector()
	default:
		return UseSqliteDialector()
	}
}

