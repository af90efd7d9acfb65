package database

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the in-memory store. The platform holds no durable state:
// every start migrates the schema and reloads the seed dataset, so a restart
// resets everything (see database/seed.go).
func Connect() (*gorm.DB, error) {
	if DB != nil {
		return DB, nil
	}

	// A shared-cache memory DSN keeps every pooled connection on the same
	// database instead of each one opening its own empty copy.
	dsn := getenv("DB_DSN", "file::memory:?cache=shared")

	var gormLogger logger.Interface
	if strings.ToLower(getenv("ENV", "development")) == "development" {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; more connections just contend.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	logrus.Info("database migrated and seeded")

	DB = db
	return DB, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}
