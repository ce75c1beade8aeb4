package database

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" database/sql driver used below.
	_ "modernc.org/sqlite"

	"pgnest/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logrus.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	logrus.WithField("path", dsn).Info("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates/updates the schema for every entity the engine owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.AdminUser{},
		&domain.Room{},
		&domain.Tenant{},
		&domain.Payment{},
		&domain.TenantArchive{},
		&domain.Complaint{},
		&domain.Notification{},
		&domain.Counter{},
	)
}
