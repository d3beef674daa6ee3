package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/martinkovac/poolwatch/internal/config"
	"github.com/martinkovac/poolwatch/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Measurement{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:              "test-secret",
		JWTAccessExpiry:        15 * time.Minute,
		JWTRefreshExpiry:       168 * time.Hour,
		BootstrapAdminUsername: "admin",
		BootstrapAdminPassword: "admin123",
		ExportFilePrefix:       "pool_measurements",
	}
}

func floatPtr(v float64) *float64 { return &v }
