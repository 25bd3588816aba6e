package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/studiofit/studiofit-be/models"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
// TranslateError is on so duplicate-key failures surface as
// gorm.ErrDuplicatedKey, same as the Postgres setup in config.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MembershipPurchase{},
		&models.ClassSession{},
		&models.Booking{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Mirror of goose migration 00002: at most one live booking per
	// (user, class) pair, enforced by the storage layer.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_user_session_active
		ON bookings (user_id, class_session_id)
		WHERE deleted_at IS NULL
	`).Error
	if err != nil {
		t.Fatalf("Failed to create booking unique index: %v", err)
	}

	return db
}

// CleanupTestDB closes the test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close test database: %v", err)
	}
}
