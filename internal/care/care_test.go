package care

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hospital-portal-server/internal/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// :memory: gives every connection its own database; keep the pool at one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// newTestFileDB opens a file-backed database for tests that hit it from
// several goroutines; a busy timeout lets concurrent writers serialize
// instead of failing.
func newTestFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "care.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// mustCreateRecord inserts a treatment record for resolver tests.
func mustCreateRecord(t *testing.T, db *gorm.DB, patientID, doctorID string, visited time.Time) models.MedicalRecord {
	t.Helper()
	record := models.MedicalRecord{
		PatientID:  patientID,
		DoctorID:   doctorID,
		Diagnosis:  "routine check",
		RecordDate: visited,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create medical record: %v", err)
	}
	return record
}
