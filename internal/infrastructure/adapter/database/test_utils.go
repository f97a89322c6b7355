package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/time"
)

// TestDBManager provides an in-memory sqlite database with the full schema for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database, migrates it, and
// closes it when the test ends
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:        DriverSQLite,
		Path:          ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		BusyTimeout:   time.Second,
		LogLevel:      "error",
		RetryAttempts: 1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	m := &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
	t.Cleanup(func() { m.Close(t) })

	if err := manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return m
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// TruncateAllTables removes every receipt and user
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []string{"receipts", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}

// CreateTestReceipt inserts a receipt row directly and returns its ID
func (m *TestDBManager) CreateTestReceipt(t *testing.T, merchant string, status string) uint64 {
	t.Helper()

	row := model.Receipt{
		MerchantName: &merchant,
		Status:       status,
		CreatedAt:    m.TimeProvider.Now(),
	}
	if err := m.Manager.DB().Create(&row).Error; err != nil {
		t.Fatalf("Failed to create test receipt: %v", err)
	}
	return row.ID
}

// CountRows returns the number of rows in table
func (m *TestDBManager) CountRows(t *testing.T, table string) int64 {
	t.Helper()

	var count int64
	if err := m.Manager.DB().Table(table).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}
