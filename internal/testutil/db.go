// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-api/internal/db"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

// NewDB returns a migrated in-memory SQLite database that lives for the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every new connection would be a fresh empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func Ptr[T any](v T) *T {
	return &v
}

func SeedClient(t *testing.T, gdb *gorm.DB, name, phone string, email *string) *models.Client {
	t.Helper()

	c := &models.Client{Name: name, Phone: phone, Email: email}
	if err := gdb.Create(c).Error; err != nil {
		t.Fatalf("failed to seed client %s: %v", name, err)
	}
	return c
}

func SeedService(t *testing.T, gdb *gorm.DB, name string, minutes int, price float64) *models.Service {
	t.Helper()

	s := &models.Service{Name: name, DurationMinutes: minutes, Price: price, IsActive: true}
	if err := gdb.Create(s).Error; err != nil {
		t.Fatalf("failed to seed service %s: %v", name, err)
	}
	return s
}

func SeedStaff(t *testing.T, gdb *gorm.DB, name string) *models.Staff {
	t.Helper()

	s := &models.Staff{Name: name}
	if err := gdb.Create(s).Error; err != nil {
		t.Fatalf("failed to seed staff %s: %v", name, err)
	}
	return s
}

// SeedAppointment inserts an appointment directly; the API never writes them.
func SeedAppointment(
	t *testing.T,
	gdb *gorm.DB,
	clientID uint,
	serviceID *uint,
	staffID *uint,
	status string,
	at time.Time,
) *models.Appointment {
	t.Helper()

	a := &models.Appointment{
		ClientID:            clientID,
		ServiceID:           serviceID,
		StaffID:             staffID,
		Status:              status,
		AppointmentDatetime: at,
	}
	if err := gdb.Create(a).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	return a
}
