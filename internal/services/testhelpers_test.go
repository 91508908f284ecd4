package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mobility-service/internal/models"
)

// newTestDB opens a fresh in-memory database migrated with every model. The
// pool is pinned to a single connection so the in-memory store is shared.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Project{},
		&models.ProjectApplication{},
		&models.Card{},
	))
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, name, email, code string) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		Name:         name,
		Email:        email,
		Password:     "x",
		EmployeeCode: code,
		IsOnBench:    true,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

// takeOffBench flips the bench flag with an explicit update; a zero value on
// create would be overwritten by the column default.
func takeOffBench(t *testing.T, db *gorm.DB, id interface{}) {
	t.Helper()
	require.NoError(t, db.Model(&models.Employee{}).Where("id = ?", id).
		Update("is_on_bench", false).Error)
}

func reloadEmployee(t *testing.T, db *gorm.DB, id interface{}) *models.Employee {
	t.Helper()
	var employee models.Employee
	require.NoError(t, db.First(&employee, "id = ?", id).Error)
	return &employee
}
