package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mobility-service/internal/models"
)

// EmployeeRepository provides methods to interact with the Employee model in the database.
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository instance with the provided GORM database connection.
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// CreateEmployee creates a new Employee in the database.
func (r *EmployeeRepository) CreateEmployee(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetEmployee retrieves an Employee by its ID.
func (r *EmployeeRepository) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	return &employee, err
}

// GetEmployeeWithProject retrieves an Employee by ID with its current project resolved.
func (r *EmployeeRepository) GetEmployeeWithProject(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("CurrentProject").First(&employee, "id = ?", id).Error
	return &employee, err
}

// GetEmployeeByEmail retrieves an Employee by its unique email.
func (r *EmployeeRepository) GetEmployeeByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "email = ?", email).Error
	return &employee, err
}

// ListEmployees retrieves all Employees, newest first, with current projects resolved.
func (r *EmployeeRepository) ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Preload("CurrentProject").Order("created_at DESC").Find(&employees).Error
	return employees, err
}

// ListEmployeesByRole retrieves all Employees holding the given role.
func (r *EmployeeRepository) ListEmployeesByRole(role models.Role) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("role = ?", role).Find(&employees).Error
	return employees, err
}

// ListEmployeesByIDs retrieves the Employees with the given IDs.
func (r *EmployeeRepository) ListEmployeesByIDs(ids []uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	if len(ids) == 0 {
		return employees, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&employees).Error
	return employees, err
}

// UpdateEmployee updates an existing Employee in the database.
func (r *EmployeeRepository) UpdateEmployee(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// UpdateEmployeeFields applies a partial update to the Employee with the given ID.
func (r *EmployeeRepository) UpdateEmployeeFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateEmployeesFields applies a partial update to every Employee in ids.
func (r *EmployeeRepository) UpdateEmployeesFields(ids []uuid.UUID, fields map[string]interface{}) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Employee{}).Where("id IN ?", ids).Updates(fields).Error
}

// DeleteEmployee deletes an Employee by its ID.
func (r *EmployeeRepository) DeleteEmployee(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}

// CountEmployees returns the total number of Employees.
func (r *EmployeeRepository) CountEmployees() (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Count(&count).Error
	return count, err
}

// GroupCount is a single bucket of a grouped count query.
type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// CountEmployeesGroupedBy counts Employees grouped by the given column.
func (r *EmployeeRepository) CountEmployeesGroupedBy(column string) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.Model(&models.Employee{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	return rows, err
}
