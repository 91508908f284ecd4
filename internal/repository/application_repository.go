package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mobility-service/internal/models"
)

// ApplicationRepository provides methods to interact with the ProjectApplication model in the database.
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository instance with the provided GORM database connection.
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// CreateApplication creates a new ProjectApplication in the database.
func (r *ApplicationRepository) CreateApplication(application *models.ProjectApplication) error {
	return r.db.Create(application).Error
}

// GetApplication retrieves a ProjectApplication by its ID with both references resolved.
func (r *ApplicationRepository) GetApplication(id uuid.UUID) (*models.ProjectApplication, error) {
	var application models.ProjectApplication
	err := r.db.Preload("Employee").Preload("Project").First(&application, "id = ?", id).Error
	return &application, err
}

// ListApplications retrieves all ProjectApplications with both references resolved.
func (r *ApplicationRepository) ListApplications() ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	err := r.db.Preload("Employee").Preload("Project").Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

// ListApplicationsByEmployee retrieves all ProjectApplications filed by the given employee.
func (r *ApplicationRepository) ListApplicationsByEmployee(employeeID uuid.UUID) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	err := r.db.Preload("Project").
		Where("employee_id = ?", employeeID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// ListApplicationsBetween retrieves all ProjectApplications applied in the inclusive [from, to] window.
func (r *ApplicationRepository) ListApplicationsBetween(from, to time.Time) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	err := r.db.Where("applied_at >= ? AND applied_at <= ?", from, to).
		Order("applied_at ASC").
		Find(&applications).Error
	return applications, err
}

// CountPendingApplication reports how many pending applications the employee already has for the project.
func (r *ApplicationRepository) CountPendingApplication(employeeID, projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectApplication{}).
		Where("employee_id = ? AND project_id = ? AND status = ?", employeeID, projectID, models.ApplicationPending).
		Count(&count).Error
	return count, err
}

// UpdateApplicationStatus sets the status of the ProjectApplication with the given ID.
func (r *ApplicationRepository) UpdateApplicationStatus(id uuid.UUID, status models.ApplicationStatus) error {
	return r.db.Model(&models.ProjectApplication{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteApplication deletes a ProjectApplication by its ID.
func (r *ApplicationRepository) DeleteApplication(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectApplication{}, "id = ?", id).Error
}

// CountApplications returns the total number of ProjectApplications.
func (r *ApplicationRepository) CountApplications() (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectApplication{}).Count(&count).Error
	return count, err
}

// CountApplicationsByStatus counts ProjectApplications having the given status.
func (r *ApplicationRepository) CountApplicationsByStatus(status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectApplication{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
