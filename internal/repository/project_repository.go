package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mobility-service/internal/models"
)

// ProjectRepository provides methods to interact with the Project model in the database.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateProject creates a new Project in the database.
func (r *ProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProject retrieves a Project by its ID without resolving references.
func (r *ProjectRepository) GetProject(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// GetProjectPopulated retrieves a Project by its ID with team lead, assigned
// employees and creator resolved.
func (r *ProjectRepository) GetProjectPopulated(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("TeamLead").
		Preload("AssignedEmployees").
		Preload("CreatedBy").
		First(&project, "id = ?", id).Error
	return &project, err
}

// GetProjectWithAssignees retrieves a Project by its ID with the assigned employee set resolved.
func (r *ProjectRepository) GetProjectWithAssignees(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("AssignedEmployees").First(&project, "id = ?", id).Error
	return &project, err
}

// ListProjects retrieves all Projects with their references resolved.
func (r *ProjectRepository) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("TeamLead").
		Preload("AssignedEmployees").
		Preload("CreatedBy").
		Find(&projects).Error
	return projects, err
}

// UpdateProjectFields applies a partial update to the Project with the given ID.
func (r *ProjectRepository) UpdateProjectFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceAssignedEmployees replaces a Project's assigned employee set.
func (r *ProjectRepository) ReplaceAssignedEmployees(project *models.Project, employees []models.Employee) error {
	return r.db.Model(project).Association("AssignedEmployees").Replace(employees)
}

// DeleteProject deletes a Project by its ID along with its assignment rows.
func (r *ProjectRepository) DeleteProject(project *models.Project) error {
	if err := r.db.Model(project).Association("AssignedEmployees").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&models.Project{}, "id = ?", project.ID).Error
}

// CountProjectsCreatedBetween counts Projects created in the [from, to) window.
func (r *ProjectRepository) CountProjectsCreatedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// CountProjects returns the total number of Projects.
func (r *ProjectRepository) CountProjects() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountProjectsByStatus counts Projects having the given status.
func (r *ProjectRepository) CountProjectsByStatus(status models.ProjectStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
