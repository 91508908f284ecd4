package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/repository"
)

// ApplicationService owns the project application lifecycle: apply, approve,
// reject, drop, and deletion of own pending applications.
type ApplicationService struct {
	db *gorm.DB
}

// NewApplicationService creates a new ApplicationService on the given database.
func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Apply files a pending application for the employee on the given project.
func (s *ApplicationService) Apply(employeeID, projectID uuid.UUID) (*models.ProjectApplication, error) {
	var created *models.ProjectApplication
	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		applications := repository.NewApplicationRepository(tx)

		project, err := projects.GetProject(projectID)
		if err != nil {
			return orNotFound(err, "project not found")
		}
		if project.Status == models.ProjectClosed {
			return conflictErr("project is closed for applications")
		}

		pending, err := applications.CountPendingApplication(employeeID, projectID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing applications")
		}
		if pending > 0 {
			return conflictErr("application for this project is already pending")
		}

		application := &models.ProjectApplication{
			EmployeeID: employeeID,
			ProjectID:  projectID,
			Status:     models.ApplicationPending,
			AppliedAt:  time.Now(),
		}
		if err := applications.CreateApplication(application); err != nil {
			return errors.Wrap(err, "failed to create application")
		}
		created, err = applications.GetApplication(application.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListOwn returns the applications filed by the given employee.
func (s *ApplicationService) ListOwn(employeeID uuid.UUID) ([]models.ProjectApplication, error) {
	return repository.NewApplicationRepository(s.db).ListApplicationsByEmployee(employeeID)
}

// DeleteOwn removes one of the employee's own applications while it is still
// pending. Applications of other employees are reported as not found.
func (s *ApplicationService) DeleteOwn(employeeID, id uuid.UUID) error {
	applications := repository.NewApplicationRepository(s.db)
	application, err := applications.GetApplication(id)
	if err != nil {
		return orNotFound(err, "application not found")
	}
	if application.EmployeeID != employeeID {
		return notFoundErr("application not found")
	}
	if application.Status != models.ApplicationPending {
		return conflictErr("only pending applications can be withdrawn")
	}
	return errors.Wrap(applications.DeleteApplication(id), "failed to delete application")
}

// ListApplications returns every application with employee and project resolved.
func (s *ApplicationService) ListApplications() ([]models.ProjectApplication, error) {
	return repository.NewApplicationRepository(s.db).ListApplications()
}

// GetApplication returns a single application with its references resolved.
func (s *ApplicationService) GetApplication(id uuid.UUID) (*models.ProjectApplication, error) {
	application, err := repository.NewApplicationRepository(s.db).GetApplication(id)
	if err != nil {
		return nil, orNotFound(err, "application not found")
	}
	return application, nil
}

// Approve transitions a pending application to approved. AppliedAt is never touched.
func (s *ApplicationService) Approve(id uuid.UUID) (*models.ProjectApplication, error) {
	return s.transition(id, models.ApplicationApproved, models.ApplicationPending)
}

// Reject transitions a pending application to rejected.
func (s *ApplicationService) Reject(id uuid.UUID) (*models.ProjectApplication, error) {
	return s.transition(id, models.ApplicationRejected, models.ApplicationPending)
}

// Drop transitions a pending or approved application to dropped.
func (s *ApplicationService) Drop(id uuid.UUID) (*models.ProjectApplication, error) {
	return s.transition(id, models.ApplicationDropped, models.ApplicationPending, models.ApplicationApproved)
}

func (s *ApplicationService) transition(id uuid.UUID, to models.ApplicationStatus, from ...models.ApplicationStatus) (*models.ProjectApplication, error) {
	var updated *models.ProjectApplication
	err := s.db.Transaction(func(tx *gorm.DB) error {
		applications := repository.NewApplicationRepository(tx)
		application, err := applications.GetApplication(id)
		if err != nil {
			return orNotFound(err, "application not found")
		}
		allowed := false
		for _, status := range from {
			if application.Status == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return conflictErr("application is %s, cannot mark it %s", application.Status, to)
		}
		if err := applications.UpdateApplicationStatus(id, to); err != nil {
			return errors.Wrap(err, "failed to update application status")
		}
		updated, err = applications.GetApplication(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
