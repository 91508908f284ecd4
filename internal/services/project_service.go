package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/repository"
)

// ProjectService owns project CRUD plus the bookkeeping that keeps employee
// bench/lead/current-project fields aligned with project membership. Every
// multi-record sequence runs inside a single transaction so a failure cannot
// leave employees half-reassigned.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectService on the given database.
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// CreateProjectInput carries the fields accepted on project creation.
type CreateProjectInput struct {
	Title         string
	Description   string
	TeamLead      *uuid.UUID
	TeamSizeLimit int
	Status        models.ProjectStatus
}

// UpdateProjectInput carries the fields accepted on project update. A nil
// TeamLead removes the lead; AssignedEmployees always replaces the whole set
// (absent means empty).
type UpdateProjectInput struct {
	Title             *string
	Description       *string
	TeamLead          *uuid.UUID
	AssignedEmployees []uuid.UUID
	TeamSizeLimit     *int
	Status            *models.ProjectStatus
}

// projectCodePrefix returns the uppercased first two characters of the
// trimmed title, used as the suffix seed of the project code.
func projectCodePrefix(title string) string {
	runes := []rune(strings.TrimSpace(title))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// formatProjectCode builds a code like PRJ-20250114-OR3 from the creation
// time, the title prefix and the 1-based daily sequence number.
func formatProjectCode(now time.Time, title string, seq int64) string {
	return fmt.Sprintf("PRJ-%s-%s%d", now.Format("20060102"), projectCodePrefix(title), seq)
}

// dayWindow returns [today 00:00, tomorrow 00:00) in the server's local zone.
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// CreateProject creates a project with a generated code. When a team lead is
// given they must exist and be on the bench; on success they are taken off
// the bench, flagged as lead and pointed at the new project. The daily
// sequence count runs in the same transaction as the insert; concurrent
// same-day creations can still collide and then fail on the unique code index
// instead of silently duplicating.
func (s *ProjectService) CreateProject(in CreateProjectInput, createdBy *uuid.UUID) (*models.Project, error) {
	if len([]rune(in.Title)) < 2 {
		return nil, validationErr("project title must be at least 2 characters")
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, validationErr("unknown project status %q", in.Status)
	}
	limit := in.TeamSizeLimit
	if limit <= 0 {
		limit = 1
	}

	var created *models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		employees := repository.NewEmployeeRepository(tx)

		now := time.Now()
		dayStart, dayEnd := dayWindow(now)
		countToday, err := projects.CountProjectsCreatedBetween(dayStart, dayEnd)
		if err != nil {
			return errors.Wrap(err, "failed to count today's projects")
		}

		var assigned []models.Employee
		if in.TeamLead != nil {
			lead, err := employees.GetEmployee(*in.TeamLead)
			if err != nil {
				return orNotFound(err, "team lead not found")
			}
			if !lead.IsOnBench {
				return conflictErr("team lead is already assigned to another project")
			}
			assigned = append(assigned, *lead)
		}

		project := &models.Project{
			ProjectCode:       formatProjectCode(now, in.Title, countToday+1),
			Title:             in.Title,
			Description:       in.Description,
			TeamLeadID:        in.TeamLead,
			AssignedEmployees: assigned,
			TeamSizeLimit:     limit,
			Vacancy:           limit - len(assigned),
			Status:            in.Status,
			CreatedByID:       createdBy,
		}
		if err := projects.CreateProject(project); err != nil {
			return errors.Wrap(err, "failed to create project")
		}

		if in.TeamLead != nil {
			err := employees.UpdateEmployeeFields(*in.TeamLead, map[string]interface{}{
				"is_on_bench":        false,
				"is_team_lead":       true,
				"current_project_id": project.ID,
			})
			if err != nil {
				return errors.Wrap(err, "failed to assign team lead")
			}
		}

		created, err = projects.GetProjectPopulated(project.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetProject returns a project with its references resolved.
func (s *ProjectService) GetProject(id uuid.UUID) (*models.Project, error) {
	project, err := repository.NewProjectRepository(s.db).GetProjectPopulated(id)
	if err != nil {
		return nil, orNotFound(err, "project not found")
	}
	return project, nil
}

// ListProjects returns all projects with their references resolved.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return repository.NewProjectRepository(s.db).ListProjects()
}

// UpdateProject applies field updates and reconciles employee state: a
// replaced lead is reverted to the bench, a new lead is promoted, employees
// dropped from the assigned set return to the bench with their project
// reference cleared, and the new assigned set is marked off-bench.
func (s *ProjectService) UpdateProject(id uuid.UUID, in UpdateProjectInput) (*models.Project, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, validationErr("unknown project status %q", *in.Status)
	}

	var updated *models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		employees := repository.NewEmployeeRepository(tx)

		existing, err := projects.GetProjectWithAssignees(id)
		if err != nil {
			return orNotFound(err, "project not found")
		}

		// Revert the old lead when the lead changed
		leadChanged := existing.TeamLeadID != nil &&
			(in.TeamLead == nil || *in.TeamLead != *existing.TeamLeadID)
		if leadChanged {
			err := employees.UpdateEmployeeFields(*existing.TeamLeadID, map[string]interface{}{
				"is_team_lead":       false,
				"is_on_bench":        true,
				"current_project_id": nil,
			})
			if err != nil {
				return errors.Wrap(err, "failed to revert previous team lead")
			}
		}

		if in.TeamLead != nil {
			if _, err := employees.GetEmployee(*in.TeamLead); err != nil {
				return orNotFound(err, "team lead not found")
			}
			err := employees.UpdateEmployeeFields(*in.TeamLead, map[string]interface{}{
				"is_team_lead":       true,
				"is_on_bench":        false,
				"current_project_id": id,
			})
			if err != nil {
				return errors.Wrap(err, "failed to promote team lead")
			}
		}

		// Employees removed from the assigned set go back to the bench.
		// Their project reference is cleared as well; leaving it dangling
		// would break the bench invariant.
		newSet := make(map[uuid.UUID]bool, len(in.AssignedEmployees))
		for _, empID := range in.AssignedEmployees {
			newSet[empID] = true
		}
		var removed []uuid.UUID
		for _, emp := range existing.AssignedEmployees {
			if !newSet[emp.ID] {
				removed = append(removed, emp.ID)
			}
		}
		err = employees.UpdateEmployeesFields(removed, map[string]interface{}{
			"is_on_bench":        true,
			"current_project_id": nil,
		})
		if err != nil {
			return errors.Wrap(err, "failed to bench removed employees")
		}

		err = employees.UpdateEmployeesFields(in.AssignedEmployees, map[string]interface{}{
			"is_on_bench":        false,
			"current_project_id": id,
		})
		if err != nil {
			return errors.Wrap(err, "failed to assign employees")
		}

		assigned, err := employees.ListEmployeesByIDs(in.AssignedEmployees)
		if err != nil {
			return errors.Wrap(err, "failed to load assigned employees")
		}

		limit := existing.TeamSizeLimit
		if in.TeamSizeLimit != nil {
			limit = *in.TeamSizeLimit
		}
		fields := map[string]interface{}{
			"team_lead_id":    in.TeamLead,
			"team_size_limit": limit,
			"vacancy":         limit - len(assigned),
		}
		if in.Title != nil {
			fields["title"] = *in.Title
		}
		if in.Description != nil {
			fields["description"] = *in.Description
		}
		if in.Status != nil {
			fields["status"] = *in.Status
		}
		if err := projects.UpdateProjectFields(id, fields); err != nil {
			return errors.Wrap(err, "failed to update project")
		}
		if err := projects.ReplaceAssignedEmployees(existing, assigned); err != nil {
			return errors.Wrap(err, "failed to replace assigned employees")
		}

		updated, err = projects.GetProjectPopulated(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes a project and returns its team lead and every
// assigned employee to the bench with their project reference cleared.
func (s *ProjectService) DeleteProject(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		employees := repository.NewEmployeeRepository(tx)

		project, err := projects.GetProjectWithAssignees(id)
		if err != nil {
			return orNotFound(err, "project not found")
		}

		if project.TeamLeadID != nil {
			err := employees.UpdateEmployeeFields(*project.TeamLeadID, map[string]interface{}{
				"is_team_lead":       false,
				"is_on_bench":        true,
				"current_project_id": nil,
			})
			if err != nil {
				return errors.Wrap(err, "failed to revert team lead")
			}
		}

		assignedIDs := make([]uuid.UUID, 0, len(project.AssignedEmployees))
		for _, emp := range project.AssignedEmployees {
			assignedIDs = append(assignedIDs, emp.ID)
		}
		err = employees.UpdateEmployeesFields(assignedIDs, map[string]interface{}{
			"is_on_bench":        true,
			"current_project_id": nil,
		})
		if err != nil {
			return errors.Wrap(err, "failed to bench assigned employees")
		}

		return errors.Wrap(projects.DeleteProject(project), "failed to delete project")
	})
}
