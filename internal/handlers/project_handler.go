package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mobility-service/internal/middleware"
	"mobility-service/internal/models"
	"mobility-service/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	validate       *validator.Validate
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		validate:       validator.New(),
	}
}

type createProjectRequest struct {
	Title         string  `json:"title" validate:"required,min=2"`
	Description   string  `json:"description"`
	TeamLead      *string `json:"team_lead" validate:"omitempty,uuid4"`
	TeamSizeLimit int     `json:"team_size_limit" validate:"omitempty,min=1"`
	Status        string  `json:"status"`
}

type updateProjectRequest struct {
	Title             *string  `json:"title" validate:"omitempty,min=2"`
	Description       *string  `json:"description"`
	TeamLead          *string  `json:"team_lead" validate:"omitempty,uuid4"`
	AssignedEmployees []string `json:"assigned_employees" validate:"omitempty,dive,uuid4"`
	TeamSizeLimit     *int     `json:"team_size_limit" validate:"omitempty,min=1"`
	Status            *string  `json:"status"`
}

// CreateProject creates a new project
// @Summary Create a new project
// @Description Create a project with a generated identifier; an optional team lead must be on the bench
// @Tags projects
// @Accept json
// @Produce json
// @Param project body createProjectRequest true "Project data"
// @Success 201 {object} models.Project "Project successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid project data"
// @Failure 404 {object} map[string]interface{} "Team lead not found"
// @Failure 409 {object} map[string]interface{} "Team lead not on bench"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing project data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Project title must be at least 2 characters",
			"details": err.Error(),
		})
	}

	teamLead, err := parseOptionalUUID(req.TeamLead)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid team lead UUID",
			"details": err.Error(),
		})
	}

	var createdBy *uuid.UUID
	if caller := middleware.CallerFromCtx(c); caller != nil {
		createdBy = &caller.ID
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Title:         req.Title,
		Description:   req.Description,
		TeamLead:      teamLead,
		TeamSizeLimit: req.TeamSizeLimit,
		Status:        models.ProjectStatus(req.Status),
	}, createdBy)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		return errorJSON(c, "Failed to create project", err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// ListProjects returns all projects
// @Summary List all projects
// @Description Get a list of all projects with team lead, assignees and creator resolved
// @Tags projects
// @Accept json
// @Produce json
// @Success 200 {array} models.Project "List of all projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return errorJSON(c, "Failed to list projects", err)
	}
	return c.JSON(projects)
}

// GetProject returns a project by ID
// @Summary Get a project by ID
// @Description Get details of a specific project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} models.Project "Project found"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		log.Printf("Error fetching project: ID=%s, Error=%v", projectID, err)
		return errorJSON(c, "Project not found", err)
	}
	return c.JSON(project)
}

// UpdateProject updates a project
// @Summary Update a project
// @Description Update project fields and reconcile team lead and assigned employee state
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Param project body updateProjectRequest true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid UUID or data"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	projectID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}

	var req updateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing project update data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid project data",
			"details": err.Error(),
		})
	}

	teamLead, err := parseOptionalUUID(req.TeamLead)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid team lead UUID",
			"details": err.Error(),
		})
	}
	assigned := make([]uuid.UUID, 0, len(req.AssignedEmployees))
	for _, raw := range req.AssignedEmployees {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": "Invalid assigned employee UUID",
				"details": err.Error(),
			})
		}
		assigned = append(assigned, id)
	}

	var status *models.ProjectStatus
	if req.Status != nil {
		s := models.ProjectStatus(*req.Status)
		status = &s
	}

	project, err := h.projectService.UpdateProject(projectID, services.UpdateProjectInput{
		Title:             req.Title,
		Description:       req.Description,
		TeamLead:          teamLead,
		AssignedEmployees: assigned,
		TeamSizeLimit:     req.TeamSizeLimit,
		Status:            status,
	})
	if err != nil {
		log.Printf("Error updating project: ID=%s, Error=%v", projectID, err)
		return errorJSON(c, "Failed to update project", err)
	}
	return c.JSON(project)
}

// DeleteProject deletes a project
// @Summary Delete a project
// @Description Delete a project and return its team lead and assignees to the bench
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Project deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	projectID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.projectService.DeleteProject(projectID); err != nil {
		log.Printf("Error deleting project: ID=%s, Error=%v", projectID, err)
		return errorJSON(c, "Failed to delete project", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Project deleted successfully",
		"id":      projectID.String(),
	})
}

// parsePathUUID parses the named path parameter as a UUID. On failure it
// writes the 400 response itself and reports ok=false.
func parsePathUUID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	idStr := c.Params(name)
	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("Invalid UUID format: %s - Error: %v", idStr, err)
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid UUID",
			"details": err.Error(),
		})
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
