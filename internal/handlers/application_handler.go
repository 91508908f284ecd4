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

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	validate           *validator.Validate
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		validate:           validator.New(),
	}
}

type applyRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid4"`
}

// Apply submits a project application for the authenticated employee
// @Summary Apply to a project
// @Description Submit a pending application for the calling employee to an open project
// @Tags applications
// @Accept json
// @Produce json
// @Param application body applyRequest true "Application data"
// @Success 201 {object} models.ProjectApplication "Application submitted"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid application data"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 409 {object} map[string]interface{} "Project closed or duplicate pending application"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	caller := middleware.CallerFromCtx(c)
	if caller == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}

	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing application data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "A valid project_id is required",
			"details": err.Error(),
		})
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid project UUID",
			"details": err.Error(),
		})
	}

	application, err := h.applicationService.Apply(caller.ID, projectID)
	if err != nil {
		log.Printf("Error applying to project: employee=%s project=%s - %v", caller.ID, projectID, err)
		return errorJSON(c, "Failed to submit application", err)
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

// ListOwn returns the authenticated employee's applications
// @Summary List my applications
// @Description Get all applications submitted by the calling employee
// @Tags applications
// @Accept json
// @Produce json
// @Success 200 {array} models.ProjectApplication "Applications of the caller"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications/my-applications [get]
func (h *ApplicationHandler) ListOwn(c *fiber.Ctx) error {
	caller := middleware.CallerFromCtx(c)
	if caller == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}
	applications, err := h.applicationService.ListOwn(caller.ID)
	if err != nil {
		log.Printf("Error listing own applications: employee=%s - %v", caller.ID, err)
		return errorJSON(c, "Failed to list applications", err)
	}
	return c.JSON(applications)
}

// DeleteOwn withdraws one of the caller's pending applications
// @Summary Withdraw an application
// @Description Delete a pending application owned by the calling employee
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Application withdrawn"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Failure 409 {object} map[string]interface{} "Application no longer pending"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications/my-applications/{id} [delete]
func (h *ApplicationHandler) DeleteOwn(c *fiber.Ctx) error {
	caller := middleware.CallerFromCtx(c)
	if caller == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}
	applicationID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.applicationService.DeleteOwn(caller.ID, applicationID); err != nil {
		log.Printf("Error withdrawing application: ID=%s, Error=%v", applicationID, err)
		return errorJSON(c, "Failed to withdraw application", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Application withdrawn successfully",
		"id":      applicationID.String(),
	})
}

// ListApplications returns all applications
// @Summary List all applications
// @Description Get all applications with employee and project resolved
// @Tags applications
// @Accept json
// @Produce json
// @Success 200 {array} models.ProjectApplication "List of all applications"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	applications, err := h.applicationService.ListApplications()
	if err != nil {
		log.Printf("Error listing applications: %v", err)
		return errorJSON(c, "Failed to list applications", err)
	}
	return c.JSON(applications)
}

// GetApplication returns an application by ID
// @Summary Get an application by ID
// @Description Get details of a specific application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID" Format(uuid)
// @Success 200 {object} models.ProjectApplication "Application found"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *fiber.Ctx) error {
	applicationID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	application, err := h.applicationService.GetApplication(applicationID)
	if err != nil {
		log.Printf("Error fetching application: ID=%s, Error=%v", applicationID, err)
		return errorJSON(c, "Application not found", err)
	}
	return c.JSON(application)
}

// Approve approves a pending application
// @Summary Approve an application
// @Description Move a pending application into the approved state
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID" Format(uuid)
// @Success 200 {object} models.ProjectApplication "Approved application"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Failure 409 {object} map[string]interface{} "Application not pending"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications/approve/{id} [patch]
func (h *ApplicationHandler) Approve(c *fiber.Ctx) error {
	return h.transition(c, "approve", h.applicationService.Approve)
}

// Reject rejects a pending application
// @Summary Reject an application
// @Description Move a pending application into the rejected state
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID" Format(uuid)
// @Success 200 {object} models.ProjectApplication "Rejected application"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Failure 409 {object} map[string]interface{} "Application not pending"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications/reject/{id} [patch]
func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, "reject", h.applicationService.Reject)
}

// Drop drops a pending or approved application
// @Summary Drop an application
// @Description Move a pending or approved application into the dropped state
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID" Format(uuid)
// @Success 200 {object} models.ProjectApplication "Dropped application"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Application not found"
// @Failure 409 {object} map[string]interface{} "Application already rejected or dropped"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /applications/drop/{id} [patch]
func (h *ApplicationHandler) Drop(c *fiber.Ctx) error {
	return h.transition(c, "drop", h.applicationService.Drop)
}

func (h *ApplicationHandler) transition(c *fiber.Ctx, verb string, fn func(uuid.UUID) (*models.ProjectApplication, error)) error {
	applicationID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	application, err := fn(applicationID)
	if err != nil {
		log.Printf("Error on application %s: ID=%s, Error=%v", verb, applicationID, err)
		return errorJSON(c, "Failed to "+verb+" application", err)
	}
	return c.JSON(application)
}
