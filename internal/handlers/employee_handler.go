package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mobility-service/internal/middleware"
	"mobility-service/internal/models"
	"mobility-service/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
	validate        *validator.Validate
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		validate:        validator.New(),
	}
}

type createEmployeeRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	EmployeeCode string `json:"employee_id" validate:"required"`
	Role         string `json:"role"`
	Team         string `json:"team"`
	Gender       string `json:"gender"`
	IsAdmin      bool   `json:"is_admin"`
}

type updateProfileRequest struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Team         *string `json:"team"`
	Gender       *string `json:"gender"`
	Status       *string `json:"status"`
	BloodGroup   *string `json:"blood_group"`
	ProfileImage *string `json:"profile_image"`
	IsAvailable  *bool   `json:"is_available"`
}

type professionalDetailsRequest struct {
	Skills            []models.Skill           `json:"skills"`
	Experience        *string                  `json:"experience"`
	PreviousCompanies []models.PreviousCompany `json:"previous_companies"`
	PreviousProjects  []models.PreviousProject `json:"previous_projects"`
	Certifications    []models.Certification   `json:"certifications"`
	BloodGroup        *string                  `json:"blood_group"`
}

// CreateEmployee onboards a new employee
// @Summary Create a new employee
// @Description Register an employee with a hashed credential; new employees start on the bench
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body createEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee "Employee successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid employee data"
// @Failure 409 {object} map[string]interface{} "Email or employee id already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req createEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing employee data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid employee data",
			"details": err.Error(),
		})
	}

	employee, err := h.employeeService.CreateEmployee(services.CreateEmployeeInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		EmployeeCode: req.EmployeeCode,
		Role:         models.Role(req.Role),
		Team:         models.Team(req.Team),
		Gender:       models.Gender(req.Gender),
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		log.Printf("Error creating employee: %v", err)
		return errorJSON(c, "Failed to create employee", err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// ListEmployees returns all employees
// @Summary List all employees
// @Description Get a list of all employees, newest first, with current project resolved
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {array} models.Employee "List of all employees"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.employeeService.ListEmployees()
	if err != nil {
		log.Printf("Error listing employees: %v", err)
		return errorJSON(c, "Failed to list employees", err)
	}
	return c.JSON(employees)
}

// ListSupportEmployees returns employees in the support role
// @Summary List support employees
// @Description Get all employees whose role is support
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {array} models.Employee "Support employees"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/support [get]
func (h *EmployeeHandler) ListSupportEmployees(c *fiber.Ctx) error {
	employees, err := h.employeeService.ListSupportEmployees()
	if err != nil {
		log.Printf("Error listing support employees: %v", err)
		return errorJSON(c, "Failed to list support employees", err)
	}
	return c.JSON(employees)
}

// GetProfile returns the authenticated employee's profile
// @Summary Get my profile
// @Description Get the calling employee's profile with current project resolved
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {object} models.Employee "Profile of the caller"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/me [get]
func (h *EmployeeHandler) GetProfile(c *fiber.Ctx) error {
	caller := middleware.CallerFromCtx(c)
	if caller == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}
	employee, err := h.employeeService.GetEmployee(caller.ID)
	if err != nil {
		log.Printf("Error fetching profile: ID=%s, Error=%v", caller.ID, err)
		return errorJSON(c, "Employee not found", err)
	}
	return c.JSON(employee)
}

// GetEmployee returns an employee by ID
// @Summary Get an employee by ID
// @Description Get details of a specific employee with current project resolved
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" Format(uuid)
// @Success 200 {object} models.Employee "Employee found"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	employeeID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	employee, err := h.employeeService.GetEmployee(employeeID)
	if err != nil {
		log.Printf("Error fetching employee: ID=%s, Error=%v", employeeID, err)
		return errorJSON(c, "Employee not found", err)
	}
	return c.JSON(employee)
}

// UpdateProfile updates an employee's profile fields
// @Summary Update an employee profile
// @Description Apply partial profile updates to an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" Format(uuid)
// @Param profile body updateProfileRequest true "Profile fields"
// @Success 200 {object} models.Employee "Updated employee"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid UUID or enum value"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateProfile(c *fiber.Ctx) error {
	employeeID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	in := services.UpdateProfileInput{
		Name:         req.Name,
		BloodGroup:   req.BloodGroup,
		ProfileImage: req.ProfileImage,
		IsAvailable:  req.IsAvailable,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		in.Role = &role
	}
	if req.Team != nil {
		team := models.Team(*req.Team)
		in.Team = &team
	}
	if req.Gender != nil {
		gender := models.Gender(*req.Gender)
		in.Gender = &gender
	}
	if req.Status != nil {
		status := models.EmploymentStatus(*req.Status)
		in.Status = &status
	}

	employee, err := h.employeeService.UpdateProfile(employeeID, in)
	if err != nil {
		log.Printf("Error updating profile: ID=%s, Error=%v", employeeID, err)
		return errorJSON(c, "Failed to update employee", err)
	}
	return c.JSON(employee)
}

// UpdateProfessionalDetails replaces an employee's career history
// @Summary Update professional details
// @Description Replace the provided skills, certifications and history collections on an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" Format(uuid)
// @Param details body professionalDetailsRequest true "Professional details"
// @Success 200 {object} models.Employee "Updated employee"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or request format"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id}/professional-details [put]
func (h *EmployeeHandler) UpdateProfessionalDetails(c *fiber.Ctx) error {
	employeeID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	var req professionalDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing professional details: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	employee, err := h.employeeService.UpdateProfessionalDetails(employeeID, services.ProfessionalDetailsInput{
		Skills:            req.Skills,
		Experience:        req.Experience,
		PreviousCompanies: req.PreviousCompanies,
		PreviousProjects:  req.PreviousProjects,
		Certifications:    req.Certifications,
		BloodGroup:        req.BloodGroup,
	})
	if err != nil {
		log.Printf("Error updating professional details: ID=%s, Error=%v", employeeID, err)
		return errorJSON(c, "Failed to update employee", err)
	}
	return c.JSON(employee)
}

// DeleteEmployee deletes an employee
// @Summary Delete an employee
// @Description Remove an employee from the system
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Employee deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	employeeID, ok := parsePathUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.employeeService.DeleteEmployee(employeeID); err != nil {
		log.Printf("Error deleting employee: ID=%s, Error=%v", employeeID, err)
		return errorJSON(c, "Failed to delete employee", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Employee deleted successfully",
		"id":      employeeID.String(),
	})
}

// CountEmployees returns employee counts
// @Summary Employee counts
// @Description Get the total employee count plus role-wise and team-wise breakdowns
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {object} services.EmployeeCounts "Employee counts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/count [get]
func (h *EmployeeHandler) CountEmployees(c *fiber.Ctx) error {
	counts, err := h.employeeService.Counts()
	if err != nil {
		log.Printf("Error counting employees: %v", err)
		return errorJSON(c, "Failed to count employees", err)
	}
	return c.JSON(counts)
}
