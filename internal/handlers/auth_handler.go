package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mobility-service/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// Login authenticates an employee
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Token and employee profile"
// @Failure 400 {object} map[string]interface{} "Bad request - Missing credentials"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Email and password are required",
			"details": err.Error(),
		})
	}

	token, employee, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)
		return errorJSON(c, "Login failed", err)
	}
	return c.JSON(fiber.Map{
		"token":    token,
		"employee": employee,
	})
}

// ForgotPassword issues a password-reset code
// @Summary Request a password reset code
// @Description Issue a one-time reset code for the given email address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body forgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Reset code issued"
// @Failure 400 {object} map[string]interface{} "Bad request or re-request too soon"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing forgot-password data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "A valid email is required",
			"details": err.Error(),
		})
	}

	if err := h.authService.RequestOTP(c.Context(), req.Email); err != nil {
		log.Printf("Error issuing reset code for %s: %v", req.Email, err)
		return errorJSON(c, "Failed to issue reset code", err)
	}
	return c.JSON(fiber.Map{
		"message": "Reset code sent",
	})
}

// ResetPassword verifies a reset code and sets a new password
// @Summary Reset password
// @Description Verify the one-time reset code and replace the stored credential
// @Tags auth
// @Accept json
// @Produce json
// @Param request body resetPasswordRequest true "Email, code and new password"
// @Success 200 {object} map[string]interface{} "Password updated"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid or expired code"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing reset-password data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Email, code and new password are required",
			"details": err.Error(),
		})
	}

	if err := h.authService.ResetPassword(c.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		log.Printf("Error resetting password for %s: %v", req.Email, err)
		return errorJSON(c, "Failed to reset password", err)
	}
	return c.JSON(fiber.Map{
		"message": "Password updated successfully",
	})
}
