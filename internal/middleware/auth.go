package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/repository"
)

const employeeLocal = "employee"

// Auth resolves the caller from a Bearer token and exposes the two checks the
// rest of the API relies on: identity resolved, and admin privilege.
type Auth struct {
	secret    []byte
	employees *repository.EmployeeRepository
}

// NewAuth creates the auth middleware on the given signing secret and database.
func NewAuth(secret string, db *gorm.DB) *Auth {
	return &Auth{secret: []byte(secret), employees: repository.NewEmployeeRepository(db)}
}

// Protected validates the Bearer token and loads the calling employee into
// the request context.
func (a *Auth) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "missing or invalid authorization",
			})
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "invalid token",
			})
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "invalid token",
			})
		}
		employeeID, err := uuid.Parse(sub)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "invalid token",
			})
		}
		employee, err := a.employees.GetEmployee(employeeID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "unknown caller",
			})
		}

		c.Locals(employeeLocal, employee)
		return c.Next()
	}
}

// AdminOnly rejects callers without admin privilege. It must run after Protected.
func (a *Auth) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employee := CallerFromCtx(c)
		if employee == nil || !employee.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   true,
				"message": "admin privilege required",
			})
		}
		return c.Next()
	}
}

// CallerFromCtx returns the employee resolved by Protected, or nil.
func CallerFromCtx(c *fiber.Ctx) *models.Employee {
	employee, _ := c.Locals(employeeLocal).(*models.Employee)
	return employee
}
