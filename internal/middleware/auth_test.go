package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mobility-service/internal/middleware"
	"mobility-service/internal/models"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Employee{}, &models.Project{}))

	auth := middleware.NewAuth(testSecret, db)
	app := fiber.New()
	app.Get("/protected", auth.Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"caller": middleware.CallerFromCtx(c).Email})
	})
	app.Get("/admin", auth.Protected(), auth.AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, db
}

func seedCaller(t *testing.T, db *gorm.DB, admin bool) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		Name:         "Ada",
		Email:        "ada@corp.test",
		Password:     "x",
		EmployeeCode: "EMP-1",
		IsAdmin:      admin,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func signToken(t *testing.T, sub string, secret string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProtectedRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsForeignSignature(t *testing.T) {
	app, db := newTestApp(t)
	employee := seedCaller(t, db, false)

	resp := doRequest(t, app, "/protected", signToken(t, employee.ID.String(), "other-secret"))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsUnknownCaller(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "/protected", signToken(t, "b9a0cdb2-0c5b-4a2f-9e3e-0d9f8f3b0c11", testSecret))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedLoadsCaller(t *testing.T) {
	app, db := newTestApp(t)
	employee := seedCaller(t, db, false)

	resp := doRequest(t, app, "/protected", signToken(t, employee.ID.String(), testSecret))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminOnly(t *testing.T) {
	app, db := newTestApp(t)
	employee := seedCaller(t, db, false)

	resp := doRequest(t, app, "/admin", signToken(t, employee.ID.String(), testSecret))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	require.NoError(t, db.Model(employee).Update("is_admin", true).Error)
	resp = doRequest(t, app, "/admin", signToken(t, employee.ID.String(), testSecret))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
