package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mobility-service/internal/models"
	"mobility-service/internal/services"
)

func TestCreateEmployeeHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEmployeeService(db)

	employee, err := svc.CreateEmployee(services.CreateEmployeeInput{
		Name:         "Ada",
		Email:        "ada@corp.test",
		Password:     "hunter2secret",
		EmployeeCode: "EMP-1",
		Role:         models.RoleDeveloper,
		Team:         models.TeamTechnical,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2secret", employee.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte("hunter2secret")))
	assert.True(t, employee.IsOnBench, "new employees start on the bench")
}

func TestCreateEmployeeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEmployeeService(db)

	_, err := svc.CreateEmployee(services.CreateEmployeeInput{
		Email:        "ada@corp.test",
		Password:     "hunter2secret",
		EmployeeCode: "EMP-1",
	})
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.CreateEmployee(services.CreateEmployeeInput{
		Name:         "Ada",
		Email:        "ada@corp.test",
		EmployeeCode: "EMP-1",
	})
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.CreateEmployee(services.CreateEmployeeInput{
		Name:         "Ada",
		Email:        "ada@corp.test",
		Password:     "hunter2secret",
		EmployeeCode: "EMP-1",
		Role:         models.Role("Wizard"),
	})
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestGetEmployeeResolvesCurrentProject(t *testing.T) {
	db := newTestDB(t)
	employees := services.NewEmployeeService(db)
	projects := services.NewProjectService(db)

	lead := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{
		Title:    "Orion Platform",
		TeamLead: &lead.ID,
	}, nil)
	require.NoError(t, err)

	loaded, err := employees.GetEmployee(lead.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.CurrentProject)
	assert.Equal(t, project.ID, loaded.CurrentProject.ID)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEmployeeService(db)
	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")

	name := "Ada L."
	role := models.RoleDevOps
	updated, err := svc.UpdateProfile(employee.ID, services.UpdateProfileInput{
		Name: &name,
		Role: &role,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, models.RoleDevOps, updated.Role)
	assert.Equal(t, "ada@corp.test", updated.Email, "untouched fields must survive")

	bogus := models.Role("Wizard")
	_, err = svc.UpdateProfile(employee.ID, services.UpdateProfileInput{Role: &bogus})
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestUpdateProfessionalDetailsReplacesCollections(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEmployeeService(db)
	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")

	experience := "4 years"
	updated, err := svc.UpdateProfessionalDetails(employee.ID, services.ProfessionalDetailsInput{
		Skills: []models.Skill{
			{Name: "Go", Level: "senior"},
			{Name: "Postgres"},
		},
		Experience: &experience,
	})
	require.NoError(t, err)
	require.Len(t, updated.Skills, 2)
	assert.Equal(t, "4 years", updated.Experience)

	// A follow-up replacing only skills keeps the experience untouched.
	updated, err = svc.UpdateProfessionalDetails(employee.ID, services.ProfessionalDetailsInput{
		Skills: []models.Skill{{Name: "Kubernetes"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Skills, 1)
	assert.Equal(t, "Kubernetes", updated.Skills[0].Name)
	assert.Equal(t, "4 years", updated.Experience)

	stored := reloadEmployee(t, db, employee.ID)
	require.Len(t, stored.Skills, 1)
}

func TestDeleteEmployee(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEmployeeService(db)
	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")

	require.NoError(t, svc.DeleteEmployee(employee.ID))
	_, err := svc.GetEmployee(employee.ID)
	require.ErrorIs(t, err, services.ErrNotFound)

	err = svc.DeleteEmployee(uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestEmployeeCounts(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEmployeeService(db)

	for _, spec := range []struct {
		name, email, code string
		role              models.Role
		team              models.Team
	}{
		{"Ada", "ada@corp.test", "EMP-1", models.RoleDeveloper, models.TeamTechnical},
		{"Grace", "grace@corp.test", "EMP-2", models.RoleDeveloper, models.TeamTechnical},
		{"Linus", "linus@corp.test", "EMP-3", models.RoleSupport, models.TeamOperations},
	} {
		_, err := svc.CreateEmployee(services.CreateEmployeeInput{
			Name:         spec.name,
			Email:        spec.email,
			Password:     "hunter2secret",
			EmployeeCode: spec.code,
			Role:         spec.role,
			Team:         spec.team,
		})
		require.NoError(t, err)
	}

	counts, err := svc.Counts()
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts.Total)
	assert.EqualValues(t, 2, counts.RoleWise["Developer"])
	assert.EqualValues(t, 1, counts.RoleWise["Support"])
	assert.EqualValues(t, 2, counts.TeamWise["Technical"])
	assert.EqualValues(t, 1, counts.TeamWise["Operations"])

	support, err := svc.ListSupportEmployees()
	require.NoError(t, err)
	require.Len(t, support, 1)
	assert.Equal(t, "Linus", support[0].Name)
}
