package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobility-service/internal/models"
	"mobility-service/internal/services"
)

func TestApplyCreatesPendingApplication(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewApplicationService(db)

	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)

	application, err := svc.Apply(employee.ID, project.ID)
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.WithinDuration(t, time.Now(), application.AppliedAt, 5*time.Second)
	require.NotNil(t, application.Employee)
	assert.Equal(t, employee.ID, application.Employee.ID)
	require.NotNil(t, application.Project)
	assert.Equal(t, project.ID, application.Project.ID)
}

func TestApplyUnknownProject(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(db)

	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	_, err := svc.Apply(employee.ID, uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestApplyClosedProject(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewApplicationService(db)

	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{
		Title:  "Orion Platform",
		Status: models.ProjectClosed,
	}, nil)
	require.NoError(t, err)

	_, err = svc.Apply(employee.ID, project.ID)
	require.ErrorIs(t, err, services.ErrConflict)
}

func TestApplyDuplicatePending(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewApplicationService(db)

	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)

	first, err := svc.Apply(employee.ID, project.ID)
	require.NoError(t, err)

	_, err = svc.Apply(employee.ID, project.ID)
	require.ErrorIs(t, err, services.ErrConflict)

	// Once the pending application is resolved a fresh one is allowed.
	_, err = svc.Reject(first.ID)
	require.NoError(t, err)
	_, err = svc.Apply(employee.ID, project.ID)
	require.NoError(t, err)
}

func TestDeleteOwnRules(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewApplicationService(db)

	owner := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	other := seedEmployee(t, db, "Grace", "grace@corp.test", "EMP-2")
	project, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)

	application, err := svc.Apply(owner.ID, project.ID)
	require.NoError(t, err)

	// Someone else's application looks like it does not exist.
	err = svc.DeleteOwn(other.ID, application.ID)
	require.ErrorIs(t, err, services.ErrNotFound)

	// A resolved application can no longer be withdrawn.
	_, err = svc.Approve(application.ID)
	require.NoError(t, err)
	err = svc.DeleteOwn(owner.ID, application.ID)
	require.ErrorIs(t, err, services.ErrConflict)
}

func TestDeleteOwnPending(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewApplicationService(db)

	owner := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)

	application, err := svc.Apply(owner.ID, project.ID)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOwn(owner.ID, application.ID))

	_, err = svc.GetApplication(application.ID)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestApproveKeepsAppliedAt(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewApplicationService(db)

	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)

	application, err := svc.Apply(employee.ID, project.ID)
	require.NoError(t, err)

	approved, err := svc.Approve(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, approved.Status)
	assert.True(t, approved.AppliedAt.Equal(application.AppliedAt),
		"approval must not touch the application timestamp")
}

func TestTransitionGuards(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewApplicationService(db)

	employee := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)

	application, err := svc.Apply(employee.ID, project.ID)
	require.NoError(t, err)

	_, err = svc.Approve(application.ID)
	require.NoError(t, err)

	// Approved applications cannot be approved again or rejected.
	_, err = svc.Approve(application.ID)
	require.ErrorIs(t, err, services.ErrConflict)
	_, err = svc.Reject(application.ID)
	require.ErrorIs(t, err, services.ErrConflict)

	// Dropping an approved application is allowed; dropping twice is not.
	dropped, err := svc.Drop(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationDropped, dropped.Status)
	_, err = svc.Drop(application.ID)
	require.ErrorIs(t, err, services.ErrConflict)
}

func TestTransitionUnknownApplication(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(db)

	_, err := svc.Approve(uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
}
