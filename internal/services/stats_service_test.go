package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/services"
)

func seedApplication(t *testing.T, db *gorm.DB, employee *models.Employee, project *models.Project, status models.ApplicationStatus, appliedAt time.Time) *models.ProjectApplication {
	t.Helper()
	application := &models.ProjectApplication{
		EmployeeID: employee.ID,
		ProjectID:  project.ID,
		Status:     status,
		AppliedAt:  appliedAt,
	}
	require.NoError(t, db.Create(application).Error)
	return application
}

func TestOverviewCounts(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewStatsService(db)

	ada := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	grace := seedEmployee(t, db, "Grace", "grace@corp.test", "EMP-2")

	open, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)
	closed, err := projects.CreateProject(services.CreateProjectInput{
		Title:  "Helios Migration",
		Status: models.ProjectClosed,
	}, nil)
	require.NoError(t, err)

	now := time.Now()
	seedApplication(t, db, ada, open, models.ApplicationPending, now)
	seedApplication(t, db, grace, open, models.ApplicationApproved, now)
	seedApplication(t, db, ada, closed, models.ApplicationRejected, now)
	seedApplication(t, db, grace, closed, models.ApplicationDropped, now)

	stats, err := svc.Overview()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.Projects.Total)
	assert.EqualValues(t, 1, stats.Projects.Open)
	assert.EqualValues(t, 1, stats.Projects.Closed)
	assert.EqualValues(t, 4, stats.Applications.Total)
	assert.EqualValues(t, 1, stats.Applications.Pending)
	assert.EqualValues(t, 1, stats.Applications.Approved)
	assert.EqualValues(t, 1, stats.Applications.Rejected)
	assert.EqualValues(t, 1, stats.Applications.Dropped)
}

func TestApplicationStatsGroupsByProject(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewStatsService(db)

	ada := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	grace := seedEmployee(t, db, "Grace", "grace@corp.test", "EMP-2")

	orion, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)
	helios, err := projects.CreateProject(services.CreateProjectInput{Title: "Helios Migration"}, nil)
	require.NoError(t, err)

	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	seedApplication(t, db, ada, orion, models.ApplicationPending, base)
	seedApplication(t, db, grace, orion, models.ApplicationPending, base.Add(time.Hour))
	seedApplication(t, db, ada, helios, models.ApplicationPending, base.Add(2*time.Hour))

	report, err := svc.ApplicationStats()
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalProjects)
	require.Len(t, report.Projects, 2)

	byTitle := make(map[string]services.ProjectApplicationGroup, len(report.Projects))
	for _, group := range report.Projects {
		byTitle[group.Title] = group
	}

	orionGroup, ok := byTitle["Orion Platform"]
	require.True(t, ok)
	assert.Equal(t, 2, orionGroup.Count)
	require.Len(t, orionGroup.Applications, 2)
	// Newest application first, matching the underlying listing order.
	assert.Equal(t, "Grace", orionGroup.Applications[0].EmployeeName)
	assert.Equal(t, "EMP-2", orionGroup.Applications[0].EmployeeCode)
	assert.Equal(t, "Ada", orionGroup.Applications[1].EmployeeName)

	heliosGroup, ok := byTitle["Helios Migration"]
	require.True(t, ok)
	assert.Equal(t, 1, heliosGroup.Count)
}

func TestApplicationsByDateBuckets(t *testing.T) {
	db := newTestDB(t)
	projects := services.NewProjectService(db)
	svc := services.NewStatsService(db)

	ada := seedEmployee(t, db, "Ada", "ada@corp.test", "EMP-1")
	project, err := projects.CreateProject(services.CreateProjectInput{Title: "Orion Platform"}, nil)
	require.NoError(t, err)

	seedApplication(t, db, ada, project, models.ApplicationPending,
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	seedApplication(t, db, ada, project, models.ApplicationApproved,
		time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))
	// Late on the final day: the range end is inclusive.
	seedApplication(t, db, ada, project, models.ApplicationPending,
		time.Date(2026, 3, 4, 23, 30, 0, 0, time.UTC))
	// Outside the range entirely.
	seedApplication(t, db, ada, project, models.ApplicationPending,
		time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC))

	buckets, err := svc.ApplicationsByDate("2026-03-02", "2026-03-04")
	require.NoError(t, err)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-03-02", buckets[0].Date)
	assert.Equal(t, 2, buckets[0].Total)
	assert.Equal(t, 1, buckets[0].Counts["pending"])
	assert.Equal(t, 1, buckets[0].Counts["approved"])

	assert.Equal(t, "2026-03-04", buckets[1].Date)
	assert.Equal(t, 1, buckets[1].Total)
	assert.Equal(t, 1, buckets[1].Counts["pending"])
}

func TestApplicationsByDateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewStatsService(db)

	_, err := svc.ApplicationsByDate("", "2026-03-04")
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.ApplicationsByDate("2026-03-02", "")
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.ApplicationsByDate("02-03-2026", "2026-03-04")
	require.ErrorIs(t, err, services.ErrValidation)
}
