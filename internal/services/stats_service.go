package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/repository"
)

// StatsService is the read-only aggregation layer over projects and
// applications. Nothing here mutates state and nothing is cached; every call
// recomputes from the store.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsService on the given database.
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// ProjectCounts summarizes projects by status.
type ProjectCounts struct {
	Total  int64 `json:"total"`
	Open   int64 `json:"open"`
	Closed int64 `json:"closed"`
}

// ApplicationCounts summarizes applications by status.
type ApplicationCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Dropped  int64 `json:"dropped"`
}

// OverviewStats is the dashboard headline block.
type OverviewStats struct {
	Projects     ProjectCounts     `json:"projects"`
	Applications ApplicationCounts `json:"applications"`
}

// Overview returns project and application counts by status.
func (s *StatsService) Overview() (*OverviewStats, error) {
	projects := repository.NewProjectRepository(s.db)
	applications := repository.NewApplicationRepository(s.db)

	var stats OverviewStats
	var err error
	if stats.Projects.Total, err = projects.CountProjects(); err != nil {
		return nil, err
	}
	if stats.Projects.Open, err = projects.CountProjectsByStatus(models.ProjectOpen); err != nil {
		return nil, err
	}
	if stats.Projects.Closed, err = projects.CountProjectsByStatus(models.ProjectClosed); err != nil {
		return nil, err
	}
	if stats.Applications.Total, err = applications.CountApplications(); err != nil {
		return nil, err
	}
	if stats.Applications.Pending, err = applications.CountApplicationsByStatus(models.ApplicationPending); err != nil {
		return nil, err
	}
	if stats.Applications.Approved, err = applications.CountApplicationsByStatus(models.ApplicationApproved); err != nil {
		return nil, err
	}
	if stats.Applications.Rejected, err = applications.CountApplicationsByStatus(models.ApplicationRejected); err != nil {
		return nil, err
	}
	if stats.Applications.Dropped, err = applications.CountApplicationsByStatus(models.ApplicationDropped); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ApplicantEntry is one application row inside a per-project group.
type ApplicantEntry struct {
	EmployeeName string    `json:"employee_name"`
	EmployeeCode string    `json:"employee_id"`
	AppliedAt    time.Time `json:"applied_at"`
}

// ProjectApplicationGroup collects all applications for one project.
type ProjectApplicationGroup struct {
	ProjectID    *uuid.UUID       `json:"project,omitempty"`
	Title        string           `json:"title"`
	Count        int              `json:"count"`
	Applications []ApplicantEntry `json:"applications"`
}

// ApplicationStatsReport groups every application by project.
type ApplicationStatsReport struct {
	TotalProjects int                       `json:"total_projects"`
	Projects      []ProjectApplicationGroup `json:"projects"`
}

// ApplicationStats groups all applications by project, with employee display
// fields nested per application. Projects appear in order of their first
// application.
func (s *StatsService) ApplicationStats() (*ApplicationStatsReport, error) {
	applications, err := repository.NewApplicationRepository(s.db).ListApplications()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]ProjectApplicationGroup, 0)
	for _, app := range applications {
		title := "Unknown"
		var projectID *uuid.UUID
		if app.Project != nil {
			title = app.Project.Title
			id := app.Project.ID
			projectID = &id
		}
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, ProjectApplicationGroup{ProjectID: projectID, Title: title})
		}
		entry := ApplicantEntry{EmployeeName: "Unknown", EmployeeCode: "N/A", AppliedAt: app.AppliedAt}
		if app.Employee != nil {
			entry.EmployeeName = app.Employee.Name
			entry.EmployeeCode = app.Employee.EmployeeCode
		}
		groups[i].Count++
		groups[i].Applications = append(groups[i].Applications, entry)
	}

	return &ApplicationStatsReport{TotalProjects: len(groups), Projects: groups}, nil
}

// DatewiseBucket is the per-day aggregation of applications by status.
type DatewiseBucket struct {
	Date   string         `json:"date"`
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// ApplicationsByDate groups applications by calendar day and status within
// the inclusive [startDate, endDate] range (both YYYY-MM-DD, end of day
// included). Buckets come back sorted by date.
func (s *StatsService) ApplicationsByDate(startDate, endDate string) ([]DatewiseBucket, error) {
	if startDate == "" || endDate == "" {
		return nil, validationErr("startDate and endDate are required in YYYY-MM-DD format")
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, validationErr("invalid startDate %q", startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, validationErr("invalid endDate %q", endDate)
	}
	endOfDay := end.Add(24*time.Hour - time.Nanosecond)

	applications, err := repository.NewApplicationRepository(s.db).ListApplicationsBetween(start, endOfDay)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*DatewiseBucket)
	for _, app := range applications {
		date := app.AppliedAt.Format("2006-01-02")
		bucket, ok := byDate[date]
		if !ok {
			bucket = &DatewiseBucket{Date: date, Counts: make(map[string]int)}
			byDate[date] = bucket
		}
		bucket.Total++
		bucket.Counts[string(app.Status)]++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	buckets := make([]DatewiseBucket, 0, len(dates))
	for _, date := range dates {
		buckets = append(buckets, *byDate[date])
	}
	return buckets, nil
}
