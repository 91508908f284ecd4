package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies an employee's position in the company.
type Role string

const (
	RoleCEO                Role = "CEO"
	RoleCTO                Role = "CTO"
	RoleCFO                Role = "CFO"
	RoleCMO                Role = "CMO"
	RoleCOO                Role = "COO"
	RoleCHRO               Role = "CHRO"
	RoleHR                 Role = "HR"
	RoleSeniorManager      Role = "Senior Manager"
	RoleManager            Role = "Manager"
	RoleDeveloper          Role = "Developer"
	RoleDevOps             Role = "DevOps"
	RoleBDE                Role = "BDE"
	RoleSupport            Role = "Support"
	RoleUIUX               Role = "UI/UX"
	RoleTesting            Role = "Testing"
	RoleTechnicalTeamLead  Role = "Technical Team lead"
	RoleOperationsTeamLead Role = "Operations Team lead"
	RoleMarketingTeamLead  Role = "Marketing Team lead"
	RoleOther              Role = "Other"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCEO, RoleCTO, RoleCFO, RoleCMO, RoleCOO, RoleCHRO, RoleHR,
		RoleSeniorManager, RoleManager, RoleDeveloper, RoleDevOps, RoleBDE,
		RoleSupport, RoleUIUX, RoleTesting, RoleTechnicalTeamLead,
		RoleOperationsTeamLead, RoleMarketingTeamLead, RoleOther:
		return true
	}
	return false
}

// Team classifies the department an employee belongs to.
type Team string

const (
	TeamExecutive  Team = "Executive"
	TeamOperations Team = "Operations"
	TeamTechnical  Team = "Technical"
	TeamFinance    Team = "Finance"
	TeamMarketing  Team = "Marketing"
	TeamOther      Team = "Other"
)

// Valid reports whether t is one of the known teams.
func (t Team) Valid() bool {
	switch t {
	case TeamExecutive, TeamOperations, TeamTechnical, TeamFinance, TeamMarketing, TeamOther:
		return true
	}
	return false
}

// Gender of an employee.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// EmploymentStatus marks whether an employee is active in the company.
type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "Active"
	StatusInactive EmploymentStatus = "Inactive"
)

// Valid reports whether s is one of the known statuses.
func (s EmploymentStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Skill is an embedded value record on Employee; it has no identity of its own.
type Skill struct {
	Name       string   `json:"name"`
	Level      string   `json:"level,omitempty"`
	EndorsedBy []string `json:"endorsed_by,omitempty"`
}

// Certification is an embedded value record on Employee.
type Certification struct {
	Name           string     `json:"name"`
	Issuer         string     `json:"issuer,omitempty"`
	IssueDate      *time.Time `json:"issue_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	CertificateURL string     `json:"certificate_url"`
}

// PreviousCompany is an embedded value record on Employee.
type PreviousCompany struct {
	CompanyName      string     `json:"company_name"`
	Role             string     `json:"role"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Duration         string     `json:"duration,omitempty"`
	ReasonForLeaving string     `json:"reason_for_leaving,omitempty"`
	Location         string     `json:"location,omitempty"`
	TechnologiesUsed []string   `json:"technologies_used,omitempty"`
}

// PreviousProject is an embedded value record on Employee.
type PreviousProject struct {
	ProjectName      string     `json:"project_name"`
	Client           string     `json:"client,omitempty"`
	Role             string     `json:"role,omitempty"`
	Description      string     `json:"description,omitempty"`
	TechnologiesUsed []string   `json:"technologies_used,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Duration         string     `json:"duration,omitempty"`
	TeamSize         int        `json:"team_size,omitempty"`
	Responsibilities []string   `json:"responsibilities,omitempty"`
}

// Employee represents an employee record with profile, classification and
// project-mobility state. Bench and team-lead fields are kept consistent with
// Project membership by the project service.
type Employee struct {
	ID           uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string           `json:"name" gorm:"not null"`
	Email        string           `json:"email" gorm:"uniqueIndex;not null"`
	Password     string           `json:"-" gorm:"not null"`
	EmployeeCode string           `json:"employee_id" gorm:"column:employee_code;uniqueIndex;not null"`
	Role         Role             `json:"role" gorm:"default:Other"`
	Team         Team             `json:"team" gorm:"default:Other"`
	Gender       Gender           `json:"gender" gorm:"default:Other"`
	Status       EmploymentStatus `json:"status" gorm:"default:Active"`
	IsAdmin      bool             `json:"is_admin" gorm:"default:false"`
	IsAvailable  bool             `json:"is_available" gorm:"default:true"`
	BloodGroup   string           `json:"blood_group,omitempty"`
	ProfileImage string           `json:"profile_image,omitempty"`
	Experience   string           `json:"experience" gorm:"default:'0 years'"`

	IsOnBench        bool       `json:"is_on_bench" gorm:"default:true"`
	IsTeamLead       bool       `json:"is_team_lead" gorm:"default:false"`
	CurrentProjectID *uuid.UUID `json:"current_project_id,omitempty" gorm:"type:uuid"`
	CurrentProject   *Project   `json:"current_project,omitempty" gorm:"foreignKey:CurrentProjectID"`

	Skills            []Skill           `json:"skills" gorm:"serializer:json"`
	Certifications    []Certification   `json:"certifications" gorm:"serializer:json"`
	PreviousCompanies []PreviousCompany `json:"previous_companies" gorm:"serializer:json"`
	PreviousProjects  []PreviousProject `json:"previous_projects" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns an ID when none is set.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
