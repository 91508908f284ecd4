package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus marks whether a project still accepts applications.
type ProjectStatus string

const (
	ProjectOpen   ProjectStatus = "open"
	ProjectClosed ProjectStatus = "closed"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	return s == ProjectOpen || s == ProjectClosed
}

// Project represents a staffable project. TeamLead and AssignedEmployees are
// references resolved via Preload at read time; the employees' bench and lead
// fields are kept aligned with these references by the project service.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectCode string    `json:"project_id" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`

	TeamLeadID        *uuid.UUID `json:"team_lead_id,omitempty" gorm:"type:uuid"`
	TeamLead          *Employee  `json:"team_lead,omitempty" gorm:"foreignKey:TeamLeadID"`
	AssignedEmployees []Employee `json:"assigned_employees" gorm:"many2many:project_assignments"`

	TeamSizeLimit int           `json:"team_size_limit" gorm:"default:1"`
	Vacancy       int           `json:"vacancy"`
	Status        ProjectStatus `json:"status" gorm:"default:open"`

	CreatedByID *uuid.UUID `json:"created_by_id,omitempty" gorm:"type:uuid"`
	CreatedBy   *Employee  `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns an ID when none is set.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
