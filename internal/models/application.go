package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus is the lifecycle state of a project application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
	ApplicationDropped  ApplicationStatus = "dropped"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected, ApplicationDropped:
		return true
	}
	return false
}

// ProjectApplication links an employee to a project they applied for. It is a
// join entity owned by neither side; both links are plain references.
type ProjectApplication struct {
	ID         uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID         `json:"employee_id" gorm:"type:uuid;not null;index"`
	Employee   *Employee         `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	ProjectID  uuid.UUID         `json:"project_id" gorm:"type:uuid;not null;index"`
	Project    *Project          `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Status     ApplicationStatus `json:"status" gorm:"default:pending"`
	AppliedAt  time.Time         `json:"applied_at" gorm:"index"`
}

// BeforeCreate assigns an ID when none is set.
func (a *ProjectApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
