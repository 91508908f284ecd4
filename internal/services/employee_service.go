package services

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/repository"
)

// EmployeeService owns employee records: onboarding, profile reads and
// updates, professional details and headcount aggregates.
type EmployeeService struct {
	db *gorm.DB
}

// NewEmployeeService creates a new EmployeeService on the given database.
func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// CreateEmployeeInput carries the fields accepted when onboarding an employee.
type CreateEmployeeInput struct {
	Name         string
	Email        string
	Password     string
	EmployeeCode string
	Role         models.Role
	Team         models.Team
	Gender       models.Gender
	IsAdmin      bool
}

// CreateEmployee onboards a new employee with a hashed credential. New
// employees start on the bench.
func (s *EmployeeService) CreateEmployee(in CreateEmployeeInput) (*models.Employee, error) {
	if in.Name == "" || in.Email == "" || in.EmployeeCode == "" {
		return nil, validationErr("name, email and employee id are required")
	}
	if in.Password == "" {
		return nil, validationErr("password is required")
	}
	if in.Role != "" && !in.Role.Valid() {
		return nil, validationErr("unknown role %q", in.Role)
	}
	if in.Team != "" && !in.Team.Valid() {
		return nil, validationErr("unknown team %q", in.Team)
	}
	if in.Gender != "" && !in.Gender.Valid() {
		return nil, validationErr("unknown gender %q", in.Gender)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	employee := &models.Employee{
		Name:         in.Name,
		Email:        in.Email,
		Password:     string(hash),
		EmployeeCode: in.EmployeeCode,
		Role:         in.Role,
		Team:         in.Team,
		Gender:       in.Gender,
		IsAdmin:      in.IsAdmin,
		IsOnBench:    true,
	}
	if err := repository.NewEmployeeRepository(s.db).CreateEmployee(employee); err != nil {
		return nil, errors.Wrap(err, "failed to create employee")
	}
	return employee, nil
}

// GetEmployee returns an employee with their current project resolved.
func (s *EmployeeService) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	employee, err := repository.NewEmployeeRepository(s.db).GetEmployeeWithProject(id)
	if err != nil {
		return nil, orNotFound(err, "employee not found")
	}
	return employee, nil
}

// ListEmployees returns all employees, newest first.
func (s *EmployeeService) ListEmployees() ([]models.Employee, error) {
	return repository.NewEmployeeRepository(s.db).ListEmployees()
}

// ListSupportEmployees returns all employees holding the Support role.
func (s *EmployeeService) ListSupportEmployees() ([]models.Employee, error) {
	return repository.NewEmployeeRepository(s.db).ListEmployeesByRole(models.RoleSupport)
}

// UpdateProfileInput carries the profile fields an employee (or admin) may
// change; nil fields are left untouched.
type UpdateProfileInput struct {
	Name         *string
	Role         *models.Role
	Team         *models.Team
	Gender       *models.Gender
	Status       *models.EmploymentStatus
	BloodGroup   *string
	ProfileImage *string
	IsAvailable  *bool
}

// UpdateProfile applies profile field updates to an employee.
func (s *EmployeeService) UpdateProfile(id uuid.UUID, in UpdateProfileInput) (*models.Employee, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, validationErr("unknown role %q", *in.Role)
	}
	if in.Team != nil && !in.Team.Valid() {
		return nil, validationErr("unknown team %q", *in.Team)
	}
	if in.Gender != nil && !in.Gender.Valid() {
		return nil, validationErr("unknown gender %q", *in.Gender)
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, validationErr("unknown status %q", *in.Status)
	}

	employees := repository.NewEmployeeRepository(s.db)
	employee, err := employees.GetEmployee(id)
	if err != nil {
		return nil, orNotFound(err, "employee not found")
	}

	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Role != nil {
		employee.Role = *in.Role
	}
	if in.Team != nil {
		employee.Team = *in.Team
	}
	if in.Gender != nil {
		employee.Gender = *in.Gender
	}
	if in.Status != nil {
		employee.Status = *in.Status
	}
	if in.BloodGroup != nil {
		employee.BloodGroup = *in.BloodGroup
	}
	if in.ProfileImage != nil {
		employee.ProfileImage = *in.ProfileImage
	}
	if in.IsAvailable != nil {
		employee.IsAvailable = *in.IsAvailable
	}

	if err := employees.UpdateEmployee(employee); err != nil {
		return nil, errors.Wrap(err, "failed to update employee")
	}
	return employee, nil
}

// ProfessionalDetailsInput carries the career-history fields; nil collections
// are left untouched, non-nil ones replace the stored records wholesale.
type ProfessionalDetailsInput struct {
	Skills            []models.Skill
	Experience        *string
	PreviousCompanies []models.PreviousCompany
	PreviousProjects  []models.PreviousProject
	Certifications    []models.Certification
	BloodGroup        *string
}

// UpdateProfessionalDetails replaces the provided career-history collections
// on an employee.
func (s *EmployeeService) UpdateProfessionalDetails(id uuid.UUID, in ProfessionalDetailsInput) (*models.Employee, error) {
	employees := repository.NewEmployeeRepository(s.db)
	employee, err := employees.GetEmployee(id)
	if err != nil {
		return nil, orNotFound(err, "employee not found")
	}

	if in.Skills != nil {
		employee.Skills = in.Skills
	}
	if in.Experience != nil {
		employee.Experience = *in.Experience
	}
	if in.PreviousCompanies != nil {
		employee.PreviousCompanies = in.PreviousCompanies
	}
	if in.PreviousProjects != nil {
		employee.PreviousProjects = in.PreviousProjects
	}
	if in.Certifications != nil {
		employee.Certifications = in.Certifications
	}
	if in.BloodGroup != nil {
		employee.BloodGroup = *in.BloodGroup
	}

	if err := employees.UpdateEmployee(employee); err != nil {
		return nil, errors.Wrap(err, "failed to update professional details")
	}
	return employee, nil
}

// DeleteEmployee removes an employee record.
func (s *EmployeeService) DeleteEmployee(id uuid.UUID) error {
	employees := repository.NewEmployeeRepository(s.db)
	if _, err := employees.GetEmployee(id); err != nil {
		return orNotFound(err, "employee not found")
	}
	return errors.Wrap(employees.DeleteEmployee(id), "failed to delete employee")
}

// EmployeeCounts is the headcount aggregate: total plus role- and team-wise buckets.
type EmployeeCounts struct {
	Total    int64            `json:"total"`
	RoleWise map[string]int64 `json:"role_wise"`
	TeamWise map[string]int64 `json:"team_wise"`
}

// Counts returns the total employee count plus role-wise and team-wise buckets.
func (s *EmployeeService) Counts() (*EmployeeCounts, error) {
	employees := repository.NewEmployeeRepository(s.db)
	total, err := employees.CountEmployees()
	if err != nil {
		return nil, err
	}
	roleRows, err := employees.CountEmployeesGroupedBy("role")
	if err != nil {
		return nil, err
	}
	teamRows, err := employees.CountEmployeesGroupedBy("team")
	if err != nil {
		return nil, err
	}

	counts := &EmployeeCounts{
		Total:    total,
		RoleWise: make(map[string]int64, len(roleRows)),
		TeamWise: make(map[string]int64, len(teamRows)),
	}
	for _, row := range roleRows {
		counts.RoleWise[row.Key] = row.Count
	}
	for _, row := range teamRows {
		counts.TeamWise[row.Key] = row.Count
	}
	return counts, nil
}
