package employee

import (
	"time"
)

type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FirstName    string
	LastName     *string
	Email        *string
	MobileNumber string
	Department   *string
	Designation  *string
	JoiningDate  *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	if e.LastName == nil || *e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + *e.LastName
}
