package employee

import "context"

// EmployeeRepository is the read-only view of the employee directory the
// payroll engine consumes. All methods include companyID to prevent
// cross-company data access.
type EmployeeRepository interface {
	// GetByID retrieves a single employee with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetActiveByCompanyID retrieves all active employees, the population
	// of a payroll batch run.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// CountByCompanyID counts employees regardless of status.
	CountByCompanyID(ctx context.Context, companyID string) (int64, error)
}
