package payroll

import "context"

// SalaryStructureRepository defines access to per-employee compensation
// configuration. All methods include companyID to prevent cross-company
// data access.
type SalaryStructureRepository interface {
	// GetByEmployeeID retrieves the effective structure for an employee.
	// Absence is an expected condition and maps to
	// ErrSalaryStructureNotFound.
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (SalaryStructure, error)

	// Upsert creates or replaces the structure for its employee.
	Upsert(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
}

// PayrollLedger owns computed payroll records. The upsert is atomic per
// (employee, month, year) key; downstream consumers only ever read.
type PayrollLedger interface {
	// Upsert writes a record, replacing any previous record for the same
	// key. Re-running a generation with unchanged inputs leaves exactly
	// one record, field-for-field identical.
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// GetByEmployeePeriod fetches one record by its natural key.
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) (PayrollRecord, error)

	// ListByPeriod fetches every record for a period with employee names
	// joined in.
	ListByPeriod(ctx context.Context, companyID string, month, year int) ([]PayrollRecord, error)

	// PeriodSummary recomputes the period aggregate from stored records.
	PeriodSummary(ctx context.Context, companyID string, month, year int) (PeriodSummary, error)
}
