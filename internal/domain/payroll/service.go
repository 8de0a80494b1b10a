package payroll

import "context"

// PayrollService defines the payroll engine operations exposed to handlers.
type PayrollService interface {
	// Salary structures
	GetStructure(ctx context.Context, employeeID string) (SalaryStructureResponse, error)
	UpsertStructure(ctx context.Context, employeeID string, req UpsertSalaryStructureRequest) (SalaryStructureResponse, error)

	// Generation
	GenerateOne(ctx context.Context, employeeID string, month, year int) (PayrollRecordResponse, error)
	GenerateAll(ctx context.Context, req GeneratePayrollRequest) (BatchResult, error)
	Preview(ctx context.Context, employeeID string, month, year int) (PayrollRecordResponse, error)
	PreviewDemo(ctx context.Context, req PreviewDemoRequest) (PayrollRecordResponse, error)

	// Ledger reads
	GetRecord(ctx context.Context, employeeID string, month, year int) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, month, year int) ([]PayrollRecordResponse, error)
	PeriodSummary(ctx context.Context, month, year int) (PeriodSummary, error)
}
