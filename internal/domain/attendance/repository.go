package attendance

import "context"

// AttendanceRepository defines read access to attendance logs. The engine
// never writes logs; the capture terminal owns them.
type AttendanceRepository interface {
	// ListByEmployeePeriod retrieves every log for one employee within a
	// calendar month, ordered by date.
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) ([]Log, error)

	// ListByPeriod retrieves logs for a whole company within a calendar
	// month, optionally filtered to one employee. Employee name and code
	// are joined in for display.
	ListByPeriod(ctx context.Context, companyID string, month, year int, employeeID string) ([]Log, error)

	// CountPresentOnDate counts distinct employees with a check-in on the
	// given local date.
	CountPresentOnDate(ctx context.Context, companyID string, date string) (int64, error)

	// RecentActivity returns the latest check-ins with employee names, for
	// the dashboard widget.
	RecentActivity(ctx context.Context, companyID string, limit int) ([]Log, error)
}

// Summarizer reduces an employee's logs for a period into a PeriodSummary.
// Implemented by the attendance service; consumed by the payroll runner.
type Summarizer interface {
	Summarize(ctx context.Context, employeeID string, month, year int, companyID string) (PeriodSummary, error)
}
