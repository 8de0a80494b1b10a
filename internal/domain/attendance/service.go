package attendance

import "context"

// AttendanceService defines the attendance operations exposed to handlers.
type AttendanceService interface {
	Summarizer

	ListLogs(ctx context.Context, query PeriodQuery) ([]LogResponse, error)
}
