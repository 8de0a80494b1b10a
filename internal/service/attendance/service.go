package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/calendar"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    calendar.HolidayRepository
	shiftHours     int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo calendar.HolidayRepository,
	shiftHours int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		shiftHours:     shiftHours,
	}
}

// Summarize implements attendance.Summarizer: it loads the employee's logs
// and the holiday calendar for the period and aggregates them.
func (s *AttendanceServiceImpl) Summarize(ctx context.Context, employeeID string, month, year int, companyID string) (attendance.PeriodSummary, error) {
	logs, err := s.attendanceRepo.ListByEmployeePeriod(ctx, employeeID, month, year, companyID)
	if err != nil {
		return attendance.PeriodSummary{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	holidays, err := s.holidayRepo.ListByPeriod(ctx, companyID, month, year)
	if err != nil {
		return attendance.PeriodSummary{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	return Aggregate(employeeID, month, year, logs, calendar.New(holidays), s.shiftHours), nil
}

// ListLogs returns the raw attendance rows for a period, for the console's
// attendance table. The engine never writes these rows.
func (s *AttendanceServiceImpl) ListLogs(ctx context.Context, query attendance.PeriodQuery) ([]attendance.LogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.attendanceRepo.ListByPeriod(ctx, companyID, query.Month, query.Year, query.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	result := make([]attendance.LogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, mapToLogResponse(log))
	}
	return result, nil
}

func companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

func mapToLogResponse(log attendance.Log) attendance.LogResponse {
	resp := attendance.LogResponse{
		ID:              log.ID,
		EmployeeID:      log.EmployeeID,
		Date:            log.Date.Format("2006-01-02"),
		CheckIn:         timePtrToString(log.CheckIn),
		CheckOut:        timePtrToString(log.CheckOut),
		Status:          string(log.Status),
		ConfidenceScore: log.ConfidenceScore,
	}
	if log.EmployeeName != nil {
		resp.EmployeeName = *log.EmployeeName
	}
	if log.EmployeeCode != nil {
		resp.EmployeeCode = *log.EmployeeCode
	}
	return resp
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}
