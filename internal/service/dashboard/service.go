package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/dashboard"
	"github.com/facehr/facehr-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
)

const recentActivityLimit = 5

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Stats compiles the console landing-page numbers. Absent is simply total
// minus present; leave handling lives outside the engine.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return dashboard.StatsResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	total, err := s.employeeRepo.CountByCompanyID(ctx, companyID)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	present, err := s.attendanceRepo.CountPresentOnDate(ctx, companyID, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count present employees: %w", err)
	}

	logs, err := s.attendanceRepo.RecentActivity(ctx, companyID, recentActivityLimit)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to fetch recent activity: %w", err)
	}

	activity := make([]dashboard.ActivityEntry, 0, len(logs))
	for _, log := range logs {
		entry := dashboard.ActivityEntry{Status: string(log.Status), Time: "--:--"}
		if log.EmployeeName != nil {
			entry.EmployeeName = *log.EmployeeName
		}
		if log.CheckIn != nil {
			entry.Time = log.CheckIn.Format("03:04 PM")
		}
		activity = append(activity, entry)
	}

	absent := total - present
	if absent < 0 {
		absent = 0
	}

	return dashboard.StatsResponse{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
		RecentActivity: activity,
	}, nil
}
