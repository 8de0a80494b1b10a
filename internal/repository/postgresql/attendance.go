package postgresql

import (
	"context"
	"fmt"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, check_in, check_out, status, confidence_score, created_at
		FROM attendance_logs
		WHERE employee_id = $1 AND company_id = $2
			AND EXTRACT(MONTH FROM date) = $3
			AND EXTRACT(YEAR FROM date) = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var l attendance.Log
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.Date, &l.CheckIn, &l.CheckOut,
			&l.Status, &l.ConfidenceScore, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (r *attendanceRepository) ListByPeriod(ctx context.Context, companyID string, month, year int, employeeID string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.company_id, a.date, a.check_in, a.check_out,
			a.status, a.confidence_score, a.created_at,
			TRIM(e.first_name || ' ' || COALESCE(e.last_name, '')) AS employee_name,
			e.emp_code
		FROM attendance_logs a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.company_id = $1
			AND EXTRACT(MONTH FROM a.date) = $2
			AND EXTRACT(YEAR FROM a.date) = $3
	`

	args := []interface{}{companyID, month, year}
	if employeeID != "" {
		query += ` AND a.employee_id = $4`
		args = append(args, employeeID)
	}
	query += ` ORDER BY a.date DESC, a.check_in DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var l attendance.Log
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.Date, &l.CheckIn, &l.CheckOut,
			&l.Status, &l.ConfidenceScore, &l.CreatedAt, &l.EmployeeName, &l.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (r *attendanceRepository) CountPresentOnDate(ctx context.Context, companyID string, date string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM attendance_logs
		WHERE company_id = $1 AND date = $2 AND check_in IS NOT NULL
	`

	var count int64
	if err := q.QueryRow(ctx, query, companyID, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present employees: %w", err)
	}

	return count, nil
}

func (r *attendanceRepository) RecentActivity(ctx context.Context, companyID string, limit int) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.company_id, a.date, a.check_in, a.check_out,
			a.status, a.confidence_score, a.created_at,
			TRIM(e.first_name || ' ' || COALESCE(e.last_name, '')) AS employee_name,
			e.emp_code
		FROM attendance_logs a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.company_id = $1 AND a.check_in IS NOT NULL
		ORDER BY a.check_in DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent activity: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var l attendance.Log
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.Date, &l.CheckIn, &l.CheckOut,
			&l.Status, &l.ConfidenceScore, &l.CreatedAt, &l.EmployeeName, &l.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
