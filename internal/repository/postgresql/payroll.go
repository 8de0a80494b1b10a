package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/facehr/facehr-backend-go/internal/domain/payroll"
	"github.com/facehr/facehr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// payrollLedger persists computed payroll records. The earnings, deductions,
// rate and attendance snapshots are stored as jsonb; the columns the period
// summary aggregates over are kept relational.
type payrollLedger struct {
	db *database.DB
}

func NewPayrollLedger(db *database.DB) payroll.PayrollLedger {
	return &payrollLedger{db: db}
}

func (r *payrollLedger) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	earningsJSON, _ := json.Marshal(record.Earnings)
	deductionsJSON, _ := json.Marshal(record.Deductions)
	ratesJSON, _ := json.Marshal(record.Rates)
	attendanceJSON, _ := json.Marshal(record.Attendance)
	warningsJSON, _ := json.Marshal(record.Warnings)

	// The upsert is atomic per (employee, month, year): concurrent writes
	// for the same key serialize on the unique index, never interleave.
	query := `
		INSERT INTO payroll_records (
			id, employee_id, company_id, period_month, period_year,
			earnings, deductions, gross_salary, net_salary, ctc,
			pf_deduction, esi_deduction, rates, attendance, warnings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			earnings = EXCLUDED.earnings,
			deductions = EXCLUDED.deductions,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			ctc = EXCLUDED.ctc,
			pf_deduction = EXCLUDED.pf_deduction,
			esi_deduction = EXCLUDED.esi_deduction,
			rates = EXCLUDED.rates,
			attendance = EXCLUDED.attendance,
			warnings = EXCLUDED.warnings,
			updated_at = NOW()
		RETURNING id, employee_id, company_id, period_month, period_year,
			earnings, deductions, net_salary, ctc, rates, attendance, warnings,
			created_at, updated_at
	`

	return r.scanRecord(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.CompanyID, record.PeriodMonth, record.PeriodYear,
		earningsJSON, deductionsJSON, record.Earnings.GrossSalary, record.NetSalary, record.CTC,
		record.Deductions.PF, record.Deductions.ESI, ratesJSON, attendanceJSON, warningsJSON,
	), "failed to upsert payroll record")
}

func (r *payrollLedger) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, period_month, period_year,
			earnings, deductions, net_salary, ctc, rates, attendance, warnings,
			created_at, updated_at
		FROM payroll_records
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3 AND company_id = $4
	`

	record, err := r.scanRecord(q.QueryRow(ctx, query, employeeID, month, year, companyID), "failed to get payroll record")
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return record, nil
}

func (r *payrollLedger) ListByPeriod(ctx context.Context, companyID string, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.company_id, p.period_month, p.period_year,
			p.earnings, p.deductions, p.net_salary, p.ctc, p.rates, p.attendance, p.warnings,
			p.created_at, p.updated_at,
			TRIM(e.first_name || ' ' || COALESCE(e.last_name, '')) AS employee_name,
			e.emp_code
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.company_id = $1 AND p.period_month = $2 AND p.period_year = $3
		ORDER BY e.emp_code
	`

	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		var earningsBytes, deductionsBytes, ratesBytes, attendanceBytes, warningsBytes []byte
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodMonth, &rec.PeriodYear,
			&earningsBytes, &deductionsBytes, &rec.NetSalary, &rec.CTC,
			&ratesBytes, &attendanceBytes, &warningsBytes,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		unmarshalRecord(&rec, earningsBytes, deductionsBytes, ratesBytes, attendanceBytes, warningsBytes)
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollLedger) PeriodSummary(ctx context.Context, companyID string, month, year int) (payroll.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS employee_count,
			COALESCE(SUM(gross_salary), 0) AS total_gross,
			COALESCE(SUM(net_salary), 0) AS total_net,
			COALESCE(SUM(pf_deduction), 0) AS total_pf,
			COALESCE(SUM(esi_deduction), 0) AS total_esi
		FROM payroll_records
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	var summary payroll.PeriodSummary
	err := q.QueryRow(ctx, query, companyID, month, year).Scan(
		&summary.EmployeeCount, &summary.TotalGross, &summary.TotalNet,
		&summary.TotalPF, &summary.TotalESI,
	)
	if err != nil {
		return payroll.PeriodSummary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	summary.PeriodMonth = month
	summary.PeriodYear = year

	return summary, nil
}

func (r *payrollLedger) scanRecord(row pgx.Row, errPrefix string) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var earningsBytes, deductionsBytes, ratesBytes, attendanceBytes, warningsBytes []byte
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodMonth, &rec.PeriodYear,
		&earningsBytes, &deductionsBytes, &rec.NetSalary, &rec.CTC,
		&ratesBytes, &attendanceBytes, &warningsBytes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("%s: %w", errPrefix, err)
	}
	unmarshalRecord(&rec, earningsBytes, deductionsBytes, ratesBytes, attendanceBytes, warningsBytes)
	return rec, nil
}

func unmarshalRecord(rec *payroll.PayrollRecord, earnings, deductions, rates, attendance, warnings []byte) {
	_ = json.Unmarshal(earnings, &rec.Earnings)
	_ = json.Unmarshal(deductions, &rec.Deductions)
	_ = json.Unmarshal(rates, &rec.Rates)
	_ = json.Unmarshal(attendance, &rec.Attendance)
	_ = json.Unmarshal(warnings, &rec.Warnings)
}
