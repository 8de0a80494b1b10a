package payroll

import (
	"context"
	"fmt"
	"sync"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/employee"
	"github.com/facehr/facehr-backend-go/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	structureRepo payroll.SalaryStructureRepository
	ledger        payroll.PayrollLedger
	employeeRepo  employee.EmployeeRepository
	summarizer    attendance.Summarizer
	shiftHours    int
	workers       int
}

func NewPayrollService(
	structureRepo payroll.SalaryStructureRepository,
	ledger payroll.PayrollLedger,
	employeeRepo employee.EmployeeRepository,
	summarizer attendance.Summarizer,
	shiftHours int,
	workers int,
) payroll.PayrollService {
	if workers < 1 {
		workers = 1
	}
	return &PayrollServiceImpl{
		structureRepo: structureRepo,
		ledger:        ledger,
		employeeRepo:  employeeRepo,
		summarizer:    summarizer,
		shiftHours:    shiftHours,
		workers:       workers,
	}
}

// Helper to get company_id from JWT context
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

// ========== SALARY STRUCTURE ==========

func (s *PayrollServiceImpl) GetStructure(ctx context.Context, employeeID string) (payroll.SalaryStructureResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	structure, err := s.structureRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	return mapToStructureResponse(structure), nil
}

func (s *PayrollServiceImpl) UpsertStructure(ctx context.Context, employeeID string, req payroll.UpsertSalaryStructureRequest) (payroll.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	// The employee must exist in this company before configuring pay.
	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	structure := payroll.SalaryStructure{
		EmployeeID:          employeeID,
		CompanyID:           companyID,
		BasicSalary:         req.BasicSalary,
		HRA:                 req.HRA,
		ConveyanceAllowance: req.ConveyanceAllowance,
		MedicalAllowance:    req.MedicalAllowance,
		SpecialAllowance:    req.SpecialAllowance,
		EducationAllowance:  req.EducationAllowance,
		OtherAllowance:      req.OtherAllowance,
		Bonus:               req.Bonus,
		Incentive:           req.Incentive,
		PFEmployee:          req.PFEmployee,
		PFEmployer:          req.PFEmployer,
		ESIEmployee:         req.ESIEmployee,
		ESIEmployer:         req.ESIEmployer,
		ProfessionalTax:     req.ProfessionalTax,
		TDS:                 req.TDS,
		IsPFApplicable:      req.IsPFApplicable,
		IsESIApplicable:     req.IsESIApplicable,
		IsHourlyBased:       req.IsHourlyBased,
		HourlyRate:          req.HourlyRate,
		ContractRatePerDay:  req.ContractRatePerDay,
		OTRateMultiplier:    multiplierOrDefault(req.OTRateMultiplier, "1.5"),
		OTWeekendMultiplier: multiplierOrDefault(req.OTWeekendMultiplier, "2"),
		OTHolidayMultiplier: multiplierOrDefault(req.OTHolidayMultiplier, "2.5"),
	}

	saved, err := s.structureRepo.Upsert(ctx, structure)
	if err != nil {
		return payroll.SalaryStructureResponse{}, fmt.Errorf("failed to upsert salary structure: %w", err)
	}

	return mapToStructureResponse(saved), nil
}

func multiplierOrDefault(m *decimal.Decimal, def string) decimal.Decimal {
	if m != nil {
		return *m
	}
	return decimal.RequireFromString(def)
}

// ========== GENERATION ==========

// GenerateOne computes and persists the payroll record for one employee and
// period. Re-running with unchanged inputs overwrites the stored record with
// an identical one.
func (s *PayrollServiceImpl) GenerateOne(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecordResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.generateForEmployee(ctx, companyID, employeeID, month, year, true)
}

// Preview runs the same calculation path as GenerateOne but never writes to
// the ledger. Used by approve-and-save workflows.
func (s *PayrollServiceImpl) Preview(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecordResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.generateForEmployee(ctx, companyID, employeeID, month, year, false)
}

func (s *PayrollServiceImpl) generateForEmployee(ctx context.Context, companyID, employeeID string, month, year int, persist bool) (payroll.PayrollRecordResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	structure, err := s.structureRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	summary, err := s.summarizer.Summarize(ctx, employeeID, month, year, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	record := Calculate(structure, summary, s.shiftHours)

	if persist {
		record.ID = uuid.NewString()
		saved, err := s.ledger.Upsert(ctx, record)
		if err != nil {
			return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to write payroll record: %w", err)
		}
		record = saved
	}

	name := emp.FullName()
	code := emp.EmployeeCode
	record.EmployeeName = &name
	record.EmployeeCode = &code

	return mapToRecordResponse(record), nil
}

// GenerateAll runs GenerateOne over every active employee. Calculations fan
// out over a bounded worker pool; a single employee's failure is collected
// into the result instead of aborting the batch. Cancellation stops the fan
// out but already-written records stay valid.
func (s *PayrollServiceImpl) GenerateAll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.BatchResult{}, fmt.Errorf("failed to get employees: %w", err)
	}

	var (
		mu      sync.Mutex
		records []payroll.PayrollRecordResponse
		failed  = make(map[string]string)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, emp := range employees {
		emp := emp
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			record, err := s.generateForEmployee(gctx, companyID, emp.ID, req.Month, req.Year, true)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// Isolated per-employee failure; the batch continues.
				failed[emp.ID] = err.Error()
				return nil
			}
			records = append(records, record)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payroll.BatchResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return payroll.BatchResult{}, err
	}

	result := payroll.BatchResult{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		Generated:   len(records),
		Failed:      len(failed),
		Records:     records,
	}
	if len(failed) > 0 {
		result.Errors = failed
	}
	return result, nil
}

// PreviewDemo calculates from an inline structure and attendance summary
// without touching storage at all.
func (s *PayrollServiceImpl) PreviewDemo(ctx context.Context, req payroll.PreviewDemoRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	structure := payroll.SalaryStructure{
		BasicSalary:         req.Structure.BasicSalary,
		HRA:                 req.Structure.HRA,
		ConveyanceAllowance: req.Structure.ConveyanceAllowance,
		MedicalAllowance:    req.Structure.MedicalAllowance,
		SpecialAllowance:    req.Structure.SpecialAllowance,
		EducationAllowance:  req.Structure.EducationAllowance,
		OtherAllowance:      req.Structure.OtherAllowance,
		Bonus:               req.Structure.Bonus,
		Incentive:           req.Structure.Incentive,
		PFEmployee:          req.Structure.PFEmployee,
		PFEmployer:          req.Structure.PFEmployer,
		ESIEmployee:         req.Structure.ESIEmployee,
		ESIEmployer:         req.Structure.ESIEmployer,
		ProfessionalTax:     req.Structure.ProfessionalTax,
		TDS:                 req.Structure.TDS,
		IsPFApplicable:      req.Structure.IsPFApplicable,
		IsESIApplicable:     req.Structure.IsESIApplicable,
		IsHourlyBased:       req.Structure.IsHourlyBased,
		HourlyRate:          req.Structure.HourlyRate,
		ContractRatePerDay:  req.Structure.ContractRatePerDay,
		OTRateMultiplier:    multiplierOrDefault(req.Structure.OTRateMultiplier, "1.5"),
		OTWeekendMultiplier: multiplierOrDefault(req.Structure.OTWeekendMultiplier, "2"),
		OTHolidayMultiplier: multiplierOrDefault(req.Structure.OTHolidayMultiplier, "2.5"),
	}

	return mapToRecordResponse(Calculate(structure, req.Attendance, s.shiftHours)), nil
}

// ========== READS ==========

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecordResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.ledger.GetByEmployeePeriod(ctx, employeeID, month, year, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, month, year int) ([]payroll.PayrollRecordResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.ledger.ListByPeriod(ctx, companyID, month, year)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, nil
}

// PeriodSummary is recomputed from stored records on every request; it is
// never cached independently of the ledger.
func (s *PayrollServiceImpl) PeriodSummary(ctx context.Context, month, year int) (payroll.PeriodSummary, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return payroll.PeriodSummary{}, err
	}

	return s.ledger.PeriodSummary(ctx, companyID, month, year)
}

// ========== HELPERS ==========

// mapToRecordResponse is the display boundary: amounts are rounded to two
// places here and nowhere earlier.
func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	resp := payroll.PayrollRecordResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,
		Earnings: payroll.Earnings{
			Basic:           r.Earnings.Basic.Round(2),
			HRA:             r.Earnings.HRA.Round(2),
			Special:         r.Earnings.Special.Round(2),
			Conveyance:      r.Earnings.Conveyance.Round(2),
			Medical:         r.Earnings.Medical.Round(2),
			Education:       r.Earnings.Education.Round(2),
			Other:           r.Earnings.Other.Round(2),
			OvertimeRegular: r.Earnings.OvertimeRegular.Round(2),
			OvertimeWeekend: r.Earnings.OvertimeWeekend.Round(2),
			OvertimeHoliday: r.Earnings.OvertimeHoliday.Round(2),
			OvertimeTotal:   r.Earnings.OvertimeTotal.Round(2),
			GrossEarned:     r.Earnings.GrossEarned.Round(2),
			GrossSalary:     r.Earnings.GrossSalary.Round(2),
		},
		Deductions: payroll.Deductions{
			PF:              r.Deductions.PF.Round(2),
			ESI:             r.Deductions.ESI.Round(2),
			ProfessionalTax: r.Deductions.ProfessionalTax.Round(2),
			TDS:             r.Deductions.TDS.Round(2),
			LOP:             r.Deductions.LOP.Round(2),
			Total:           r.Deductions.Total.Round(2),
		},
		NetSalary:  r.NetSalary.Round(2),
		CTC:        r.CTC.Round(2),
		Rates:      r.Rates,
		Attendance: r.Attendance,
		Warnings:   r.Warnings,
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		resp.EmployeeCode = *r.EmployeeCode
	}
	return resp
}

func mapToStructureResponse(s payroll.SalaryStructure) payroll.SalaryStructureResponse {
	return payroll.SalaryStructureResponse{
		ID:                  s.ID,
		EmployeeID:          s.EmployeeID,
		BasicSalary:         s.BasicSalary,
		HRA:                 s.HRA,
		ConveyanceAllowance: s.ConveyanceAllowance,
		MedicalAllowance:    s.MedicalAllowance,
		SpecialAllowance:    s.SpecialAllowance,
		EducationAllowance:  s.EducationAllowance,
		OtherAllowance:      s.OtherAllowance,
		Bonus:               s.Bonus,
		Incentive:           s.Incentive,
		PFEmployee:          s.PFEmployee,
		PFEmployer:          s.PFEmployer,
		ESIEmployee:         s.ESIEmployee,
		ESIEmployer:         s.ESIEmployer,
		ProfessionalTax:     s.ProfessionalTax,
		TDS:                 s.TDS,
		IsPFApplicable:      s.IsPFApplicable,
		IsESIApplicable:     s.IsESIApplicable,
		IsHourlyBased:       s.IsHourlyBased,
		HourlyRate:          s.HourlyRate,
		ContractRatePerDay:  s.ContractRatePerDay,
		OTRateMultiplier:    s.OTRateMultiplier,
		OTWeekendMultiplier: s.OTWeekendMultiplier,
		OTHolidayMultiplier: s.OTHolidayMultiplier,
		Mode:                s.Mode(),
	}
}
