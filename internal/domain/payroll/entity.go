package payroll

import (
	"time"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// PayMode is the compensation mode resolved from a salary structure.
// Exactly one mode is active for any calculation.
type PayMode string

const (
	ModeMonthly  PayMode = "monthly"
	ModeHourly   PayMode = "hourly"
	ModeContract PayMode = "contract"
)

// SalaryStructure is the per-employee compensation configuration. One row
// per employee, versionless; the latest configuration wins.
type SalaryStructure struct {
	ID         string
	EmployeeID string
	CompanyID  string

	// Earnings components. Per month for monthly employees; hourly and
	// contract employees are paid from their rate fields instead.
	BasicSalary         decimal.Decimal
	HRA                 decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	EducationAllowance  decimal.Decimal
	OtherAllowance      decimal.Decimal

	Bonus     decimal.Decimal
	Incentive decimal.Decimal

	// Statutory deduction amounts, flat as configured. The engine does not
	// compute slabs or percentages.
	PFEmployee      decimal.Decimal
	PFEmployer      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal

	IsPFApplicable  bool
	IsESIApplicable bool

	// Employment mode settings.
	IsHourlyBased      bool
	HourlyRate         decimal.Decimal
	ContractRatePerDay decimal.Decimal

	// Overtime multipliers per day class.
	OTRateMultiplier    decimal.Decimal
	OTWeekendMultiplier decimal.Decimal
	OTHolidayMultiplier decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Mode resolves the active compensation mode once, at structure load time.
// Precedence: hourly > contract > monthly.
func (s SalaryStructure) Mode() PayMode {
	if s.IsHourlyBased {
		return ModeHourly
	}
	if s.ContractRatePerDay.IsPositive() {
		return ModeContract
	}
	return ModeMonthly
}

// Ambiguous reports whether more than one mode flag is set. The precedence
// in Mode still applies; callers surface this as a configuration warning.
func (s SalaryStructure) Ambiguous() bool {
	return s.IsHourlyBased && s.ContractRatePerDay.IsPositive()
}

// Earnings is the per-record earnings breakdown. Field names and units are
// part of the contract with the payslip renderer.
type Earnings struct {
	Basic           decimal.Decimal `json:"basic"`
	HRA             decimal.Decimal `json:"hra"`
	Special         decimal.Decimal `json:"special"`
	Conveyance      decimal.Decimal `json:"conveyance"`
	Medical         decimal.Decimal `json:"medical"`
	Education       decimal.Decimal `json:"education"`
	Other           decimal.Decimal `json:"other"`
	OvertimeRegular decimal.Decimal `json:"overtime_regular"`
	OvertimeWeekend decimal.Decimal `json:"overtime_weekend"`
	OvertimeHoliday decimal.Decimal `json:"overtime_holiday"`
	OvertimeTotal   decimal.Decimal `json:"overtime_total"`
	GrossEarned     decimal.Decimal `json:"gross_earned"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
}

// Deductions is the per-record deductions breakdown.
type Deductions struct {
	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	ProfessionalTax decimal.Decimal `json:"prof_tax"`
	TDS             decimal.Decimal `json:"tds"`
	LOP             decimal.Decimal `json:"lop"`
	Total           decimal.Decimal `json:"total"`
}

// RateSnapshot records the rates and settings a calculation used, so a
// stored record stays auditable after the structure changes.
type RateSnapshot struct {
	Mode                PayMode         `json:"mode"`
	StandardShiftHours  int             `json:"standard_shift_hours"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
	ContractRatePerDay  decimal.Decimal `json:"contract_rate_per_day"`
	OTRateMultiplier    decimal.Decimal `json:"ot_rate_multiplier"`
	OTWeekendMultiplier decimal.Decimal `json:"ot_weekend_multiplier"`
	OTHolidayMultiplier decimal.Decimal `json:"ot_holiday_multiplier"`
	Bonus               decimal.Decimal `json:"bonus"`
	Incentive           decimal.Decimal `json:"incentive"`
}

// PayrollRecord is one computed payroll result, keyed by
// (employee_id, period_month, period_year). Overwritten on regeneration,
// read-only otherwise.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	PeriodMonth int
	PeriodYear  int

	Earnings   Earnings
	Deductions Deductions
	NetSalary  decimal.Decimal
	CTC        decimal.Decimal

	Rates      RateSnapshot
	Attendance attendance.PeriodSummary
	Warnings   []string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// PeriodSummary aggregates every stored record for a (month, year). It is a
// derived view recomputed from the ledger on each request, never stored.
type PeriodSummary struct {
	PeriodMonth   int             `json:"period_month"`
	PeriodYear    int             `json:"period_year"`
	EmployeeCount int64           `json:"employee_count"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalNet      decimal.Decimal `json:"total_net"`
	TotalPF       decimal.Decimal `json:"total_pf"`
	TotalESI      decimal.Decimal `json:"total_esi"`
}

const (
	// WarningNegativeNet flags a record whose deductions exceed earnings.
	// The net is surfaced as-is, never clamped.
	WarningNegativeNet = "negative_net"

	// WarningAmbiguousMode flags a structure with both the hourly flag and
	// a contract rate set; hourly wins.
	WarningAmbiguousMode = "invalid_mode_config"
)
