package payroll

import (
	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUESTS ==========

type GeneratePayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertSalaryStructureRequest struct {
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HRA                 decimal.Decimal `json:"hra"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	EducationAllowance  decimal.Decimal `json:"education_allowance"`
	OtherAllowance      decimal.Decimal `json:"other_allowance"`

	Bonus     decimal.Decimal `json:"bonus"`
	Incentive decimal.Decimal `json:"incentive"`

	PFEmployee      decimal.Decimal `json:"pf_employee"`
	PFEmployer      decimal.Decimal `json:"pf_employer"`
	ESIEmployee     decimal.Decimal `json:"esi_employee"`
	ESIEmployer     decimal.Decimal `json:"esi_employer"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`

	IsPFApplicable  bool `json:"is_pf_applicable"`
	IsESIApplicable bool `json:"is_esi_applicable"`

	IsHourlyBased      bool            `json:"is_hourly_based"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	ContractRatePerDay decimal.Decimal `json:"contract_rate_per_day"`

	OTRateMultiplier    *decimal.Decimal `json:"ot_rate_multiplier,omitempty"`
	OTWeekendMultiplier *decimal.Decimal `json:"ot_weekend_multiplier,omitempty"`
	OTHolidayMultiplier *decimal.Decimal `json:"ot_holiday_multiplier,omitempty"`
}

func (r *UpsertSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	amounts := map[string]decimal.Decimal{
		"basic_salary":          r.BasicSalary,
		"hra":                   r.HRA,
		"conveyance_allowance":  r.ConveyanceAllowance,
		"medical_allowance":     r.MedicalAllowance,
		"special_allowance":     r.SpecialAllowance,
		"education_allowance":   r.EducationAllowance,
		"other_allowance":       r.OtherAllowance,
		"bonus":                 r.Bonus,
		"incentive":             r.Incentive,
		"pf_employee":           r.PFEmployee,
		"pf_employer":           r.PFEmployer,
		"esi_employee":          r.ESIEmployee,
		"esi_employer":          r.ESIEmployer,
		"professional_tax":      r.ProfessionalTax,
		"tds":                   r.TDS,
		"hourly_rate":           r.HourlyRate,
		"contract_rate_per_day": r.ContractRatePerDay,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if r.IsHourlyBased && r.HourlyRate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "required when is_hourly_based is set"})
	}
	if r.OTRateMultiplier != nil && r.OTRateMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ot_rate_multiplier", Message: "must be non-negative"})
	}
	if r.OTWeekendMultiplier != nil && r.OTWeekendMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ot_weekend_multiplier", Message: "must be non-negative"})
	}
	if r.OTHolidayMultiplier != nil && r.OTHolidayMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ot_holiday_multiplier", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreviewDemoRequest carries an inline structure and attendance summary for
// the what-if calculator; nothing is resolved from or written to storage.
type PreviewDemoRequest struct {
	Structure  UpsertSalaryStructureRequest `json:"structure"`
	Attendance attendance.PeriodSummary     `json:"attendance"`
}

func (r *PreviewDemoRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.Structure.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, ve...)
		}
	}
	if r.Attendance.TotalDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "attendance.total_days", Message: "must be positive"})
	}
	if r.Attendance.PresentDays < 0 || r.Attendance.PresentDays > r.Attendance.TotalDays {
		errs = append(errs, validator.ValidationError{Field: "attendance.present_days", Message: "must be between 0 and total_days"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type SalaryStructureResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HRA                 decimal.Decimal `json:"hra"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	EducationAllowance  decimal.Decimal `json:"education_allowance"`
	OtherAllowance      decimal.Decimal `json:"other_allowance"`

	Bonus     decimal.Decimal `json:"bonus"`
	Incentive decimal.Decimal `json:"incentive"`

	PFEmployee      decimal.Decimal `json:"pf_employee"`
	PFEmployer      decimal.Decimal `json:"pf_employer"`
	ESIEmployee     decimal.Decimal `json:"esi_employee"`
	ESIEmployer     decimal.Decimal `json:"esi_employer"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`

	IsPFApplicable  bool `json:"is_pf_applicable"`
	IsESIApplicable bool `json:"is_esi_applicable"`

	IsHourlyBased      bool            `json:"is_hourly_based"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	ContractRatePerDay decimal.Decimal `json:"contract_rate_per_day"`

	OTRateMultiplier    decimal.Decimal `json:"ot_rate_multiplier"`
	OTWeekendMultiplier decimal.Decimal `json:"ot_weekend_multiplier"`
	OTHolidayMultiplier decimal.Decimal `json:"ot_holiday_multiplier"`

	Mode PayMode `json:"mode"`
}

type PayrollRecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`

	Earnings   Earnings        `json:"earnings"`
	Deductions Deductions      `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`
	CTC        decimal.Decimal `json:"ctc"`

	Rates      RateSnapshot             `json:"rates"`
	Attendance attendance.PeriodSummary `json:"attendance"`
	Warnings   []string                 `json:"warnings,omitempty"`
}

// BatchResult is the outcome of a generateAll run: the records that were
// written and, keyed by employee id, the failures that did not abort the
// rest of the batch.
type BatchResult struct {
	PeriodMonth int                     `json:"period_month"`
	PeriodYear  int                     `json:"period_year"`
	Generated   int                     `json:"generated"`
	Failed      int                     `json:"failed"`
	Records     []PayrollRecordResponse `json:"records"`
	Errors      map[string]string       `json:"errors,omitempty"`
}
