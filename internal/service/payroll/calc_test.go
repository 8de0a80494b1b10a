package payroll

import (
	"testing"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func monthlyStructure() payroll.SalaryStructure {
	return payroll.SalaryStructure{
		EmployeeID:          "emp-1",
		CompanyID:           "co-1",
		BasicSalary:         dec("15000"),
		HRA:                 dec("5000"),
		PFEmployee:          dec("1800"),
		PFEmployer:          dec("1800"),
		ProfessionalTax:     dec("200"),
		IsPFApplicable:      true,
		OTRateMultiplier:    dec("1.5"),
		OTWeekendMultiplier: dec("2"),
		OTHolidayMultiplier: dec("2.5"),
	}
}

func fullMonth(present int) attendance.PeriodSummary {
	return attendance.PeriodSummary{
		EmployeeID:       "emp-1",
		Month:            4,
		Year:             2025,
		TotalDays:        30,
		PresentDays:      present,
		UnpaidLeaves:     30 - present,
		TotalHoursWorked: decimal.NewFromInt(int64(present) * 8),
	}
}

func TestCalculate_MonthlyWithUnpaidLeave(t *testing.T) {
	record := Calculate(monthlyStructure(), fullMonth(28), 8)

	assert.Equal(t, payroll.ModeMonthly, record.Rates.Mode)
	assert.Equal(t, "20000", record.Earnings.GrossEarned.String())
	assert.Equal(t, "20000", record.Earnings.GrossSalary.String())

	// Two unpaid days at 20000/30 each.
	assert.Equal(t, "1333.33", record.Deductions.LOP.Round(2).String())
	assert.Equal(t, "1800", record.Deductions.PF.String())
	assert.Equal(t, "200", record.Deductions.ProfessionalTax.String())
	assert.Equal(t, "3333.33", record.Deductions.Total.Round(2).String())

	assert.Equal(t, "16666.67", record.NetSalary.Round(2).String())
	assert.Equal(t, "21800", record.CTC.String())
	assert.Empty(t, record.Warnings)
}

func TestCalculate_MonthlyNetIdentity(t *testing.T) {
	structure := monthlyStructure()
	structure.Bonus = dec("1000")
	structure.Incentive = dec("500")

	record := Calculate(structure, fullMonth(27), 8)

	want := record.Earnings.GrossSalary.
		Add(dec("1000")).
		Add(dec("500")).
		Sub(record.Deductions.Total)
	assert.True(t, want.Equal(record.NetSalary),
		"net %s does not match identity %s", record.NetSalary, want)
}

func TestCalculate_MonthlyOvertime(t *testing.T) {
	structure := monthlyStructure()
	structure.BasicSalary = dec("24000")
	structure.HRA = decimal.Zero

	att := fullMonth(30)
	att.OTHours = dec("6")
	att.OTWeekendHours = dec("2")
	att.OTHolidayHours = dec("1")

	record := Calculate(structure, att, 8)

	// Hourly equivalent of basic: 24000 / 30 days / 8 hours = 100.
	assert.Equal(t, "900", record.Earnings.OvertimeRegular.String())
	assert.Equal(t, "400", record.Earnings.OvertimeWeekend.String())
	assert.Equal(t, "250", record.Earnings.OvertimeHoliday.String())
	assert.Equal(t, "1550", record.Earnings.OvertimeTotal.String())
	assert.Equal(t, "25550", record.Earnings.GrossSalary.String())
}

func TestCalculate_Hourly(t *testing.T) {
	structure := payroll.SalaryStructure{
		EmployeeID:          "emp-2",
		IsHourlyBased:       true,
		HourlyRate:          dec("200"),
		OTRateMultiplier:    dec("1.5"),
		OTWeekendMultiplier: dec("2"),
		OTHolidayMultiplier: dec("2.5"),
	}
	att := attendance.PeriodSummary{
		Month:            4,
		Year:             2025,
		TotalDays:        30,
		PresentDays:      22,
		UnpaidLeaves:     8,
		OTHours:          dec("10"),
		TotalHoursWorked: dec("176"),
	}

	record := Calculate(structure, att, 8)

	assert.Equal(t, payroll.ModeHourly, record.Rates.Mode)
	assert.Equal(t, "35200", record.Earnings.GrossEarned.String())
	assert.Equal(t, "3000", record.Earnings.OvertimeRegular.String())
	assert.Equal(t, "38200", record.Earnings.GrossSalary.String())

	// Absence is already priced into hours; no LOP line for hourly pay.
	assert.True(t, record.Deductions.LOP.IsZero())
}

func TestCalculate_Contract(t *testing.T) {
	structure := payroll.SalaryStructure{
		EmployeeID:         "emp-3",
		ContractRatePerDay: dec("1000"),
	}
	att := attendance.PeriodSummary{
		Month:       4,
		Year:        2025,
		TotalDays:   30,
		PresentDays: 22,
		OTHours:     dec("5"),
	}

	record := Calculate(structure, att, 8)

	assert.Equal(t, payroll.ModeContract, record.Rates.Mode)
	assert.Equal(t, "22000", record.Earnings.GrossSalary.String())

	// Contract pay ignores overtime and carries no LOP.
	assert.True(t, record.Earnings.OvertimeTotal.IsZero())
	assert.True(t, record.Deductions.LOP.IsZero())
}

func TestCalculate_HourlyWinsOverContract(t *testing.T) {
	structure := payroll.SalaryStructure{
		EmployeeID:         "emp-4",
		IsHourlyBased:      true,
		HourlyRate:         dec("150"),
		ContractRatePerDay: dec("1000"),
	}
	att := attendance.PeriodSummary{
		Month:            4,
		Year:             2025,
		TotalDays:        30,
		PresentDays:      20,
		TotalHoursWorked: dec("160"),
	}

	record := Calculate(structure, att, 8)

	assert.Equal(t, payroll.ModeHourly, record.Rates.Mode)
	assert.Equal(t, "24000", record.Earnings.GrossSalary.String())
	assert.Contains(t, record.Warnings, payroll.WarningAmbiguousMode)
}

func TestCalculate_NegativeNetIsNotClamped(t *testing.T) {
	structure := payroll.SalaryStructure{
		EmployeeID:  "emp-5",
		BasicSalary: dec("1000"),
		TDS:         dec("5000"),
	}

	record := Calculate(structure, fullMonth(30), 8)

	assert.Equal(t, "-4000", record.NetSalary.String())
	assert.Contains(t, record.Warnings, payroll.WarningNegativeNet)
}

func TestCalculate_DeductionFlagsGateStatutoryAmounts(t *testing.T) {
	structure := monthlyStructure()
	structure.IsPFApplicable = false
	structure.ESIEmployee = dec("150")
	structure.ESIEmployer = dec("475")
	structure.IsESIApplicable = true

	record := Calculate(structure, fullMonth(30), 8)

	assert.True(t, record.Deductions.PF.IsZero())
	assert.Equal(t, "150", record.Deductions.ESI.String())

	// CTC adds only the employer shares whose flags are on.
	assert.Equal(t, "20475", record.CTC.String())
}
