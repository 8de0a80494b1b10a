package payroll

import (
	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculate turns a salary structure and an attendance summary into a full
// payroll record. It is pure: no I/O, no clock, no randomness. The caller
// assigns identity and persistence concerns.
//
// Mode dispatch, first match wins: hourly, then contract, then monthly.
func Calculate(structure payroll.SalaryStructure, att attendance.PeriodSummary, shiftHours int) payroll.PayrollRecord {
	var warnings []string
	if structure.Ambiguous() {
		warnings = append(warnings, payroll.WarningAmbiguousMode)
	}

	mode := structure.Mode()

	var earnings payroll.Earnings
	var lop decimal.Decimal

	switch mode {
	case payroll.ModeHourly:
		earnings = hourlyEarnings(structure, att)
	case payroll.ModeContract:
		earnings = contractEarnings(structure, att)
	default:
		earnings, lop = monthlyEarnings(structure, att, shiftHours)
	}

	deductions := payroll.Deductions{
		ProfessionalTax: structure.ProfessionalTax,
		TDS:             structure.TDS,
		LOP:             lop,
	}
	if structure.IsPFApplicable {
		deductions.PF = structure.PFEmployee
	}
	if structure.IsESIApplicable {
		deductions.ESI = structure.ESIEmployee
	}
	deductions.Total = deductions.PF.
		Add(deductions.ESI).
		Add(deductions.ProfessionalTax).
		Add(deductions.TDS).
		Add(deductions.LOP)

	// Net may go negative when deductions exceed earnings; it is surfaced,
	// not clamped.
	net := earnings.GrossSalary.
		Add(structure.Bonus).
		Add(structure.Incentive).
		Sub(deductions.Total)
	if net.IsNegative() {
		warnings = append(warnings, payroll.WarningNegativeNet)
	}

	ctc := earnings.GrossSalary
	if structure.IsPFApplicable {
		ctc = ctc.Add(structure.PFEmployer)
	}
	if structure.IsESIApplicable {
		ctc = ctc.Add(structure.ESIEmployer)
	}

	return payroll.PayrollRecord{
		EmployeeID:  structure.EmployeeID,
		CompanyID:   structure.CompanyID,
		PeriodMonth: att.Month,
		PeriodYear:  att.Year,
		Earnings:    earnings,
		Deductions:  deductions,
		NetSalary:   net,
		CTC:         ctc,
		Rates: payroll.RateSnapshot{
			Mode:                mode,
			StandardShiftHours:  shiftHours,
			HourlyRate:          structure.HourlyRate,
			ContractRatePerDay:  structure.ContractRatePerDay,
			OTRateMultiplier:    structure.OTRateMultiplier,
			OTWeekendMultiplier: structure.OTWeekendMultiplier,
			OTHolidayMultiplier: structure.OTHolidayMultiplier,
			Bonus:               structure.Bonus,
			Incentive:           structure.Incentive,
		},
		Attendance: att,
		Warnings:   warnings,
	}
}

// monthlyEarnings pays the configured allowances in full and charges unpaid
// absence back as an explicit LOP deduction instead of shrinking each
// component. Overtime is paid on top of gross from the basic-derived hourly
// equivalent.
func monthlyEarnings(structure payroll.SalaryStructure, att attendance.PeriodSummary, shiftHours int) (payroll.Earnings, decimal.Decimal) {
	earnings := payroll.Earnings{
		Basic:      structure.BasicSalary,
		HRA:        structure.HRA,
		Special:    structure.SpecialAllowance,
		Conveyance: structure.ConveyanceAllowance,
		Medical:    structure.MedicalAllowance,
		Education:  structure.EducationAllowance,
		Other:      structure.OtherAllowance,
	}
	earnings.GrossEarned = earnings.Basic.
		Add(earnings.HRA).
		Add(earnings.Special).
		Add(earnings.Conveyance).
		Add(earnings.Medical).
		Add(earnings.Education).
		Add(earnings.Other)

	totalDays := decimal.NewFromInt(int64(att.TotalDays))
	lop := decimal.Zero
	if att.TotalDays > 0 {
		lop = earnings.GrossEarned.
			Div(totalDays).
			Mul(decimal.NewFromInt(int64(att.UnpaidLeaves)))
	}

	// Hourly equivalent of basic: basic per calendar day over the shift.
	hourlyEquivalent := decimal.Zero
	if att.TotalDays > 0 && shiftHours > 0 {
		hourlyEquivalent = structure.BasicSalary.
			Div(totalDays).
			Div(decimal.NewFromInt(int64(shiftHours)))
	}

	earnings.OvertimeRegular = att.OTHours.Mul(hourlyEquivalent).Mul(structure.OTRateMultiplier)
	earnings.OvertimeWeekend = att.OTWeekendHours.Mul(hourlyEquivalent).Mul(structure.OTWeekendMultiplier)
	earnings.OvertimeHoliday = att.OTHolidayHours.Mul(hourlyEquivalent).Mul(structure.OTHolidayMultiplier)
	earnings.OvertimeTotal = earnings.OvertimeRegular.
		Add(earnings.OvertimeWeekend).
		Add(earnings.OvertimeHoliday)

	earnings.GrossSalary = earnings.GrossEarned.Add(earnings.OvertimeTotal)
	return earnings, lop
}

// hourlyEarnings pays worked hours at the configured rate. Absence is
// already reflected in zero hours, so there is no LOP line.
func hourlyEarnings(structure payroll.SalaryStructure, att attendance.PeriodSummary) payroll.Earnings {
	var earnings payroll.Earnings
	earnings.GrossEarned = structure.HourlyRate.Mul(att.TotalHoursWorked)

	earnings.OvertimeRegular = att.OTHours.Mul(structure.HourlyRate).Mul(structure.OTRateMultiplier)
	earnings.OvertimeWeekend = att.OTWeekendHours.Mul(structure.HourlyRate).Mul(structure.OTWeekendMultiplier)
	earnings.OvertimeHoliday = att.OTHolidayHours.Mul(structure.HourlyRate).Mul(structure.OTHolidayMultiplier)
	earnings.OvertimeTotal = earnings.OvertimeRegular.
		Add(earnings.OvertimeWeekend).
		Add(earnings.OvertimeHoliday)

	earnings.GrossSalary = earnings.GrossEarned.Add(earnings.OvertimeTotal)
	return earnings
}

// contractEarnings pays present days at the daily rate. No overtime, no LOP.
func contractEarnings(structure payroll.SalaryStructure, att attendance.PeriodSummary) payroll.Earnings {
	var earnings payroll.Earnings
	earnings.GrossEarned = structure.ContractRatePerDay.Mul(decimal.NewFromInt(int64(att.PresentDays)))
	earnings.GrossSalary = earnings.GrossEarned
	return earnings
}
