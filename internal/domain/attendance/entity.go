package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Log is one attendance row per employee per day, written by the capture
// terminal. The payroll engine only ever reads it.
type Log struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Date            time.Time
	CheckIn         *time.Time
	CheckOut        *time.Time
	Status          Status
	ConfidenceScore *float64
	CreatedAt       time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// PeriodSummary is the derived attendance aggregate for one employee over a
// calendar month. It is computed fresh for every calculation and never
// persisted on its own; payroll records embed a snapshot of it.
type PeriodSummary struct {
	EmployeeID       string          `json:"employee_id"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalDays        int             `json:"total_days"`
	PresentDays      int             `json:"present_days"`
	UnpaidLeaves     int             `json:"unpaid_leaves"`
	OTHours          decimal.Decimal `json:"ot_hours"`
	OTWeekendHours   decimal.Decimal `json:"ot_weekend_hours"`
	OTHolidayHours   decimal.Decimal `json:"ot_holiday_hours"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
	Warnings         []string        `json:"warnings,omitempty"`
}

// OTTotalHours sums the three overtime buckets. The buckets partition total
// overtime, so this equals the overtime computed day by day.
func (s PeriodSummary) OTTotalHours() decimal.Decimal {
	return s.OTHours.Add(s.OTWeekendHours).Add(s.OTHolidayHours)
}

const (
	// WarningInvertedSession marks a log whose check-out precedes its
	// check-in. The day still counts as present but contributes zero hours.
	WarningInvertedSession = "check_out_before_check_in"
)
