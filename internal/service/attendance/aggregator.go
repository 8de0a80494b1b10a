package attendance

import (
	"time"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/calendar"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Aggregate reduces one employee's attendance logs for a calendar month into
// a PeriodSummary. Worked and overtime time is accumulated in whole minutes
// and converted to hours once per bucket, so the three overtime buckets
// partition total overtime exactly.
func Aggregate(employeeID string, month, year int, logs []attendance.Log, cal calendar.Calendar, shiftHours int) attendance.PeriodSummary {
	totalDays := daysInMonth(month, year)
	shiftMinutes := shiftHours * 60

	var (
		presentDays   int
		workedMinutes int64
		otMinutes     = map[calendar.DayClass]int64{}
		warnings      []string
	)

	for _, log := range logs {
		if log.CheckIn == nil {
			continue
		}
		presentDays++

		if log.CheckOut == nil {
			// Present day with a missing check-out contributes zero hours.
			continue
		}
		if log.CheckOut.Before(*log.CheckIn) {
			warnings = append(warnings, attendance.WarningInvertedSession+":"+log.Date.Format("2006-01-02"))
			continue
		}

		minutes := int64(log.CheckOut.Sub(*log.CheckIn) / time.Minute)
		workedMinutes += minutes

		if overtime := minutes - int64(shiftMinutes); overtime > 0 {
			otMinutes[cal.Classify(log.Date)] += overtime
		}
	}

	return attendance.PeriodSummary{
		EmployeeID:       employeeID,
		Month:            month,
		Year:             year,
		TotalDays:        totalDays,
		PresentDays:      presentDays,
		UnpaidLeaves:     totalDays - presentDays,
		OTHours:          minutesToHours(otMinutes[calendar.DayWeekday]),
		OTWeekendHours:   minutesToHours(otMinutes[calendar.DayWeekend]),
		OTHolidayHours:   minutesToHours(otMinutes[calendar.DayHoliday]),
		TotalHoursWorked: minutesToHours(workedMinutes),
		Warnings:         warnings,
	}
}

func minutesToHours(minutes int64) decimal.Decimal {
	return decimal.NewFromInt(minutes).Div(sixty)
}

func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
