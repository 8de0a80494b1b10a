package attendance

import (
	"testing"
	"time"

	"github.com/facehr/facehr-backend-go/internal/domain/attendance"
	"github.com/facehr/facehr-backend-go/internal/domain/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// July 2025: the 1st is a Tuesday, the 14th is a Monday.
func julyLog(day, inHour, inMin, outHour, outMin int) attendance.Log {
	date := time.Date(2025, time.July, day, 0, 0, 0, 0, time.UTC)
	in := time.Date(2025, time.July, day, inHour, inMin, 0, 0, time.UTC)
	out := time.Date(2025, time.July, day, outHour, outMin, 0, 0, time.UTC)
	return attendance.Log{
		EmployeeID: "emp-1",
		Date:       date,
		CheckIn:    &in,
		CheckOut:   &out,
		Status:     attendance.StatusPresent,
	}
}

func julyCalendar() calendar.Calendar {
	return calendar.New([]calendar.Holiday{
		{Name: "Company Day", Date: time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)},
	})
}

func TestAggregate_OvertimeBuckets(t *testing.T) {
	logs := []attendance.Log{
		julyLog(1, 9, 0, 18, 0),  // Tuesday, 9h: 1h weekday OT
		julyLog(2, 9, 0, 17, 0),  // Wednesday, exactly the shift, no OT
		julyLog(5, 9, 0, 19, 30), // Saturday, 10.5h: 2.5h weekend OT
		julyLog(14, 9, 0, 18, 0), // holiday Monday, 9h: 1h holiday OT
	}

	summary := Aggregate("emp-1", 7, 2025, logs, julyCalendar(), 8)

	assert.Equal(t, 31, summary.TotalDays)
	assert.Equal(t, 4, summary.PresentDays)
	assert.Equal(t, 27, summary.UnpaidLeaves)
	assert.Equal(t, "1", summary.OTHours.String())
	assert.Equal(t, "2.5", summary.OTWeekendHours.String())
	assert.Equal(t, "1", summary.OTHolidayHours.String())
	assert.Equal(t, "4.5", summary.OTTotalHours().String())
	assert.Equal(t, "36.5", summary.TotalHoursWorked.String())
	assert.Empty(t, summary.Warnings)
}

func TestAggregate_BucketsPartitionTotalOvertime(t *testing.T) {
	logs := []attendance.Log{
		julyLog(1, 9, 0, 18, 10),
		julyLog(5, 8, 30, 18, 50),
		julyLog(14, 9, 0, 19, 25),
	}

	summary := Aggregate("emp-1", 7, 2025, logs, julyCalendar(), 8)

	// 70 + 140 + 145 overtime minutes across the three day classes.
	want := decimal.NewFromInt(355).Div(decimal.NewFromInt(60))
	assert.True(t, want.Equal(summary.OTTotalHours()),
		"expected %s overtime hours, got %s", want, summary.OTTotalHours())
}

func TestAggregate_MissingCheckOut(t *testing.T) {
	in := time.Date(2025, time.July, 3, 9, 0, 0, 0, time.UTC)
	logs := []attendance.Log{{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC),
		CheckIn:    &in,
		Status:     attendance.StatusPresent,
	}}

	summary := Aggregate("emp-1", 7, 2025, logs, julyCalendar(), 8)

	// The day counts as present but contributes no hours.
	assert.Equal(t, 1, summary.PresentDays)
	assert.True(t, summary.TotalHoursWorked.IsZero())
	assert.Empty(t, summary.Warnings)
}

func TestAggregate_CheckOutBeforeCheckIn(t *testing.T) {
	log := julyLog(7, 18, 0, 9, 0)
	summary := Aggregate("emp-1", 7, 2025, []attendance.Log{log}, julyCalendar(), 8)

	assert.Equal(t, 1, summary.PresentDays)
	assert.True(t, summary.TotalHoursWorked.IsZero())
	assert.Equal(t, []string{attendance.WarningInvertedSession + ":2025-07-07"}, summary.Warnings)
}

func TestAggregate_MissingCheckInIsAbsent(t *testing.T) {
	logs := []attendance.Log{{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	}}

	summary := Aggregate("emp-1", 7, 2025, logs, julyCalendar(), 8)

	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 31, summary.UnpaidLeaves)
}

func TestAggregate_NoLogs(t *testing.T) {
	summary := Aggregate("emp-1", 2, 2025, nil, calendar.New(nil), 8)

	assert.Equal(t, 28, summary.TotalDays)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 28, summary.UnpaidLeaves)
	assert.True(t, summary.TotalHoursWorked.IsZero())
}
