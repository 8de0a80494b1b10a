package calendar

import "time"

// DayClass labels a calendar date for overtime bucketing.
type DayClass string

const (
	DayWeekday DayClass = "weekday"
	DayWeekend DayClass = "weekend"
	DayHoliday DayClass = "holiday"
)

// Holiday is a company-configured non-working date.
type Holiday struct {
	ID        string
	CompanyID string
	Name      string
	Date      time.Time
}

// Calendar classifies dates as weekday, weekend or holiday. Holidays take
// precedence over weekends so a holiday falling on a Sunday pays holiday
// overtime, not weekend overtime.
type Calendar struct {
	holidays map[string]struct{}
}

// New builds a Calendar from the configured holiday list.
func New(holidays []Holiday) Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Date.Format("2006-01-02")] = struct{}{}
	}
	return Calendar{holidays: set}
}

// Classify labels one date. Every date maps to exactly one class.
func (c Calendar) Classify(date time.Time) DayClass {
	if _, ok := c.holidays[date.Format("2006-01-02")]; ok {
		return DayHoliday
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayWeekend
	}
	return DayWeekday
}
