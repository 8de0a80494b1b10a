package calendar

import "context"

// HolidayRepository supplies the configured holidays for a period.
type HolidayRepository interface {
	ListByPeriod(ctx context.Context, companyID string, month, year int) ([]Holiday, error)
}
