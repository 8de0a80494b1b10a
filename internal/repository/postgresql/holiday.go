package postgresql

import (
	"context"
	"fmt"

	"github.com/facehr/facehr-backend-go/internal/domain/calendar"
	"github.com/facehr/facehr-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) ListByPeriod(ctx context.Context, companyID string, month, year int) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, date
		FROM holidays
		WHERE company_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Name, &h.Date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}
