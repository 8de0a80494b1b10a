package attendance

import (
	"github.com/facehr/facehr-backend-go/internal/pkg/validator"
)

type LogResponse struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employee_id"`
	EmployeeName    string   `json:"employee_name,omitempty"`
	EmployeeCode    string   `json:"employee_code,omitempty"`
	Date            string   `json:"date"`
	CheckIn         *string  `json:"check_in"`
	CheckOut        *string  `json:"check_out"`
	Status          string   `json:"status"`
	ConfidenceScore *float64 `json:"confidence,omitempty"`
}

type PeriodQuery struct {
	Month      int
	Year       int
	EmployeeID string
}

func (q *PeriodQuery) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(q.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
