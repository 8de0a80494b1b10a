package payroll

import "errors"

var (
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
	ErrPayrollRecordNotFound   = errors.New("payroll record not found")
)
