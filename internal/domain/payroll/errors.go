package payroll

import "errors"

var (
	ErrPayrollRecordNotFound  = errors.New("payroll record not found")
	ErrDuplicatePayrollPeriod = errors.New("payroll record already exists for this period")
	ErrMissingSalaryDetails   = errors.New("salary details for this employee are not defined")
	ErrInvalidWorkableDays    = errors.New("total workable days must be between 1 and 30")
)
