package payroll

import (
	"time"

	"github.com/hraxis/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRecordRequest struct {
	EmployeeID         string          `json:"employee_id"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	TotalWorkableDays  *int            `json:"total_workable_days,omitempty"` // defaults to 30
	OvertimeDays       int             `json:"overtime_days"`
	NormalOvertimeDays int             `json:"normal_overtime_days"`
	UnpaidDays         int             `json:"unpaid_days"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	Remarks            *string         `json:"remarks,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 1900 and 2100"})
	}
	if r.TotalWorkableDays != nil && (*r.TotalWorkableDays < 1 || *r.TotalWorkableDays > FullMonthWorkableDays) {
		errs = append(errs, validator.ValidationError{Field: "total_workable_days", Message: "must be between 1 and 30"})
	}
	if r.OvertimeDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_days", Message: "must be non-negative"})
	}
	if r.NormalOvertimeDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "normal_overtime_days", Message: "must be non-negative"})
	}
	if r.UnpaidDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "unpaid_days", Message: "must be non-negative"})
	}
	if !validator.IsNonNegativeAmount(r.OtherDeductions) {
		errs = append(errs, validator.ValidationError{Field: "other_deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest mutates adjustment fields only; identity fields and
// every derived amount are recomputed server-side.
type UpdateRecordRequest struct {
	ID                 string
	TotalWorkableDays  *int             `json:"total_workable_days,omitempty"`
	OvertimeDays       *int             `json:"overtime_days,omitempty"`
	NormalOvertimeDays *int             `json:"normal_overtime_days,omitempty"`
	UnpaidDays         *int             `json:"unpaid_days,omitempty"`
	OtherDeductions    *decimal.Decimal `json:"other_deductions,omitempty"`
	Remarks            *string          `json:"remarks,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TotalWorkableDays != nil && (*r.TotalWorkableDays < 1 || *r.TotalWorkableDays > FullMonthWorkableDays) {
		errs = append(errs, validator.ValidationError{Field: "total_workable_days", Message: "must be between 1 and 30"})
	}
	if r.OvertimeDays != nil && *r.OvertimeDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_days", Message: "must be non-negative"})
	}
	if r.NormalOvertimeDays != nil && *r.NormalOvertimeDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "normal_overtime_days", Message: "must be non-negative"})
	}
	if r.UnpaidDays != nil && *r.UnpaidDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "unpaid_days", Message: "must be non-negative"})
	}
	if r.OtherDeductions != nil && r.OtherDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordFilter struct {
	EmployeeID *string
	Month      *int
	Year       *int
}

type RecordResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         string          `json:"employee_name,omitempty"`
	Month                int             `json:"month"`
	Year                 int             `json:"year"`
	TotalWorkableDays    int             `json:"total_workable_days"`
	OvertimeDays         int             `json:"overtime_days"`
	OvertimeAmount       decimal.Decimal `json:"overtime_amount"`
	NormalOvertimeDays   int             `json:"normal_overtime_days"`
	NormalOvertimeAmount decimal.Decimal `json:"normal_overtime_amount"`
	UnpaidDays           int             `json:"unpaid_days"`
	UnpaidAmount         decimal.Decimal `json:"unpaid_amount"`
	OtherDeductions      decimal.Decimal `json:"other_deductions"`
	CurrentBasicSalary   decimal.Decimal `json:"current_basic_salary"`
	CurrentGrossSalary   decimal.Decimal `json:"current_gross_salary"`
	CurrentDailySalary   decimal.Decimal `json:"current_daily_salary"`
	TotalSalaryForMonth  decimal.Decimal `json:"total_salary_for_month"`
	Remarks              *string         `json:"remarks,omitempty"`
	CreatedAt            string          `json:"created_at"`
}

func ToRecordResponse(r Record) RecordResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return RecordResponse{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		EmployeeName:         employeeName,
		Month:                r.Month,
		Year:                 r.Year,
		TotalWorkableDays:    r.TotalWorkableDays,
		OvertimeDays:         r.OvertimeDays,
		OvertimeAmount:       r.OvertimeAmount,
		NormalOvertimeDays:   r.NormalOvertimeDays,
		NormalOvertimeAmount: r.NormalOvertimeAmount,
		UnpaidDays:           r.UnpaidDays,
		UnpaidAmount:         r.UnpaidAmount,
		OtherDeductions:      r.OtherDeductions,
		CurrentBasicSalary:   r.CurrentBasicSalary,
		CurrentGrossSalary:   r.CurrentGrossSalary,
		CurrentDailySalary:   r.CurrentDailySalary,
		TotalSalaryForMonth:  r.TotalSalaryForMonth,
		Remarks:              r.Remarks,
		CreatedAt:            r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRecordResponses(records []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToRecordResponse(r))
	}
	return result
}
