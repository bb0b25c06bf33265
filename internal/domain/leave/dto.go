package leave

import (
	"time"

	"github.com/hraxis/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && !validator.IsValidDateRange(start, end) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "cannot be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	LeaveType    string          `json:"leave_type"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	DaysTaken    decimal.Decimal `json:"days_taken"`
	Reason       *string         `json:"reason,omitempty"`
	Status       string          `json:"status"`
	AppliedOn    string          `json:"applied_on"`
	ApprovedOn   *string         `json:"approved_on,omitempty"`
	ApprovedBy   *string         `json:"approved_by,omitempty"`
	Remarks      string          `json:"remarks"`
}

func ToRequestResponse(req Request) RequestResponse {
	var approvedOn *string
	if req.ApprovedOn != nil {
		s := req.ApprovedOn.Format(time.RFC3339)
		approvedOn = &s
	}

	employeeName := ""
	if req.EmployeeName != nil {
		employeeName = *req.EmployeeName
	}

	return RequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: employeeName,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		DaysTaken:    req.DaysTaken,
		Reason:       req.Reason,
		Status:       string(req.Status),
		AppliedOn:    req.AppliedOn.Format(time.RFC3339),
		ApprovedOn:   approvedOn,
		ApprovedBy:   req.ApprovedBy,
		Remarks:      req.Remarks,
	}
}

func ToRequestResponses(requests []Request) []RequestResponse {
	result := make([]RequestResponse, 0, len(requests))
	for _, req := range requests {
		result = append(result, ToRequestResponse(req))
	}
	return result
}

type BalanceResponse struct {
	EmployeeID string `json:"employee_id"`

	AnnualLeaveBalance        decimal.Decimal `json:"annual_leave_balance"`
	SickLeaveBalance          decimal.Decimal `json:"sick_leave_balance"`
	MaternityLeaveBalance     decimal.Decimal `json:"maternity_leave_balance"`
	PaternityLeaveBalance     decimal.Decimal `json:"paternity_leave_balance"`
	CompassionateLeaveBalance decimal.Decimal `json:"compassionate_leave_balance"`
	PersonalLeaveBalance      decimal.Decimal `json:"personal_leave_balance"`
	EmergencyLeaveBalance     decimal.Decimal `json:"emergency_leave_balance"`
	UnpaidLeaveBalance        decimal.Decimal `json:"unpaid_leave_balance"`
	OtherLeaveBalance         decimal.Decimal `json:"other_leave_balance"`
}

func ToBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:                b.EmployeeID,
		AnnualLeaveBalance:        b.AnnualLeaveBalance,
		SickLeaveBalance:          b.SickLeaveBalance,
		MaternityLeaveBalance:     b.MaternityLeaveBalance,
		PaternityLeaveBalance:     b.PaternityLeaveBalance,
		CompassionateLeaveBalance: b.CompassionateLeaveBalance,
		PersonalLeaveBalance:      b.PersonalLeaveBalance,
		EmergencyLeaveBalance:     b.EmergencyLeaveBalance,
		UnpaidLeaveBalance:        b.UnpaidLeaveBalance,
		OtherLeaveBalance:         b.OtherLeaveBalance,
	}
}

type AccrualRunResponse struct {
	RunDate  string `json:"run_date"`
	Accrued  int    `json:"accrued"`
	Skipped  int    `json:"skipped"`
	Failures int    `json:"failures"`
}
