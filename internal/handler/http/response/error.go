package response

import (
	"errors"
	"net/http"

	"github.com/hraxis/hr-backend-go/internal/domain/auth"
	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/hraxis/hr-backend-go/internal/domain/salary"
	"github.com/hraxis/hr-backend-go/internal/domain/user"
	"github.com/hraxis/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Staff privilege required")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryDetailsNotFound):
		NotFound(w, "Salary details not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrDuplicatePayrollPeriod):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrMissingSalaryDetails):
		BadRequest(w, "Salary details for this employee are not defined", nil)
	case errors.Is(err, payroll.ErrInvalidWorkableDays):
		BadRequest(w, "Total workable days must be between 1 and 30", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
