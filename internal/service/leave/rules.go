package leave

import (
	"time"

	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Decision is the outcome of adjudicating a leave request. DebitField is
// meaningful only when Debit is positive; callers apply the debit and the
// status change in the same transaction.
type Decision struct {
	Status     leave.Status
	Remarks    string
	Debit      decimal.Decimal
	DebitField leave.BalanceField
	ApprovedBy *string
	ApprovedOn *time.Time
}

// Adjudicate decides the initial status of a freshly submitted request.
// balance is nil when the employee has no balance row.
//
// Requests submitted by staff auto-approve, except unpaid leave staff
// request for themselves, which stays pending. Unpaid leave never debits a
// balance. A request that can never be approved (unknown type, missing
// balance, not enough days) is rejected immediately with the reason in
// the remarks.
func Adjudicate(leaveType leave.Type, daysTaken decimal.Decimal, employeeID string, balance *leave.Balance, actor user.Actor, now time.Time) Decision {
	field, known := leave.BalanceFieldFor(leaveType)
	if !known {
		return rejection(leave.RemarkInvalidLeaveType, actor, now)
	}

	if leaveType == leave.TypeUnpaid {
		if actor.IsStaff && !actor.IsSelf(employeeID) {
			return Decision{
				Status:     leave.StatusApproved,
				Remarks:    leave.RemarkAutoApprovedUnpaid,
				ApprovedBy: &actor.UserID,
				ApprovedOn: &now,
			}
		}
		return Decision{Status: leave.StatusPending, Remarks: leave.RemarkAwaitingApproval}
	}

	if balance == nil {
		return rejection(leave.RemarkBalanceNotFound, actor, now)
	}

	if balance.Get(field).LessThan(daysTaken) {
		return rejection(leave.RemarkNotEnoughBalance, actor, now)
	}

	if actor.IsStaff {
		return Decision{
			Status:     leave.StatusApproved,
			Remarks:    leave.RemarkAutoApproved,
			Debit:      daysTaken,
			DebitField: field,
			ApprovedBy: &actor.UserID,
			ApprovedOn: &now,
		}
	}

	return Decision{Status: leave.StatusPending, Remarks: leave.RemarkAwaitingApproval}
}

// DecideApproval adjudicates an explicit approval of a pending request.
// The same balance checks as submission apply, because the balance may have
// been drained since the request was filed; an approval that no longer fits
// flips the request to rejected instead.
func DecideApproval(req leave.Request, balance *leave.Balance, approver user.Actor, now time.Time) Decision {
	field, known := leave.BalanceFieldFor(req.LeaveType)
	if !known {
		return rejection(leave.RemarkInvalidLeaveType, approver, now)
	}

	if req.LeaveType == leave.TypeUnpaid {
		return Decision{
			Status:     leave.StatusApproved,
			Remarks:    leave.RemarkApproved,
			ApprovedBy: &approver.UserID,
			ApprovedOn: &now,
		}
	}

	if balance == nil {
		return rejection(leave.RemarkBalanceNotFound, approver, now)
	}

	if balance.Get(field).LessThan(req.DaysTaken) {
		return rejection(leave.RemarkNotEnoughBalance, approver, now)
	}

	return Decision{
		Status:     leave.StatusApproved,
		Remarks:    leave.RemarkApproved,
		Debit:      req.DaysTaken,
		DebitField: field,
		ApprovedBy: &approver.UserID,
		ApprovedOn: &now,
	}
}

func rejection(remarks string, actor user.Actor, now time.Time) Decision {
	d := Decision{Status: leave.StatusRejected, Remarks: remarks, ApprovedOn: &now}
	if actor.IsStaff {
		d.ApprovedBy = &actor.UserID
	}
	return d
}

// ShouldAccrue reports whether the monthly credit is due: true only when
// today falls in a strictly later calendar month than the last accrual.
// Running the job twice in the same month is a no-op.
func ShouldAccrue(lastAccrued, today time.Time) bool {
	if today.Year() != lastAccrued.Year() {
		return today.Year() > lastAccrued.Year()
	}
	return today.Month() > lastAccrued.Month()
}

// SeedBalance builds the opening balance for a new employee, pro-rated by
// whole months of service. Annual leave accrues at the monthly rate, sick
// leave at 14 days per year; the small categories open with a flat five
// days and the rest with zero.
func SeedBalance(employeeID string, monthsOfService int) leave.Balance {
	months := decimal.NewFromInt(int64(monthsOfService))
	five := decimal.RequireFromString("5.0")
	sickPerMonth := decimal.NewFromInt(14).Div(decimal.NewFromInt(12))

	return leave.Balance{
		EmployeeID:                employeeID,
		AnnualLeaveBalance:        leave.MonthlyAccrualDays.Mul(months),
		SickLeaveBalance:          sickPerMonth.Mul(months).Round(2),
		CompassionateLeaveBalance: five,
		PersonalLeaveBalance:      five,
		EmergencyLeaveBalance:     five,
		OtherLeaveBalance:         five,
		MaternityLeaveBalance:     decimal.Zero,
		PaternityLeaveBalance:     decimal.Zero,
		UnpaidLeaveBalance:        decimal.Zero,
	}
}
