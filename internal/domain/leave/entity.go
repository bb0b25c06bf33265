package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance holds one decimal counter per leave category for an employee.
// Every counter stays >= 0; a debit that would go negative is rejected
// before anything is persisted.
type Balance struct {
	ID         string
	EmployeeID string

	AnnualLeaveBalance        decimal.Decimal
	SickLeaveBalance          decimal.Decimal
	MaternityLeaveBalance     decimal.Decimal
	PaternityLeaveBalance     decimal.Decimal
	CompassionateLeaveBalance decimal.Decimal
	PersonalLeaveBalance      decimal.Decimal
	EmergencyLeaveBalance     decimal.Decimal
	UnpaidLeaveBalance        decimal.Decimal
	OtherLeaveBalance         decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Get returns the counter selected by f.
func (b *Balance) Get(f BalanceField) decimal.Decimal {
	switch f {
	case FieldAnnual:
		return b.AnnualLeaveBalance
	case FieldSick:
		return b.SickLeaveBalance
	case FieldMaternity:
		return b.MaternityLeaveBalance
	case FieldPaternity:
		return b.PaternityLeaveBalance
	case FieldCompassionate:
		return b.CompassionateLeaveBalance
	case FieldPersonal:
		return b.PersonalLeaveBalance
	case FieldEmergency:
		return b.EmergencyLeaveBalance
	case FieldUnpaid:
		return b.UnpaidLeaveBalance
	case FieldOther:
		return b.OtherLeaveBalance
	}
	return decimal.Zero
}

// Set overwrites the counter selected by f.
func (b *Balance) Set(f BalanceField, v decimal.Decimal) {
	switch f {
	case FieldAnnual:
		b.AnnualLeaveBalance = v
	case FieldSick:
		b.SickLeaveBalance = v
	case FieldMaternity:
		b.MaternityLeaveBalance = v
	case FieldPaternity:
		b.PaternityLeaveBalance = v
	case FieldCompassionate:
		b.CompassionateLeaveBalance = v
	case FieldPersonal:
		b.PersonalLeaveBalance = v
	case FieldEmergency:
		b.EmergencyLeaveBalance = v
	case FieldUnpaid:
		b.UnpaidLeaveBalance = v
	case FieldOther:
		b.OtherLeaveBalance = v
	}
}

// Request is a leave request moving through Pending -> Approved/Rejected.
// The balance debit happens exactly once, on the Pending -> Approved
// transition, and never for Unpaid leave.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	DaysTaken  decimal.Decimal
	Reason     *string
	Status     Status
	AppliedOn  time.Time
	ApprovedOn *time.Time
	ApprovedBy *string
	Remarks    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Accrual tracks the monthly annual-leave credit for one employee.
// LastAccruedDate strictly advances; the mirror counter shadows the total
// accrued so far.
type Accrual struct {
	ID              string
	EmployeeID      string
	LeaveBalance    decimal.Decimal
	LastAccruedDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DaysBetween is the inclusive day count between two dates: a single-day
// leave (start == end) is one day.
func DaysBetween(start, end time.Time) decimal.Decimal {
	days := int(end.Sub(start).Hours()/24) + 1
	return decimal.NewFromInt(int64(days))
}
