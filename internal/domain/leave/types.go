package leave

import "github.com/shopspring/decimal"

// MonthlyAccrualDays is the fixed amount credited to the annual leave
// balance once per calendar month per employee.
var MonthlyAccrualDays = decimal.RequireFromString("2.5")

type Type string

const (
	TypeAnnual        Type = "Annual"
	TypeSick          Type = "Sick"
	TypeUnpaid        Type = "Unpaid"
	TypeMaternity     Type = "Maternity"
	TypePaternity     Type = "Paternity"
	TypeCompassionate Type = "Compassionate"
	TypePersonal      Type = "Personal Leave"
	TypeEmergency     Type = "Emergency Leave"
	TypeOther         Type = "Other"
)

// BalanceField selects one of the per-category counters on a LeaveBalance.
type BalanceField string

const (
	FieldAnnual        BalanceField = "annual_leave_balance"
	FieldSick          BalanceField = "sick_leave_balance"
	FieldUnpaid        BalanceField = "unpaid_leave_balance"
	FieldMaternity     BalanceField = "maternity_leave_balance"
	FieldPaternity     BalanceField = "paternity_leave_balance"
	FieldCompassionate BalanceField = "compassionate_leave_balance"
	FieldPersonal      BalanceField = "personal_leave_balance"
	FieldEmergency     BalanceField = "emergency_leave_balance"
	FieldOther         BalanceField = "other_leave_balance"
)

// balanceFieldByType is the single owner of the leave-type to balance-field
// mapping; everything that needs it goes through BalanceFieldFor.
var balanceFieldByType = map[Type]BalanceField{
	TypeAnnual:        FieldAnnual,
	TypeSick:          FieldSick,
	TypeUnpaid:        FieldUnpaid,
	TypeMaternity:     FieldMaternity,
	TypePaternity:     FieldPaternity,
	TypeCompassionate: FieldCompassionate,
	TypePersonal:      FieldPersonal,
	TypeEmergency:     FieldEmergency,
	TypeOther:         FieldOther,
}

// BalanceFieldFor resolves the balance counter for a leave type. The second
// return is false for unrecognized types.
func BalanceFieldFor(t Type) (BalanceField, bool) {
	f, ok := balanceFieldByType[t]
	return f, ok
}

// Types lists every recognized leave type.
func Types() []Type {
	return []Type{
		TypeAnnual, TypeSick, TypeUnpaid, TypeMaternity, TypePaternity,
		TypeCompassionate, TypePersonal, TypeEmergency, TypeOther,
	}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Remark strings persisted on leave requests. The exact wording is part of
// the API surface; clients and reports match on it.
const (
	RemarkAwaitingApproval   = "Awaiting approval"
	RemarkAutoApproved       = "Auto-approved by staff"
	RemarkAutoApprovedUnpaid = "Auto-approved by staff for unpaid leave"
	RemarkNotEnoughBalance   = "Not enough leave balance"
	RemarkBalanceNotFound    = "Leave balance not found"
	RemarkInvalidLeaveType   = "Invalid leave type"
	RemarkApproved           = "Approved"
	RemarkRejected           = "Rejected"
)
