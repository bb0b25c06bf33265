package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// FullMonthWorkableDays is the payroll month basis. A record with fewer
// workable days is prorated over the same 30-day month.
const FullMonthWorkableDays = 30

// Overtime multipliers against the daily basic salary.
var (
	HolidayOvertimeRate = decimal.RequireFromString("1.5")
	NormalOvertimeRate  = decimal.RequireFromString("1.25")
)

// Record is one employee-month of payroll. The identity (employee, month,
// year) is unique and immutable; the adjustment fields are mutable and every
// mutation triggers recomputation of the derived figures.
type Record struct {
	ID                   string
	EmployeeID           string
	Month                int
	Year                 int
	TotalWorkableDays    int
	OvertimeDays         int
	OvertimeAmount       decimal.Decimal
	NormalOvertimeDays   int
	NormalOvertimeAmount decimal.Decimal
	UnpaidDays           int
	UnpaidAmount         decimal.Decimal
	OtherDeductions      decimal.Decimal
	CurrentBasicSalary   decimal.Decimal
	CurrentGrossSalary   decimal.Decimal
	CurrentDailySalary   decimal.Decimal
	TotalSalaryForMonth  decimal.Decimal
	Remarks              *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	EmployeeName *string
}

// Adjustments are the per-month attendance inputs to the calculator.
type Adjustments struct {
	TotalWorkableDays  int
	OvertimeDays       int
	NormalOvertimeDays int
	UnpaidDays         int
	OtherDeductions    decimal.Decimal
}

// Breakdown is the calculator output: every persisted currency figure,
// each rounded half-up to two fraction digits.
type Breakdown struct {
	DailySalary          decimal.Decimal
	OvertimeAmount       decimal.Decimal
	NormalOvertimeAmount decimal.Decimal
	UnpaidAmount         decimal.Decimal
	Total                decimal.Decimal
}
