package payroll

import (
	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/hraxis/hr-backend-go/internal/domain/salary"
	"github.com/hraxis/hr-backend-go/internal/pkg/money"
)

// Compute derives every currency figure for one payroll month.
//
// The base pay regime depends on the workable days: a full 30-day month pays
// the gross salary as-is, a shorter month pays the daily gross rate times the
// days worked. Overtime and unpaid deductions are always priced against the
// daily basic rate regardless of regime.
//
// Daily rates are kept at full precision; each output figure is rounded
// half-up to two fraction digits as it is produced, and the total is the sum
// of those rounded figures. Rounding the daily rate first would compound the
// error across multiplied terms.
func Compute(c salary.Components, adj payroll.Adjustments) (payroll.Breakdown, error) {
	if adj.TotalWorkableDays < 1 || adj.TotalWorkableDays > payroll.FullMonthWorkableDays {
		return payroll.Breakdown{}, payroll.ErrInvalidWorkableDays
	}

	dailyBasic := money.DailyRate(c.BasicSalary)

	overtime := money.RoundHalfUp(
		dailyBasic.Mul(payroll.HolidayOvertimeRate).Mul(money.FromInt(adj.OvertimeDays)))
	normalOvertime := money.RoundHalfUp(
		dailyBasic.Mul(payroll.NormalOvertimeRate).Mul(money.FromInt(adj.NormalOvertimeDays)))
	unpaid := money.RoundHalfUp(
		dailyBasic.Mul(money.FromInt(adj.UnpaidDays)))

	base := c.GrossSalary
	if adj.TotalWorkableDays < payroll.FullMonthWorkableDays {
		base = money.RoundHalfUp(
			money.DailyRate(c.GrossSalary).Mul(money.FromInt(adj.TotalWorkableDays)))
	}

	total := base.
		Add(overtime).
		Add(normalOvertime).
		Sub(unpaid).
		Sub(adj.OtherDeductions)

	return payroll.Breakdown{
		DailySalary:          money.RoundHalfUp(dailyBasic),
		OvertimeAmount:       overtime,
		NormalOvertimeAmount: normalOvertime,
		UnpaidAmount:         unpaid,
		Total:                money.RoundHalfUp(total),
	}, nil
}
