package leave

import (
	"testing"
	"time"

	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func staffActor() user.Actor {
	staffEmp := "emp-staff"
	return user.Actor{UserID: "user-staff", EmployeeID: &staffEmp, IsStaff: true}
}

func regularActor(employeeID string) user.Actor {
	return user.Actor{UserID: "user-" + employeeID, EmployeeID: &employeeID, IsStaff: false}
}

func balanceWith(field leave.BalanceField, days string) *leave.Balance {
	b := &leave.Balance{EmployeeID: "emp-1"}
	b.Set(field, dec(days))
	return b
}

func TestAdjudicateStaffAutoApprovesWithSufficientBalance(t *testing.T) {
	b := balanceWith(leave.FieldAnnual, "10")

	d := Adjudicate(leave.TypeAnnual, dec("3"), "emp-1", b, staffActor(), now)

	assert.Equal(t, leave.StatusApproved, d.Status)
	assert.Equal(t, leave.RemarkAutoApproved, d.Remarks)
	assert.True(t, d.Debit.Equal(dec("3")))
	assert.Equal(t, leave.FieldAnnual, d.DebitField)
	require.NotNil(t, d.ApprovedBy)
	assert.Equal(t, "user-staff", *d.ApprovedBy)
	require.NotNil(t, d.ApprovedOn)
}

func TestAdjudicateRegularEmployeeGoesPending(t *testing.T) {
	b := balanceWith(leave.FieldAnnual, "10")

	d := Adjudicate(leave.TypeAnnual, dec("3"), "emp-1", b, regularActor("emp-1"), now)

	assert.Equal(t, leave.StatusPending, d.Status)
	assert.Equal(t, leave.RemarkAwaitingApproval, d.Remarks)
	assert.True(t, d.Debit.IsZero())
	assert.Nil(t, d.ApprovedBy)
	assert.Nil(t, d.ApprovedOn)
}

func TestAdjudicateRejectsInsufficientBalance(t *testing.T) {
	b := balanceWith(leave.FieldSick, "1.5")

	d := Adjudicate(leave.TypeSick, dec("2"), "emp-1", b, staffActor(), now)

	assert.Equal(t, leave.StatusRejected, d.Status)
	assert.Equal(t, leave.RemarkNotEnoughBalance, d.Remarks)
	assert.True(t, d.Debit.IsZero())
}

func TestAdjudicateExactBalanceIsApprovable(t *testing.T) {
	b := balanceWith(leave.FieldAnnual, "2")

	d := Adjudicate(leave.TypeAnnual, dec("2"), "emp-1", b, staffActor(), now)

	assert.Equal(t, leave.StatusApproved, d.Status)
	assert.True(t, d.Debit.Equal(dec("2")))
}

func TestAdjudicateRejectsMissingBalance(t *testing.T) {
	d := Adjudicate(leave.TypeAnnual, dec("1"), "emp-1", nil, staffActor(), now)

	assert.Equal(t, leave.StatusRejected, d.Status)
	assert.Equal(t, leave.RemarkBalanceNotFound, d.Remarks)
}

func TestAdjudicateRejectsUnknownLeaveType(t *testing.T) {
	b := balanceWith(leave.FieldAnnual, "10")

	d := Adjudicate(leave.Type("Sabbatical"), dec("1"), "emp-1", b, staffActor(), now)

	assert.Equal(t, leave.StatusRejected, d.Status)
	assert.Equal(t, leave.RemarkInvalidLeaveType, d.Remarks)
}

func TestAdjudicateUnpaidLeave(t *testing.T) {
	t.Run("staff for another employee auto-approves without debit", func(t *testing.T) {
		d := Adjudicate(leave.TypeUnpaid, dec("5"), "emp-1", nil, staffActor(), now)

		assert.Equal(t, leave.StatusApproved, d.Status)
		assert.Equal(t, leave.RemarkAutoApprovedUnpaid, d.Remarks)
		assert.True(t, d.Debit.IsZero(), "unpaid leave must never debit a balance")
	})

	t.Run("staff for themselves stays pending", func(t *testing.T) {
		actor := staffActor()
		d := Adjudicate(leave.TypeUnpaid, dec("5"), *actor.EmployeeID, nil, actor, now)

		assert.Equal(t, leave.StatusPending, d.Status)
		assert.Equal(t, leave.RemarkAwaitingApproval, d.Remarks)
	})

	t.Run("regular employee stays pending", func(t *testing.T) {
		d := Adjudicate(leave.TypeUnpaid, dec("5"), "emp-1", nil, regularActor("emp-1"), now)

		assert.Equal(t, leave.StatusPending, d.Status)
	})

	t.Run("missing balance does not reject unpaid leave", func(t *testing.T) {
		d := Adjudicate(leave.TypeUnpaid, dec("2"), "emp-1", nil, regularActor("emp-1"), now)

		assert.Equal(t, leave.StatusPending, d.Status)
	})
}

func TestDecideApprovalDebitsOnce(t *testing.T) {
	req := leave.Request{
		ID:         "req-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		DaysTaken:  dec("2.5"),
		Status:     leave.StatusPending,
	}
	b := balanceWith(leave.FieldAnnual, "4")

	d := DecideApproval(req, b, staffActor(), now)

	assert.Equal(t, leave.StatusApproved, d.Status)
	assert.True(t, d.Debit.Equal(dec("2.5")))
	assert.Equal(t, leave.FieldAnnual, d.DebitField)
}

func TestDecideApprovalRejectsWhenBalanceDrained(t *testing.T) {
	// Balance dropped below the requested days after submission.
	req := leave.Request{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		DaysTaken:  dec("5"),
		Status:     leave.StatusPending,
	}
	b := balanceWith(leave.FieldAnnual, "3")

	d := DecideApproval(req, b, staffActor(), now)

	assert.Equal(t, leave.StatusRejected, d.Status)
	assert.Equal(t, leave.RemarkNotEnoughBalance, d.Remarks)
	assert.True(t, d.Debit.IsZero())
}

func TestDecideApprovalUnpaidNeverDebits(t *testing.T) {
	req := leave.Request{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeUnpaid,
		DaysTaken:  dec("10"),
		Status:     leave.StatusPending,
	}

	d := DecideApproval(req, nil, staffActor(), now)

	assert.Equal(t, leave.StatusApproved, d.Status)
	assert.True(t, d.Debit.IsZero())
}

func TestShouldAccrue(t *testing.T) {
	tests := []struct {
		name  string
		last  time.Time
		today time.Time
		want  bool
	}{
		{"same month", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), false},
		{"next month", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), true},
		{"year rollover", time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"earlier month of later year", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"clock skew backwards", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), false},
		{"earlier year same month", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldAccrue(tt.last, tt.today))
		})
	}
}

func TestSeedBalanceProratedByTenure(t *testing.T) {
	b := SeedBalance("emp-1", 6)

	assert.Equal(t, "emp-1", b.EmployeeID)
	assert.True(t, b.AnnualLeaveBalance.Equal(dec("15")), "annual = %s", b.AnnualLeaveBalance)
	assert.Equal(t, "7.00", b.SickLeaveBalance.StringFixed(2))
	assert.True(t, b.CompassionateLeaveBalance.Equal(dec("5")))
	assert.True(t, b.PersonalLeaveBalance.Equal(dec("5")))
	assert.True(t, b.EmergencyLeaveBalance.Equal(dec("5")))
	assert.True(t, b.OtherLeaveBalance.Equal(dec("5")))
	assert.True(t, b.MaternityLeaveBalance.IsZero())
	assert.True(t, b.PaternityLeaveBalance.IsZero())
	assert.True(t, b.UnpaidLeaveBalance.IsZero())
}

func TestSeedBalanceNewJoiner(t *testing.T) {
	b := SeedBalance("emp-2", 0)

	assert.True(t, b.AnnualLeaveBalance.IsZero())
	assert.True(t, b.SickLeaveBalance.IsZero())
	assert.True(t, b.CompassionateLeaveBalance.Equal(dec("5")))
}

func TestDaysBetweenInclusive(t *testing.T) {
	start := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, leave.DaysBetween(start, start).Equal(dec("1")), "single-day leave is one day")
	assert.True(t, leave.DaysBetween(start, start.AddDate(0, 0, 4)).Equal(dec("5")))
}
