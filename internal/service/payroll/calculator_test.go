package payroll

import (
	"testing"

	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/hraxis/hr-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func components(basic, housing, transport, other string) salary.Components {
	in := salary.ComponentInput{
		BasicSalary:        dec(basic),
		HousingAllowance:   dec(housing),
		TransportAllowance: dec(transport),
		OtherAllowance:     dec(other),
	}
	return salary.Components{
		BasicSalary:        in.BasicSalary,
		HousingAllowance:   in.HousingAllowance,
		TransportAllowance: in.TransportAllowance,
		OtherAllowance:     in.OtherAllowance,
		GrossSalary:        in.Gross(),
	}
}

func TestComputeFullMonthWithOvertimeAndDeductions(t *testing.T) {
	// basic 5000, gross 7800, 2 holiday overtime days, 1 normal overtime
	// day, 1 unpaid day, 100 other deductions.
	c := components("5000", "1500", "800", "500")

	b, err := Compute(c, payroll.Adjustments{
		TotalWorkableDays:  30,
		OvertimeDays:       2,
		NormalOvertimeDays: 1,
		UnpaidDays:         1,
		OtherDeductions:    dec("100"),
	})
	require.NoError(t, err)

	assert.Equal(t, "500.00", b.OvertimeAmount.StringFixed(2))
	assert.Equal(t, "208.33", b.NormalOvertimeAmount.StringFixed(2))
	assert.Equal(t, "166.67", b.UnpaidAmount.StringFixed(2))
	assert.Equal(t, "166.67", b.DailySalary.StringFixed(2))
	assert.Equal(t, "8241.66", b.Total.StringFixed(2))
}

func TestComputeFullMonthNoAdjustments(t *testing.T) {
	c := components("5000", "1500", "800", "500")

	b, err := Compute(c, payroll.Adjustments{TotalWorkableDays: 30})
	require.NoError(t, err)

	assert.True(t, b.Total.Equal(dec("7800")), "total = %s", b.Total)
	assert.True(t, b.OvertimeAmount.IsZero())
	assert.True(t, b.NormalOvertimeAmount.IsZero())
	assert.True(t, b.UnpaidAmount.IsZero())
}

func TestComputeProratedMonth(t *testing.T) {
	// 20 of 30 workable days pays two thirds of gross.
	c := components("3000", "600", "300", "100")

	b, err := Compute(c, payroll.Adjustments{TotalWorkableDays: 20})
	require.NoError(t, err)

	// 4000 / 30 * 20 = 2666.666... -> 2666.67
	assert.Equal(t, "2666.67", b.Total.StringFixed(2))
}

func TestComputeOvertimePricedAgainstBasicNotGross(t *testing.T) {
	withAllowances := components("3000", "900", "600", "0")
	basicOnly := components("3000", "0", "0", "0")

	adj := payroll.Adjustments{TotalWorkableDays: 30, OvertimeDays: 3}

	a, err := Compute(withAllowances, adj)
	require.NoError(t, err)
	b, err := Compute(basicOnly, adj)
	require.NoError(t, err)

	assert.True(t, a.OvertimeAmount.Equal(b.OvertimeAmount),
		"allowances must not change the overtime rate: %s vs %s", a.OvertimeAmount, b.OvertimeAmount)
	// daily basic 100, 3 days at 1.5x
	assert.Equal(t, "450.00", a.OvertimeAmount.StringFixed(2))
}

func TestComputeOvertimeScalesLinearly(t *testing.T) {
	// Daily basic of 100 keeps every term exact, so doubling the days must
	// double the contribution to the cent.
	c := components("3000", "1000", "500", "0")

	one, err := Compute(c, payroll.Adjustments{TotalWorkableDays: 30, NormalOvertimeDays: 1})
	require.NoError(t, err)
	two, err := Compute(c, payroll.Adjustments{TotalWorkableDays: 30, NormalOvertimeDays: 2})
	require.NoError(t, err)
	none, err := Compute(c, payroll.Adjustments{TotalWorkableDays: 30})
	require.NoError(t, err)

	oneDelta := one.Total.Sub(none.Total)
	twoDelta := two.Total.Sub(none.Total)
	assert.True(t, twoDelta.Equal(oneDelta.Mul(dec("2"))),
		"1 day adds %s, 2 days add %s", oneDelta, twoDelta)
	assert.Equal(t, "125.00", oneDelta.StringFixed(2))
}

func TestComputeDailyRateNotPreRounded(t *testing.T) {
	// 5000/30 = 166.666...; pre-rounding to 166.67 would price 3 holiday
	// overtime days at 750.02 instead of 750.00.
	c := components("5000", "0", "0", "0")

	b, err := Compute(c, payroll.Adjustments{TotalWorkableDays: 30, OvertimeDays: 3})
	require.NoError(t, err)

	assert.Equal(t, "750.00", b.OvertimeAmount.StringFixed(2))
}

func TestComputeIsDeterministic(t *testing.T) {
	c := components("5234.56", "1200.50", "350.25", "99.99")
	adj := payroll.Adjustments{
		TotalWorkableDays:  27,
		OvertimeDays:       4,
		NormalOvertimeDays: 2,
		UnpaidDays:         3,
		OtherDeductions:    dec("75.50"),
	}

	first, err := Compute(c, adj)
	require.NoError(t, err)
	second, err := Compute(c, adj)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.OvertimeAmount.Equal(second.OvertimeAmount))
	assert.True(t, first.UnpaidAmount.Equal(second.UnpaidAmount))
}

func TestComputeRejectsInvalidWorkableDays(t *testing.T) {
	c := components("5000", "0", "0", "0")

	for _, days := range []int{0, -1, 31} {
		_, err := Compute(c, payroll.Adjustments{TotalWorkableDays: days})
		assert.ErrorIs(t, err, payroll.ErrInvalidWorkableDays, "days=%d", days)
	}
}
