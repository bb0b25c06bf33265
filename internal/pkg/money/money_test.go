package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"166.666666", "166.67"},
		{"208.333333", "208.33"},
		{"100.005", "100.01"},
		{"100.004", "100"},
		{"0", "0"},
		{"7800", "7800"},
	}

	for _, c := range cases {
		in := decimal.RequireFromString(c.in)
		assert.True(t, RoundHalfUp(in).Equal(decimal.RequireFromString(c.want)), "round %s", c.in)
	}
}

func TestDailyRateKeepsPrecision(t *testing.T) {
	basic := decimal.RequireFromString("5000.00")
	daily := DailyRate(basic)

	// 3 * (5000/30) must reconstruct 500 exactly once rounded, which a
	// pre-rounded daily rate (166.67) would not (it gives 500.01).
	overtime := RoundHalfUp(daily.Mul(decimal.NewFromInt(3)))
	assert.True(t, overtime.Equal(decimal.RequireFromString("500.00")))

	rounded := RoundHalfUp(daily)
	assert.True(t, rounded.Equal(decimal.RequireFromString("166.67")))
}
