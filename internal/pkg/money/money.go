package money

import "github.com/shopspring/decimal"

// Currency amounts are carried as arbitrary-precision decimals and only
// rounded when a figure is persisted or returned to a caller. Intermediate
// results (daily rates in particular) must never be pre-rounded, otherwise
// multiplying them back up compounds the rounding error.

// Scale is the number of fraction digits for persisted currency amounts.
const Scale = 2

var thirty = decimal.NewFromInt(30)

// RoundHalfUp rounds half-up to two fraction digits. decimal.Round rounds
// half away from zero, which matches half-up for the non-negative amounts
// this system deals in.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// DailyRate divides a monthly amount by the 30-day payroll month at full
// precision. Callers round only the figures they persist.
func DailyRate(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Div(thirty)
}

// FromInt is a convenience wrapper for whole-number day counts.
func FromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
