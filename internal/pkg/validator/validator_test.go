package validator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@example.com"))
	assert.False(t, IsValidEmail("jane@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidDateRange(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsValidDateRange(start, start))
	assert.True(t, IsValidDateRange(start, start.AddDate(0, 0, 3)))
	assert.False(t, IsValidDateRange(start, start.AddDate(0, 0, -1)))
}

func TestIsValidMonthYear(t *testing.T) {
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))

	assert.True(t, IsValidYear(2024))
	assert.False(t, IsValidYear(1899))
	assert.False(t, IsValidYear(2101))
}

func TestIsNonNegativeAmount(t *testing.T) {
	assert.True(t, IsNonNegativeAmount(decimal.Zero))
	assert.True(t, IsNonNegativeAmount(decimal.RequireFromString("10.50")))
	assert.False(t, IsNonNegativeAmount(decimal.RequireFromString("-0.01")))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "basic_salary", Message: "must be non-negative"},
		{Field: "month", Message: "must be between 1 and 12"},
	}

	m := errs.ToMap()
	assert.Equal(t, "must be non-negative", m["basic_salary"])
	assert.Contains(t, errs.Error(), "month: must be between 1 and 12")
}
