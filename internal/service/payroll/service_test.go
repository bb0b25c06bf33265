package payroll

import (
	"testing"

	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingRecord() payroll.Record {
	comps := components("5000", "1500", "800", "500")
	return payroll.Record{
		ID:                  "rec-1",
		EmployeeID:          "emp-1",
		Month:               3,
		Year:                2026,
		TotalWorkableDays:   payroll.FullMonthWorkableDays,
		CurrentBasicSalary:  comps.BasicSalary,
		CurrentGrossSalary:  comps.GrossSalary,
		TotalSalaryForMonth: dec("7800"),
	}
}

func TestApplyUpdateUsesCurrentSalaryComponents(t *testing.T) {
	record := existingRecord()

	// A revision landed after the record was created: basic 6000, gross 9300.
	revised := components("6000", "2000", "800", "500")

	overtime := 2
	updated, err := applyUpdate(record, revised, payroll.UpdateRecordRequest{
		ID:           record.ID,
		OvertimeDays: &overtime,
	})
	require.NoError(t, err)

	assert.Equal(t, "6000.00", updated.CurrentBasicSalary.StringFixed(2))
	assert.Equal(t, "9300.00", updated.CurrentGrossSalary.StringFixed(2))
	// Overtime priced against the revised basic: 6000/30 * 1.5 * 2 = 600.
	assert.Equal(t, "600.00", updated.OvertimeAmount.StringFixed(2))
	assert.Equal(t, "9900.00", updated.TotalSalaryForMonth.StringFixed(2))
}

func TestApplyUpdateKeepsUnpatchedAdjustments(t *testing.T) {
	record := existingRecord()
	record.UnpaidDays = 1
	remarks := "late submission"
	record.Remarks = &remarks

	deductions := dec("100")
	updated, err := applyUpdate(record, components("5000", "1500", "800", "500"), payroll.UpdateRecordRequest{
		ID:              record.ID,
		OtherDeductions: &deductions,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.UnpaidDays)
	require.NotNil(t, updated.Remarks)
	assert.Equal(t, "late submission", *updated.Remarks)
	// gross 7800 - one unpaid day 166.67 - 100 deductions.
	assert.Equal(t, "7533.33", updated.TotalSalaryForMonth.StringFixed(2))
}

func TestApplyUpdateRejectsInvalidWorkableDays(t *testing.T) {
	record := existingRecord()

	days := 0
	_, err := applyUpdate(record, components("5000", "1500", "800", "500"), payroll.UpdateRecordRequest{
		ID:                record.ID,
		TotalWorkableDays: &days,
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidWorkableDays)
}
