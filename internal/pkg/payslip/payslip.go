// Package payslip renders a payroll record as an xlsx payslip.
package payslip

import (
	"fmt"
	"io"
	"time"

	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const sheet = "Payslip"

// Write renders the record and writes the workbook to w.
func Write(w io.Writer, record payroll.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create payslip sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	period := time.Date(record.Year, time.Month(record.Month), 1, 0, 0, 0, 0, time.UTC)

	employeeName := record.EmployeeID
	if record.EmployeeName != nil {
		employeeName = *record.EmployeeName
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Payslip")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", "Employee")
	f.SetCellValue(sheet, "B2", employeeName)
	f.SetCellValue(sheet, "A3", "Period")
	f.SetCellValue(sheet, "B3", period.Format("January 2006"))
	f.SetCellValue(sheet, "A4", "Workable days")
	f.SetCellValue(sheet, "B4", record.TotalWorkableDays)

	rows := [][2]string{
		{"Basic salary", record.CurrentBasicSalary.StringFixed(2)},
		{"Gross salary", record.CurrentGrossSalary.StringFixed(2)},
		{"Daily salary", record.CurrentDailySalary.StringFixed(2)},
		{fmt.Sprintf("Holiday overtime (%d days)", record.OvertimeDays), record.OvertimeAmount.StringFixed(2)},
		{fmt.Sprintf("Normal overtime (%d days)", record.NormalOvertimeDays), record.NormalOvertimeAmount.StringFixed(2)},
		{fmt.Sprintf("Unpaid leave (%d days)", record.UnpaidDays), "-" + record.UnpaidAmount.StringFixed(2)},
		{"Other deductions", "-" + record.OtherDeductions.StringFixed(2)},
	}

	f.SetCellValue(sheet, "A6", "Earnings and deductions")
	f.SetCellStyle(sheet, "A6", "A6", headerStyle)
	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", 7+i), row[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", 7+i), row[1])
	}

	totalRow := 7 + len(rows) + 1
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total for month")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), record.TotalSalaryForMonth.StringFixed(2))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("B%d", totalRow), headerStyle)

	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write payslip: %w", err)
	}

	return nil
}

// Filename builds the attachment name for a record.
func Filename(record payroll.Record) string {
	return fmt.Sprintf("payslip-%04d-%02d.xlsx", record.Year, record.Month)
}
