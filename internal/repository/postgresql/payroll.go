package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PayrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

const payrollSelect = `
	SELECT p.id, p.employee_id, p.month, p.year, p.total_workable_days,
	       p.overtime_days, p.overtime_amount, p.normal_overtime_days, p.normal_overtime_amount,
	       p.unpaid_days, p.unpaid_amount, p.other_deductions,
	       p.current_basic_salary, p.current_gross_salary, p.current_daily_salary,
	       p.total_salary_for_month, p.remarks, p.created_at, p.updated_at,
	       e.first_name || ' ' || e.last_name
	FROM payroll_records p
	JOIN employees e ON e.id = p.employee_id`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.TotalWorkableDays,
		&rec.OvertimeDays, &rec.OvertimeAmount, &rec.NormalOvertimeDays, &rec.NormalOvertimeAmount,
		&rec.UnpaidDays, &rec.UnpaidAmount, &rec.OtherDeductions,
		&rec.CurrentBasicSalary, &rec.CurrentGrossSalary, &rec.CurrentDailySalary,
		&rec.TotalSalaryForMonth, &rec.Remarks, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

func (r *PayrollRepository) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, year, total_workable_days,
			overtime_days, overtime_amount, normal_overtime_days, normal_overtime_amount,
			unpaid_days, unpaid_amount, other_deductions,
			current_basic_salary, current_gross_salary, current_daily_salary,
			total_salary_for_month, remarks, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Month, record.Year, record.TotalWorkableDays,
		record.OvertimeDays, record.OvertimeAmount, record.NormalOvertimeDays, record.NormalOvertimeAmount,
		record.UnpaidDays, record.UnpaidAmount, record.OtherDeductions,
		record.CurrentBasicSalary, record.CurrentGrossSalary, record.CurrentDailySalary,
		record.TotalSalaryForMonth, record.Remarks,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Record{}, payroll.ErrDuplicatePayrollPeriod
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *PayrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, payrollSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *PayrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + ` WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record for period: %w", err)
	}

	return rec, nil
}

func (r *PayrollRepository) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + `
		WHERE ($1::uuid IS NULL OR p.employee_id = $1)
		  AND ($2::int IS NULL OR p.month = $2)
		  AND ($3::int IS NULL OR p.year = $3)
		ORDER BY p.year DESC, p.month DESC, e.first_name`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Month, filter.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *PayrollRepository) Update(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records SET
			total_workable_days = $2,
			overtime_days = $3,
			overtime_amount = $4,
			normal_overtime_days = $5,
			normal_overtime_amount = $6,
			unpaid_days = $7,
			unpaid_amount = $8,
			other_deductions = $9,
			current_basic_salary = $10,
			current_gross_salary = $11,
			current_daily_salary = $12,
			total_salary_for_month = $13,
			remarks = $14,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := q.QueryRow(ctx, query,
		record.ID, record.TotalWorkableDays,
		record.OvertimeDays, record.OvertimeAmount, record.NormalOvertimeDays, record.NormalOvertimeAmount,
		record.UnpaidDays, record.UnpaidAmount, record.OtherDeductions,
		record.CurrentBasicSalary, record.CurrentGrossSalary, record.CurrentDailySalary,
		record.TotalSalaryForMonth, record.Remarks,
	).Scan(&record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return record, nil
}
