package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type LeaveAccrualRepository struct {
	db *database.DB
}

func NewLeaveAccrualRepository(db *database.DB) *LeaveAccrualRepository {
	return &LeaveAccrualRepository{db: db}
}

func (r *LeaveAccrualRepository) Create(ctx context.Context, a leave.Accrual) (leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_accruals (id, employee_id, leave_balance, last_accrued_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query, a.ID, a.EmployeeID, a.LeaveBalance, a.LastAccruedDate).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return leave.Accrual{}, fmt.Errorf("failed to create leave accrual: %w", err)
	}

	return a, nil
}

func (r *LeaveAccrualRepository) GetByEmployeeID(ctx context.Context, employeeID string) (leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_balance, last_accrued_date, created_at, updated_at
		FROM leave_accruals
		WHERE employee_id = $1`

	var a leave.Accrual
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.LeaveBalance, &a.LastAccruedDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Accrual{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.Accrual{}, fmt.Errorf("failed to get leave accrual: %w", err)
	}

	return a, nil
}

func (r *LeaveAccrualRepository) List(ctx context.Context) ([]leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_balance, last_accrued_date, created_at, updated_at
		FROM leave_accruals
		ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave accruals: %w", err)
	}
	defer rows.Close()

	var accruals []leave.Accrual
	for rows.Next() {
		var a leave.Accrual
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.LeaveBalance, &a.LastAccruedDate, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave accrual: %w", err)
		}
		accruals = append(accruals, a)
	}

	return accruals, rows.Err()
}

func (r *LeaveAccrualRepository) Update(ctx context.Context, a leave.Accrual) (leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_accruals SET
			leave_balance = $2,
			last_accrued_date = $3,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := q.QueryRow(ctx, query, a.ID, a.LeaveBalance, a.LastAccruedDate).Scan(&a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Accrual{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.Accrual{}, fmt.Errorf("failed to update leave accrual: %w", err)
	}

	return a, nil
}
