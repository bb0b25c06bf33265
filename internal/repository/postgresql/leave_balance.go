package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type LeaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) *LeaveBalanceRepository {
	return &LeaveBalanceRepository{db: db}
}

func (r *LeaveBalanceRepository) Create(ctx context.Context, b leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_balances (
			id, employee_id,
			annual_leave_balance, sick_leave_balance, maternity_leave_balance,
			paternity_leave_balance, compassionate_leave_balance, personal_leave_balance,
			emergency_leave_balance, unpaid_leave_balance, other_leave_balance,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		b.ID, b.EmployeeID,
		b.AnnualLeaveBalance, b.SickLeaveBalance, b.MaternityLeaveBalance,
		b.PaternityLeaveBalance, b.CompassionateLeaveBalance, b.PersonalLeaveBalance,
		b.EmergencyLeaveBalance, b.UnpaidLeaveBalance, b.OtherLeaveBalance,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return b, nil
}

func (r *LeaveBalanceRepository) GetByEmployeeID(ctx context.Context, employeeID string) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id,
		       annual_leave_balance, sick_leave_balance, maternity_leave_balance,
		       paternity_leave_balance, compassionate_leave_balance, personal_leave_balance,
		       emergency_leave_balance, unpaid_leave_balance, other_leave_balance,
		       created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&b.ID, &b.EmployeeID,
		&b.AnnualLeaveBalance, &b.SickLeaveBalance, &b.MaternityLeaveBalance,
		&b.PaternityLeaveBalance, &b.CompassionateLeaveBalance, &b.PersonalLeaveBalance,
		&b.EmergencyLeaveBalance, &b.UnpaidLeaveBalance, &b.OtherLeaveBalance,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

func (r *LeaveBalanceRepository) Update(ctx context.Context, b leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances SET
			annual_leave_balance = $2,
			sick_leave_balance = $3,
			maternity_leave_balance = $4,
			paternity_leave_balance = $5,
			compassionate_leave_balance = $6,
			personal_leave_balance = $7,
			emergency_leave_balance = $8,
			unpaid_leave_balance = $9,
			other_leave_balance = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := q.QueryRow(ctx, query,
		b.ID,
		b.AnnualLeaveBalance, b.SickLeaveBalance, b.MaternityLeaveBalance,
		b.PaternityLeaveBalance, b.CompassionateLeaveBalance, b.PersonalLeaveBalance,
		b.EmergencyLeaveBalance, b.UnpaidLeaveBalance, b.OtherLeaveBalance,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to update leave balance: %w", err)
	}

	return b, nil
}
