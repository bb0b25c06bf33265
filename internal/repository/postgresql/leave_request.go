package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type LeaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
	       lr.days_taken, lr.reason, lr.status, lr.applied_on, lr.approved_on,
	       lr.approved_by, lr.remarks, lr.created_at, lr.updated_at,
	       e.first_name || ' ' || e.last_name
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.DaysTaken, &req.Reason, &req.Status, &req.AppliedOn, &req.ApprovedOn,
		&req.ApprovedBy, &req.Remarks, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, days_taken,
			reason, status, applied_on, approved_on, approved_by, remarks,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.DaysTaken,
		req.Reason, req.Status, req.AppliedOn, req.ApprovedOn, req.ApprovedBy, req.Remarks,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *LeaveRequestRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE lr.employee_id = $1 ORDER BY lr.applied_on DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` ORDER BY lr.applied_on DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *LeaveRequestRepository) Update(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2,
			approved_on = $3,
			approved_by = $4,
			remarks = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := q.QueryRow(ctx, query,
		req.ID, req.Status, req.ApprovedOn, req.ApprovedBy, req.Remarks,
	).Scan(&req.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return req, nil
}
