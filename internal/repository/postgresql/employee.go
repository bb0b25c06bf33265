package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `
	id, user_id, first_name, last_name, date_of_birth, place_of_birth,
	nationality, gender, marital_status, phone_number, email, address,
	joining_date, designation, department, qualification, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.FirstName, &e.LastName, &e.DateOfBirth, &e.PlaceOfBirth,
		&e.Nationality, &e.Gender, &e.MaritalStatus, &e.PhoneNumber, &e.Email, &e.Address,
		&e.JoiningDate, &e.Designation, &e.Department, &e.Qualification, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, user_id, first_name, last_name, date_of_birth, place_of_birth,
			nationality, gender, marital_status, phone_number, email, address,
			joining_date, designation, department, qualification, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.UserID, emp.FirstName, emp.LastName, emp.DateOfBirth, emp.PlaceOfBirth,
		emp.Nationality, emp.Gender, emp.MaritalStatus, emp.PhoneNumber, emp.Email, emp.Address,
		emp.JoiningDate, emp.Designation, emp.Department, emp.Qualification,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *EmployeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE user_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *EmployeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			phone_number = COALESCE($4, phone_number),
			address = COALESCE($5, address),
			designation = COALESCE($6, designation),
			department = COALESCE($7, department),
			marital_status = COALESCE($8, marital_status),
			qualification = COALESCE($9, qualification),
			updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		req.ID, req.FirstName, req.LastName, req.PhoneNumber, req.Address,
		req.Designation, req.Department, req.MaritalStatus, req.Qualification,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *EmployeeRepository) LinkUser(ctx context.Context, employeeID, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET user_id = $2, updated_at = NOW() WHERE id = $1`, employeeID, userID)
	if err != nil {
		return fmt.Errorf("failed to link user to employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
