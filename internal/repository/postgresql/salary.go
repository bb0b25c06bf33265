package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hraxis/hr-backend-go/internal/domain/salary"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type SalaryComponentsRepository struct {
	db *database.DB
}

func NewSalaryComponentsRepository(db *database.DB) *SalaryComponentsRepository {
	return &SalaryComponentsRepository{db: db}
}

func (r *SalaryComponentsRepository) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Components, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary, housing_allowance, transport_allowance,
		       other_allowance, gross_salary, created_at, updated_at
		FROM salary_details
		WHERE employee_id = $1`

	var c salary.Components
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&c.ID, &c.EmployeeID, &c.BasicSalary, &c.HousingAllowance, &c.TransportAllowance,
		&c.OtherAllowance, &c.GrossSalary, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Components{}, salary.ErrSalaryDetailsNotFound
		}
		return salary.Components{}, fmt.Errorf("failed to get salary details: %w", err)
	}

	return c, nil
}

func (r *SalaryComponentsRepository) Upsert(ctx context.Context, c salary.Components) (salary.Components, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query := `
		INSERT INTO salary_details (
			id, employee_id, basic_salary, housing_allowance, transport_allowance,
			other_allowance, gross_salary, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			housing_allowance = EXCLUDED.housing_allowance,
			transport_allowance = EXCLUDED.transport_allowance,
			other_allowance = EXCLUDED.other_allowance,
			gross_salary = EXCLUDED.gross_salary,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		c.ID, c.EmployeeID, c.BasicSalary, c.HousingAllowance, c.TransportAllowance,
		c.OtherAllowance, c.GrossSalary,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return salary.Components{}, fmt.Errorf("failed to upsert salary details: %w", err)
	}

	return c, nil
}

type SalaryRevisionRepository struct {
	db *database.DB
}

func NewSalaryRevisionRepository(db *database.DB) *SalaryRevisionRepository {
	return &SalaryRevisionRepository{db: db}
}

func (r *SalaryRevisionRepository) Create(ctx context.Context, rev salary.Revision) (salary.Revision, error) {
	q := GetQuerier(ctx, r.db)

	if rev.ID == "" {
		rev.ID = uuid.New().String()
	}

	query := `
		INSERT INTO salary_revisions (
			id, employee_id,
			revised_basic_salary, revised_housing_allowance, revised_transport_allowance,
			revised_other_allowance, revised_gross_salary,
			previous_basic_salary, previous_housing_allowance, previous_transport_allowance,
			previous_other_allowance, previous_gross_salary,
			effective_from, revision_reason, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING created_at`

	err := q.QueryRow(ctx, query,
		rev.ID, rev.EmployeeID,
		rev.RevisedBasicSalary, rev.RevisedHousingAllowance, rev.RevisedTransportAllowance,
		rev.RevisedOtherAllowance, rev.RevisedGrossSalary,
		rev.PreviousBasicSalary, rev.PreviousHousingAllowance, rev.PreviousTransportAllowance,
		rev.PreviousOtherAllowance, rev.PreviousGrossSalary,
		rev.EffectiveFrom, rev.RevisionReason,
	).Scan(&rev.CreatedAt)
	if err != nil {
		return salary.Revision{}, fmt.Errorf("failed to create salary revision: %w", err)
	}

	return rev, nil
}

func (r *SalaryRevisionRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]salary.Revision, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id,
		       revised_basic_salary, revised_housing_allowance, revised_transport_allowance,
		       revised_other_allowance, revised_gross_salary,
		       previous_basic_salary, previous_housing_allowance, previous_transport_allowance,
		       previous_other_allowance, previous_gross_salary,
		       effective_from, revision_reason, created_at
		FROM salary_revisions
		WHERE employee_id = $1
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary revisions: %w", err)
	}
	defer rows.Close()

	var revisions []salary.Revision
	for rows.Next() {
		var rev salary.Revision
		err := rows.Scan(
			&rev.ID, &rev.EmployeeID,
			&rev.RevisedBasicSalary, &rev.RevisedHousingAllowance, &rev.RevisedTransportAllowance,
			&rev.RevisedOtherAllowance, &rev.RevisedGrossSalary,
			&rev.PreviousBasicSalary, &rev.PreviousHousingAllowance, &rev.PreviousTransportAllowance,
			&rev.PreviousOtherAllowance, &rev.PreviousGrossSalary,
			&rev.EffectiveFrom, &rev.RevisionReason, &rev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary revision: %w", err)
		}
		revisions = append(revisions, rev)
	}

	return revisions, rows.Err()
}
