package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
	Update(ctx context.Context, record Record) (Record, error)
}
