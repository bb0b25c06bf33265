package leave

import "context"

type BalanceRepository interface {
	Create(ctx context.Context, b Balance) (Balance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Balance, error)
	Update(ctx context.Context, b Balance) (Balance, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Request, error)
	List(ctx context.Context) ([]Request, error)
	Update(ctx context.Context, req Request) (Request, error)
}

type AccrualRepository interface {
	Create(ctx context.Context, a Accrual) (Accrual, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Accrual, error)
	List(ctx context.Context) ([]Accrual, error)
	Update(ctx context.Context, a Accrual) (Accrual, error)
}
