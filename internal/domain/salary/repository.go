package salary

import "context"

type ComponentsRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Components, error)
	// Upsert replaces all four components and the derived gross in one write.
	Upsert(ctx context.Context, c Components) (Components, error)
}

type RevisionRepository interface {
	Create(ctx context.Context, rev Revision) (Revision, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Revision, error)
}
