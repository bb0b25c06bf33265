package salary

import (
	"context"
	"log/slog"
	"time"

	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/domain/salary"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/hraxis/hr-backend-go/internal/repository/postgresql"
)

type Service struct {
	db            *database.DB
	componentRepo salary.ComponentsRepository
	revisionRepo  salary.RevisionRepository
	employeeRepo  employee.EmployeeRepository
	logger        *slog.Logger
}

func NewService(
	db *database.DB,
	componentRepo salary.ComponentsRepository,
	revisionRepo salary.RevisionRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:            db,
		componentRepo: componentRepo,
		revisionRepo:  revisionRepo,
		employeeRepo:  employeeRepo,
		logger:        logger,
	}
}

func (s *Service) GetComponents(ctx context.Context, employeeID string) (salary.Components, error) {
	return s.componentRepo.GetByEmployeeID(ctx, employeeID)
}

// SetComponents writes the salary breakdown for an employee. The gross is
// recomputed from the four inputs on every write; a caller-supplied gross
// is never trusted.
func (s *Service) SetComponents(ctx context.Context, req salary.SetComponentsRequest) (salary.Components, error) {
	if err := req.Validate(); err != nil {
		return salary.Components{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.Components{}, err
	}

	in := req.Input()
	components := salary.Components{
		EmployeeID:         req.EmployeeID,
		BasicSalary:        in.BasicSalary,
		HousingAllowance:   in.HousingAllowance,
		TransportAllowance: in.TransportAllowance,
		OtherAllowance:     in.OtherAllowance,
		GrossSalary:        in.Gross(),
	}

	return s.componentRepo.Upsert(ctx, components)
}

// ApplyRevision snapshots the current components, writes the revision
// record, and republishes the new components, all in one transaction. An
// employee without a salary baseline cannot be revised.
func (s *Service) ApplyRevision(ctx context.Context, req salary.ApplyRevisionRequest) (salary.Revision, error) {
	if err := req.Validate(); err != nil {
		return salary.Revision{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	var created salary.Revision
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		previous, err := s.componentRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		in := req.Input()
		revision := salary.Revision{
			EmployeeID:                 req.EmployeeID,
			RevisedBasicSalary:         in.BasicSalary,
			RevisedHousingAllowance:    in.HousingAllowance,
			RevisedTransportAllowance:  in.TransportAllowance,
			RevisedOtherAllowance:      in.OtherAllowance,
			RevisedGrossSalary:         in.Gross(),
			PreviousBasicSalary:        previous.BasicSalary,
			PreviousHousingAllowance:   previous.HousingAllowance,
			PreviousTransportAllowance: previous.TransportAllowance,
			PreviousOtherAllowance:     previous.OtherAllowance,
			PreviousGrossSalary:        previous.GrossSalary,
			EffectiveFrom:              effectiveFrom,
			RevisionReason:             req.Reason,
		}

		created, err = s.revisionRepo.Create(txCtx, revision)
		if err != nil {
			return err
		}

		previous.BasicSalary = in.BasicSalary
		previous.HousingAllowance = in.HousingAllowance
		previous.TransportAllowance = in.TransportAllowance
		previous.OtherAllowance = in.OtherAllowance
		previous.GrossSalary = in.Gross()

		_, err = s.componentRepo.Upsert(txCtx, previous)
		return err
	})
	if err != nil {
		return salary.Revision{}, err
	}

	s.logger.Info("salary revision applied",
		slog.String("employee_id", created.EmployeeID),
		slog.String("previous_gross", created.PreviousGrossSalary.StringFixed(2)),
		slog.String("revised_gross", created.RevisedGrossSalary.StringFixed(2)),
	)

	return created, nil
}

func (s *Service) ListRevisions(ctx context.Context, employeeID string) ([]salary.Revision, error) {
	return s.revisionRepo.ListByEmployeeID(ctx, employeeID)
}
