package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/hraxis/hr-backend-go/internal/repository/postgresql"
)

// AccrualService credits the monthly annual-leave allowance. It is safe to
// run on any schedule: the per-employee last-accrued month makes a repeat
// run within the same month a no-op.
type AccrualService struct {
	db          *database.DB
	accrualRepo leave.AccrualRepository
	balanceRepo leave.BalanceRepository
	logger      *slog.Logger
	now         func() time.Time
}

func NewAccrualService(
	db *database.DB,
	accrualRepo leave.AccrualRepository,
	balanceRepo leave.BalanceRepository,
	logger *slog.Logger,
) *AccrualService {
	return &AccrualService{
		db:          db,
		accrualRepo: accrualRepo,
		balanceRepo: balanceRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Run processes every accrual record. One employee failing does not stop
// the rest; failures are logged and counted in the summary.
func (s *AccrualService) Run(ctx context.Context) (leave.AccrualRunResponse, error) {
	today := s.now()

	accruals, err := s.accrualRepo.List(ctx)
	if err != nil {
		return leave.AccrualRunResponse{}, err
	}

	summary := leave.AccrualRunResponse{RunDate: today.Format("2006-01-02")}

	for _, accrual := range accruals {
		if !ShouldAccrue(accrual.LastAccruedDate, today) {
			summary.Skipped++
			continue
		}

		if err := s.accrueOne(ctx, accrual, today); err != nil {
			summary.Failures++
			s.logger.Error("leave accrual failed",
				slog.String("employee_id", accrual.EmployeeID),
				slog.Any("error", err),
			)
			continue
		}
		summary.Accrued++
	}

	s.logger.Info("leave accrual run finished",
		slog.String("run_date", summary.RunDate),
		slog.Int("accrued", summary.Accrued),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failures", summary.Failures),
	)

	return summary, nil
}

// accrueOne credits one employee inside its own transaction, so a failure
// here cannot leave the accrual record and the balance out of step.
func (s *AccrualService) accrueOne(ctx context.Context, accrual leave.Accrual, today time.Time) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		balance, err := s.balanceRepo.GetByEmployeeID(txCtx, accrual.EmployeeID)
		if err != nil {
			if !errors.Is(err, leave.ErrLeaveBalanceNotFound) {
				return err
			}
			balance, err = s.balanceRepo.Create(txCtx, leave.Balance{EmployeeID: accrual.EmployeeID})
			if err != nil {
				return err
			}
		}

		balance.AnnualLeaveBalance = balance.AnnualLeaveBalance.Add(leave.MonthlyAccrualDays)
		if _, err := s.balanceRepo.Update(txCtx, balance); err != nil {
			return err
		}

		accrual.LeaveBalance = accrual.LeaveBalance.Add(leave.MonthlyAccrualDays)
		accrual.LastAccruedDate = today
		_, err = s.accrualRepo.Update(txCtx, accrual)
		return err
	})
}
