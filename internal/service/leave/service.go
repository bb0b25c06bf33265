package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/domain/user"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/hraxis/hr-backend-go/internal/repository/postgresql"
)

type Service struct {
	db           *database.DB
	requestRepo  leave.RequestRepository
	balanceRepo  leave.BalanceRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
	now          func() time.Time
}

func NewService(
	db *database.DB,
	requestRepo leave.RequestRepository,
	balanceRepo leave.BalanceRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:           db,
		requestRepo:  requestRepo,
		balanceRepo:  balanceRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// SubmitRequest files a leave request and adjudicates it immediately. A
// request that auto-approves debits the balance in the same transaction as
// the insert; a request that can never be approved is persisted as rejected
// with the reason in the remarks, so submission does not fail.
func (s *Service) SubmitRequest(ctx context.Context, req leave.SubmitRequestRequest, actor user.Actor) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.Request{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	now := s.now()

	request := leave.Request{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		DaysTaken:  leave.DaysBetween(start, end),
		Reason:     req.Reason,
		AppliedOn:  now,
	}

	var created leave.Request
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var balance *leave.Balance
		b, err := s.balanceRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		switch {
		case err == nil:
			balance = &b
		case errors.Is(err, leave.ErrLeaveBalanceNotFound):
			// adjudicated as a missing balance
		default:
			return err
		}

		decision := Adjudicate(request.LeaveType, request.DaysTaken, request.EmployeeID, balance, actor, now)

		request.Status = decision.Status
		request.Remarks = decision.Remarks
		request.ApprovedBy = decision.ApprovedBy
		request.ApprovedOn = decision.ApprovedOn

		created, err = s.requestRepo.Create(txCtx, request)
		if err != nil {
			return err
		}

		if decision.Debit.IsPositive() {
			balance.Set(decision.DebitField, balance.Get(decision.DebitField).Sub(decision.Debit))
			if _, err := s.balanceRepo.Update(txCtx, *balance); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.logger.Info("leave request submitted",
		slog.String("employee_id", created.EmployeeID),
		slog.String("leave_type", string(created.LeaveType)),
		slog.String("status", string(created.Status)),
		slog.String("days", created.DaysTaken.String()),
	)

	return created, nil
}

// ApproveRequest moves a pending request to approved, debiting the balance
// in the same transaction. Re-approving an approved request is a no-op; any
// other attempt against a settled request fails.
func (s *Service) ApproveRequest(ctx context.Context, id string, approver user.Actor) (leave.Request, error) {
	var result leave.Request
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.requestRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if request.Status == leave.StatusApproved {
			result = request
			return nil
		}
		if request.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		var balance *leave.Balance
		b, err := s.balanceRepo.GetByEmployeeID(txCtx, request.EmployeeID)
		switch {
		case err == nil:
			balance = &b
		case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		default:
			return err
		}

		// A request that no longer fits the balance is redirected to
		// rejection, with the reason persisted in the remarks.
		decision := DecideApproval(request, balance, approver, s.now())

		request.Status = decision.Status
		request.Remarks = decision.Remarks
		request.ApprovedBy = decision.ApprovedBy
		request.ApprovedOn = decision.ApprovedOn

		result, err = s.requestRepo.Update(txCtx, request)
		if err != nil {
			return err
		}

		if decision.Debit.IsPositive() {
			balance.Set(decision.DebitField, balance.Get(decision.DebitField).Sub(decision.Debit))
			if _, err := s.balanceRepo.Update(txCtx, *balance); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	return result, nil
}

// RejectRequest settles a pending request as rejected. No balance movement
// happens; nothing was debited while the request was pending.
func (s *Service) RejectRequest(ctx context.Context, id string, approver user.Actor) (leave.Request, error) {
	var result leave.Request
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.requestRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if request.Status == leave.StatusRejected {
			result = request
			return nil
		}
		if request.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		now := s.now()
		request.Status = leave.StatusRejected
		request.Remarks = leave.RemarkRejected
		request.ApprovedBy = &approver.UserID
		request.ApprovedOn = &now

		result, err = s.requestRepo.Update(txCtx, request)
		return err
	})
	if err != nil {
		return leave.Request{}, err
	}

	return result, nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (leave.Request, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *Service) ListRequests(ctx context.Context) ([]leave.Request, error) {
	return s.requestRepo.List(ctx)
}

func (s *Service) ListEmployeeRequests(ctx context.Context, employeeID string) ([]leave.Request, error) {
	return s.requestRepo.ListByEmployeeID(ctx, employeeID)
}

func (s *Service) GetBalance(ctx context.Context, employeeID string) (leave.Balance, error) {
	return s.balanceRepo.GetByEmployeeID(ctx, employeeID)
}
