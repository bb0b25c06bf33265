package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/hraxis/hr-backend-go/internal/repository/postgresql"
	leaveservice "github.com/hraxis/hr-backend-go/internal/service/leave"
)

type Service struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	balanceRepo  leave.BalanceRepository
	accrualRepo  leave.AccrualRepository
	logger       *slog.Logger
	now          func() time.Time
}

func NewService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	balanceRepo leave.BalanceRepository,
	accrualRepo leave.AccrualRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:           db,
		employeeRepo: employeeRepo,
		balanceRepo:  balanceRepo,
		accrualRepo:  accrualRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Create inserts the employee together with an opening leave balance
// pro-rated by tenure and the accrual tracking row, in one transaction.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	dateOfBirth, _ := time.Parse("2006-01-02", req.DateOfBirth)
	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)

	emp := employee.Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   dateOfBirth,
		PlaceOfBirth:  req.PlaceOfBirth,
		Nationality:   req.Nationality,
		Gender:        employee.Gender(req.Gender),
		MaritalStatus: employee.MaritalStatus(req.MaritalStatus),
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Address:       req.Address,
		JoiningDate:   joiningDate,
		Designation:   req.Designation,
		Department:    employee.Department(req.Department),
		Qualification: req.Qualification,
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.employeeRepo.Create(txCtx, emp)
		if err != nil {
			return err
		}

		balance := leaveservice.SeedBalance(created.ID, created.MonthsOfService(s.now()))
		if _, err := s.balanceRepo.Create(txCtx, balance); err != nil {
			return err
		}

		accrual := leave.Accrual{
			EmployeeID:      created.ID,
			LeaveBalance:    balance.AnnualLeaveBalance,
			LastAccruedDate: s.now(),
		}
		_, err = s.accrualRepo.Create(txCtx, accrual)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}

	s.logger.Info("employee created",
		slog.String("employee_id", created.ID),
		slog.String("name", created.FullName()),
		slog.String("department", string(created.Department)),
	)

	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.GetByID(ctx, req.ID)
}
