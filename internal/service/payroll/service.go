package payroll

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/hraxis/hr-backend-go/internal/domain/salary"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/hraxis/hr-backend-go/internal/repository/postgresql"
)

type Service struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	salaryRepo   salary.ComponentsRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	salaryRepo salary.ComponentsRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:           db,
		payrollRepo:  payrollRepo,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// CreateRecord builds a payroll record for one employee-month. The current
// salary components are snapshotted into the record; the snapshot refreshes
// whenever the record is recomputed.
func (s *Service) CreateRecord(ctx context.Context, req payroll.CreateRecordRequest) (payroll.Record, error) {
	if err := req.Validate(); err != nil {
		return payroll.Record{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.Record{}, err
	}

	comps, err := s.salaryRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryDetailsNotFound) {
			return payroll.Record{}, payroll.ErrMissingSalaryDetails
		}
		return payroll.Record{}, err
	}

	workableDays := payroll.FullMonthWorkableDays
	if req.TotalWorkableDays != nil {
		workableDays = *req.TotalWorkableDays
	}

	adj := payroll.Adjustments{
		TotalWorkableDays:  workableDays,
		OvertimeDays:       req.OvertimeDays,
		NormalOvertimeDays: req.NormalOvertimeDays,
		UnpaidDays:         req.UnpaidDays,
		OtherDeductions:    req.OtherDeductions,
	}

	breakdown, err := Compute(comps, adj)
	if err != nil {
		return payroll.Record{}, err
	}

	record := payroll.Record{
		EmployeeID:           req.EmployeeID,
		Month:                req.Month,
		Year:                 req.Year,
		TotalWorkableDays:    workableDays,
		OvertimeDays:         req.OvertimeDays,
		OvertimeAmount:       breakdown.OvertimeAmount,
		NormalOvertimeDays:   req.NormalOvertimeDays,
		NormalOvertimeAmount: breakdown.NormalOvertimeAmount,
		UnpaidDays:           req.UnpaidDays,
		UnpaidAmount:         breakdown.UnpaidAmount,
		OtherDeductions:      req.OtherDeductions,
		CurrentBasicSalary:   comps.BasicSalary,
		CurrentGrossSalary:   comps.GrossSalary,
		CurrentDailySalary:   breakdown.DailySalary,
		TotalSalaryForMonth:  breakdown.Total,
		Remarks:              req.Remarks,
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.Record{}, err
	}

	s.logger.Info("payroll record created",
		slog.String("employee_id", created.EmployeeID),
		slog.Int("month", created.Month),
		slog.Int("year", created.Year),
		slog.String("total", created.TotalSalaryForMonth.StringFixed(2)),
	)

	return created, nil
}

// UpdateRecord patches the adjustment fields of an existing record and
// recomputes every derived amount from the current salary components,
// refreshing the record's snapshot in the process.
func (s *Service) UpdateRecord(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.Record, error) {
	if err := req.Validate(); err != nil {
		return payroll.Record{}, err
	}

	var updated payroll.Record
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		record, err := s.payrollRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		comps, err := s.salaryRepo.GetByEmployeeID(txCtx, record.EmployeeID)
		if err != nil {
			if errors.Is(err, salary.ErrSalaryDetailsNotFound) {
				return payroll.ErrMissingSalaryDetails
			}
			return err
		}

		record, err = applyUpdate(record, comps, req)
		if err != nil {
			return err
		}

		updated, err = s.payrollRepo.Update(txCtx, record)
		return err
	})
	if err != nil {
		return payroll.Record{}, err
	}

	return updated, nil
}

// applyUpdate merges the patched adjustment fields into record, refreshes
// its salary snapshot from comps, and recomputes the derived amounts.
func applyUpdate(record payroll.Record, comps salary.Components, req payroll.UpdateRecordRequest) (payroll.Record, error) {
	if req.TotalWorkableDays != nil {
		record.TotalWorkableDays = *req.TotalWorkableDays
	}
	if req.OvertimeDays != nil {
		record.OvertimeDays = *req.OvertimeDays
	}
	if req.NormalOvertimeDays != nil {
		record.NormalOvertimeDays = *req.NormalOvertimeDays
	}
	if req.UnpaidDays != nil {
		record.UnpaidDays = *req.UnpaidDays
	}
	if req.OtherDeductions != nil {
		record.OtherDeductions = *req.OtherDeductions
	}
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	breakdown, err := Compute(comps, payroll.Adjustments{
		TotalWorkableDays:  record.TotalWorkableDays,
		OvertimeDays:       record.OvertimeDays,
		NormalOvertimeDays: record.NormalOvertimeDays,
		UnpaidDays:         record.UnpaidDays,
		OtherDeductions:    record.OtherDeductions,
	})
	if err != nil {
		return payroll.Record{}, err
	}

	record.CurrentBasicSalary = comps.BasicSalary
	record.CurrentGrossSalary = comps.GrossSalary
	record.CurrentDailySalary = breakdown.DailySalary
	record.OvertimeAmount = breakdown.OvertimeAmount
	record.NormalOvertimeAmount = breakdown.NormalOvertimeAmount
	record.UnpaidAmount = breakdown.UnpaidAmount
	record.TotalSalaryForMonth = breakdown.Total

	return record, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (payroll.Record, error) {
	return s.payrollRepo.GetByID(ctx, id)
}

func (s *Service) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, error) {
	return s.payrollRepo.List(ctx, filter)
}
