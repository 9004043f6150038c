package payroll

import (
	"context"
	"time"

	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
)

// Service loads snapshots from the store and hands them to the pure
// calculation functions. Only active employees are paid.
type Service struct {
	store  core.Store
	policy finance.RatePolicy
}

func NewService(store core.Store, policy finance.RatePolicy) *Service {
	return &Service{store: store, policy: policy}
}

func (s *Service) Policy() finance.RatePolicy {
	return s.policy
}

// RunPeriod computes payroll for every active employee over [from, to].
func (s *Service) RunPeriod(ctx context.Context, from, to time.Time) (RunResult, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return RunResult{}, err
	}
	attendance, err := s.store.ListAttendanceInRange(ctx, from, to)
	if err != nil {
		return RunResult{}, err
	}

	active := make([]core.Employee, 0, len(employees))
	for i := range employees {
		if employees[i].Status == core.EmployeeStatusActive {
			active = append(active, employees[i])
		}
	}
	return Run(active, attendance, from, to, s.policy), nil
}

// EmployeePeriod computes one employee's payroll over [from, to].
func (s *Service) EmployeePeriod(ctx context.Context, employeeID string, from, to time.Time) (Calculation, error) {
	emp, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return Calculation{}, err
	}
	attendance, err := s.store.ListAttendanceInRange(ctx, from, to)
	if err != nil {
		return Calculation{}, err
	}
	return ForEmployee(*emp, attendance, s.policy), nil
}
