package employee

import (
	"context"

	"go-payroll/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested",
		zap.String("name", req.Name),
		zap.String("basic_salary", req.BasicSalary.StringFixed(2)),
	)

	emp := &Employee{
		Name:            req.Name,
		BasicSalary:     req.BasicSalary,
		BonusPercentage: req.BonusPercentage,
		TaxPercentage:   req.TaxPercentage,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, apperror.Wrap(err, apperror.CodeInsertFailed, "failed to add employee")
	}

	s.logger.Info("employee added",
		zap.Uint("employee_id", emp.ID),
		zap.String("name", emp.Name),
	)

	return mapToResponse(*emp), nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              emp.ID,
		Name:            emp.Name,
		BasicSalary:     emp.BasicSalary,
		BonusPercentage: emp.BonusPercentage,
		TaxPercentage:   emp.TaxPercentage,
	}
}
