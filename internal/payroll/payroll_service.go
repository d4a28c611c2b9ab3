package payroll

import (
	"context"
	"fmt"
	"io"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context, out io.Writer) error
}

type service struct {
	repo       employee.Repository
	exporter   *Exporter
	slipDir    string
	reportFile string
	logger     *zap.Logger
}

func NewService(
	repo employee.Repository,
	exporter *Exporter,
	slipDir, reportFile string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		repo:       repo,
		exporter:   exporter,
		slipDir:    slipDir,
		reportFile: reportFile,
		logger:     l,
	}
}

// Run executes one payroll pass: fetch, derive, summarize, export slips,
// export the aggregate report. The first failing step aborts the rest;
// slips already written stay on disk.
func (s *service) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "2. Fetching employee data...")
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("fetch employee data failed", zap.Error(err))
		return apperror.Wrap(err, apperror.CodeQueryFailed, "failed to fetch employee data")
	}
	s.logger.Info("fetched employee records", zap.Int("count", len(employees)))

	fmt.Fprintln(out, "3. Calculating salary components...")
	slips, err := CalculateSlips(employees)
	if err != nil {
		s.logger.Error("calculate salary components failed", zap.Error(err))
		return err
	}
	s.logger.Info("salary components calculated")

	fmt.Fprintln(out, "4. Displaying salary summary...")
	WriteSummary(out, slips)

	fmt.Fprintln(out, "5. Generating individual salary slips...")
	if err := s.exporter.WriteSlips(slips, s.slipDir); err != nil {
		s.logger.Error("generate salary slips failed", zap.Error(err))
		return err
	}

	fmt.Fprintln(out, "6. Exporting complete salary report...")
	if err := s.exporter.WriteReport(slips, s.reportFile); err != nil {
		s.logger.Error("export complete report failed", zap.Error(err))
		return err
	}

	s.logger.Info("payroll run completed",
		zap.Int("employees", len(slips)),
		zap.String("slip_dir", s.slipDir),
		zap.String("report_file", s.reportFile),
	)
	return nil
}
