package app

import (
	"context"
	"io"

	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/connection"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the database handle and the wired services for one process.
type App struct {
	db       *gorm.DB
	employee employee.Service
	payroll  payroll.Service
	logger   *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.MaxRetries,
		logger,
	)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeConnectionFailed, "failed to connect to database")
	}

	repo := employee.NewRepository(db)
	exporter := payroll.NewExporter(logger)

	return &App{
		db:       db,
		employee: employee.NewService(repo, logger),
		payroll: payroll.NewService(
			repo,
			exporter,
			cfg.Output.SlipDir,
			cfg.Output.ReportFile,
			logger,
		),
		logger: logger,
	}, nil
}

// Run executes one payroll pass, writing progress and the summary to out.
func (a *App) Run(ctx context.Context, out io.Writer) error {
	return a.payroll.Run(ctx, out)
}

// AddEmployee inserts one employee and returns the store-assigned record.
func (a *App) AddEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return a.employee.Create(ctx, req)
}

// Close releases the database connection. Safe on every exit path.
func (a *App) Close() {
	sqlDB, err := a.db.DB()
	if err != nil {
		a.logger.Warn("get sql.DB for close failed", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.logger.Warn("close database connection failed", zap.Error(err))
		return
	}
	a.logger.Info("database connection closed")
}
