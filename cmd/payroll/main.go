package main

import (
	"fmt"
	"os"

	"go-payroll/internal/app"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger

	newName     string
	newSalary   string
	newBonusPct string
	newTaxPct   string
)

var rootCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Employee salary management pipeline",
	Long: `payroll fetches employee compensation records from MySQL, derives
bonus, tax and net salary figures, prints a summary and exports
per-employee salary slips plus an aggregate report as CSV files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch employees, compute salaries and export reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		fmt.Println("============================================================")
		fmt.Println("EMPLOYEE SALARY MANAGEMENT SYSTEM")
		fmt.Println("============================================================")

		fmt.Println("1. Connecting to MySQL database...")
		application, err := app.New(cfg, logger)
		if err != nil {
			logger.Error("database connection failed", zap.Error(err))
			return err
		}
		defer application.Close()

		if err := application.Run(cmd.Context(), os.Stdout); err != nil {
			logger.Error("payroll run aborted", zap.Error(err))
			return err
		}

		fmt.Println("============================================================")
		fmt.Println("SYSTEM EXECUTION COMPLETED SUCCESSFULLY!")
		fmt.Println("============================================================")
		return nil
	},
}

var addEmployeeCmd = &cobra.Command{
	Use:   "add-employee",
	Short: "Insert one employee record and print the assigned id",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		req, err := buildCreateRequest()
		if err != nil {
			return err
		}

		application, err := app.New(cfg, logger)
		if err != nil {
			logger.Error("database connection failed", zap.Error(err))
			return err
		}
		defer application.Close()

		res, err := application.AddEmployee(cmd.Context(), req)
		if err != nil {
			logger.Error("add employee failed", zap.Error(err))
			return err
		}

		fmt.Printf("New employee added with ID: %d\n", res.ID)
		return nil
	},
}

func buildCreateRequest() (employee.CreateEmployeeRequest, error) {
	basicSalary, err := decimal.NewFromString(newSalary)
	if err != nil {
		return employee.CreateEmployeeRequest{}, fmt.Errorf("invalid --basic-salary %q: %w", newSalary, err)
	}
	bonusPct, err := decimal.NewFromString(newBonusPct)
	if err != nil {
		return employee.CreateEmployeeRequest{}, fmt.Errorf("invalid --bonus-pct %q: %w", newBonusPct, err)
	}
	taxPct, err := decimal.NewFromString(newTaxPct)
	if err != nil {
		return employee.CreateEmployeeRequest{}, fmt.Errorf("invalid --tax-pct %q: %w", newTaxPct, err)
	}

	return employee.CreateEmployeeRequest{
		Name:            newName,
		BasicSalary:     basicSalary,
		BonusPercentage: bonusPct,
		TaxPercentage:   taxPct,
	}, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	addEmployeeCmd.Flags().StringVar(&newName, "name", "", "employee name")
	addEmployeeCmd.Flags().StringVar(&newSalary, "basic-salary", "", "basic salary, e.g. 62000.00")
	addEmployeeCmd.Flags().StringVar(&newBonusPct, "bonus-pct", "0", "bonus percentage, e.g. 14.00")
	addEmployeeCmd.Flags().StringVar(&newTaxPct, "tax-pct", "0", "tax percentage, e.g. 19.00")
	_ = addEmployeeCmd.MarkFlagRequired("name")
	_ = addEmployeeCmd.MarkFlagRequired("basic-salary")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(addEmployeeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
