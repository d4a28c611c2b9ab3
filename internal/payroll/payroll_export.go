package payroll

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-payroll/internal/shared/apperror"

	"go.uber.org/zap"
)

const generatedLayout = "2006-01-02 15:04:05"

var slipHeader = []string{
	"Employee ID",
	"Name",
	"Basic Salary",
	"Bonus Percentage",
	"Bonus Amount",
	"Tax Percentage",
	"Tax Amount",
	"Net Salary",
	"Generated Date",
}

var reportHeader = []string{
	"employee_id",
	"name",
	"basic_salary",
	"bonus_percentage",
	"tax_percentage",
	"bonus",
	"tax",
	"net_salary",
	"report_generated",
}

// Exporter serializes payslips to delimited files. Existing files of the
// same name are overwritten.
type Exporter struct {
	now    func() time.Time
	logger *zap.Logger
}

func NewExporter(logger ...*zap.Logger) *Exporter {
	l := zap.L().Named("payroll.exporter")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.exporter")
	}
	return &Exporter{now: time.Now, logger: l}
}

// WithClock returns an Exporter that reads timestamps from now instead of
// the wall clock.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	return &Exporter{now: now, logger: e.logger}
}

// WriteSlips writes one salary_slip_<id>.csv per payslip into dir,
// creating dir if it does not exist.
func (e *Exporter) WriteSlips(slips []Payslip, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperror.Wrap(err, apperror.CodeExportFailed, "failed to create slip directory")
	}

	generated := e.now().Format(generatedLayout)

	for _, slip := range slips {
		filename := fmt.Sprintf("salary_slip_%d.csv", slip.EmployeeID)
		path := filepath.Join(dir, filename)

		row := []string{
			strconv.FormatUint(uint64(slip.EmployeeID), 10),
			slip.Name,
			slip.BasicSalary.StringFixed(2),
			slip.BonusPercentage.StringFixed(2) + "%",
			slip.Bonus.StringFixed(2),
			slip.TaxPercentage.StringFixed(2) + "%",
			slip.Tax.StringFixed(2),
			slip.NetSalary.StringFixed(2),
			generated,
		}

		if err := writeCSV(path, slipHeader, [][]string{row}); err != nil {
			return apperror.Wrap(err, apperror.CodeExportFailed,
				fmt.Sprintf("failed to generate salary slip for employee %d", slip.EmployeeID))
		}

		e.logger.Info("generated salary slip", zap.String("file", filename))
	}

	e.logger.Info("all salary slips generated",
		zap.Int("count", len(slips)),
		zap.String("dir", dir),
	)
	return nil
}

// WriteReport writes the whole derived set to a single file at path, with
// one shared report_generated timestamp column.
func (e *Exporter) WriteReport(slips []Payslip, path string) error {
	generated := e.now().Format(generatedLayout)

	rows := make([][]string, len(slips))
	for i, slip := range slips {
		rows[i] = []string{
			strconv.FormatUint(uint64(slip.EmployeeID), 10),
			slip.Name,
			slip.BasicSalary.StringFixed(2),
			slip.BonusPercentage.StringFixed(2),
			slip.TaxPercentage.StringFixed(2),
			slip.Bonus.StringFixed(2),
			slip.Tax.StringFixed(2),
			slip.NetSalary.StringFixed(2),
			generated,
		}
	}

	if err := writeCSV(path, reportHeader, rows); err != nil {
		return apperror.Wrap(err, apperror.CodeExportFailed, "failed to export complete salary report")
	}

	e.logger.Info("complete salary report exported", zap.String("file", path))
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
