package payroll_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", "2026-08-30 09:15:00")
	require.NoError(t, err)
	return func() time.Time { return ts }
}

func testSlips(t *testing.T) []payroll.Payslip {
	t.Helper()
	slips, err := payroll.CalculateSlips([]employee.Employee{
		{
			ID:              1,
			Name:            "John Smith",
			BasicSalary:     mustDecimal(t, "50000.00"),
			BonusPercentage: mustDecimal(t, "10.00"),
			TaxPercentage:   mustDecimal(t, "15.00"),
		},
		{
			ID:              2,
			Name:            "Sarah Johnson",
			BasicSalary:     mustDecimal(t, "62000.00"),
			BonusPercentage: mustDecimal(t, "14.00"),
			TaxPercentage:   mustDecimal(t, "19.00"),
		},
	})
	require.NoError(t, err)
	return slips
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExporter_WriteSlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "salary_slips")
	exporter := payroll.NewExporter(zap.NewNop()).WithClock(fixedClock(t))
	slips := testSlips(t)

	require.NoError(t, exporter.WriteSlips(slips, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	records := readCSV(t, filepath.Join(dir, "salary_slip_2.csv"))
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Employee ID", "Name", "Basic Salary", "Bonus Percentage", "Bonus Amount",
		"Tax Percentage", "Tax Amount", "Net Salary", "Generated Date",
	}, records[0])
	assert.Equal(t, []string{
		"2", "Sarah Johnson", "62000.00", "14.00%", "8680.00",
		"19.00%", "11780.00", "58900.00", "2026-08-30 09:15:00",
	}, records[1])
}

func TestExporter_WriteSlips_OverwritesDeterministically(t *testing.T) {
	dir := t.TempDir()
	exporter := payroll.NewExporter(zap.NewNop()).WithClock(fixedClock(t))
	slips := testSlips(t)

	require.NoError(t, exporter.WriteSlips(slips, dir))
	first, err := os.ReadFile(filepath.Join(dir, "salary_slip_1.csv"))
	require.NoError(t, err)

	require.NoError(t, exporter.WriteSlips(slips, dir))
	second, err := os.ReadFile(filepath.Join(dir, "salary_slip_1.csv"))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestExporter_WriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complete_salary_report.csv")
	exporter := payroll.NewExporter(zap.NewNop()).WithClock(fixedClock(t))
	slips := testSlips(t)

	require.NoError(t, exporter.WriteReport(slips, path))

	records := readCSV(t, path)
	require.Len(t, records, len(slips)+1)

	assert.Equal(t, []string{
		"employee_id", "name", "basic_salary", "bonus_percentage", "tax_percentage",
		"bonus", "tax", "net_salary", "report_generated",
	}, records[0])
	assert.Equal(t, []string{
		"1", "John Smith", "50000.00", "10.00", "15.00",
		"5000.00", "7500.00", "47500.00", "2026-08-30 09:15:00",
	}, records[1])

	// Every row carries the same generation timestamp.
	for _, row := range records[1:] {
		assert.Equal(t, "2026-08-30 09:15:00", row[8])
	}
}

func TestExporter_WriteReport_EmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	exporter := payroll.NewExporter(zap.NewNop()).WithClock(fixedClock(t))

	require.NoError(t, exporter.WriteReport([]payroll.Payslip{}, path))

	records := readCSV(t, path)
	assert.Len(t, records, 1)
}

func TestExporter_WriteSlips_BadDirectory(t *testing.T) {
	// A file where the slip directory should be.
	base := t.TempDir()
	blocked := filepath.Join(base, "not_a_dir")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	exporter := payroll.NewExporter(zap.NewNop())
	err := exporter.WriteSlips(testSlips(t), blocked)
	assert.Error(t, err)
}
