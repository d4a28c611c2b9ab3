package payroll_test

import (
	"bytes"
	"strings"
	"testing"

	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	employees := []employee.Employee{
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
	}
	slips, err := payroll.CalculateSlips(employees)
	require.NoError(t, err)

	var buf bytes.Buffer
	payroll.WriteSummary(&buf, slips)
	out := buf.String()

	assert.Contains(t, out, "EMPLOYEE SALARY SUMMARY")
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "Sarah Johnson")

	// 50000 + 62000, bonuses 5000 + 8680, taxes 7500 + 11780,
	// nets 47500 + 58900.
	assert.Contains(t, out, "Total Employees: 2")
	assert.Contains(t, out, "Total Basic Salary: $112,000.00")
	assert.Contains(t, out, "Total Bonus: $13,680.00")
	assert.Contains(t, out, "Total Tax: $19,280.00")
	assert.Contains(t, out, "Total Net Salary: $106,400.00")
	assert.Contains(t, out, "Average Net Salary: $53,200.00")
}

func TestWriteSummary_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	payroll.WriteSummary(&buf, []payroll.Payslip{})
	out := buf.String()

	assert.Contains(t, out, "Total Employees: 0")
	assert.Contains(t, out, "Total Basic Salary: $0.00")
	assert.Contains(t, out, "Total Net Salary: $0.00")
	assert.Contains(t, out, "Average Net Salary: $0.00")
}

func TestWriteSummary_RowPerSlip(t *testing.T) {
	employees := []employee.Employee{
		{ID: 1, Name: "A", BasicSalary: mustDecimal(t, "1.00")},
		{ID: 2, Name: "B", BasicSalary: mustDecimal(t, "2.00")},
		{ID: 3, Name: "C", BasicSalary: mustDecimal(t, "3.00")},
	}
	slips, err := payroll.CalculateSlips(employees)
	require.NoError(t, err)

	var buf bytes.Buffer
	payroll.WriteSummary(&buf, slips)

	lines := strings.Split(buf.String(), "\n")
	var rows int
	for _, line := range lines {
		if strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 ") || strings.HasPrefix(line, "3 ") {
			rows++
		}
	}
	assert.Equal(t, 3, rows)
}
