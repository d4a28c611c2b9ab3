package payroll

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

const summaryRule = "================================================================================"

// WriteSummary renders the salary summary table and aggregate statistics
// for the console.
func WriteSummary(w io.Writer, slips []Payslip) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryRule)
	fmt.Fprintln(w, "EMPLOYEE SALARY SUMMARY")
	fmt.Fprintln(w, summaryRule)

	fmt.Fprintf(w, "%-5s %-20s %14s %8s %8s %12s %12s %12s\n",
		"ID", "Name", "Basic Salary", "Bonus %", "Tax %", "Bonus", "Tax", "Net Salary")
	for _, slip := range slips {
		fmt.Fprintf(w, "%-5d %-20s %14s %8s %8s %12s %12s %12s\n",
			slip.EmployeeID,
			slip.Name,
			slip.BasicSalary.StringFixed(2),
			slip.BonusPercentage.StringFixed(2),
			slip.TaxPercentage.StringFixed(2),
			slip.Bonus.StringFixed(2),
			slip.Tax.StringFixed(2),
			slip.NetSalary.StringFixed(2),
		)
	}
	fmt.Fprintln(w, summaryRule)

	var totalBasic, totalBonus, totalTax, totalNet decimal.Decimal
	for _, slip := range slips {
		totalBasic = totalBasic.Add(slip.BasicSalary)
		totalBonus = totalBonus.Add(slip.Bonus)
		totalTax = totalTax.Add(slip.Tax)
		totalNet = totalNet.Add(slip.NetSalary)
	}

	// Average over an empty set is reported as 0.00 rather than failing.
	averageNet := decimal.Zero
	if len(slips) > 0 {
		averageNet = totalNet.Div(decimal.NewFromInt(int64(len(slips)))).Round(2)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "SALARY STATISTICS:")
	fmt.Fprintf(w, "Total Employees: %d\n", len(slips))
	fmt.Fprintf(w, "Total Basic Salary: $%s\n", formatMoney(totalBasic))
	fmt.Fprintf(w, "Total Bonus: $%s\n", formatMoney(totalBonus))
	fmt.Fprintf(w, "Total Tax: $%s\n", formatMoney(totalTax))
	fmt.Fprintf(w, "Total Net Salary: $%s\n", formatMoney(totalNet))
	fmt.Fprintf(w, "Average Net Salary: $%s\n", formatMoney(averageNet))
	fmt.Fprintln(w, summaryRule)
}

// formatMoney renders a two-decimal figure with comma-grouped thousands,
// e.g. 1234567.5 -> "1,234,567.50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + "." + fracPart
}
