package payroll

import (
	"go-payroll/internal/employee"
	"go-payroll/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Payslip is one employee's pay computation for a single run.
// Derived figures are rounded to two decimal places.
type Payslip struct {
	EmployeeID      uint
	Name            string
	BasicSalary     decimal.Decimal
	BonusPercentage decimal.Decimal
	TaxPercentage   decimal.Decimal
	Bonus           decimal.Decimal
	Tax             decimal.Decimal
	NetSalary       decimal.Decimal
}

// CalculateSlips derives bonus, tax and net salary for every employee:
//
//	bonus = basic_salary * bonus_percentage / 100
//	tax   = basic_salary * tax_percentage / 100
//	net   = basic_salary + bonus - tax
//
// The input is never mutated; a new slice is returned. Negative or
// out-of-range inputs are accepted as-is and produce correspondingly
// signed outputs. A nil input means no fetch has happened and is the
// only error case.
func CalculateSlips(employees []employee.Employee) ([]Payslip, error) {
	if employees == nil {
		return nil, apperror.ErrNoData
	}

	slips := make([]Payslip, len(employees))
	for i, emp := range employees {
		bonus := emp.BasicSalary.Mul(emp.BonusPercentage).Div(oneHundred).Round(2)
		tax := emp.BasicSalary.Mul(emp.TaxPercentage).Div(oneHundred).Round(2)
		net := emp.BasicSalary.Add(bonus).Sub(tax).Round(2)

		slips[i] = Payslip{
			EmployeeID:      emp.ID,
			Name:            emp.Name,
			BasicSalary:     emp.BasicSalary,
			BonusPercentage: emp.BonusPercentage,
			TaxPercentage:   emp.TaxPercentage,
			Bonus:           bonus,
			Tax:             tax,
			NetSalary:       net,
		}
	}
	return slips, nil
}
