package employee

import "github.com/shopspring/decimal"

// CreateEmployeeRequest carries a new employee's raw compensation figures.
// Ranges are not validated here; the store is the authority on what it
// accepts.
type CreateEmployeeRequest struct {
	Name            string
	BasicSalary     decimal.Decimal
	BonusPercentage decimal.Decimal
	TaxPercentage   decimal.Decimal
}

type EmployeeResponse struct {
	ID              uint
	Name            string
	BasicSalary     decimal.Decimal
	BonusPercentage decimal.Decimal
	TaxPercentage   decimal.Decimal
}
