package employee

import (
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              uint            `gorm:"column:employee_id;primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(100);not null"`
	BasicSalary     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BonusPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	TaxPercentage   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
}

func (Employee) TableName() string {
	return "employees"
}
