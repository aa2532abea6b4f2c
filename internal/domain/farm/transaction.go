package farm

import (
	"time"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// IsValid reports whether the transaction type is a known value
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction records a single income or expense for a user, together
// with the quantity of product the money moved for. Farm and crop
// references are optional so general operating costs can be recorded
// without tying them to a planting.
type Transaction struct {
	shared.OwnedEntity
	FarmID          *uuid.UUID      `gorm:"type:uuid;index" json:"farmId,omitempty"`
	CropID          *uuid.UUID      `gorm:"type:uuid;index" json:"cropId,omitempty"`
	Type            TransactionType `gorm:"type:varchar(20);not null;index" json:"type"`
	Description     string          `gorm:"type:varchar(300)" json:"description"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"quantity"`
	MeasureUnit     string          `gorm:"type:varchar(50)" json:"measureUnit"`
	Value           decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"value"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transactionDate"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}
