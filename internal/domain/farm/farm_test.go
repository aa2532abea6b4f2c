package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "farms", Farm{}.TableName())
	assert.Equal(t, "plots", Plot{}.TableName())
	assert.Equal(t, "crops", Crop{}.TableName())
	assert.Equal(t, "transactions", Transaction{}.TableName())
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, TransactionTypeIncome.IsValid())
	assert.True(t, TransactionTypeExpense.IsValid())
	assert.False(t, TransactionType("TRANSFER").IsValid())
	assert.False(t, TransactionType("income").IsValid())
	assert.False(t, TransactionType("").IsValid())
}
