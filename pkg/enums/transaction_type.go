package enums

import "fmt"

// TransactionType classifies an inventory audit transaction.
type TransactionType string

const (
	TransactionTypeInitialStock   TransactionType = "INITIAL_STOCK"
	TransactionTypeStockAddition  TransactionType = "STOCK_ADDITION"
	TransactionTypeStockReduction TransactionType = "STOCK_REDUCTION"
)

var validTransactionTypes = []TransactionType{
	TransactionTypeInitialStock,
	TransactionTypeStockAddition,
	TransactionTypeStockReduction,
}

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TransactionType.
func (t TransactionType) IsValid() bool {
	for _, candidate := range validTransactionTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransactionType converts raw input into a TransactionType.
func ParseTransactionType(value string) (TransactionType, error) {
	for _, candidate := range validTransactionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction type %q", value)
}

// Sign returns the multiplier applied to the transaction magnitude when
// reconciling inventory quantity against the audit log.
func (t TransactionType) Sign() int {
	if t == TransactionTypeStockReduction {
		return -1
	}
	return 1
}
