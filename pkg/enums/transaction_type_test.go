package enums

import "testing"

func TestParseTransactionType(t *testing.T) {
	for _, value := range []string{"INITIAL_STOCK", "STOCK_ADDITION", "STOCK_REDUCTION"} {
		parsed, err := ParseTransactionType(value)
		if err != nil {
			t.Fatalf("ParseTransactionType(%q) returned error: %v", value, err)
		}
		if parsed.String() != value {
			t.Fatalf("round trip mismatch: %q != %q", parsed, value)
		}
		if !parsed.IsValid() {
			t.Fatalf("expected %q to be valid", value)
		}
	}

	if _, err := ParseTransactionType("RESTOCK"); err == nil {
		t.Fatal("expected error for unknown transaction type")
	}
}

func TestTransactionTypeSign(t *testing.T) {
	if got := TransactionTypeInitialStock.Sign(); got != 1 {
		t.Fatalf("INITIAL_STOCK sign = %d, want 1", got)
	}
	if got := TransactionTypeStockAddition.Sign(); got != 1 {
		t.Fatalf("STOCK_ADDITION sign = %d, want 1", got)
	}
	if got := TransactionTypeStockReduction.Sign(); got != -1 {
		t.Fatalf("STOCK_REDUCTION sign = %d, want -1", got)
	}
}
