package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// TransactionCategorization assigns a portion of a transaction's amount to a category.
// The pair (TransactionID, CategoryID) is the key.
type TransactionCategorization struct {
	TransactionID int64  `json:"transactionID"` // FK -> account_transactions.id
	CategoryID    int64  `json:"categoryID"`    // FK -> transaction_categories.id
	Amount        int64  `json:"amount"`
	Notes         string `json:"notes"`
}

// SumCategorizations adds up the split amounts. If the total leaves the int64 range it
// returns the bound it crossed together with ErrInvariant.
func SumCategorizations(cs []TransactionCategorization) (int64, error) {
	total := decimal.Zero
	for _, c := range cs {
		total = total.Add(decimal.NewFromInt(c.Amount))
	}
	switch {
	case total.GreaterThan(maxAmount):
		return math.MaxInt64, fmt.Errorf("%w: categorizations total %s overflows", apperrors.ErrInvariant, total)
	case total.LessThan(minAmount):
		return math.MinInt64, fmt.Errorf("%w: categorizations total %s overflows", apperrors.ErrInvariant, total)
	}
	return total.IntPart(), nil
}

// CheckCategorizationBalance verifies that the splits belong to txn and sum to its amount.
// A transaction without categorizations is considered uncategorized, not unbalanced.
func CheckCategorizationBalance(txn AccountTransaction, cs []TransactionCategorization) error {
	if len(cs) == 0 {
		return nil
	}
	seen := make(map[int64]bool, len(cs))
	for _, c := range cs {
		if c.TransactionID != txn.ID {
			return fmt.Errorf("%w: categorization for transaction %d attached to transaction %d", apperrors.ErrInvariant, c.TransactionID, txn.ID)
		}
		if seen[c.CategoryID] {
			return fmt.Errorf("%w: category %d used twice for transaction %d", apperrors.ErrInvariant, c.CategoryID, txn.ID)
		}
		seen[c.CategoryID] = true
	}
	sum, err := SumCategorizations(cs)
	if err != nil {
		return fmt.Errorf("transaction %d: %w", txn.ID, err)
	}
	if sum != txn.TransactionAmount {
		return fmt.Errorf("%w: categorizations of transaction %d sum to %d, transaction amount is %d",
			apperrors.ErrInvariant, txn.ID, sum, txn.TransactionAmount)
	}
	return nil
}
