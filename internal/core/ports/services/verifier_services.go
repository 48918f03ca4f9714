package services

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// UnbalancedTransaction is a categorized transaction whose split does not add up.
type UnbalancedTransaction struct {
	TransactionID     int64  `json:"transactionID"`
	CurrencyCode      string `json:"currencyCode"`
	TransactionAmount int64  `json:"transactionAmount"`
	CategorizedAmount int64  `json:"categorizedAmount"`

	// Display forms of the two amounts in major units of the currency.
	TransactionDisplay string `json:"transactionDisplay"`
	CategorizedDisplay string `json:"categorizedDisplay"`
}

// LedgerReport lists every caller-side rule the stored data breaks.
type LedgerReport struct {
	TransactionCategoryIssues []domain.HierarchyIssue `json:"transactionCategoryIssues"`
	BudgetCategoryIssues      []domain.HierarchyIssue `json:"budgetCategoryIssues"`
	Unbalanced                []UnbalancedTransaction `json:"unbalanced"`
}

// Clean reports whether nothing was found.
func (r LedgerReport) Clean() bool {
	return len(r.TransactionCategoryIssues) == 0 && len(r.BudgetCategoryIssues) == 0 && len(r.Unbalanced) == 0
}

// LedgerVerifierSvc checks stored data against the rules the schema cannot enforce.
type LedgerVerifierSvc interface {
	Verify(ctx context.Context) (*LedgerReport, error)
}
