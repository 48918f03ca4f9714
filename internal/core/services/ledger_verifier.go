package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/utils"
)

type ledgerVerifier struct {
	BaseService
	store portsrepo.Store
}

// NewLedgerVerifier creates a verifier that scans the whole store.
func NewLedgerVerifier(store portsrepo.Store) portssvc.LedgerVerifierSvc {
	return &ledgerVerifier{store: store}
}

// Verify reads everything in one unit of work so the report reflects a single state.
func (v *ledgerVerifier) Verify(ctx context.Context) (*portssvc.LedgerReport, error) {
	report := &portssvc.LedgerReport{
		TransactionCategoryIssues: []domain.HierarchyIssue{},
		BudgetCategoryIssues:      []domain.HierarchyIssue{},
		Unbalanced:                []portssvc.UnbalancedTransaction{},
	}
	err := v.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		txnCats, err := repos.CategoryRepo.ListTransactionCategories(ctx)
		if err != nil {
			return err
		}
		report.TransactionCategoryIssues = append(report.TransactionCategoryIssues, domain.CheckHierarchy(txnCats)...)

		budgetCats, err := repos.BudgetCategoryRepo.ListBudgetCategories(ctx)
		if err != nil {
			return err
		}
		report.BudgetCategoryIssues = append(report.BudgetCategoryIssues, domain.CheckHierarchy(budgetCats)...)

		splits, err := repos.CategorizationRepo.ListCategorizations(ctx)
		if err != nil {
			return err
		}
		return v.checkSplits(ctx, repos, splits, report)
	})
	if err != nil {
		v.LogError(ctx, err, "Ledger verification failed")
		return nil, fmt.Errorf("failed to verify ledger: %w", err)
	}
	v.LogInfo(ctx, "Ledger verified",
		slog.Int("transaction_category_issues", len(report.TransactionCategoryIssues)),
		slog.Int("budget_category_issues", len(report.BudgetCategoryIssues)),
		slog.Int("unbalanced", len(report.Unbalanced)))
	return report, nil
}

// checkSplits groups splits by transaction, relying on their (transaction, category) order.
func (v *ledgerVerifier) checkSplits(ctx context.Context, repos portsrepo.RepositoryProvider, splits []domain.TransactionCategorization, report *portssvc.LedgerReport) error {
	currencies := map[string]*domain.Currency{}
	for start := 0; start < len(splits); {
		end := start
		for end < len(splits) && splits[end].TransactionID == splits[start].TransactionID {
			end++
		}
		group := splits[start:end]
		start = end

		txn, err := repos.TransactionRepo.FindTransactionByID(ctx, group[0].TransactionID)
		if err != nil {
			return err
		}
		if domain.CheckCategorizationBalance(*txn, group) == nil {
			continue
		}
		account, err := repos.AccountRepo.FindAccountByID(ctx, txn.AccountID)
		if err != nil {
			return err
		}
		currency, ok := currencies[account.CurrencyCode]
		if !ok {
			if currency, err = repos.CurrencyRepo.FindCurrencyByCode(ctx, account.CurrencyCode); err != nil {
				return err
			}
			currencies[account.CurrencyCode] = currency
		}
		sum, _ := domain.SumCategorizations(group)
		report.Unbalanced = append(report.Unbalanced, portssvc.UnbalancedTransaction{
			TransactionID:      txn.ID,
			CurrencyCode:       currency.Code,
			TransactionAmount:  txn.TransactionAmount,
			CategorizedAmount:  sum,
			TransactionDisplay: utils.FormatMinorUnits(txn.TransactionAmount, *currency),
			CategorizedDisplay: utils.FormatMinorUnits(sum, *currency),
		})
	}
	return nil
}
