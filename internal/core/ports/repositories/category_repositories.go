package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// CategoryReader defines read operations for the transaction category tree
type CategoryReader interface {
	FindTransactionCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error)

	// ListTransactionCategories returns every category ordered by id.
	ListTransactionCategories(ctx context.Context) ([]domain.TransactionCategory, error)

	// FindChildTransactionCategories returns the direct children of parentID, or the
	// roots when parentID is nil.
	FindChildTransactionCategories(ctx context.Context, parentID *int64) ([]domain.TransactionCategory, error)
}

// CategoryWriter defines write operations for the transaction category tree
type CategoryWriter interface {
	SaveTransactionCategory(ctx context.Context, category domain.TransactionCategory) (int64, error)
	UpdateTransactionCategory(ctx context.Context, category domain.TransactionCategory) error
	DeleteTransactionCategory(ctx context.Context, categoryID int64) error
}

// CategoryRepositoryFacade combines all transaction category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// BudgetCategoryReader defines read operations for the budget category tree
type BudgetCategoryReader interface {
	FindBudgetCategoryByID(ctx context.Context, categoryID int64) (*domain.BudgetCategory, error)
	ListBudgetCategories(ctx context.Context) ([]domain.BudgetCategory, error)
	FindChildBudgetCategories(ctx context.Context, parentID *int64) ([]domain.BudgetCategory, error)
}

// BudgetCategoryWriter defines write operations for the budget category tree
type BudgetCategoryWriter interface {
	SaveBudgetCategory(ctx context.Context, category domain.BudgetCategory) (int64, error)
	UpdateBudgetCategory(ctx context.Context, category domain.BudgetCategory) error
	DeleteBudgetCategory(ctx context.Context, categoryID int64) error
}

// BudgetCategoryRepositoryFacade combines all budget category repository interfaces
type BudgetCategoryRepositoryFacade interface {
	BudgetCategoryReader
	BudgetCategoryWriter
}
