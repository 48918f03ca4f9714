package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// BudgetReader defines read operations for budgets
type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)
	ListBudgetsByCurrency(ctx context.Context, currencyCode string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budgets
type BudgetWriter interface {
	SaveBudget(ctx context.Context, budget domain.Budget) (int64, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetRepositoryFacade combines all budget repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}

// BudgetItemReader defines read operations for budget line items
type BudgetItemReader interface {
	FindBudgetItemByID(ctx context.Context, itemID int64) (*domain.BudgetItem, error)
	ListBudgetItemsByBudget(ctx context.Context, budgetID int64) ([]domain.BudgetItem, error)
	ListBudgetItemsByCategory(ctx context.Context, categoryID int64) ([]domain.BudgetItem, error)
}

// BudgetItemWriter defines write operations for budget line items
type BudgetItemWriter interface {
	SaveBudgetItem(ctx context.Context, item domain.BudgetItem) (int64, error)
	UpdateBudgetItem(ctx context.Context, item domain.BudgetItem) error
	DeleteBudgetItem(ctx context.Context, itemID int64) error
}

// BudgetItemRepositoryFacade combines all budget item repository interfaces
type BudgetItemRepositoryFacade interface {
	BudgetItemReader
	BudgetItemWriter
}
