package services

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	GetBudget(ctx context.Context, budgetID int64) (*domain.BudgetDetail, error)
	ListBudgets(ctx context.Context, currencyCode string) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)
	AddItem(ctx context.Context, req dto.AddBudgetItemRequest) (*domain.BudgetItem, error)
	UpdateItem(ctx context.Context, itemID int64, req dto.UpdateBudgetItemRequest) (*domain.BudgetItem, error)
	RemoveItem(ctx context.Context, itemID int64) error

	// DeleteBudget removes a budget together with its items.
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
