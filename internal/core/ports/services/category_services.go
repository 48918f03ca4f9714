package services

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

// CategoryTreeSvc manages one self-referencing category tree. T is the node type.
type CategoryTreeSvc[T domain.HierarchyNode] interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*T, error)
	Get(ctx context.Context, categoryID int64) (*T, error)
	Rename(ctx context.Context, categoryID int64, title string) (*T, error)

	// Reparent moves a node; nil makes it a root. Moves that would close a loop fail
	// with ErrInvariant.
	Reparent(ctx context.Context, categoryID int64, parentID *int64) (*T, error)

	// Children lists the direct children of parentID, or the roots when it is nil.
	Children(ctx context.Context, parentID *int64) ([]T, error)

	// Path lists the node and its ancestors up to the root.
	Path(ctx context.Context, categoryID int64) ([]T, error)

	// Verify reports every cycle and dangling parent in the tree.
	Verify(ctx context.Context) ([]domain.HierarchyIssue, error)

	Delete(ctx context.Context, categoryID int64) error
}

// CategorySvcFacade groups the two category trees.
type CategorySvcFacade interface {
	Transactions() CategoryTreeSvc[domain.TransactionCategory]
	Budgets() CategoryTreeSvc[domain.BudgetCategory]
}
