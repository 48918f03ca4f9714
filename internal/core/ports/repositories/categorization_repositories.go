package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// CategorizationReader defines read operations for transaction categorizations
type CategorizationReader interface {
	// FindCategorization retrieves the split keyed by (transactionID, categoryID).
	FindCategorization(ctx context.Context, transactionID, categoryID int64) (*domain.TransactionCategorization, error)

	ListCategorizationsByTransaction(ctx context.Context, transactionID int64) ([]domain.TransactionCategorization, error)
	ListCategorizationsByCategory(ctx context.Context, categoryID int64) ([]domain.TransactionCategorization, error)

	// ListCategorizations returns every split ordered by transaction then category.
	ListCategorizations(ctx context.Context) ([]domain.TransactionCategorization, error)
}

// CategorizationWriter defines write operations for transaction categorizations
type CategorizationWriter interface {
	// SaveCategorization inserts a split. A second split for the same pair fails with ErrDuplicate.
	SaveCategorization(ctx context.Context, c domain.TransactionCategorization) error
	UpdateCategorization(ctx context.Context, c domain.TransactionCategorization) error
	DeleteCategorization(ctx context.Context, transactionID, categoryID int64) error
}

// CategorizationRepositoryFacade combines all categorization repository interfaces
type CategorizationRepositoryFacade interface {
	CategorizationReader
	CategorizationWriter
}
