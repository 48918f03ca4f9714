package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID loads an account and materializes the subtype named by its discriminator.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccountsByCurrency lists the accounts held in a currency, ordered by id.
	ListAccountsByCurrency(ctx context.Context, currencyCode string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount inserts the base row and, if present, the subtype row sharing its id.
	// It returns the assigned id.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)

	// UpdateAccount updates the subtype columns of an account. The id, currency and
	// discriminator are not changed.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the subtype row and then the base row.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
