package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// TransactionReader defines read operations for account transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by id.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.AccountTransaction, error)

	// ListTransactionsByAccount lists an account's transactions newest first. When after is
	// set only rows that sort after that cursor are returned.
	ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, after *domain.TransactionCursor) ([]domain.AccountTransaction, error)
}

// TransactionWriter defines write operations for account transactions
type TransactionWriter interface {
	// SaveTransaction inserts a transaction and returns its id.
	SaveTransaction(ctx context.Context, txn domain.AccountTransaction) (int64, error)

	// UpdateTransaction updates every non-key column of a transaction.
	UpdateTransaction(ctx context.Context, txn domain.AccountTransaction) error

	// DeleteTransaction removes a transaction that nothing references.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
