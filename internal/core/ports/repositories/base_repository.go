package repositories

import "context"

// UnitOfWork runs a group of reads and writes atomically.
type UnitOfWork interface {
	// Do begins a unit of work, hands fn repositories bound to it, and commits when fn
	// returns nil. Any error or panic from fn rolls the unit back; resources are released
	// on every exit path.
	Do(ctx context.Context, fn func(ctx context.Context, repos RepositoryProvider) error) error
}

// Store is a storage engine that realizes the ledger schema.
type Store interface {
	UnitOfWork

	// Repositories returns repositories that run each call in its own implicit transaction.
	Repositories() RepositoryProvider
}
