package pgsql

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/platform/logging"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store realizes the ledger schema on PostgreSQL.
type Store struct {
	BaseRepository
	pool *pgxpool.Pool
}

// NewStore creates a store over an established pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{BaseRepository: BaseRepository{DB: pool}, pool: pool}
}

// Ensure Store implements portsrepo.Store
var _ portsrepo.Store = (*Store)(nil)

// Repositories returns repositories that run directly on the pool.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return NewRepositoryProvider(s.pool)
}

// Do runs fn inside a single database transaction.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	logger := logging.FromContext(ctx).With(slog.String("uow_id", uuid.NewString()))
	ctx = logging.WithLogger(ctx, logger)

	tx, err := s.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer func() {
		// Runs on error, panic and after commit; the last is a no-op.
		if rbErr := s.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			logger.Error("Failed to roll back unit of work", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, NewRepositoryProvider(tx)); err != nil {
		logger.Debug("Unit of work rolled back", slog.String("error", err.Error()))
		return err
	}
	if err := s.Commit(ctx, tx); err != nil {
		return translateError(err, "unit of work", nil)
	}
	logger.Debug("Unit of work committed")
	return nil
}

// NewRepositoryProvider binds every repository to db.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:       newPgxCurrencyRepository(db),
		AccountRepo:        newPgxAccountRepository(db),
		TransactionRepo:    newPgxTransactionRepository(db),
		CategoryRepo:       newPgxCategoryRepository(db),
		BudgetCategoryRepo: newPgxBudgetCategoryRepository(db),
		CategorizationRepo: newPgxCategorizationRepository(db),
		AdjustmentRepo:     newPgxAdjustmentRepository(db),
		ReceiptRepo:        newPgxReceiptRepository(db),
		BudgetRepo:         newPgxBudgetRepository(db),
		BudgetItemRepo:     newPgxBudgetItemRepository(db),
	}
}
