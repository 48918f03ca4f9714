// Package memory realizes the ledger schema in process memory. It enforces the same
// keys, foreign keys, restrict-on-delete rules and column limits as the PostgreSQL
// schema and reports violations with the same apperrors kinds, so services and tests
// can run against it without a database.
package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/platform/logging"
	"github.com/google/uuid"
)

// ErrUnitClosed is returned by repositories used after their unit of work finished.
var ErrUnitClosed = errors.New("unit of work already finished")

type categorizationKey struct {
	TransactionID int64
	CategoryID    int64
}

func (k categorizationKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.TransactionID, k.CategoryID)
}

// tables holds one generation of the data. Row values are never mutated in place, so a
// shallow copy of every map is a full snapshot.
type tables struct {
	currencies       map[string]models.Currency
	accounts         map[int64]models.Account
	transactions     map[int64]models.AccountTransaction
	categories       map[int64]models.Category
	budgetCategories map[int64]models.Category
	categorizations  map[categorizationKey]models.TransactionCategorization
	adjustments      map[int64]models.TransactionAdjustment
	receipts         map[int64]models.Receipt
	budgets          map[int64]models.Budget
	budgetItems      map[int64]models.BudgetItem
	sequences        map[string]int64
}

func newTables() *tables {
	return &tables{
		currencies:       make(map[string]models.Currency),
		accounts:         make(map[int64]models.Account),
		transactions:     make(map[int64]models.AccountTransaction),
		categories:       make(map[int64]models.Category),
		budgetCategories: make(map[int64]models.Category),
		categorizations:  make(map[categorizationKey]models.TransactionCategorization),
		adjustments:      make(map[int64]models.TransactionAdjustment),
		receipts:         make(map[int64]models.Receipt),
		budgets:          make(map[int64]models.Budget),
		budgetItems:      make(map[int64]models.BudgetItem),
		sequences:        make(map[string]int64),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (t *tables) clone() *tables {
	return &tables{
		currencies:       cloneMap(t.currencies),
		accounts:         cloneMap(t.accounts),
		transactions:     cloneMap(t.transactions),
		categories:       cloneMap(t.categories),
		budgetCategories: cloneMap(t.budgetCategories),
		categorizations:  cloneMap(t.categorizations),
		adjustments:      cloneMap(t.adjustments),
		receipts:         cloneMap(t.receipts),
		budgets:          cloneMap(t.budgets),
		budgetItems:      cloneMap(t.budgetItems),
		sequences:        cloneMap(t.sequences),
	}
}

// nextID hands out identity values per table, starting at 1.
func (t *tables) nextID(table string) int64 {
	t.sequences[table]++
	return t.sequences[table]
}

// Store is an in-memory ledger store. Units of work and autocommit writes are
// serialized; reads never wait for an open unit of work and see the last committed data.
type Store struct {
	writeMu sync.Mutex

	mu   sync.RWMutex
	data *tables
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newTables()}
}

// Ensure Store implements portsrepo.Store
var _ portsrepo.Store = (*Store)(nil)

// Repositories returns repositories where every call commits on its own.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return newRepositoryProvider(&session{store: s})
}

// Do runs fn against a private snapshot. The snapshot replaces the committed data only
// when fn returns nil; an error or a panic discards it. Calling Do again from inside fn
// deadlocks.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	logger := logging.FromContext(ctx).With(slog.String("uow_id", uuid.NewString()))
	ctx = logging.WithLogger(ctx, logger)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	sess := &session{store: s, tx: s.data.clone(), closed: new(atomic.Bool)}
	defer sess.closed.Store(true)

	if err := fn(ctx, newRepositoryProvider(sess)); err != nil {
		logger.Debug("Unit of work rolled back", slog.String("error", err.Error()))
		return err
	}
	if err := ctx.Err(); err != nil {
		logger.Debug("Unit of work rolled back", slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}

	s.mu.Lock()
	s.data = sess.tx
	s.mu.Unlock()
	logger.Debug("Unit of work committed")
	return nil
}

// session binds repositories either to the committed data (autocommit) or to the
// snapshot of one unit of work.
type session struct {
	store  *Store
	tx     *tables
	closed *atomic.Bool
}

func (s *session) read(fn func(t *tables) error) error {
	if s.tx != nil {
		if s.closed.Load() {
			return ErrUnitClosed
		}
		return fn(s.tx)
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return fn(s.store.data)
}

// write runs fn with exclusive access. Every fn checks all constraints before it
// mutates, so a failed autocommit write leaves the data untouched.
func (s *session) write(fn func(t *tables) error) error {
	if s.tx != nil {
		if s.closed.Load() {
			return ErrUnitClosed
		}
		return fn(s.tx)
	}
	s.store.writeMu.Lock()
	defer s.store.writeMu.Unlock()
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return fn(s.store.data)
}

func newRepositoryProvider(sess *session) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:       &currencyRepository{sess},
		AccountRepo:        &accountRepository{sess},
		TransactionRepo:    &transactionRepository{sess},
		CategoryRepo:       &categoryRepository{transactionCategoryRows(sess)},
		BudgetCategoryRepo: &budgetCategoryRepository{budgetCategoryRows(sess)},
		CategorizationRepo: &categorizationRepository{sess},
		AdjustmentRepo:     &adjustmentRepository{sess},
		ReceiptRepo:        &receiptRepository{sess},
		BudgetRepo:         &budgetRepository{sess},
		BudgetItemRepo:     &budgetItemRepository{sess},
	}
}
