package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCategorizationRepository struct {
	BaseRepository
}

// newPgxCategorizationRepository creates a repository for transaction categorizations.
func newPgxCategorizationRepository(db DBTX) portsrepo.CategorizationRepositoryFacade {
	return &PgxCategorizationRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CategorizationRepositoryFacade = (*PgxCategorizationRepository)(nil)

const categorizationColumns = `transaction_id, category_id, amount, notes`

type categorizationKey struct {
	TransactionID int64
	CategoryID    int64
}

func (k categorizationKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.TransactionID, k.CategoryID)
}

func scanCategorization(row pgx.Row) (models.TransactionCategorization, error) {
	var m models.TransactionCategorization
	err := row.Scan(&m.TransactionID, &m.CategoryID, &m.Amount, &m.Notes)
	return m, err
}

// SaveCategorization inserts a split keyed by (transaction_id, category_id).
func (r *PgxCategorizationRepository) SaveCategorization(ctx context.Context, c domain.TransactionCategorization) error {
	m := mapping.ToModelCategorization(c)
	key := categorizationKey{m.TransactionID, m.CategoryID}
	query := `INSERT INTO transaction_categorizations (` + categorizationColumns + `) VALUES ($1, $2, $3, $4);`
	if _, err := r.DB.Exec(ctx, query, m.TransactionID, m.CategoryID, m.Amount, m.Notes); err != nil {
		return fmt.Errorf("failed to save categorization %s: %w", key, translateError(err, models.TransactionCategorizationTable, key))
	}
	return nil
}

func (r *PgxCategorizationRepository) UpdateCategorization(ctx context.Context, c domain.TransactionCategorization) error {
	m := mapping.ToModelCategorization(c)
	key := categorizationKey{m.TransactionID, m.CategoryID}
	query := `
		UPDATE transaction_categorizations SET amount = $3, notes = $4
		WHERE transaction_id = $1 AND category_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query, m.TransactionID, m.CategoryID, m.Amount, m.Notes)
	if err != nil {
		return fmt.Errorf("failed to update categorization %s: %w", key, translateError(err, models.TransactionCategorizationTable, key))
	}
	return notFoundIfNone(tag, models.TransactionCategorizationTable, key)
}

func (r *PgxCategorizationRepository) DeleteCategorization(ctx context.Context, transactionID, categoryID int64) error {
	key := categorizationKey{transactionID, categoryID}
	tag, err := r.DB.Exec(ctx, `DELETE FROM transaction_categorizations WHERE transaction_id = $1 AND category_id = $2;`, transactionID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete categorization %s: %w", key, translateError(err, models.TransactionCategorizationTable, key))
	}
	return notFoundIfNone(tag, models.TransactionCategorizationTable, key)
}

func (r *PgxCategorizationRepository) FindCategorization(ctx context.Context, transactionID, categoryID int64) (*domain.TransactionCategorization, error) {
	key := categorizationKey{transactionID, categoryID}
	query := `SELECT ` + categorizationColumns + ` FROM transaction_categorizations WHERE transaction_id = $1 AND category_id = $2;`
	m, err := scanCategorization(r.DB.QueryRow(ctx, query, transactionID, categoryID))
	if err != nil {
		return nil, fmt.Errorf("failed to find categorization %s: %w", key, translateError(err, models.TransactionCategorizationTable, key))
	}
	d := mapping.ToDomainCategorization(m)
	return &d, nil
}

func (r *PgxCategorizationRepository) ListCategorizationsByTransaction(ctx context.Context, transactionID int64) ([]domain.TransactionCategorization, error) {
	return r.list(ctx, `SELECT `+categorizationColumns+` FROM transaction_categorizations WHERE transaction_id = $1 ORDER BY category_id;`, transactionID)
}

func (r *PgxCategorizationRepository) ListCategorizationsByCategory(ctx context.Context, categoryID int64) ([]domain.TransactionCategorization, error) {
	return r.list(ctx, `SELECT `+categorizationColumns+` FROM transaction_categorizations WHERE category_id = $1 ORDER BY transaction_id;`, categoryID)
}

func (r *PgxCategorizationRepository) ListCategorizations(ctx context.Context) ([]domain.TransactionCategorization, error) {
	return r.list(ctx, `SELECT `+categorizationColumns+` FROM transaction_categorizations ORDER BY transaction_id, category_id;`)
}

func (r *PgxCategorizationRepository) list(ctx context.Context, query string, args ...any) ([]domain.TransactionCategorization, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categorizations: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TransactionCategorization, error) {
		return scanCategorization(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categorizations: %w", err)
	}
	ds := make([]domain.TransactionCategorization, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainCategorization(m)
	}
	return ds, nil
}
