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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for account transactions.
func newPgxTransactionRepository(db DBTX) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `id, account_id, title, transaction_date, posting_date, merchant,
	transaction_amount, gain_or_loss, instrument, transaction_description, adjustment_description`

func scanTransaction(row pgx.Row) (models.AccountTransaction, error) {
	var m models.AccountTransaction
	err := row.Scan(
		&m.ID, &m.AccountID, &m.Title, &m.TransactionDate, &m.PostingDate, &m.Merchant,
		&m.TransactionAmount, &m.GainOrLoss, &m.Instrument, &m.TransactionDescription, &m.AdjustmentDescription,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]domain.AccountTransaction, error) {
	defer rows.Close()
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AccountTransaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainAccountTransactionSlice(ms), nil
}

// SaveTransaction inserts a transaction and returns its generated id.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.AccountTransaction) (int64, error) {
	m := mapping.ToModelAccountTransaction(txn)
	query := `
		INSERT INTO account_transactions (
			account_id, title, transaction_date, posting_date, merchant,
			transaction_amount, gain_or_loss, instrument, transaction_description, adjustment_description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	var id int64
	err := r.DB.QueryRow(ctx, query,
		m.AccountID, m.Title, m.TransactionDate, m.PostingDate, m.Merchant,
		m.TransactionAmount, m.GainOrLoss, m.Instrument, m.TransactionDescription, m.AdjustmentDescription,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save transaction for account %d: %w", m.AccountID, translateError(err, models.AccountTransactionTable, m.AccountID))
	}
	return id, nil
}

// UpdateTransaction updates every non-key column.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.AccountTransaction) error {
	m := mapping.ToModelAccountTransaction(txn)
	query := `
		UPDATE account_transactions
		SET account_id = $2, title = $3, transaction_date = $4, posting_date = $5, merchant = $6,
		    transaction_amount = $7, gain_or_loss = $8, instrument = $9,
		    transaction_description = $10, adjustment_description = $11
		WHERE id = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ID, m.AccountID, m.Title, m.TransactionDate, m.PostingDate, m.Merchant,
		m.TransactionAmount, m.GainOrLoss, m.Instrument, m.TransactionDescription, m.AdjustmentDescription,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", m.ID, translateError(err, models.AccountTransactionTable, m.ID))
	}
	return notFoundIfNone(tag, models.AccountTransactionTable, m.ID)
}

// DeleteTransaction removes a transaction. Categorizations, receipts or adjustments still
// pointing at it make this fail with a foreign key violation.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM account_transactions WHERE id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, translateError(err, models.AccountTransactionTable, transactionID))
	}
	return notFoundIfNone(tag, models.AccountTransactionTable, transactionID)
}

// FindTransactionByID retrieves a transaction by id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.AccountTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM account_transactions WHERE id = $1;`
	m, err := scanTransaction(r.DB.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, translateError(err, models.AccountTransactionTable, transactionID))
	}
	d := mapping.ToDomainAccountTransaction(m)
	return &d, nil
}

// ListTransactionsByAccount lists an account's transactions newest first using keyset
// pagination on (transaction_date, id). A limit of zero or less returns every row.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, after *domain.TransactionCursor) ([]domain.AccountTransaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		query := `
			SELECT ` + transactionColumns + `
			FROM account_transactions
			WHERE account_id = $1
			ORDER BY transaction_date DESC, id DESC
			LIMIT NULLIF($2, 0);
		`
		rows, err = r.DB.Query(ctx, query, accountID, max(limit, 0))
	} else {
		query := `
			SELECT ` + transactionColumns + `
			FROM account_transactions
			WHERE account_id = $1 AND (transaction_date, id) < ($3, $4)
			ORDER BY transaction_date DESC, id DESC
			LIMIT NULLIF($2, 0);
		`
		rows, err = r.DB.Query(ctx, query, accountID, max(limit, 0), after.TransactionDate, after.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %d: %w", accountID, err)
	}
	return collectTransactions(rows)
}
