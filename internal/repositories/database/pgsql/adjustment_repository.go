package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAdjustmentRepository struct {
	BaseRepository
}

// newPgxAdjustmentRepository creates a repository for transaction adjustments.
func newPgxAdjustmentRepository(db DBTX) portsrepo.AdjustmentRepositoryFacade {
	return &PgxAdjustmentRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

const adjustmentSelect = `
	SELECT ta.id, ta.source_transaction_id, ta.destination_transaction_id, ta.title, ta.notes, ta.type,
	       ata.id IS NOT NULL, ata.amount,
	       cca.id IS NOT NULL, cca.source_amount, cca.destination_amount
	FROM transaction_adjustments ta
	LEFT JOIN account_transaction_adjustments ata ON ata.id = ta.id
	LEFT JOIN currency_conversion_adjustments cca ON cca.id = ta.id
`

func scanAdjustment(row pgx.Row) (models.TransactionAdjustment, error) {
	var m models.TransactionAdjustment
	err := row.Scan(
		&m.ID, &m.SourceTransactionID, &m.DestinationTransactionID, &m.Title, &m.Notes, &m.Type,
		&m.HasAccountTransaction, &m.Amount,
		&m.HasCurrencyConversion, &m.SourceAmount, &m.DestinationAmount,
	)
	return m, err
}

// SaveAdjustment inserts the base row and the subtype row in one transaction.
func (r *PgxAdjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.TransactionAdjustment) (int64, error) {
	m, err := mapping.ToModelAdjustment(adjustment)
	if err != nil {
		return 0, fmt.Errorf("failed to save adjustment: %w", err)
	}
	var id int64

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO transaction_adjustments (source_transaction_id, destination_transaction_id, title, notes, type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
			m.SourceTransactionID, m.DestinationTransactionID, m.Title, m.Notes, m.Type,
		).Scan(&id)
		if err != nil {
			return translateError(err, models.TransactionAdjustmentTable, fmt.Sprintf("%d->%d", m.SourceTransactionID, m.DestinationTransactionID))
		}

		switch {
		case m.HasAccountTransaction:
			_, err = tx.Exec(ctx, `INSERT INTO account_transaction_adjustments (id, amount) VALUES ($1, $2);`, id, m.Amount)
			return translateError(err, models.AccountTransactionAdjustmentTable, id)
		case m.HasCurrencyConversion:
			_, err = tx.Exec(ctx, `
				INSERT INTO currency_conversion_adjustments (id, source_amount, destination_amount)
				VALUES ($1, $2, $3);`,
				id, m.SourceAmount, m.DestinationAmount,
			)
			return translateError(err, models.CurrencyConversionAdjustmentTable, id)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", m.Type, err)
	}
	return id, nil
}

// UpdateAdjustment updates title, notes and subtype amounts.
func (r *PgxAdjustmentRepository) UpdateAdjustment(ctx context.Context, adjustment domain.TransactionAdjustment) error {
	m, err := mapping.ToModelAdjustment(adjustment)
	if err != nil {
		return fmt.Errorf("failed to update adjustment: %w", err)
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var storedType string
		err := tx.QueryRow(ctx, `
			UPDATE transaction_adjustments SET title = $2, notes = $3
			WHERE id = $1
			RETURNING type;`,
			m.ID, m.Title, m.Notes,
		).Scan(&storedType)
		if err != nil {
			return translateError(err, models.TransactionAdjustmentTable, m.ID)
		}
		if storedType != m.Type {
			return fmt.Errorf("%w: adjustment %d is a %s, not a %s", apperrors.ErrValidation, m.ID, storedType, m.Type)
		}

		switch {
		case m.HasAccountTransaction:
			_, err = tx.Exec(ctx, `UPDATE account_transaction_adjustments SET amount = $2 WHERE id = $1;`, m.ID, m.Amount)
			return translateError(err, models.AccountTransactionAdjustmentTable, m.ID)
		case m.HasCurrencyConversion:
			_, err = tx.Exec(ctx, `
				UPDATE currency_conversion_adjustments SET source_amount = $2, destination_amount = $3
				WHERE id = $1;`,
				m.ID, m.SourceAmount, m.DestinationAmount,
			)
			return translateError(err, models.CurrencyConversionAdjustmentTable, m.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update adjustment %d: %w", m.ID, err)
	}
	return nil
}

// DeleteAdjustment removes the subtype row, then the base row.
func (r *PgxAdjustmentRepository) DeleteAdjustment(ctx context.Context, adjustmentID int64) error {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM account_transaction_adjustments WHERE id = $1;`, adjustmentID); err != nil {
			return translateError(err, models.AccountTransactionAdjustmentTable, adjustmentID)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM currency_conversion_adjustments WHERE id = $1;`, adjustmentID); err != nil {
			return translateError(err, models.CurrencyConversionAdjustmentTable, adjustmentID)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM transaction_adjustments WHERE id = $1;`, adjustmentID)
		if err != nil {
			return translateError(err, models.TransactionAdjustmentTable, adjustmentID)
		}
		return notFoundIfNone(tag, models.TransactionAdjustmentTable, adjustmentID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete adjustment %d: %w", adjustmentID, err)
	}
	return nil
}

// FindAdjustmentByID retrieves an adjustment and its subtype.
func (r *PgxAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID int64) (*domain.TransactionAdjustment, error) {
	m, err := scanAdjustment(r.DB.QueryRow(ctx, adjustmentSelect+` WHERE ta.id = $1;`, adjustmentID))
	if err != nil {
		return nil, fmt.Errorf("failed to find adjustment %d: %w", adjustmentID, translateError(err, models.TransactionAdjustmentTable, adjustmentID))
	}
	adj, err := mapping.ToDomainAdjustment(m)
	if err != nil {
		return nil, err
	}
	return &adj, nil
}

// FindAdjustmentsBySource follows the source_transaction_id foreign key only.
func (r *PgxAdjustmentRepository) FindAdjustmentsBySource(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error) {
	return r.list(ctx, adjustmentSelect+` WHERE ta.source_transaction_id = $1 ORDER BY ta.id;`, transactionID)
}

// FindAdjustmentsByDestination follows the destination_transaction_id foreign key only.
func (r *PgxAdjustmentRepository) FindAdjustmentsByDestination(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error) {
	return r.list(ctx, adjustmentSelect+` WHERE ta.destination_transaction_id = $1 ORDER BY ta.id;`, transactionID)
}

func (r *PgxAdjustmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.TransactionAdjustment, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TransactionAdjustment, error) {
		return scanAdjustment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan adjustments: %w", err)
	}
	return mapping.ToDomainAdjustmentSlice(ms)
}
