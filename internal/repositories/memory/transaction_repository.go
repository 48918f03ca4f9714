package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

type transactionRepository struct {
	sess *session
}

// normalizeTransaction validates m against the account_transactions columns and trims
// the dates to calendar days.
func normalizeTransaction(t *tables, m *models.AccountTransaction) error {
	err := checkLengths(models.AccountTransactionTable,
		varchar("title", m.Title, models.TitleMaxLength),
		varchar("merchant", m.Merchant, models.TitleMaxLength),
		varchar("instrument", m.Instrument, models.TitleMaxLength),
	)
	if err != nil {
		return err
	}
	if _, exists := t.accounts[m.AccountID]; !exists {
		return foreignKey(models.AccountTransactionTable, "account_id", m.AccountID)
	}
	m.TransactionDate = dateOnly(m.TransactionDate)
	m.PostingDate = nullDateOnly(m.PostingDate)
	return nil
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.AccountTransaction) (int64, error) {
	m := mapping.ToModelAccountTransaction(txn)
	err := r.sess.write(func(t *tables) error {
		if err := normalizeTransaction(t, &m); err != nil {
			return err
		}
		m.ID = t.nextID(models.AccountTransactionTable)
		t.transactions[m.ID] = m
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save transaction for account %d: %w", m.AccountID, err)
	}
	return m.ID, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.AccountTransaction) error {
	m := mapping.ToModelAccountTransaction(txn)
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.transactions[m.ID]; !exists {
			return notFound(models.AccountTransactionTable, m.ID)
		}
		if err := normalizeTransaction(t, &m); err != nil {
			return err
		}
		t.transactions[m.ID] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", m.ID, err)
	}
	return nil
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.transactions[transactionID]; !exists {
			return notFound(models.AccountTransactionTable, transactionID)
		}
		for _, adj := range t.adjustments {
			if adj.SourceTransactionID == transactionID {
				return foreignKey(models.TransactionAdjustmentTable, "source_transaction_id", transactionID)
			}
			if adj.DestinationTransactionID == transactionID {
				return foreignKey(models.TransactionAdjustmentTable, "destination_transaction_id", transactionID)
			}
		}
		for key := range t.categorizations {
			if key.TransactionID == transactionID {
				return foreignKey(models.TransactionCategorizationTable, "transaction_id", transactionID)
			}
		}
		for _, rc := range t.receipts {
			if rc.TransactionID == transactionID {
				return foreignKey(models.ReceiptTable, "transaction_id", transactionID)
			}
		}
		delete(t.transactions, transactionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return nil
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.AccountTransaction, error) {
	var d domain.AccountTransaction
	err := r.sess.read(func(t *tables) error {
		m, exists := t.transactions[transactionID]
		if !exists {
			return notFound(models.AccountTransactionTable, transactionID)
		}
		d = mapping.ToDomainAccountTransaction(m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	return &d, nil
}

// ListTransactionsByAccount returns the account's transactions newest first, resuming
// after the cursor when one is given. A limit of zero or less returns every row.
func (r *transactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, after *domain.TransactionCursor) ([]domain.AccountTransaction, error) {
	var ds []domain.AccountTransaction
	err := r.sess.read(func(t *tables) error {
		for _, m := range t.transactions {
			if m.AccountID != accountID {
				continue
			}
			d := mapping.ToDomainAccountTransaction(m)
			if after != nil && !after.Before(d) {
				continue
			}
			ds = append(ds, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(ds, func(i, j int) bool {
		return domain.TransactionCursor{TransactionDate: ds[i].TransactionDate, ID: ds[i].ID}.Before(ds[j])
	})
	if limit > 0 && limit < len(ds) {
		ds = ds[:limit]
	}
	return ds, nil
}
