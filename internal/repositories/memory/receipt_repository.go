package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

type receiptRepository struct {
	sess *session
}

// Payloads are copied on the way in and out so callers never share storage.
func copyReceipt(m models.Receipt) models.Receipt {
	m.ImageJPEG = cloneBytes(m.ImageJPEG)
	m.ImagePDF = cloneBytes(m.ImagePDF)
	return m
}

func (r *receiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) (int64, error) {
	m := copyReceipt(mapping.ToModelReceipt(receipt))
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.transactions[m.TransactionID]; !exists {
			return foreignKey(models.ReceiptTable, "transaction_id", m.TransactionID)
		}
		m.ID = t.nextID(models.ReceiptTable)
		t.receipts[m.ID] = m
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save receipt for transaction %d: %w", m.TransactionID, err)
	}
	return m.ID, nil
}

func (r *receiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := copyReceipt(mapping.ToModelReceipt(receipt))
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.receipts[m.ID]; !exists {
			return notFound(models.ReceiptTable, m.ID)
		}
		if _, exists := t.transactions[m.TransactionID]; !exists {
			return foreignKey(models.ReceiptTable, "transaction_id", m.TransactionID)
		}
		t.receipts[m.ID] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update receipt %d: %w", m.ID, err)
	}
	return nil
}

func (r *receiptRepository) DeleteReceipt(ctx context.Context, receiptID int64) error {
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.receipts[receiptID]; !exists {
			return notFound(models.ReceiptTable, receiptID)
		}
		delete(t.receipts, receiptID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete receipt %d: %w", receiptID, err)
	}
	return nil
}

func (r *receiptRepository) FindReceiptByID(ctx context.Context, receiptID int64) (*domain.Receipt, error) {
	var d domain.Receipt
	err := r.sess.read(func(t *tables) error {
		m, exists := t.receipts[receiptID]
		if !exists {
			return notFound(models.ReceiptTable, receiptID)
		}
		d = mapping.ToDomainReceipt(copyReceipt(m))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find receipt %d: %w", receiptID, err)
	}
	return &d, nil
}

func (r *receiptRepository) ListReceiptsByTransaction(ctx context.Context, transactionID int64) ([]domain.Receipt, error) {
	var ds []domain.Receipt
	err := r.sess.read(func(t *tables) error {
		for _, m := range t.receipts {
			if m.TransactionID == transactionID {
				ds = append(ds, mapping.ToDomainReceipt(copyReceipt(m)))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].ID < ds[j].ID })
	return ds, nil
}
