package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// ReceiptReader defines read operations for receipts
type ReceiptReader interface {
	FindReceiptByID(ctx context.Context, receiptID int64) (*domain.Receipt, error)
	ListReceiptsByTransaction(ctx context.Context, transactionID int64) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipts
type ReceiptWriter interface {
	SaveReceipt(ctx context.Context, receipt domain.Receipt) (int64, error)
	UpdateReceipt(ctx context.Context, receipt domain.Receipt) error
	DeleteReceipt(ctx context.Context, receiptID int64) error
}

// ReceiptRepositoryFacade combines all receipt repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
