package services

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

// ReceiptSvcFacade manages receipts attached to transactions.
type ReceiptSvcFacade interface {
	// AttachReceipt stores the payloads unmodified after checking that each one holds
	// the content type its column is named for.
	AttachReceipt(ctx context.Context, req dto.AttachReceiptRequest) (*domain.Receipt, error)
	GetReceipt(ctx context.Context, receiptID int64) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, transactionID int64) ([]domain.Receipt, error)
	DeleteReceipt(ctx context.Context, receiptID int64) error
}
