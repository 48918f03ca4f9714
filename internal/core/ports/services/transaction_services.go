package services

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID int64) (*domain.AccountTransaction, error)

	// GetTransactionDetail loads a transaction with its categorizations, receipts and
	// the adjustments on either leg.
	GetTransactionDetail(ctx context.Context, transactionID int64) (*domain.TransactionDetail, error)

	// CheckBalance verifies that the stored categorizations add up to the amount.
	CheckBalance(ctx context.Context, transactionID int64) error
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// RecordTransaction stores a transaction and its categorizations in one unit of work.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.TransactionDetail, error)
	UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.AccountTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error

	// Categorize replaces the whole split of a transaction.
	Categorize(ctx context.Context, transactionID int64, split []dto.CategorizationRequest) ([]domain.TransactionCategorization, error)
	RemoveCategorization(ctx context.Context, transactionID, categoryID int64) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
