package services

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

// AdjustmentReaderSvc defines read operations for adjustments
type AdjustmentReaderSvc interface {
	GetAdjustment(ctx context.Context, adjustmentID int64) (*domain.TransactionAdjustment, error)

	// SourceTransaction and DestinationTransaction resolve the two legs independently.
	SourceTransaction(ctx context.Context, adjustmentID int64) (*domain.AccountTransaction, error)
	DestinationTransaction(ctx context.Context, adjustmentID int64) (*domain.AccountTransaction, error)

	// AdjustmentsFrom lists adjustments whose source leg is transactionID.
	AdjustmentsFrom(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error)
	// AdjustmentsInto lists adjustments whose destination leg is transactionID.
	AdjustmentsInto(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error)
}

// AdjustmentWriterSvc defines write operations for adjustments
type AdjustmentWriterSvc interface {
	// LinkTransactions records a same-currency adjustment. Both legs must be held in
	// the same currency.
	LinkTransactions(ctx context.Context, req dto.LinkTransactionsRequest) (*domain.TransactionAdjustment, error)

	// LinkConversion records a currency conversion. The legs must be held in different
	// currencies.
	LinkConversion(ctx context.Context, req dto.LinkConversionRequest) (*domain.TransactionAdjustment, error)

	DeleteAdjustment(ctx context.Context, adjustmentID int64) error
}

// AdjustmentSvcFacade combines all adjustment-related service interfaces
type AdjustmentSvcFacade interface {
	AdjustmentReaderSvc
	AdjustmentWriterSvc
}
