package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// AdjustmentReader defines read operations for transaction adjustments
type AdjustmentReader interface {
	// FindAdjustmentByID loads an adjustment and materializes its subtype.
	FindAdjustmentByID(ctx context.Context, adjustmentID int64) (*domain.TransactionAdjustment, error)

	// FindAdjustmentsBySource lists adjustments whose source leg is transactionID.
	FindAdjustmentsBySource(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error)

	// FindAdjustmentsByDestination lists adjustments whose destination leg is transactionID.
	FindAdjustmentsByDestination(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error)
}

// AdjustmentWriter defines write operations for transaction adjustments
type AdjustmentWriter interface {
	SaveAdjustment(ctx context.Context, adjustment domain.TransactionAdjustment) (int64, error)

	// UpdateAdjustment updates title, notes and subtype amounts. Legs and discriminator are fixed.
	UpdateAdjustment(ctx context.Context, adjustment domain.TransactionAdjustment) error
	DeleteAdjustment(ctx context.Context, adjustmentID int64) error
}

// AdjustmentRepositoryFacade combines all adjustment repository interfaces
type AdjustmentRepositoryFacade interface {
	AdjustmentReader
	AdjustmentWriter
}
