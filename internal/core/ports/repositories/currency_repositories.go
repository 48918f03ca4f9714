package repositories

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its ISO-4217 code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency inserts a new currency. A second insert with the same code fails with ErrDuplicate.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency changes the display attributes of an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes a currency that nothing references.
	DeleteCurrency(ctx context.Context, code string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
