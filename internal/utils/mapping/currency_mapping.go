package mapping

import (
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		ISO4217Code:   d.Code,
		Title:         NullString(d.Title),
		Symbol:        NullString(d.Symbol),
		LongSymbol:    NullString(d.LongSymbol),
		DisplayFactor: d.DisplayFactor,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		Code:          m.ISO4217Code,
		Title:         m.Title.String,
		Symbol:        m.Symbol.String,
		LongSymbol:    m.LongSymbol.String,
		DisplayFactor: m.DisplayFactor,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
