package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

type currencyRepository struct {
	sess *session
}

func validateCurrency(m models.Currency) error {
	return checkLengths(models.CurrencyTable,
		column{name: "iso4217_code", value: m.ISO4217Code, limit: models.CurrencyCodeLength},
		varchar("symbol", m.Symbol, models.SymbolMaxLength),
		varchar("long_symbol", m.LongSymbol, models.LongSymbolMaxLength),
	)
}

func (r *currencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	return r.sess.write(func(t *tables) error {
		if err := validateCurrency(m); err != nil {
			return fmt.Errorf("failed to save currency %s: %w", m.ISO4217Code, err)
		}
		if _, exists := t.currencies[m.ISO4217Code]; exists {
			return fmt.Errorf("failed to save currency %s: %w", m.ISO4217Code, duplicateKey(models.CurrencyTable, "iso4217_code", m.ISO4217Code))
		}
		t.currencies[m.ISO4217Code] = m
		return nil
	})
}

func (r *currencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	return r.sess.write(func(t *tables) error {
		if err := validateCurrency(m); err != nil {
			return fmt.Errorf("failed to update currency %s: %w", m.ISO4217Code, err)
		}
		if _, exists := t.currencies[m.ISO4217Code]; !exists {
			return notFound(models.CurrencyTable, m.ISO4217Code)
		}
		t.currencies[m.ISO4217Code] = m
		return nil
	})
}

func (r *currencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	return r.sess.write(func(t *tables) error {
		if _, exists := t.currencies[code]; !exists {
			return notFound(models.CurrencyTable, code)
		}
		for _, a := range t.accounts {
			if a.CurrencyCode == code {
				return fmt.Errorf("failed to delete currency %s: %w", code, foreignKey(models.AccountTable, "currency_code", code))
			}
		}
		for _, b := range t.budgets {
			if b.CurrencyCode == code {
				return fmt.Errorf("failed to delete currency %s: %w", code, foreignKey(models.BudgetTable, "currency_code", code))
			}
		}
		delete(t.currencies, code)
		return nil
	})
}

func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	var d domain.Currency
	err := r.sess.read(func(t *tables) error {
		m, exists := t.currencies[code]
		if !exists {
			return notFound(models.CurrencyTable, code)
		}
		d = mapping.ToDomainCurrency(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var ds []domain.Currency
	err := r.sess.read(func(t *tables) error {
		ds = make([]domain.Currency, 0, len(t.currencies))
		for _, m := range t.currencies {
			ds = append(ds, mapping.ToDomainCurrency(m))
		}
		return nil
	})
	sort.Slice(ds, func(i, j int) bool { return ds[i].Code < ds[j].Code })
	return ds, err
}
