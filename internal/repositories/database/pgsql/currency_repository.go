package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(db DBTX) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = `iso4217_code, title, symbol, long_symbol, display_factor`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(&m.ISO4217Code, &m.Title, &m.Symbol, &m.LongSymbol, &m.DisplayFactor)
	return m, err
}

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.DB.Exec(ctx, query, m.ISO4217Code, m.Title, m.Symbol, m.LongSymbol, m.DisplayFactor)
	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", m.ISO4217Code, translateError(err, models.CurrencyTable, m.ISO4217Code))
	}
	return nil
}

// UpdateCurrency updates the non-key columns of a currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		UPDATE currencies
		SET title = $2, symbol = $3, long_symbol = $4, display_factor = $5
		WHERE iso4217_code = $1;
	`
	tag, err := r.DB.Exec(ctx, query, m.ISO4217Code, m.Title, m.Symbol, m.LongSymbol, m.DisplayFactor)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", m.ISO4217Code, translateError(err, models.CurrencyTable, m.ISO4217Code))
	}
	return notFoundIfNone(tag, models.CurrencyTable, m.ISO4217Code)
}

// DeleteCurrency removes a currency. Accounts or budgets still referencing it make this
// fail with a foreign key violation.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM currencies WHERE iso4217_code = $1;`, code)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", code, translateError(err, models.CurrencyTable, code))
	}
	return notFoundIfNone(tag, models.CurrencyTable, code)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE iso4217_code = $1;`
	m, err := scanCurrency(r.DB.QueryRow(ctx, query, code))
	if err != nil {
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, translateError(err, models.CurrencyTable, code))
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY iso4217_code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}
