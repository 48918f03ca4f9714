package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(db DBTX) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// The base row is joined with both subtype tables; the discriminator picks which join
// result is materialized.
const accountSelect = `
	SELECT a.id, a.currency_code, a.type,
	       ia.id IS NOT NULL, ia.title, ia.number_suffix, ia.institution_title, ia.minimum_value,
	       pa.id IS NOT NULL, pa.holder
	FROM accounts a
	LEFT JOIN institution_accounts ia ON ia.id = a.id
	LEFT JOIN personal_accounts pa ON pa.id = a.id
`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.ID, &m.CurrencyCode, &m.Type,
		&m.HasInstitution, &m.Title, &m.NumberSuffix, &m.InstitutionTitle, &m.MinimumValue,
		&m.HasPersonal, &m.Holder,
	)
	return m, err
}

// SaveAccount inserts the base row and the subtype row in one transaction.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m, err := mapping.ToModelAccount(account)
	if err != nil {
		return 0, fmt.Errorf("failed to save account: %w", err)
	}
	var id int64

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO accounts (currency_code, type) VALUES ($1, $2) RETURNING id;`,
			m.CurrencyCode, m.Type,
		).Scan(&id)
		if err != nil {
			return translateError(err, models.AccountTable, m.CurrencyCode)
		}

		switch {
		case m.HasInstitution:
			_, err = tx.Exec(ctx, `
				INSERT INTO institution_accounts (id, title, number_suffix, institution_title, minimum_value)
				VALUES ($1, $2, $3, $4, $5);`,
				id, m.Title, m.NumberSuffix, m.InstitutionTitle, m.MinimumValue,
			)
			return translateError(err, models.InstitutionAccountTable, id)
		case m.HasPersonal:
			_, err = tx.Exec(ctx, `INSERT INTO personal_accounts (id, holder) VALUES ($1, $2);`, id, m.Holder)
			return translateError(err, models.PersonalAccountTable, id)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", m.Type, err)
	}
	return id, nil
}

// UpdateAccount updates the subtype columns. The stored discriminator must match.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m, err := mapping.ToModelAccount(account)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var storedType string
		err := tx.QueryRow(ctx, `SELECT type FROM accounts WHERE id = $1 FOR UPDATE;`, m.ID).Scan(&storedType)
		if err != nil {
			return translateError(err, models.AccountTable, m.ID)
		}
		if storedType != m.Type {
			return fmt.Errorf("%w: account %d is a %s, not a %s", apperrors.ErrValidation, m.ID, storedType, m.Type)
		}

		switch {
		case m.HasInstitution:
			_, err = tx.Exec(ctx, `
				UPDATE institution_accounts
				SET title = $2, number_suffix = $3, institution_title = $4, minimum_value = $5
				WHERE id = $1;`,
				m.ID, m.Title, m.NumberSuffix, m.InstitutionTitle, m.MinimumValue,
			)
			return translateError(err, models.InstitutionAccountTable, m.ID)
		case m.HasPersonal:
			_, err = tx.Exec(ctx, `UPDATE personal_accounts SET holder = $2 WHERE id = $1;`, m.ID, m.Holder)
			return translateError(err, models.PersonalAccountTable, m.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", m.ID, err)
	}
	return nil
}

// DeleteAccount removes the subtype row, then the base row.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM institution_accounts WHERE id = $1;`, accountID); err != nil {
			return translateError(err, models.InstitutionAccountTable, accountID)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM personal_accounts WHERE id = $1;`, accountID); err != nil {
			return translateError(err, models.PersonalAccountTable, accountID)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1;`, accountID)
		if err != nil {
			return translateError(err, models.AccountTable, accountID)
		}
		return notFoundIfNone(tag, models.AccountTable, accountID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	m, err := scanAccount(r.DB.QueryRow(ctx, accountSelect+` WHERE a.id = $1;`, accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, translateError(err, models.AccountTable, accountID))
	}
	acc, err := mapping.ToDomainAccount(m)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// ListAccountsByCurrency retrieves the accounts held in a currency.
func (r *PgxAccountRepository) ListAccountsByCurrency(ctx context.Context, currencyCode string) ([]domain.Account, error) {
	rows, err := r.DB.Query(ctx, accountSelect+` WHERE a.currency_code = $1 ORDER BY a.id;`, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for currency %s: %w", currencyCode, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms)
}
