package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

type accountRepository struct {
	sess *session
}

func validateAccount(m models.Account) error {
	if !domain.AccountType(m.Type).Valid() {
		return checkViolation(models.AccountTable, "type", m.Type)
	}
	if err := checkLengths(models.AccountTable, column{name: "currency_code", value: m.CurrencyCode, limit: models.CurrencyCodeLength}); err != nil {
		return err
	}
	if m.HasInstitution {
		return checkLengths(models.InstitutionAccountTable,
			varchar("title", m.Title, models.TitleMaxLength),
			varchar("number_suffix", m.NumberSuffix, models.NumberSuffixMaxLength),
			varchar("institution_title", m.InstitutionTitle, models.TitleMaxLength),
		)
	}
	if m.HasPersonal {
		return checkLengths(models.PersonalAccountTable, varchar("holder", m.Holder, models.TitleMaxLength))
	}
	return nil
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m, err := mapping.ToModelAccount(account)
	if err != nil {
		return 0, fmt.Errorf("failed to save account: %w", err)
	}
	err = r.sess.write(func(t *tables) error {
		if err := validateAccount(m); err != nil {
			return err
		}
		if _, exists := t.currencies[m.CurrencyCode]; !exists {
			return foreignKey(models.AccountTable, "currency_code", m.CurrencyCode)
		}
		m.ID = t.nextID(models.AccountTable)
		t.accounts[m.ID] = m
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", m.Type, err)
	}
	return m.ID, nil
}

// UpdateAccount replaces the subtype columns; currency and discriminator stay as stored.
func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m, err := mapping.ToModelAccount(account)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	err = r.sess.write(func(t *tables) error {
		stored, exists := t.accounts[m.ID]
		if !exists {
			return notFound(models.AccountTable, m.ID)
		}
		if stored.Type != m.Type {
			return fmt.Errorf("%w: account %d is a %s, not a %s", apperrors.ErrValidation, m.ID, stored.Type, m.Type)
		}
		if err := validateAccount(m); err != nil {
			return err
		}
		m.CurrencyCode = stored.CurrencyCode
		t.accounts[m.ID] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", m.ID, err)
	}
	return nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.accounts[accountID]; !exists {
			return notFound(models.AccountTable, accountID)
		}
		for _, txn := range t.transactions {
			if txn.AccountID == accountID {
				return foreignKey(models.AccountTransactionTable, "account_id", accountID)
			}
		}
		delete(t.accounts, accountID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	var m models.Account
	err := r.sess.read(func(t *tables) error {
		var exists bool
		if m, exists = t.accounts[accountID]; !exists {
			return notFound(models.AccountTable, accountID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}
	acc, err := mapping.ToDomainAccount(m)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) ListAccountsByCurrency(ctx context.Context, currencyCode string) ([]domain.Account, error) {
	var ms []models.Account
	err := r.sess.read(func(t *tables) error {
		for _, m := range t.accounts {
			if m.CurrencyCode == currencyCode {
				ms = append(ms, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].ID < ms[j].ID })
	return mapping.ToDomainAccountSlice(ms)
}
