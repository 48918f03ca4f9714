package mapping

import (
	"fmt"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
)

// ToModelAccount flattens a domain Account into its joined row form. Pointer details are
// stored like their value form; a nil pointer is rejected.
func ToModelAccount(d domain.Account) (models.Account, error) {
	m := models.Account{ID: d.ID, CurrencyCode: d.CurrencyCode}
	details := d.Details
	switch p := details.(type) {
	case *domain.InstitutionAccount:
		if p == nil {
			return models.Account{}, fmt.Errorf("%w: account %d has nil %s details", apperrors.ErrValidation, d.ID, domain.AccountTypeInstitution)
		}
		details = *p
	case *domain.PersonalAccount:
		if p == nil {
			return models.Account{}, fmt.Errorf("%w: account %d has nil %s details", apperrors.ErrValidation, d.ID, domain.AccountTypePersonal)
		}
		details = *p
	}

	switch details := details.(type) {
	case nil:
		m.Type = string(domain.AccountTypeBase)
	case domain.InstitutionAccount:
		m.Type = string(domain.AccountTypeInstitution)
		m.HasInstitution = true
		m.Title = NullString(details.Title)
		m.NumberSuffix = NullString(details.NumberSuffix)
		m.InstitutionTitle = NullString(details.InstitutionTitle)
		m.MinimumValue.Int64, m.MinimumValue.Valid = details.MinimumValue, true
	case domain.PersonalAccount:
		m.Type = string(domain.AccountTypePersonal)
		m.HasPersonal = true
		m.Holder = NullString(details.Holder)
	default:
		return models.Account{}, fmt.Errorf("%w: account %d has unsupported details %T", apperrors.ErrValidation, d.ID, details)
	}
	return m, nil
}

// ToDomainAccount materializes the subtype selected by the discriminator. A discriminator
// that disagrees with the subtype rows actually present is an integrity error; the row is
// never returned as a bare Account or as the wrong subtype.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	acc := domain.Account{ID: m.ID, CurrencyCode: m.CurrencyCode}

	switch t := domain.AccountType(m.Type); t {
	case domain.AccountTypeBase:
		if m.HasInstitution || m.HasPersonal {
			return domain.Account{}, fmt.Errorf("%w: account %d has type %q but a subtype row exists", apperrors.ErrIntegrity, m.ID, t)
		}
	case domain.AccountTypeInstitution:
		if !m.HasInstitution || m.HasPersonal {
			return domain.Account{}, fmt.Errorf("%w: account %d has type %q without a matching %s row", apperrors.ErrIntegrity, m.ID, t, models.InstitutionAccountTable)
		}
		acc.Details = domain.InstitutionAccount{
			Title:            m.Title.String,
			NumberSuffix:     m.NumberSuffix.String,
			InstitutionTitle: m.InstitutionTitle.String,
			MinimumValue:     m.MinimumValue.Int64,
		}
	case domain.AccountTypePersonal:
		if !m.HasPersonal || m.HasInstitution {
			return domain.Account{}, fmt.Errorf("%w: account %d has type %q without a matching %s row", apperrors.ErrIntegrity, m.ID, t, models.PersonalAccountTable)
		}
		acc.Details = domain.PersonalAccount{Holder: m.Holder.String}
	default:
		return domain.Account{}, apperrors.NewConstraintError(apperrors.ErrTypeMismatch, models.AccountTable, "type", m.Type)
	}
	return acc, nil
}

// ToDomainAccountSlice converts joined rows, stopping at the first inconsistent one.
func ToDomainAccountSlice(ms []models.Account) ([]domain.Account, error) {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
