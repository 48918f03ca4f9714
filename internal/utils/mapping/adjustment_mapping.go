package mapping

import (
	"fmt"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
)

// ToModelAdjustment flattens a domain adjustment into its joined row form. Pointer details
// are stored like their value form; a nil pointer is rejected.
func ToModelAdjustment(d domain.TransactionAdjustment) (models.TransactionAdjustment, error) {
	m := models.TransactionAdjustment{
		ID:                       d.ID,
		SourceTransactionID:      d.SourceTransactionID,
		DestinationTransactionID: d.DestinationTransactionID,
		Title:                    NullString(d.Title),
		Notes:                    NullString(d.Notes),
	}
	details := d.Details
	switch p := details.(type) {
	case *domain.AccountTransactionAdjustment:
		if p == nil {
			return models.TransactionAdjustment{}, fmt.Errorf("%w: adjustment %d has nil %s details", apperrors.ErrValidation, d.ID, domain.AdjustmentTypeAccountTransaction)
		}
		details = *p
	case *domain.CurrencyConversionAdjustment:
		if p == nil {
			return models.TransactionAdjustment{}, fmt.Errorf("%w: adjustment %d has nil %s details", apperrors.ErrValidation, d.ID, domain.AdjustmentTypeCurrencyConversion)
		}
		details = *p
	}

	switch details := details.(type) {
	case nil:
		m.Type = string(domain.AdjustmentTypeBase)
	case domain.AccountTransactionAdjustment:
		m.Type = string(domain.AdjustmentTypeAccountTransaction)
		m.HasAccountTransaction = true
		m.Amount.Int64, m.Amount.Valid = details.Amount, true
	case domain.CurrencyConversionAdjustment:
		m.Type = string(domain.AdjustmentTypeCurrencyConversion)
		m.HasCurrencyConversion = true
		m.SourceAmount.Int64, m.SourceAmount.Valid = details.SourceAmount, true
		m.DestinationAmount.Int64, m.DestinationAmount.Valid = details.DestinationAmount, true
	default:
		return models.TransactionAdjustment{}, fmt.Errorf("%w: adjustment %d has unsupported details %T", apperrors.ErrValidation, d.ID, details)
	}
	return m, nil
}

// ToDomainAdjustment dispatches on the discriminator, checking it against the subtype
// rows the join found.
func ToDomainAdjustment(m models.TransactionAdjustment) (domain.TransactionAdjustment, error) {
	adj := domain.TransactionAdjustment{
		ID:                       m.ID,
		SourceTransactionID:      m.SourceTransactionID,
		DestinationTransactionID: m.DestinationTransactionID,
		Title:                    m.Title.String,
		Notes:                    m.Notes.String,
	}

	switch t := domain.AdjustmentType(m.Type); t {
	case domain.AdjustmentTypeBase:
		if m.HasAccountTransaction || m.HasCurrencyConversion {
			return domain.TransactionAdjustment{}, fmt.Errorf("%w: adjustment %d has type %q but a subtype row exists", apperrors.ErrIntegrity, m.ID, t)
		}
	case domain.AdjustmentTypeAccountTransaction:
		if !m.HasAccountTransaction || m.HasCurrencyConversion {
			return domain.TransactionAdjustment{}, fmt.Errorf("%w: adjustment %d has type %q without a matching %s row", apperrors.ErrIntegrity, m.ID, t, models.AccountTransactionAdjustmentTable)
		}
		adj.Details = domain.AccountTransactionAdjustment{Amount: m.Amount.Int64}
	case domain.AdjustmentTypeCurrencyConversion:
		if !m.HasCurrencyConversion || m.HasAccountTransaction {
			return domain.TransactionAdjustment{}, fmt.Errorf("%w: adjustment %d has type %q without a matching %s row", apperrors.ErrIntegrity, m.ID, t, models.CurrencyConversionAdjustmentTable)
		}
		adj.Details = domain.CurrencyConversionAdjustment{
			SourceAmount:      m.SourceAmount.Int64,
			DestinationAmount: m.DestinationAmount.Int64,
		}
	default:
		return domain.TransactionAdjustment{}, apperrors.NewConstraintError(apperrors.ErrTypeMismatch, models.TransactionAdjustmentTable, "type", m.Type)
	}
	return adj, nil
}

func ToDomainAdjustmentSlice(ms []models.TransactionAdjustment) ([]domain.TransactionAdjustment, error) {
	ds := make([]domain.TransactionAdjustment, len(ms))
	for i, m := range ms {
		d, err := ToDomainAdjustment(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
