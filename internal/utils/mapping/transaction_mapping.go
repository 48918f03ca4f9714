package mapping

import (
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
)

func ToModelAccountTransaction(d domain.AccountTransaction) models.AccountTransaction {
	return models.AccountTransaction{
		ID:                     d.ID,
		AccountID:              d.AccountID,
		Title:                  NullString(d.Title),
		TransactionDate:        d.TransactionDate,
		PostingDate:            NullTime(d.PostingDate),
		Merchant:               NullString(d.Merchant),
		TransactionAmount:      d.TransactionAmount,
		GainOrLoss:             d.GainOrLoss,
		Instrument:             NullString(d.Instrument),
		TransactionDescription: NullString(d.TransactionDescription),
		AdjustmentDescription:  NullString(d.AdjustmentDescription),
	}
}

func ToDomainAccountTransaction(m models.AccountTransaction) domain.AccountTransaction {
	return domain.AccountTransaction{
		ID:                     m.ID,
		AccountID:              m.AccountID,
		Title:                  m.Title.String,
		TransactionDate:        m.TransactionDate,
		PostingDate:            TimePtr(m.PostingDate),
		Merchant:               m.Merchant.String,
		TransactionAmount:      m.TransactionAmount,
		GainOrLoss:             m.GainOrLoss,
		Instrument:             m.Instrument.String,
		TransactionDescription: m.TransactionDescription.String,
		AdjustmentDescription:  m.AdjustmentDescription.String,
	}
}

func ToDomainAccountTransactionSlice(ms []models.AccountTransaction) []domain.AccountTransaction {
	ds := make([]domain.AccountTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccountTransaction(m)
	}
	return ds
}
