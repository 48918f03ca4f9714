package services_test

import (
	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/dto"
)

func (s *LedgerServiceTestSuite) TestLinkTransactions_SameCurrency() {
	s.currency("USD", 100)
	checking := s.bankAccount("USD")
	savings := s.bankAccount("USD")
	out := s.record(checking.ID, day(2024, 4, 1), -10000).Transaction
	in := s.record(savings.ID, day(2024, 4, 2), 10000).Transaction

	adj, err := s.svc.Adjustment.LinkTransactions(s.ctx, dto.LinkTransactionsRequest{
		SourceTransactionID:      out.ID,
		DestinationTransactionID: in.ID,
		Title:                    "Transfer to savings",
		Amount:                   10000,
	})
	s.Require().NoError(err)

	loaded, err := s.svc.Adjustment.GetAdjustment(s.ctx, adj.ID)
	s.Require().NoError(err)
	d, ok := loaded.AccountTransaction()
	s.Require().True(ok)
	s.Equal(int64(10000), d.Amount)

	src, err := s.svc.Adjustment.SourceTransaction(s.ctx, adj.ID)
	s.Require().NoError(err)
	s.Equal(out.ID, src.ID)
	dst, err := s.svc.Adjustment.DestinationTransaction(s.ctx, adj.ID)
	s.Require().NoError(err)
	s.Equal(in.ID, dst.ID)

	from, err := s.svc.Adjustment.AdjustmentsFrom(s.ctx, out.ID)
	s.Require().NoError(err)
	s.Len(from, 1)
	into, err := s.svc.Adjustment.AdjustmentsInto(s.ctx, out.ID)
	s.Require().NoError(err)
	s.Empty(into)

	detail, err := s.svc.Transaction.GetTransactionDetail(s.ctx, in.ID)
	s.Require().NoError(err)
	s.Empty(detail.SourceAdjustments)
	s.Len(detail.DestinationAdjustments, 1)
}

func (s *LedgerServiceTestSuite) TestLinkTransactions_CurrencyRules() {
	s.currency("USD", 100)
	s.currency("EUR", 100)
	usd := s.bankAccount("USD")
	eur := s.bankAccount("EUR")
	out := s.record(usd.ID, day(2024, 4, 1), -11000).Transaction
	in := s.record(eur.ID, day(2024, 4, 1), 10000).Transaction
	other := s.record(usd.ID, day(2024, 4, 3), 500).Transaction

	_, err := s.svc.Adjustment.LinkTransactions(s.ctx, dto.LinkTransactionsRequest{
		SourceTransactionID: out.ID, DestinationTransactionID: in.ID, Amount: 10000,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Adjustment.LinkConversion(s.ctx, dto.LinkConversionRequest{
		SourceTransactionID: out.ID, DestinationTransactionID: other.ID, SourceAmount: 1, DestinationAmount: 1,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	conv, err := s.svc.Adjustment.LinkConversion(s.ctx, dto.LinkConversionRequest{
		SourceTransactionID: out.ID, DestinationTransactionID: in.ID, SourceAmount: 11000, DestinationAmount: 10000,
	})
	s.Require().NoError(err)
	d, ok := conv.CurrencyConversion()
	s.Require().True(ok)
	s.Equal(int64(11000), d.SourceAmount)
	s.Equal(int64(10000), d.DestinationAmount)

	_, err = s.svc.Adjustment.LinkTransactions(s.ctx, dto.LinkTransactionsRequest{
		SourceTransactionID: out.ID, DestinationTransactionID: out.ID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Adjustment.LinkTransactions(s.ctx, dto.LinkTransactionsRequest{
		SourceTransactionID: out.ID, DestinationTransactionID: 9999,
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestDeleteAdjustment_FreesTransactions() {
	s.currency("USD", 100)
	acc := s.bankAccount("USD")
	a := s.record(acc.ID, day(2024, 4, 1), -100).Transaction
	b := s.record(acc.ID, day(2024, 4, 1), 100).Transaction
	adj, err := s.svc.Adjustment.LinkTransactions(s.ctx, dto.LinkTransactionsRequest{
		SourceTransactionID: a.ID, DestinationTransactionID: b.ID, Amount: 100,
	})
	s.Require().NoError(err)

	s.ErrorIs(s.svc.Transaction.DeleteTransaction(s.ctx, a.ID), apperrors.ErrForeignKey)
	s.Require().NoError(s.svc.Adjustment.DeleteAdjustment(s.ctx, adj.ID))
	s.NoError(s.svc.Transaction.DeleteTransaction(s.ctx, a.ID))

	_, err = s.svc.Adjustment.GetAdjustment(s.ctx, adj.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
