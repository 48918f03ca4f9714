package services_test

import (
	"math"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/dto"
)

func (s *LedgerServiceTestSuite) TestRecordTransaction_BalancedSplit() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	food := s.category("Food", nil)
	household := s.category("Household", nil)

	detail := s.record(bank.ID, day(2024, 3, 2), -8000,
		dto.CategorizationRequest{CategoryID: food, Amount: -5000, Notes: "groceries"},
		dto.CategorizationRequest{CategoryID: household, Amount: -3000},
	)
	s.Len(detail.Categorizations, 2)
	s.NoError(s.svc.Transaction.CheckBalance(s.ctx, detail.Transaction.ID))

	loaded, err := s.svc.Transaction.GetTransactionDetail(s.ctx, detail.Transaction.ID)
	s.Require().NoError(err)
	s.Equal(int64(-8000), loaded.Transaction.TransactionAmount)
	s.Len(loaded.Categorizations, 2)
	s.Empty(loaded.Receipts)
}

func (s *LedgerServiceTestSuite) TestRecordTransaction_UnbalancedSplitRollsBack() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	food := s.category("Food", nil)

	_, err := s.svc.Transaction.RecordTransaction(s.ctx, dto.RecordTransactionRequest{
		AccountID:         bank.ID,
		TransactionDate:   day(2024, 3, 2),
		TransactionAmount: -8000,
		Categorizations:   []dto.CategorizationRequest{{CategoryID: food, Amount: -5000}},
	})
	s.ErrorIs(err, apperrors.ErrInvariant)

	page, err := s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Empty(page.Transactions)
}

func (s *LedgerServiceTestSuite) TestRecordTransaction_MissingCategoryRollsBack() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")

	_, err := s.svc.Transaction.RecordTransaction(s.ctx, dto.RecordTransactionRequest{
		AccountID:         bank.ID,
		TransactionDate:   day(2024, 3, 2),
		TransactionAmount: -100,
		Categorizations:   []dto.CategorizationRequest{{CategoryID: 999, Amount: -100}},
	})
	s.ErrorIs(err, apperrors.ErrForeignKey)

	page, err := s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Empty(page.Transactions)
}

func (s *LedgerServiceTestSuite) TestRecordTransaction_Validation() {
	_, err := s.svc.Transaction.RecordTransaction(s.ctx, dto.RecordTransactionRequest{AccountID: 1})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Transaction.RecordTransaction(s.ctx, dto.RecordTransactionRequest{
		AccountID:       1,
		TransactionDate: day(2024, 1, 1),
		Categorizations: []dto.CategorizationRequest{{Amount: 5}},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestCategorize_ReplacesSplit() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	food := s.category("Food", nil)
	fuel := s.category("Fuel", nil)
	txn := s.record(bank.ID, day(2024, 3, 2), -6000).Transaction

	split, err := s.svc.Transaction.Categorize(s.ctx, txn.ID, []dto.CategorizationRequest{
		{CategoryID: food, Amount: -6000},
	})
	s.Require().NoError(err)
	s.Len(split, 1)

	split, err = s.svc.Transaction.Categorize(s.ctx, txn.ID, []dto.CategorizationRequest{
		{CategoryID: food, Amount: -1000},
		{CategoryID: fuel, Amount: -5000},
	})
	s.Require().NoError(err)
	s.Len(split, 2)

	_, err = s.svc.Transaction.Categorize(s.ctx, txn.ID, []dto.CategorizationRequest{
		{CategoryID: fuel, Amount: -1},
	})
	s.ErrorIs(err, apperrors.ErrInvariant)

	detail, err := s.svc.Transaction.GetTransactionDetail(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Len(detail.Categorizations, 2)
}

func (s *LedgerServiceTestSuite) TestRemoveCategorization_KeepsBalance() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	food := s.category("Food", nil)
	fuel := s.category("Fuel", nil)
	txn := s.record(bank.ID, day(2024, 3, 2), -6000,
		dto.CategorizationRequest{CategoryID: food, Amount: -1000},
		dto.CategorizationRequest{CategoryID: fuel, Amount: -5000},
	).Transaction

	err := s.svc.Transaction.RemoveCategorization(s.ctx, txn.ID, food)
	s.ErrorIs(err, apperrors.ErrInvariant)

	_, err = s.svc.Transaction.Categorize(s.ctx, txn.ID, []dto.CategorizationRequest{{CategoryID: fuel, Amount: -6000}})
	s.Require().NoError(err)
	s.NoError(s.svc.Transaction.RemoveCategorization(s.ctx, txn.ID, fuel))

	err = s.svc.Transaction.RemoveCategorization(s.ctx, txn.ID, fuel)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestRecordTransaction_OverflowingSplitRejected() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	food := s.category("Food", nil)
	fuel := s.category("Fuel", nil)
	rent := s.category("Rent", nil)

	_, err := s.svc.Transaction.RecordTransaction(s.ctx, dto.RecordTransactionRequest{
		AccountID:         bank.ID,
		TransactionDate:   day(2024, 3, 2),
		TransactionAmount: -1500,
		Categorizations: []dto.CategorizationRequest{
			{CategoryID: food, Amount: math.MaxInt64},
			{CategoryID: fuel, Amount: math.MaxInt64},
			{CategoryID: rent, Amount: -1498},
		},
	})
	s.ErrorIs(err, apperrors.ErrInvariant)

	page, err := s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Empty(page.Transactions)
}

func (s *LedgerServiceTestSuite) TestUpdateTransaction_AmountMustMatchSplit() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	food := s.category("Food", nil)
	txn := s.record(bank.ID, day(2024, 3, 2), -500, dto.CategorizationRequest{CategoryID: food, Amount: -500}).Transaction

	_, err := s.svc.Transaction.UpdateTransaction(s.ctx, txn.ID, dto.UpdateTransactionRequest{TransactionAmount: ptr(int64(-700))})
	s.ErrorIs(err, apperrors.ErrInvariant)

	posted := day(2024, 3, 4)
	updated, err := s.svc.Transaction.UpdateTransaction(s.ctx, txn.ID, dto.UpdateTransactionRequest{
		Merchant:    ptr("Bakery"),
		PostingDate: &posted,
	})
	s.Require().NoError(err)
	s.Equal("Bakery", updated.Merchant)
	s.Require().NotNil(updated.PostingDate)
	s.Equal(posted, updated.PostingDate.UTC())
	s.Equal(int64(-500), updated.TransactionAmount)
}

func (s *LedgerServiceTestSuite) TestDeleteTransaction_ReferencedFails() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	food := s.category("Food", nil)
	categorized := s.record(bank.ID, day(2024, 3, 2), -500, dto.CategorizationRequest{CategoryID: food, Amount: -500}).Transaction
	plain := s.record(bank.ID, day(2024, 3, 3), -200).Transaction

	s.ErrorIs(s.svc.Transaction.DeleteTransaction(s.ctx, categorized.ID), apperrors.ErrForeignKey)
	s.NoError(s.svc.Transaction.DeleteTransaction(s.ctx, plain.ID))

	_, err := s.svc.Transaction.GetTransaction(s.ctx, plain.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
