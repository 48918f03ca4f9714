package services_test

import (
	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

func (s *LedgerServiceTestSuite) TestCreateAccounts_TypedRoundTrip() {
	s.currency("USD", 100)

	bank := s.bankAccount("USD")
	person, err := s.svc.Account.CreatePersonalAccount(s.ctx, dto.CreatePersonalAccountRequest{CurrencyCode: "USD", Holder: "Alex"})
	s.Require().NoError(err)

	loaded, err := s.svc.Account.GetAccountByID(s.ctx, bank.ID)
	s.Require().NoError(err)
	inst, ok := loaded.Institution()
	s.Require().True(ok)
	s.Equal("4321", inst.NumberSuffix)
	s.Equal(domain.AccountTypeInstitution, loaded.Type())

	loaded, err = s.svc.Account.GetAccountByID(s.ctx, person.ID)
	s.Require().NoError(err)
	p, ok := loaded.Personal()
	s.Require().True(ok)
	s.Equal("Alex", p.Holder)

	accounts, err := s.svc.Account.ListAccountsByCurrency(s.ctx, "USD")
	s.Require().NoError(err)
	s.Len(accounts, 2)
}

func (s *LedgerServiceTestSuite) TestCreateAccount_UnknownCurrency() {
	acc, err := s.svc.Account.CreatePersonalAccount(s.ctx, dto.CreatePersonalAccountRequest{CurrencyCode: "XXX", Holder: "Alex"})
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(acc)
}

func (s *LedgerServiceTestSuite) TestCreateAccount_Validation() {
	s.currency("USD", 100)
	_, err := s.svc.Account.CreateInstitutionAccount(s.ctx, dto.CreateInstitutionAccountRequest{
		CurrencyCode: "USD", Title: "Checking", NumberSuffix: "12345",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Account.CreatePersonalAccount(s.ctx, dto.CreatePersonalAccountRequest{CurrencyCode: "USD"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestUpdateAccount_SubtypeFields() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")

	updated, err := s.svc.Account.UpdateAccount(s.ctx, bank.ID, dto.UpdateAccountRequest{
		InstitutionTitle: ptr("Second Bank"),
		MinimumValue:     ptr(int64(-50000)),
	})
	s.Require().NoError(err)
	inst, _ := updated.Institution()
	s.Equal("Second Bank", inst.InstitutionTitle)
	s.Equal(int64(-50000), inst.MinimumValue)
	s.Equal("Checking", inst.Title)

	_, err = s.svc.Account.UpdateAccount(s.ctx, bank.ID, dto.UpdateAccountRequest{Holder: ptr("Alex")})
	s.ErrorIs(err, apperrors.ErrValidation)

	loaded, err := s.svc.Account.GetAccountByID(s.ctx, bank.ID)
	s.Require().NoError(err)
	s.Equal(domain.AccountTypeInstitution, loaded.Type())
}

func (s *LedgerServiceTestSuite) TestDeleteAccount_WithTransactionsFails() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	s.record(bank.ID, day(2024, 3, 1), -1000)

	err := s.svc.Account.DeleteAccount(s.ctx, bank.ID)
	s.ErrorIs(err, apperrors.ErrForeignKey)

	_, err = s.svc.Account.GetAccountByID(s.ctx, bank.ID)
	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestListTransactions_Pages() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")
	for i := 1; i <= 5; i++ {
		s.record(bank.ID, day(2024, 1, i), int64(-100*i))
	}

	first, err := s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(first.Transactions, 2)
	s.Require().NotNil(first.NextToken)
	s.Equal(day(2024, 1, 5), first.Transactions[0].TransactionDate.UTC())

	second, err := s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{Limit: 2, NextToken: *first.NextToken})
	s.Require().NoError(err)
	s.Require().Len(second.Transactions, 2)
	s.Equal(day(2024, 1, 3), second.Transactions[0].TransactionDate.UTC())

	third, err := s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{Limit: 2, NextToken: *second.NextToken})
	s.Require().NoError(err)
	s.Len(third.Transactions, 1)
	s.Nil(third.NextToken)
}

func (s *LedgerServiceTestSuite) TestListTransactions_BadTokenAndLimit() {
	s.currency("USD", 100)
	bank := s.bankAccount("USD")

	_, err := s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{NextToken: "%%%"})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Account.ListTransactions(s.ctx, bank.ID, dto.ListTransactionsParams{Limit: 5000})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Account.ListTransactions(s.ctx, bank.ID+100, dto.ListTransactionsParams{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}
