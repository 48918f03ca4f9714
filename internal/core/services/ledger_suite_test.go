package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/core/services"
	"github.com/SscSPs/nemo/internal/dto"
	"github.com/SscSPs/nemo/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

// LedgerServiceTestSuite runs the store-backed services against a fresh memory store.
type LedgerServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	repos portsrepo.RepositoryProvider
	svc   *services.Container
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.repos = s.store.Repositories()
	s.svc = services.NewContainer(s.store)
}

func TestLedgerServices(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func (s *LedgerServiceTestSuite) currency(code string, factor int32) domain.Currency {
	c, err := s.svc.Currency.CreateCurrency(s.ctx, dto.CreateCurrencyRequest{
		CurrencyCode:  code,
		Title:         code + " currency",
		Symbol:        "$",
		DisplayFactor: factor,
	})
	s.Require().NoError(err)
	return *c
}

func (s *LedgerServiceTestSuite) bankAccount(currency string) domain.Account {
	acc, err := s.svc.Account.CreateInstitutionAccount(s.ctx, dto.CreateInstitutionAccountRequest{
		CurrencyCode:     currency,
		Title:            "Checking",
		NumberSuffix:     "4321",
		InstitutionTitle: "First Bank",
	})
	s.Require().NoError(err)
	return *acc
}

func (s *LedgerServiceTestSuite) record(accountID int64, date time.Time, amount int64, split ...dto.CategorizationRequest) domain.TransactionDetail {
	detail, err := s.svc.Transaction.RecordTransaction(s.ctx, dto.RecordTransactionRequest{
		AccountID:         accountID,
		Title:             "purchase",
		TransactionDate:   date,
		TransactionAmount: amount,
		Categorizations:   split,
	})
	s.Require().NoError(err)
	return *detail
}

func (s *LedgerServiceTestSuite) category(title string, parentID *int64) int64 {
	c, err := s.svc.Category.Transactions().Create(s.ctx, dto.CreateCategoryRequest{Title: title, ParentID: parentID})
	s.Require().NoError(err)
	return c.ID
}

func (s *LedgerServiceTestSuite) budgetCategory(title string, parentID *int64) int64 {
	c, err := s.svc.Category.Budgets().Create(s.ctx, dto.CreateCategoryRequest{Title: title, ParentID: parentID})
	s.Require().NoError(err)
	return c.ID
}
