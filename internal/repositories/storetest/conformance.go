// Package storetest holds the behaviour every ledger store must share. Store packages run
// it from their own tests with a factory that hands out an empty store.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/stretchr/testify/suite"
)

// ConformanceSuite exercises a portsrepo.Store. NewStore must return a store with no rows.
type ConformanceSuite struct {
	suite.Suite
	NewStore func(t *testing.T) portsrepo.Store

	ctx   context.Context
	store portsrepo.Store
	repos portsrepo.RepositoryProvider
}

// Run executes the suite against stores built by newStore.
func Run(t *testing.T, newStore func(t *testing.T) portsrepo.Store) {
	suite.Run(t, &ConformanceSuite{NewStore: newStore})
}

func (s *ConformanceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore(s.T())
	s.repos = s.store.Repositories()
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// --- fixtures ---

func (s *ConformanceSuite) seedCurrency(code string, factor int32) domain.Currency {
	c := domain.Currency{Code: code, Title: code + " title", Symbol: "$", LongSymbol: code[:2] + "$", DisplayFactor: factor}
	s.Require().NoError(s.repos.CurrencyRepo.SaveCurrency(s.ctx, c))
	return c
}

func (s *ConformanceSuite) seedAccount(currency string, details domain.AccountDetails) domain.Account {
	acc := domain.Account{CurrencyCode: currency, Details: details}
	id, err := s.repos.AccountRepo.SaveAccount(s.ctx, acc)
	s.Require().NoError(err)
	acc.ID = id
	return acc
}

func (s *ConformanceSuite) seedTransaction(accountID int64, date time.Time, amount int64) domain.AccountTransaction {
	txn := domain.AccountTransaction{
		AccountID:         accountID,
		Title:             "txn",
		TransactionDate:   date,
		Merchant:          "Corner Shop",
		TransactionAmount: amount,
	}
	id, err := s.repos.TransactionRepo.SaveTransaction(s.ctx, txn)
	s.Require().NoError(err)
	txn.ID = id
	return txn
}

func (s *ConformanceSuite) seedCategory(title string, parentID *int64) int64 {
	id, err := s.repos.CategoryRepo.SaveTransactionCategory(s.ctx, domain.TransactionCategory{Title: title, ParentID: parentID})
	s.Require().NoError(err)
	return id
}

// --- currencies ---

func (s *ConformanceSuite) TestCurrency_RoundTripAndDuplicate() {
	usd := s.seedCurrency("USD", 100)

	got, err := s.repos.CurrencyRepo.FindCurrencyByCode(s.ctx, "USD")
	s.Require().NoError(err)
	s.Equal(usd, *got)

	err = s.repos.CurrencyRepo.SaveCurrency(s.ctx, usd)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.True(apperrors.IsConstraintViolation(err))

	s.seedCurrency("EUR", 100)
	list, err := s.repos.CurrencyRepo.ListCurrencies(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("EUR", list[0].Code)
	s.Equal("USD", list[1].Code)
}

func (s *ConformanceSuite) TestCurrency_UpdateAndLengthLimits() {
	usd := s.seedCurrency("USD", 100)
	usd.Title = "United States Dollar"
	usd.DisplayFactor = 1000
	s.Require().NoError(s.repos.CurrencyRepo.UpdateCurrency(s.ctx, usd))

	got, err := s.repos.CurrencyRepo.FindCurrencyByCode(s.ctx, "USD")
	s.Require().NoError(err)
	s.Equal("United States Dollar", got.Title)
	s.Equal(int32(1000), got.DisplayFactor)

	err = s.repos.CurrencyRepo.SaveCurrency(s.ctx, domain.Currency{Code: "USDX", DisplayFactor: 100})
	s.ErrorIs(err, apperrors.ErrTypeMismatch)

	err = s.repos.CurrencyRepo.SaveCurrency(s.ctx, domain.Currency{Code: "GBP", Symbol: "GB", DisplayFactor: 100})
	s.ErrorIs(err, apperrors.ErrTypeMismatch)
	var ce *apperrors.ConstraintError
	s.Require().True(errors.As(err, &ce))
	s.Equal("currencies", ce.Table)
}

func (s *ConformanceSuite) TestCurrency_DeleteReferencedFails() {
	s.seedCurrency("USD", 100)
	acc := s.seedAccount("USD", domain.PersonalAccount{Holder: "Sam"})

	err := s.repos.CurrencyRepo.DeleteCurrency(s.ctx, "USD")
	s.ErrorIs(err, apperrors.ErrForeignKey)
	s.True(apperrors.IsConstraintViolation(err))

	_, err = s.repos.CurrencyRepo.FindCurrencyByCode(s.ctx, "USD")
	s.NoError(err, "currency must survive the failed delete")

	s.Require().NoError(s.repos.AccountRepo.DeleteAccount(s.ctx, acc.ID))
	s.NoError(s.repos.CurrencyRepo.DeleteCurrency(s.ctx, "USD"))
}

// --- accounts ---

func (s *ConformanceSuite) TestAccount_SubtypesRoundTrip() {
	s.seedCurrency("USD", 100)
	inst := s.seedAccount("USD", domain.InstitutionAccount{
		Title:            "Checking",
		NumberSuffix:     "4321",
		InstitutionTitle: "First Bank",
		MinimumValue:     -50000,
	})
	pers := s.seedAccount("USD", domain.PersonalAccount{Holder: "Alex"})
	bare := s.seedAccount("USD", nil)

	got, err := s.repos.AccountRepo.FindAccountByID(s.ctx, inst.ID)
	s.Require().NoError(err)
	s.Equal(domain.AccountTypeInstitution, got.Type())
	details, ok := got.Institution()
	s.Require().True(ok)
	s.Equal("4321", details.NumberSuffix)
	s.Equal(int64(-50000), details.MinimumValue)
	_, ok = got.Personal()
	s.False(ok)

	got, err = s.repos.AccountRepo.FindAccountByID(s.ctx, pers.ID)
	s.Require().NoError(err)
	s.Equal(domain.AccountTypePersonal, got.Type())
	p, ok := got.Personal()
	s.Require().True(ok)
	s.Equal("Alex", p.Holder)

	got, err = s.repos.AccountRepo.FindAccountByID(s.ctx, bare.ID)
	s.Require().NoError(err)
	s.Equal(domain.AccountTypeBase, got.Type())
	s.Nil(got.Details)

	list, err := s.repos.AccountRepo.ListAccountsByCurrency(s.ctx, "USD")
	s.Require().NoError(err)
	s.Equal([]domain.Account{inst, pers, bare}, list)
}

func (s *ConformanceSuite) TestAccount_ConstraintFailures() {
	_, err := s.repos.AccountRepo.SaveAccount(s.ctx, domain.Account{CurrencyCode: "XXX", Details: domain.PersonalAccount{Holder: "Nobody"}})
	s.ErrorIs(err, apperrors.ErrForeignKey)

	s.seedCurrency("USD", 100)
	_, err = s.repos.AccountRepo.SaveAccount(s.ctx, domain.Account{CurrencyCode: "USD", Details: domain.InstitutionAccount{NumberSuffix: "123456"}})
	s.ErrorIs(err, apperrors.ErrTypeMismatch)

	list, err := s.repos.AccountRepo.ListAccountsByCurrency(s.ctx, "USD")
	s.Require().NoError(err)
	s.Empty(list, "a failed subtype insert must not leave a base row behind")
}

func (s *ConformanceSuite) TestAccount_UpdateKeepsDiscriminator() {
	s.seedCurrency("USD", 100)
	acc := s.seedAccount("USD", domain.InstitutionAccount{Title: "Savings", NumberSuffix: "0001"})

	acc.Details = domain.InstitutionAccount{Title: "Savings Plus", NumberSuffix: "0002", MinimumValue: 100}
	s.Require().NoError(s.repos.AccountRepo.UpdateAccount(s.ctx, acc))

	got, err := s.repos.AccountRepo.FindAccountByID(s.ctx, acc.ID)
	s.Require().NoError(err)
	s.Equal(acc, *got)

	acc.Details = domain.PersonalAccount{Holder: "Switcher"}
	s.ErrorIs(s.repos.AccountRepo.UpdateAccount(s.ctx, acc), apperrors.ErrValidation)
}

func (s *ConformanceSuite) TestAccount_PointerDetailsStoreAsValues() {
	s.seedCurrency("USD", 100)
	pers := s.seedAccount("USD", &domain.PersonalAccount{Holder: "Alice"})
	inst := s.seedAccount("USD", &domain.InstitutionAccount{Title: "Checking", NumberSuffix: "0042"})

	got, err := s.repos.AccountRepo.FindAccountByID(s.ctx, pers.ID)
	s.Require().NoError(err)
	s.Equal(domain.PersonalAccount{Holder: "Alice"}, got.Details)

	got, err = s.repos.AccountRepo.FindAccountByID(s.ctx, inst.ID)
	s.Require().NoError(err)
	s.Equal(domain.InstitutionAccount{Title: "Checking", NumberSuffix: "0042"}, got.Details)

	inst.Details = &domain.InstitutionAccount{Title: "Checking", NumberSuffix: "0043"}
	s.Require().NoError(s.repos.AccountRepo.UpdateAccount(s.ctx, inst))
	got, err = s.repos.AccountRepo.FindAccountByID(s.ctx, inst.ID)
	s.Require().NoError(err)
	details, ok := got.Institution()
	s.Require().True(ok)
	s.Equal("0043", details.NumberSuffix)

	_, err = s.repos.AccountRepo.SaveAccount(s.ctx, domain.Account{CurrencyCode: "USD", Details: (*domain.PersonalAccount)(nil)})
	s.ErrorIs(err, apperrors.ErrValidation)

	list, err := s.repos.AccountRepo.ListAccountsByCurrency(s.ctx, "USD")
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *ConformanceSuite) TestNotFound() {
	_, err := s.repos.CurrencyRepo.FindCurrencyByCode(s.ctx, "ZZZ")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.AccountRepo.FindAccountByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.TransactionRepo.FindTransactionByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.AdjustmentRepo.FindAdjustmentByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.CategorizationRepo.FindCategorization(s.ctx, 1, 2)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.BudgetCategoryRepo.FindBudgetCategoryByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.ErrorIs(s.repos.CurrencyRepo.UpdateCurrency(s.ctx, domain.Currency{Code: "ZZZ"}), apperrors.ErrNotFound)
	s.ErrorIs(s.repos.ReceiptRepo.DeleteReceipt(s.ctx, 999), apperrors.ErrNotFound)
	s.ErrorIs(s.repos.BudgetItemRepo.DeleteBudgetItem(s.ctx, 999), apperrors.ErrNotFound)
	s.ErrorIs(s.repos.AdjustmentRepo.DeleteAdjustment(s.ctx, 999), apperrors.ErrNotFound)
}

// --- transactions ---

func (s *ConformanceSuite) TestTransaction_RoundTripAndPaging() {
	s.seedCurrency("USD", 100)
	acc := s.seedAccount("USD", domain.PersonalAccount{Holder: "Pat"})

	posted := day(2024, time.March, 3)
	first := domain.AccountTransaction{
		AccountID:              acc.ID,
		Title:                  "Coffee",
		TransactionDate:        day(2024, time.March, 1),
		PostingDate:            &posted,
		Merchant:               "Cafe",
		TransactionAmount:      -450,
		GainOrLoss:             3,
		Instrument:             "debit card",
		TransactionDescription: "flat white",
	}
	id, err := s.repos.TransactionRepo.SaveTransaction(s.ctx, first)
	s.Require().NoError(err)
	first.ID = id

	got, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(first.Title, got.Title)
	s.True(first.TransactionDate.Equal(got.TransactionDate))
	s.Require().NotNil(got.PostingDate)
	s.True(posted.Equal(*got.PostingDate))
	s.Equal(int64(-450), got.TransactionAmount)
	s.Equal(int64(3), got.GainOrLoss)

	second := s.seedTransaction(acc.ID, day(2024, time.March, 2), -100)
	third := s.seedTransaction(acc.ID, day(2024, time.March, 2), -200)
	fourth := s.seedTransaction(acc.ID, day(2024, time.March, 5), -300)

	all, err := s.repos.TransactionRepo.ListTransactionsByAccount(s.ctx, acc.ID, 0, nil)
	s.Require().NoError(err)
	s.Equal([]int64{fourth.ID, third.ID, second.ID, first.ID}, ids(all))

	page, err := s.repos.TransactionRepo.ListTransactionsByAccount(s.ctx, acc.ID, 2, nil)
	s.Require().NoError(err)
	s.Equal([]int64{fourth.ID, third.ID}, ids(page))

	cursor := &domain.TransactionCursor{TransactionDate: page[1].TransactionDate, ID: page[1].ID}
	page, err = s.repos.TransactionRepo.ListTransactionsByAccount(s.ctx, acc.ID, 2, cursor)
	s.Require().NoError(err)
	s.Equal([]int64{second.ID, first.ID}, ids(page))

	_, err = s.repos.TransactionRepo.SaveTransaction(s.ctx, domain.AccountTransaction{AccountID: 999, TransactionDate: day(2024, 1, 1)})
	s.ErrorIs(err, apperrors.ErrForeignKey)
}

func ids(txns []domain.AccountTransaction) []int64 {
	out := make([]int64, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

// --- categories and categorizations ---

func (s *ConformanceSuite) TestCategoryTree() {
	food := s.seedCategory("Food", nil)
	groceries := s.seedCategory("Groceries", &food)
	dining := s.seedCategory("Dining", &food)
	travel := s.seedCategory("Travel", nil)

	roots, err := s.repos.CategoryRepo.FindChildTransactionCategories(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(roots, 2)
	s.Equal(food, roots[0].ID)
	s.Equal(travel, roots[1].ID)

	children, err := s.repos.CategoryRepo.FindChildTransactionCategories(s.ctx, &food)
	s.Require().NoError(err)
	s.Require().Len(children, 2)
	s.Equal(groceries, children[0].ID)
	s.Equal(dining, children[1].ID)

	all, err := s.repos.CategoryRepo.ListTransactionCategories(s.ctx)
	s.Require().NoError(err)
	s.Empty(domain.CheckHierarchy(all))

	_, err = s.repos.CategoryRepo.SaveTransactionCategory(s.ctx, domain.TransactionCategory{Title: "Orphan", ParentID: ptr(int64(999))})
	s.ErrorIs(err, apperrors.ErrForeignKey)

	s.ErrorIs(s.repos.CategoryRepo.DeleteTransactionCategory(s.ctx, food), apperrors.ErrForeignKey)

	s.Require().NoError(s.repos.CategoryRepo.UpdateTransactionCategory(s.ctx, domain.TransactionCategory{ID: dining, Title: "Dining", ParentID: &travel}))
	got, err := s.repos.CategoryRepo.FindTransactionCategoryByID(s.ctx, dining)
	s.Require().NoError(err)
	s.Equal(travel, *got.ParentID)
}

func (s *ConformanceSuite) TestBudgetCategoryTree() {
	home, err := s.repos.BudgetCategoryRepo.SaveBudgetCategory(s.ctx, domain.BudgetCategory{Title: "Home"})
	s.Require().NoError(err)
	rent, err := s.repos.BudgetCategoryRepo.SaveBudgetCategory(s.ctx, domain.BudgetCategory{Title: "Rent", ParentID: &home})
	s.Require().NoError(err)

	children, err := s.repos.BudgetCategoryRepo.FindChildBudgetCategories(s.ctx, &home)
	s.Require().NoError(err)
	s.Require().Len(children, 1)
	s.Equal(rent, children[0].ID)

	s.ErrorIs(s.repos.BudgetCategoryRepo.DeleteBudgetCategory(s.ctx, home), apperrors.ErrForeignKey)
	s.Require().NoError(s.repos.BudgetCategoryRepo.DeleteBudgetCategory(s.ctx, rent))
	s.Require().NoError(s.repos.BudgetCategoryRepo.DeleteBudgetCategory(s.ctx, home))

	all, err := s.repos.BudgetCategoryRepo.ListBudgetCategories(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *ConformanceSuite) TestCategorization_GroceriesSplit() {
	s.seedCurrency("USD", 100)
	acc := s.seedAccount("USD", domain.InstitutionAccount{Title: "Checking"})
	food := s.seedCategory("Food", nil)
	groceries := s.seedCategory("Groceries", &food)
	household := s.seedCategory("Household", nil)
	txn := s.seedTransaction(acc.ID, day(2024, time.May, 4), -10000)

	s.Require().NoError(s.repos.CategorizationRepo.SaveCategorization(s.ctx, domain.TransactionCategorization{TransactionID: txn.ID, CategoryID: groceries, Amount: -6000}))
	s.Require().NoError(s.repos.CategorizationRepo.SaveCategorization(s.ctx, domain.TransactionCategorization{TransactionID: txn.ID, CategoryID: household, Amount: -4000, Notes: "soap"}))

	splits, err := s.repos.CategorizationRepo.ListCategorizationsByTransaction(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Len(splits, 2)
	sum, err := domain.SumCategorizations(splits)
	s.Require().NoError(err)
	s.Equal(int64(-10000), sum)
	s.NoError(domain.CheckCategorizationBalance(txn, splits))

	err = s.repos.CategorizationRepo.SaveCategorization(s.ctx, domain.TransactionCategorization{TransactionID: txn.ID, CategoryID: groceries, Amount: -1})
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.True(apperrors.IsConstraintViolation(err))

	byCategory, err := s.repos.CategorizationRepo.ListCategorizationsByCategory(s.ctx, household)
	s.Require().NoError(err)
	s.Require().Len(byCategory, 1)
	s.Equal("soap", byCategory[0].Notes)

	s.Require().NoError(s.repos.CategorizationRepo.UpdateCategorization(s.ctx, domain.TransactionCategorization{TransactionID: txn.ID, CategoryID: household, Amount: -3000}))
	splits, err = s.repos.CategorizationRepo.ListCategorizations(s.ctx)
	s.Require().NoError(err)
	s.ErrorIs(domain.CheckCategorizationBalance(txn, splits), apperrors.ErrInvariant)

	s.ErrorIs(s.repos.TransactionRepo.DeleteTransaction(s.ctx, txn.ID), apperrors.ErrForeignKey)
	s.ErrorIs(s.repos.CategoryRepo.DeleteTransactionCategory(s.ctx, household), apperrors.ErrForeignKey)

	err = s.repos.CategorizationRepo.SaveCategorization(s.ctx, domain.TransactionCategorization{TransactionID: txn.ID, CategoryID: 999, Amount: -1})
	s.ErrorIs(err, apperrors.ErrForeignKey)

	s.Require().NoError(s.repos.CategorizationRepo.DeleteCategorization(s.ctx, txn.ID, household))
	_, err = s.repos.CategorizationRepo.FindCategorization(s.ctx, txn.ID, household)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- adjustments ---

func (s *ConformanceSuite) TestAdjustment_ConversionLegsResolveIndependently() {
	s.seedCurrency("USD", 100)
	s.seedCurrency("EUR", 100)
	usd := s.seedAccount("USD", domain.InstitutionAccount{Title: "US Checking"})
	eur := s.seedAccount("EUR", domain.InstitutionAccount{Title: "EU Checking"})
	out := s.seedTransaction(usd.ID, day(2024, time.June, 1), -10000)
	in := s.seedTransaction(eur.ID, day(2024, time.June, 2), 9150)

	adj := domain.TransactionAdjustment{
		SourceTransactionID:      out.ID,
		DestinationTransactionID: in.ID,
		Title:                    "Wire to EU",
		Details:                  domain.CurrencyConversionAdjustment{SourceAmount: -10000, DestinationAmount: 9150},
	}
	id, err := s.repos.AdjustmentRepo.SaveAdjustment(s.ctx, adj)
	s.Require().NoError(err)
	adj.ID = id

	got, err := s.repos.AdjustmentRepo.FindAdjustmentByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(adj, *got)
	conv, ok := got.CurrencyConversion()
	s.Require().True(ok)
	s.Equal(int64(9150), conv.DestinationAmount)

	fromOut, err := s.repos.AdjustmentRepo.FindAdjustmentsBySource(s.ctx, out.ID)
	s.Require().NoError(err)
	s.Len(fromOut, 1)
	intoOut, err := s.repos.AdjustmentRepo.FindAdjustmentsByDestination(s.ctx, out.ID)
	s.Require().NoError(err)
	s.Empty(intoOut)

	intoIn, err := s.repos.AdjustmentRepo.FindAdjustmentsByDestination(s.ctx, in.ID)
	s.Require().NoError(err)
	s.Len(intoIn, 1)
	fromIn, err := s.repos.AdjustmentRepo.FindAdjustmentsBySource(s.ctx, in.ID)
	s.Require().NoError(err)
	s.Empty(fromIn)

	s.ErrorIs(s.repos.TransactionRepo.DeleteTransaction(s.ctx, in.ID), apperrors.ErrForeignKey)

	s.Require().NoError(s.repos.AdjustmentRepo.DeleteAdjustment(s.ctx, id))
	s.NoError(s.repos.TransactionRepo.DeleteTransaction(s.ctx, in.ID))
}

func (s *ConformanceSuite) TestAdjustment_SameCurrencyUpdateAndMissingLeg() {
	s.seedCurrency("USD", 100)
	checking := s.seedAccount("USD", domain.InstitutionAccount{Title: "Checking"})
	cash := s.seedAccount("USD", domain.PersonalAccount{Holder: "Wallet"})
	out := s.seedTransaction(checking.ID, day(2024, time.July, 1), -2000)
	in := s.seedTransaction(cash.ID, day(2024, time.July, 1), 2000)

	adj := domain.TransactionAdjustment{
		SourceTransactionID:      out.ID,
		DestinationTransactionID: in.ID,
		Details:                  domain.AccountTransactionAdjustment{Amount: 2000},
	}
	id, err := s.repos.AdjustmentRepo.SaveAdjustment(s.ctx, adj)
	s.Require().NoError(err)
	adj.ID = id

	adj.Notes = "ATM"
	adj.Details = domain.AccountTransactionAdjustment{Amount: 1900}
	s.Require().NoError(s.repos.AdjustmentRepo.UpdateAdjustment(s.ctx, adj))
	got, err := s.repos.AdjustmentRepo.FindAdjustmentByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(adj, *got)

	adj.Details = nil
	s.ErrorIs(s.repos.AdjustmentRepo.UpdateAdjustment(s.ctx, adj), apperrors.ErrValidation)

	_, err = s.repos.AdjustmentRepo.SaveAdjustment(s.ctx, domain.TransactionAdjustment{SourceTransactionID: out.ID, DestinationTransactionID: 999})
	s.ErrorIs(err, apperrors.ErrForeignKey)
}

func (s *ConformanceSuite) TestAdjustment_PointerDetailsStoreAsValues() {
	s.seedCurrency("USD", 100)
	s.seedCurrency("EUR", 100)
	usd := s.seedAccount("USD", domain.InstitutionAccount{Title: "US Checking"})
	eur := s.seedAccount("EUR", domain.InstitutionAccount{Title: "EU Checking"})
	out := s.seedTransaction(usd.ID, day(2024, time.June, 1), -10000)
	in := s.seedTransaction(eur.ID, day(2024, time.June, 2), 9150)

	id, err := s.repos.AdjustmentRepo.SaveAdjustment(s.ctx, domain.TransactionAdjustment{
		SourceTransactionID:      out.ID,
		DestinationTransactionID: in.ID,
		Details:                  &domain.CurrencyConversionAdjustment{SourceAmount: -10000, DestinationAmount: 9150},
	})
	s.Require().NoError(err)

	got, err := s.repos.AdjustmentRepo.FindAdjustmentByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.CurrencyConversionAdjustment{SourceAmount: -10000, DestinationAmount: 9150}, got.Details)

	got.Details = (*domain.CurrencyConversionAdjustment)(nil)
	s.ErrorIs(s.repos.AdjustmentRepo.UpdateAdjustment(s.ctx, *got), apperrors.ErrValidation)
}

// --- receipts ---

func (s *ConformanceSuite) TestReceipt_PayloadsStoredUnmodified() {
	s.seedCurrency("USD", 100)
	acc := s.seedAccount("USD", nil)
	txn := s.seedTransaction(acc.ID, day(2024, time.August, 8), -999)

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0xFF, 0xD9}
	withImage := domain.Receipt{TransactionID: txn.ID, ImageJPEG: jpeg, Notes: "till slip"}
	id, err := s.repos.ReceiptRepo.SaveReceipt(s.ctx, withImage)
	s.Require().NoError(err)

	empty := domain.Receipt{TransactionID: txn.ID}
	emptyID, err := s.repos.ReceiptRepo.SaveReceipt(s.ctx, empty)
	s.Require().NoError(err)

	jpeg[0] = 0x00 // later caller mutation must not reach storage

	got, err := s.repos.ReceiptRepo.FindReceiptByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0xFF, 0xD9}, got.ImageJPEG)
	s.Nil(got.ImagePDF)

	got, err = s.repos.ReceiptRepo.FindReceiptByID(s.ctx, emptyID)
	s.Require().NoError(err)
	s.Nil(got.ImageJPEG)
	s.Nil(got.ImagePDF)

	list, err := s.repos.ReceiptRepo.ListReceiptsByTransaction(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Len(list, 2)

	_, err = s.repos.ReceiptRepo.SaveReceipt(s.ctx, domain.Receipt{TransactionID: 999})
	s.ErrorIs(err, apperrors.ErrForeignKey)
}

// --- budgets ---

func (s *ConformanceSuite) TestBudgetWithItems() {
	s.seedCurrency("USD", 100)
	groceries, err := s.repos.BudgetCategoryRepo.SaveBudgetCategory(s.ctx, domain.BudgetCategory{Title: "Groceries"})
	s.Require().NoError(err)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	budget := domain.Budget{Title: "2024", StartDate: start, EndDate: end, CurrencyCode: "USD"}
	budgetID, err := s.repos.BudgetRepo.SaveBudget(s.ctx, budget)
	s.Require().NoError(err)

	got, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, budgetID)
	s.Require().NoError(err)
	s.True(start.Equal(got.StartDate))
	s.True(end.Equal(got.EndDate))

	itemStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	itemID, err := s.repos.BudgetItemRepo.SaveBudgetItem(s.ctx, domain.BudgetItem{
		BudgetID: budgetID, CategoryID: groceries, Title: "Food shop", Amount: 50000, StartDate: &itemStart,
	})
	s.Require().NoError(err)

	items, err := s.repos.BudgetItemRepo.ListBudgetItemsByBudget(s.ctx, budgetID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(itemID, items[0].ID)
	s.Require().NotNil(items[0].StartDate)
	s.True(itemStart.Equal(*items[0].StartDate))
	s.Nil(items[0].EndDate)

	byCategory, err := s.repos.BudgetItemRepo.ListBudgetItemsByCategory(s.ctx, groceries)
	s.Require().NoError(err)
	s.Len(byCategory, 1)

	_, err = s.repos.BudgetItemRepo.SaveBudgetItem(s.ctx, domain.BudgetItem{BudgetID: budgetID, CategoryID: 999, Amount: 1})
	s.ErrorIs(err, apperrors.ErrForeignKey)

	s.ErrorIs(s.repos.BudgetRepo.DeleteBudget(s.ctx, budgetID), apperrors.ErrForeignKey)
	s.ErrorIs(s.repos.CurrencyRepo.DeleteCurrency(s.ctx, "USD"), apperrors.ErrForeignKey)

	s.Require().NoError(s.repos.BudgetItemRepo.DeleteBudgetItem(s.ctx, itemID))
	s.Require().NoError(s.repos.BudgetRepo.DeleteBudget(s.ctx, budgetID))

	budgets, err := s.repos.BudgetRepo.ListBudgetsByCurrency(s.ctx, "USD")
	s.Require().NoError(err)
	s.Empty(budgets)
}

// --- unit of work ---

func (s *ConformanceSuite) TestUnitOfWork_CommitsTogether() {
	err := s.store.Do(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{Code: "JPY", DisplayFactor: 1}); err != nil {
			return err
		}
		id, err := repos.AccountRepo.SaveAccount(ctx, domain.Account{CurrencyCode: "JPY", Details: domain.PersonalAccount{Holder: "Kei"}})
		if err != nil {
			return err
		}
		// Writes are visible inside the unit before commit.
		_, err = repos.AccountRepo.FindAccountByID(ctx, id)
		return err
	})
	s.Require().NoError(err)

	accounts, err := s.repos.AccountRepo.ListAccountsByCurrency(s.ctx, "JPY")
	s.Require().NoError(err)
	s.Len(accounts, 1)
}

func (s *ConformanceSuite) TestUnitOfWork_RollsBackOnError() {
	boom := errors.New("boom")
	err := s.store.Do(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{Code: "CHF", DisplayFactor: 100}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.repos.CurrencyRepo.FindCurrencyByCode(s.ctx, "CHF")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ConformanceSuite) TestUnitOfWork_RollsBackOnPanic() {
	s.Panics(func() {
		_ = s.store.Do(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			if err := repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{Code: "SEK", DisplayFactor: 100}); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	_, err := s.repos.CurrencyRepo.FindCurrencyByCode(s.ctx, "SEK")
	s.ErrorIs(err, apperrors.ErrNotFound)

	// The store stays usable after the panic.
	s.NoError(s.store.Do(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.CurrencyRepo.SaveCurrency(ctx, domain.Currency{Code: "SEK", DisplayFactor: 100})
	}))
}
