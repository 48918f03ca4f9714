package services_test

import (
	"math"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

func (s *LedgerServiceTestSuite) TestVerify_CleanLedger() {
	s.currency("USD", 100)
	acc := s.bankAccount("USD")
	food := s.category("Food", nil)
	s.record(acc.ID, day(2024, 1, 1), -300, dto.CategorizationRequest{CategoryID: food, Amount: -300})
	s.record(acc.ID, day(2024, 1, 2), -700)

	report, err := s.svc.Verifier.Verify(s.ctx)
	s.Require().NoError(err)
	s.True(report.Clean())
}

func (s *LedgerServiceTestSuite) TestVerify_ReportsEveryProblem() {
	s.currency("USD", 100)
	acc := s.bankAccount("USD")
	food := s.category("Food", nil)
	fuel := s.category("Fuel", nil)
	txn := s.record(acc.ID, day(2024, 1, 1), -1250, dto.CategorizationRequest{CategoryID: food, Amount: -1250}).Transaction

	// Writes straight to the store skip the service checks.
	s.Require().NoError(s.repos.CategorizationRepo.SaveCategorization(s.ctx, domain.TransactionCategorization{
		TransactionID: txn.ID, CategoryID: fuel, Amount: -100,
	}))
	a := s.budgetCategory("A", nil)
	b := s.budgetCategory("B", &a)
	s.Require().NoError(s.repos.BudgetCategoryRepo.UpdateBudgetCategory(s.ctx, domain.BudgetCategory{ID: a, Title: "A", ParentID: &b}))

	report, err := s.svc.Verifier.Verify(s.ctx)
	s.Require().NoError(err)
	s.False(report.Clean())
	s.Empty(report.TransactionCategoryIssues)
	s.Require().Len(report.BudgetCategoryIssues, 1)
	s.Equal(domain.HierarchyCycle, report.BudgetCategoryIssues[0].Kind)

	s.Require().Len(report.Unbalanced, 1)
	u := report.Unbalanced[0]
	s.Equal(txn.ID, u.TransactionID)
	s.Equal("USD", u.CurrencyCode)
	s.Equal(int64(-1350), u.CategorizedAmount)
	s.Equal("-12.50", u.TransactionDisplay)
	s.Equal("-13.50", u.CategorizedDisplay)
}

func (s *LedgerServiceTestSuite) TestVerify_ReportsOverflowingSplit() {
	s.currency("USD", 100)
	acc := s.bankAccount("USD")
	food := s.category("Food", nil)
	fuel := s.category("Fuel", nil)
	rent := s.category("Rent", nil)
	misc := s.category("Misc", nil)
	txn := s.record(acc.ID, day(2024, 1, 1), -1500, dto.CategorizationRequest{CategoryID: food, Amount: -1500}).Transaction

	for _, c := range []domain.TransactionCategorization{
		{TransactionID: txn.ID, CategoryID: fuel, Amount: math.MaxInt64},
		{TransactionID: txn.ID, CategoryID: rent, Amount: math.MaxInt64},
		{TransactionID: txn.ID, CategoryID: misc, Amount: 2},
	} {
		s.Require().NoError(s.repos.CategorizationRepo.SaveCategorization(s.ctx, c))
	}

	report, err := s.svc.Verifier.Verify(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(report.Unbalanced, 1)
	s.Equal(txn.ID, report.Unbalanced[0].TransactionID)
	s.Equal(int64(math.MaxInt64), report.Unbalanced[0].CategorizedAmount)
}
