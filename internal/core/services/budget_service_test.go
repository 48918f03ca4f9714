package services_test

import (
	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/dto"
)

func (s *LedgerServiceTestSuite) TestBudget_ItemsInBudgetCurrency() {
	s.currency("USD", 100)
	s.currency("JPY", 1)
	groceries := s.budgetCategory("Groceries", nil)

	usd, err := s.svc.Budget.CreateBudget(s.ctx, dto.CreateBudgetRequest{
		Title: "2024", StartDate: day(2024, 1, 1), EndDate: day(2024, 12, 31), CurrencyCode: "USD",
	})
	s.Require().NoError(err)
	jpy, err := s.svc.Budget.CreateBudget(s.ctx, dto.CreateBudgetRequest{
		Title: "Trip", StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 14), CurrencyCode: "JPY",
	})
	s.Require().NoError(err)

	item, err := s.svc.Budget.AddItem(s.ctx, dto.AddBudgetItemRequest{
		BudgetID: usd.ID, CategoryID: groceries, Title: "Food", Amount: "450.25",
	})
	s.Require().NoError(err)
	s.Equal(int64(45025), item.Amount)

	item, err = s.svc.Budget.AddItem(s.ctx, dto.AddBudgetItemRequest{
		BudgetID: jpy.ID, CategoryID: groceries, Amount: "30000",
	})
	s.Require().NoError(err)
	s.Equal(int64(30000), item.Amount)

	_, err = s.svc.Budget.AddItem(s.ctx, dto.AddBudgetItemRequest{
		BudgetID: jpy.ID, CategoryID: groceries, Amount: "1.5",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	detail, err := s.svc.Budget.GetBudget(s.ctx, usd.ID)
	s.Require().NoError(err)
	s.Equal("USD", detail.Budget.CurrencyCode)
	s.Len(detail.Items, 1)

	budgets, err := s.svc.Budget.ListBudgets(s.ctx, "JPY")
	s.Require().NoError(err)
	s.Len(budgets, 1)
}

func (s *LedgerServiceTestSuite) TestBudget_Validation() {
	s.currency("USD", 100)

	_, err := s.svc.Budget.CreateBudget(s.ctx, dto.CreateBudgetRequest{
		Title: "Backwards", StartDate: day(2024, 2, 1), EndDate: day(2024, 1, 1), CurrencyCode: "USD",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Budget.CreateBudget(s.ctx, dto.CreateBudgetRequest{
		Title: "Nowhere", StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 1), CurrencyCode: "XXX",
	})
	s.ErrorIs(err, apperrors.ErrNotFound)

	budget, err := s.svc.Budget.CreateBudget(s.ctx, dto.CreateBudgetRequest{
		Title: "Day", StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 1), CurrencyCode: "USD",
	})
	s.Require().NoError(err)

	_, err = s.svc.Budget.AddItem(s.ctx, dto.AddBudgetItemRequest{BudgetID: budget.ID, CategoryID: 42, Amount: "1"})
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.Budget.AddItem(s.ctx, dto.AddBudgetItemRequest{BudgetID: budget.ID, CategoryID: 42, Amount: "ten"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestBudget_UpdateAndDelete() {
	s.currency("USD", 100)
	housing := s.budgetCategory("Housing", nil)
	utilities := s.budgetCategory("Utilities", &housing)
	budget, err := s.svc.Budget.CreateBudget(s.ctx, dto.CreateBudgetRequest{
		Title: "2024", StartDate: day(2024, 1, 1), EndDate: day(2024, 12, 31), CurrencyCode: "USD",
	})
	s.Require().NoError(err)
	item, err := s.svc.Budget.AddItem(s.ctx, dto.AddBudgetItemRequest{BudgetID: budget.ID, CategoryID: housing, Amount: "1200"})
	s.Require().NoError(err)

	updated, err := s.svc.Budget.UpdateItem(s.ctx, item.ID, dto.UpdateBudgetItemRequest{
		CategoryID: &utilities,
		Amount:     ptr("99.99"),
		StartDate:  ptr(day(2024, 3, 1)),
		EndDate:    ptr(day(2024, 3, 31)),
	})
	s.Require().NoError(err)
	s.Equal(utilities, updated.CategoryID)
	s.Equal(int64(9999), updated.Amount)

	_, err = s.svc.Budget.UpdateItem(s.ctx, item.ID, dto.UpdateBudgetItemRequest{EndDate: ptr(day(2024, 2, 1))})
	s.ErrorIs(err, apperrors.ErrValidation)

	s.ErrorIs(s.svc.Category.Budgets().Delete(s.ctx, utilities), apperrors.ErrForeignKey)

	s.Require().NoError(s.svc.Budget.DeleteBudget(s.ctx, budget.ID))
	_, err = s.svc.Budget.GetBudget(s.ctx, budget.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.NoError(s.svc.Category.Budgets().Delete(s.ctx, utilities))
}
