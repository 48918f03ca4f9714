package services_test

import (
	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

func (s *LedgerServiceTestSuite) TestCategoryTree_ChildrenAndPath() {
	tree := s.svc.Category.Transactions()
	food := s.category("Food", nil)
	groceries := s.category("Groceries", &food)
	produce := s.category("Produce", &groceries)
	s.category("Dining", &food)
	s.category("Travel", nil)

	roots, err := tree.Children(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(roots, 2)

	kids, err := tree.Children(s.ctx, &food)
	s.Require().NoError(err)
	s.Len(kids, 2)

	path, err := tree.Path(s.ctx, produce)
	s.Require().NoError(err)
	s.Require().Len(path, 3)
	s.Equal([]string{"Produce", "Groceries", "Food"}, []string{path[0].Title, path[1].Title, path[2].Title})

	_, err = tree.Path(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestCategoryTree_ReparentRejectsCycles() {
	tree := s.svc.Category.Transactions()
	a := s.category("A", nil)
	b := s.category("B", &a)
	c := s.category("C", &b)

	_, err := tree.Reparent(s.ctx, a, &c)
	s.ErrorIs(err, apperrors.ErrInvariant)

	_, err = tree.Reparent(s.ctx, a, &a)
	s.ErrorIs(err, apperrors.ErrInvariant)

	moved, err := tree.Reparent(s.ctx, c, nil)
	s.Require().NoError(err)
	s.Nil(moved.ParentID)
	s.Equal("C", moved.Title)

	missing := int64(404)
	_, err = tree.Reparent(s.ctx, c, &missing)
	s.ErrorIs(err, apperrors.ErrNotFound)

	issues, err := tree.Verify(s.ctx)
	s.Require().NoError(err)
	s.Empty(issues)
}

func (s *LedgerServiceTestSuite) TestCategoryTree_CreateAndRename() {
	tree := s.svc.Category.Budgets()
	missing := int64(77)

	_, err := tree.Create(s.ctx, dto.CreateCategoryRequest{Title: "Orphan", ParentID: &missing})
	s.ErrorIs(err, apperrors.ErrForeignKey)

	_, err = tree.Create(s.ctx, dto.CreateCategoryRequest{})
	s.ErrorIs(err, apperrors.ErrValidation)

	id := s.budgetCategory("Housing", nil)
	renamed, err := tree.Rename(s.ctx, id, "Home")
	s.Require().NoError(err)
	s.Equal("Home", renamed.Title)

	_, err = tree.Rename(s.ctx, id, "")
	s.ErrorIs(err, apperrors.ErrValidation)

	loaded, err := tree.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Home", loaded.Title)
}

func (s *LedgerServiceTestSuite) TestCategoryTree_DeleteWithChildrenFails() {
	tree := s.svc.Category.Transactions()
	parent := s.category("Parent", nil)
	child := s.category("Child", &parent)

	s.ErrorIs(tree.Delete(s.ctx, parent), apperrors.ErrForeignKey)
	s.NoError(tree.Delete(s.ctx, child))
	s.NoError(tree.Delete(s.ctx, parent))
}

func (s *LedgerServiceTestSuite) TestCategoryTree_VerifyFindsStoredCycle() {
	a := s.category("A", nil)
	b := s.category("B", &a)
	// The store accepts any existing parent, so a loop can be written directly.
	s.Require().NoError(s.repos.CategoryRepo.UpdateTransactionCategory(s.ctx, domain.TransactionCategory{ID: a, Title: "A", ParentID: &b}))

	issues, err := s.svc.Category.Transactions().Verify(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(issues, 1)
	s.Equal(domain.HierarchyCycle, issues[0].Kind)
	s.ElementsMatch([]int64{a, b}, issues[0].Path)

	_, err = s.svc.Category.Transactions().Path(s.ctx, a)
	s.ErrorIs(err, apperrors.ErrInvariant)
}
