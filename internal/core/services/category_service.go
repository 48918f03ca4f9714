package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/dto"
)

// treeAccess binds the generic tree logic to one category table.
type treeAccess[T domain.HierarchyNode] struct {
	name     string
	find     func(ctx context.Context, repos portsrepo.RepositoryProvider, id int64) (*T, error)
	list     func(ctx context.Context, repos portsrepo.RepositoryProvider) ([]T, error)
	children func(ctx context.Context, repos portsrepo.RepositoryProvider, parentID *int64) ([]T, error)
	save     func(ctx context.Context, repos portsrepo.RepositoryProvider, node T) (int64, error)
	update   func(ctx context.Context, repos portsrepo.RepositoryProvider, node T) error
	remove   func(ctx context.Context, repos portsrepo.RepositoryProvider, id int64) error
	build    func(id int64, title string, parentID *int64) T
	title    func(node T) string
}

var transactionTree = treeAccess[domain.TransactionCategory]{
	name: "transaction category",
	find: func(ctx context.Context, repos portsrepo.RepositoryProvider, id int64) (*domain.TransactionCategory, error) {
		return repos.CategoryRepo.FindTransactionCategoryByID(ctx, id)
	},
	list: func(ctx context.Context, repos portsrepo.RepositoryProvider) ([]domain.TransactionCategory, error) {
		return repos.CategoryRepo.ListTransactionCategories(ctx)
	},
	children: func(ctx context.Context, repos portsrepo.RepositoryProvider, parentID *int64) ([]domain.TransactionCategory, error) {
		return repos.CategoryRepo.FindChildTransactionCategories(ctx, parentID)
	},
	save: func(ctx context.Context, repos portsrepo.RepositoryProvider, node domain.TransactionCategory) (int64, error) {
		return repos.CategoryRepo.SaveTransactionCategory(ctx, node)
	},
	update: func(ctx context.Context, repos portsrepo.RepositoryProvider, node domain.TransactionCategory) error {
		return repos.CategoryRepo.UpdateTransactionCategory(ctx, node)
	},
	remove: func(ctx context.Context, repos portsrepo.RepositoryProvider, id int64) error {
		return repos.CategoryRepo.DeleteTransactionCategory(ctx, id)
	},
	build: func(id int64, title string, parentID *int64) domain.TransactionCategory {
		return domain.TransactionCategory{ID: id, Title: title, ParentID: parentID}
	},
	title: func(node domain.TransactionCategory) string { return node.Title },
}

var budgetTree = treeAccess[domain.BudgetCategory]{
	name: "budget category",
	find: func(ctx context.Context, repos portsrepo.RepositoryProvider, id int64) (*domain.BudgetCategory, error) {
		return repos.BudgetCategoryRepo.FindBudgetCategoryByID(ctx, id)
	},
	list: func(ctx context.Context, repos portsrepo.RepositoryProvider) ([]domain.BudgetCategory, error) {
		return repos.BudgetCategoryRepo.ListBudgetCategories(ctx)
	},
	children: func(ctx context.Context, repos portsrepo.RepositoryProvider, parentID *int64) ([]domain.BudgetCategory, error) {
		return repos.BudgetCategoryRepo.FindChildBudgetCategories(ctx, parentID)
	},
	save: func(ctx context.Context, repos portsrepo.RepositoryProvider, node domain.BudgetCategory) (int64, error) {
		return repos.BudgetCategoryRepo.SaveBudgetCategory(ctx, node)
	},
	update: func(ctx context.Context, repos portsrepo.RepositoryProvider, node domain.BudgetCategory) error {
		return repos.BudgetCategoryRepo.UpdateBudgetCategory(ctx, node)
	},
	remove: func(ctx context.Context, repos portsrepo.RepositoryProvider, id int64) error {
		return repos.BudgetCategoryRepo.DeleteBudgetCategory(ctx, id)
	},
	build: func(id int64, title string, parentID *int64) domain.BudgetCategory {
		return domain.BudgetCategory{ID: id, Title: title, ParentID: parentID}
	},
	title: func(node domain.BudgetCategory) string { return node.Title },
}

type categoryTreeService[T domain.HierarchyNode] struct {
	BaseService
	store  portsrepo.Store
	access treeAccess[T]
}

func (s *categoryTreeService[T]) Create(ctx context.Context, req dto.CreateCategoryRequest) (*T, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var created *T
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		id, err := s.access.save(ctx, repos, s.access.build(0, req.Title, req.ParentID))
		if err != nil {
			return err
		}
		created, err = s.access.find(ctx, repos, id)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("tree", s.access.name))
		return nil, fmt.Errorf("failed to create %s: %w", s.access.name, err)
	}
	return created, nil
}

func (s *categoryTreeService[T]) Get(ctx context.Context, categoryID int64) (*T, error) {
	node, err := s.access.find(ctx, s.store.Repositories(), categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", s.access.name, categoryID, err)
	}
	return node, nil
}

func (s *categoryTreeService[T]) Rename(ctx context.Context, categoryID int64, title string) (*T, error) {
	if err := validateValue("title", title, "required,max=255"); err != nil {
		return nil, err
	}
	var renamed *T
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		node, err := s.access.find(ctx, repos, categoryID)
		if err != nil {
			return err
		}
		next := s.access.build(categoryID, title, (*node).ParentNodeID())
		if err := s.access.update(ctx, repos, next); err != nil {
			return err
		}
		renamed = &next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rename %s %d: %w", s.access.name, categoryID, err)
	}
	return renamed, nil
}

func (s *categoryTreeService[T]) Reparent(ctx context.Context, categoryID int64, parentID *int64) (*T, error) {
	var moved *T
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		node, err := s.access.find(ctx, repos, categoryID)
		if err != nil {
			return err
		}
		if parentID != nil {
			if _, err := s.access.find(ctx, repos, *parentID); err != nil {
				return fmt.Errorf("parent %d: %w", *parentID, err)
			}
		}
		all, err := s.access.list(ctx, repos)
		if err != nil {
			return err
		}
		if domain.WouldCreateCycle(all, categoryID, parentID) {
			return fmt.Errorf("%w: moving %d under %d would create a cycle", apperrors.ErrInvariant, categoryID, *parentID)
		}
		next := s.access.build(categoryID, s.access.title(*node), parentID)
		if err := s.access.update(ctx, repos, next); err != nil {
			return err
		}
		moved = &next
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reparent category",
			slog.String("tree", s.access.name),
			slog.Int64("category_id", categoryID))
		return nil, fmt.Errorf("failed to reparent %s %d: %w", s.access.name, categoryID, err)
	}
	return moved, nil
}

func (s *categoryTreeService[T]) Children(ctx context.Context, parentID *int64) ([]T, error) {
	nodes, err := s.access.children(ctx, s.store.Repositories(), parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s children: %w", s.access.name, err)
	}
	if nodes == nil {
		return []T{}, nil
	}
	return nodes, nil
}

func (s *categoryTreeService[T]) Path(ctx context.Context, categoryID int64) ([]T, error) {
	all, err := s.access.list(ctx, s.store.Repositories())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s tree: %w", s.access.name, err)
	}
	ids, err := domain.AncestorPath(all, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path of %s %d: %w", s.access.name, categoryID, err)
	}
	byID := make(map[int64]T, len(all))
	for _, n := range all {
		byID[n.NodeID()] = n
	}
	path := make([]T, 0, len(ids))
	for _, id := range ids {
		path = append(path, byID[id])
	}
	return path, nil
}

func (s *categoryTreeService[T]) Verify(ctx context.Context) ([]domain.HierarchyIssue, error) {
	all, err := s.access.list(ctx, s.store.Repositories())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s tree: %w", s.access.name, err)
	}
	issues := domain.CheckHierarchy(all)
	if len(issues) > 0 {
		s.LogDebug(ctx, "Hierarchy issues found", slog.String("tree", s.access.name), slog.Int("count", len(issues)))
	}
	return issues, nil
}

func (s *categoryTreeService[T]) Delete(ctx context.Context, categoryID int64) error {
	if err := s.access.remove(ctx, s.store.Repositories(), categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category",
			slog.String("tree", s.access.name),
			slog.Int64("category_id", categoryID))
		return fmt.Errorf("failed to delete %s %d: %w", s.access.name, categoryID, err)
	}
	return nil
}

type categoryService struct {
	transactions *categoryTreeService[domain.TransactionCategory]
	budgets      *categoryTreeService[domain.BudgetCategory]
}

// NewCategoryService creates the services for both category trees.
func NewCategoryService(store portsrepo.Store) portssvc.CategorySvcFacade {
	return &categoryService{
		transactions: &categoryTreeService[domain.TransactionCategory]{store: store, access: transactionTree},
		budgets:      &categoryTreeService[domain.BudgetCategory]{store: store, access: budgetTree},
	}
}

func (s *categoryService) Transactions() portssvc.CategoryTreeSvc[domain.TransactionCategory] {
	return s.transactions
}

func (s *categoryService) Budgets() portssvc.CategoryTreeSvc[domain.BudgetCategory] {
	return s.budgets
}
