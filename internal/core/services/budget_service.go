package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/dto"
	"github.com/SscSPs/nemo/internal/utils"
)

type budgetService struct {
	BaseService
	store portsrepo.Store
}

// NewBudgetService creates a budget service over store.
func NewBudgetService(store portsrepo.Store) portssvc.BudgetSvcFacade {
	return &budgetService{store: store}
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var created *domain.Budget
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.CurrencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
			return fmt.Errorf("currency %s: %w", req.CurrencyCode, err)
		}
		id, err := repos.BudgetRepo.SaveBudget(ctx, domain.Budget{
			Title:        req.Title,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			CurrencyCode: req.CurrencyCode,
		})
		if err != nil {
			return err
		}
		created, err = repos.BudgetRepo.FindBudgetByID(ctx, id)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create budget", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	s.LogInfo(ctx, "Budget created", slog.Int64("budget_id", created.ID))
	return created, nil
}

func (s *budgetService) GetBudget(ctx context.Context, budgetID int64) (*domain.BudgetDetail, error) {
	var detail domain.BudgetDetail
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		budget, err := repos.BudgetRepo.FindBudgetByID(ctx, budgetID)
		if err != nil {
			return err
		}
		detail.Budget = *budget
		detail.Items, err = repos.BudgetItemRepo.ListBudgetItemsByBudget(ctx, budgetID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get budget %d: %w", budgetID, err)
	}
	if detail.Items == nil {
		detail.Items = []domain.BudgetItem{}
	}
	return &detail, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, currencyCode string) ([]domain.Budget, error) {
	budgets, err := s.store.Repositories().BudgetRepo.ListBudgetsByCurrency(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for %s: %w", currencyCode, err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) AddItem(ctx context.Context, req dto.AddBudgetItemRequest) (*domain.BudgetItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkItemWindow(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	var created *domain.BudgetItem
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		currency, err := budgetCurrency(ctx, repos, req.BudgetID)
		if err != nil {
			return err
		}
		if _, err := repos.BudgetCategoryRepo.FindBudgetCategoryByID(ctx, req.CategoryID); err != nil {
			return fmt.Errorf("budget category %d: %w", req.CategoryID, err)
		}
		amount, err := utils.ParseMinorUnits(req.Amount, *currency)
		if err != nil {
			return err
		}
		id, err := repos.BudgetItemRepo.SaveBudgetItem(ctx, domain.BudgetItem{
			BudgetID:   req.BudgetID,
			CategoryID: req.CategoryID,
			Title:      req.Title,
			Notes:      req.Notes,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Amount:     amount,
		})
		if err != nil {
			return err
		}
		created, err = repos.BudgetItemRepo.FindBudgetItemByID(ctx, id)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add budget item",
			slog.Int64("budget_id", req.BudgetID),
			slog.Int64("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to add item to budget %d: %w", req.BudgetID, err)
	}
	return created, nil
}

func (s *budgetService) UpdateItem(ctx context.Context, itemID int64, req dto.UpdateBudgetItemRequest) (*domain.BudgetItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var updated *domain.BudgetItem
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		item, err := repos.BudgetItemRepo.FindBudgetItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		if req.CategoryID != nil {
			if _, err := repos.BudgetCategoryRepo.FindBudgetCategoryByID(ctx, *req.CategoryID); err != nil {
				return fmt.Errorf("budget category %d: %w", *req.CategoryID, err)
			}
			item.CategoryID = *req.CategoryID
		}
		if req.Title != nil {
			item.Title = *req.Title
		}
		if req.Notes != nil {
			item.Notes = *req.Notes
		}
		if req.StartDate != nil {
			item.StartDate = req.StartDate
		}
		if req.EndDate != nil {
			item.EndDate = req.EndDate
		}
		if err := checkItemWindow(item.StartDate, item.EndDate); err != nil {
			return err
		}
		if req.Amount != nil {
			currency, err := budgetCurrency(ctx, repos, item.BudgetID)
			if err != nil {
				return err
			}
			if item.Amount, err = utils.ParseMinorUnits(*req.Amount, *currency); err != nil {
				return err
			}
		}
		if err := repos.BudgetItemRepo.UpdateBudgetItem(ctx, *item); err != nil {
			return err
		}
		updated, err = repos.BudgetItemRepo.FindBudgetItemByID(ctx, itemID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update budget item", slog.Int64("item_id", itemID))
		return nil, fmt.Errorf("failed to update budget item %d: %w", itemID, err)
	}
	return updated, nil
}

func (s *budgetService) RemoveItem(ctx context.Context, itemID int64) error {
	if err := s.store.Repositories().BudgetItemRepo.DeleteBudgetItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to remove budget item %d: %w", itemID, err)
	}
	return nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID int64) error {
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		items, err := repos.BudgetItemRepo.ListBudgetItemsByBudget(ctx, budgetID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := repos.BudgetItemRepo.DeleteBudgetItem(ctx, item.ID); err != nil {
				return err
			}
		}
		return repos.BudgetRepo.DeleteBudget(ctx, budgetID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget %d: %w", budgetID, err)
	}
	return nil
}

func budgetCurrency(ctx context.Context, repos portsrepo.RepositoryProvider, budgetID int64) (*domain.Currency, error) {
	budget, err := repos.BudgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("budget %d: %w", budgetID, err)
	}
	return repos.CurrencyRepo.FindCurrencyByCode(ctx, budget.CurrencyCode)
}

func checkItemWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: item ends before it starts", apperrors.ErrValidation)
	}
	return nil
}
