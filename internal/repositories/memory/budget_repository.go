package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

type budgetRepository struct {
	sess *session
}

func normalizeBudget(t *tables, m *models.Budget) error {
	if err := checkLengths(models.BudgetTable, varchar("title", m.Title, models.TitleMaxLength)); err != nil {
		return err
	}
	if _, exists := t.currencies[m.CurrencyCode]; !exists {
		return foreignKey(models.BudgetTable, "currency_code", m.CurrencyCode)
	}
	m.StartDate = timestamp(m.StartDate)
	m.EndDate = timestamp(m.EndDate)
	return nil
}

func (r *budgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (int64, error) {
	m := mapping.ToModelBudget(budget)
	err := r.sess.write(func(t *tables) error {
		if err := normalizeBudget(t, &m); err != nil {
			return err
		}
		m.ID = t.nextID(models.BudgetTable)
		t.budgets[m.ID] = m
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save budget: %w", err)
	}
	return m.ID, nil
}

func (r *budgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.budgets[m.ID]; !exists {
			return notFound(models.BudgetTable, m.ID)
		}
		if err := normalizeBudget(t, &m); err != nil {
			return err
		}
		t.budgets[m.ID] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", m.ID, err)
	}
	return nil
}

func (r *budgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.budgets[budgetID]; !exists {
			return notFound(models.BudgetTable, budgetID)
		}
		for _, item := range t.budgetItems {
			if item.BudgetID == budgetID {
				return foreignKey(models.BudgetItemTable, "budget_id", budgetID)
			}
		}
		delete(t.budgets, budgetID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", budgetID, err)
	}
	return nil
}

func (r *budgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	var d domain.Budget
	err := r.sess.read(func(t *tables) error {
		m, exists := t.budgets[budgetID]
		if !exists {
			return notFound(models.BudgetTable, budgetID)
		}
		d = mapping.ToDomainBudget(m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find budget %d: %w", budgetID, err)
	}
	return &d, nil
}

func (r *budgetRepository) ListBudgetsByCurrency(ctx context.Context, currencyCode string) ([]domain.Budget, error) {
	var ds []domain.Budget
	err := r.sess.read(func(t *tables) error {
		for _, m := range t.budgets {
			if m.CurrencyCode == currencyCode {
				ds = append(ds, mapping.ToDomainBudget(m))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ds, func(i, j int) bool {
		if !ds[i].StartDate.Equal(ds[j].StartDate) {
			return ds[i].StartDate.Before(ds[j].StartDate)
		}
		return ds[i].ID < ds[j].ID
	})
	return ds, nil
}

type budgetItemRepository struct {
	sess *session
}

func normalizeBudgetItem(t *tables, m *models.BudgetItem) error {
	if err := checkLengths(models.BudgetItemTable, varchar("title", m.Title, models.TitleMaxLength)); err != nil {
		return err
	}
	if _, exists := t.budgets[m.BudgetID]; !exists {
		return foreignKey(models.BudgetItemTable, "budget_id", m.BudgetID)
	}
	if _, exists := t.budgetCategories[m.CategoryID]; !exists {
		return foreignKey(models.BudgetItemTable, "category_id", m.CategoryID)
	}
	m.StartDate = nullTimestamp(m.StartDate)
	m.EndDate = nullTimestamp(m.EndDate)
	return nil
}

func (r *budgetItemRepository) SaveBudgetItem(ctx context.Context, item domain.BudgetItem) (int64, error) {
	m := mapping.ToModelBudgetItem(item)
	err := r.sess.write(func(t *tables) error {
		if err := normalizeBudgetItem(t, &m); err != nil {
			return err
		}
		m.ID = t.nextID(models.BudgetItemTable)
		t.budgetItems[m.ID] = m
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save item for budget %d: %w", m.BudgetID, err)
	}
	return m.ID, nil
}

func (r *budgetItemRepository) UpdateBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	m := mapping.ToModelBudgetItem(item)
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.budgetItems[m.ID]; !exists {
			return notFound(models.BudgetItemTable, m.ID)
		}
		if err := normalizeBudgetItem(t, &m); err != nil {
			return err
		}
		t.budgetItems[m.ID] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update budget item %d: %w", m.ID, err)
	}
	return nil
}

func (r *budgetItemRepository) DeleteBudgetItem(ctx context.Context, itemID int64) error {
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.budgetItems[itemID]; !exists {
			return notFound(models.BudgetItemTable, itemID)
		}
		delete(t.budgetItems, itemID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete budget item %d: %w", itemID, err)
	}
	return nil
}

func (r *budgetItemRepository) FindBudgetItemByID(ctx context.Context, itemID int64) (*domain.BudgetItem, error) {
	var d domain.BudgetItem
	err := r.sess.read(func(t *tables) error {
		m, exists := t.budgetItems[itemID]
		if !exists {
			return notFound(models.BudgetItemTable, itemID)
		}
		d = mapping.ToDomainBudgetItem(m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find budget item %d: %w", itemID, err)
	}
	return &d, nil
}

func (r *budgetItemRepository) ListBudgetItemsByBudget(ctx context.Context, budgetID int64) ([]domain.BudgetItem, error) {
	return r.filter(func(m models.BudgetItem) bool { return m.BudgetID == budgetID })
}

func (r *budgetItemRepository) ListBudgetItemsByCategory(ctx context.Context, categoryID int64) ([]domain.BudgetItem, error) {
	return r.filter(func(m models.BudgetItem) bool { return m.CategoryID == categoryID })
}

func (r *budgetItemRepository) filter(keep func(m models.BudgetItem) bool) ([]domain.BudgetItem, error) {
	var ds []domain.BudgetItem
	err := r.sess.read(func(t *tables) error {
		for _, m := range t.budgetItems {
			if keep(m) {
				ds = append(ds, mapping.ToDomainBudgetItem(m))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].ID < ds[j].ID })
	return ds, nil
}
