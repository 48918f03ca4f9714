package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

// categoryRows implements the rules shared by the two self-referencing category tables.
type categoryRows struct {
	sess  *session
	table string
	rows  func(t *tables) map[int64]models.Category
	// referenced reports rows outside the tree that still point at id.
	referenced func(t *tables, id int64) error
}

func transactionCategoryRows(sess *session) categoryRows {
	return categoryRows{
		sess:  sess,
		table: models.TransactionCategoryTable,
		rows:  func(t *tables) map[int64]models.Category { return t.categories },
		referenced: func(t *tables, id int64) error {
			for key := range t.categorizations {
				if key.CategoryID == id {
					return foreignKey(models.TransactionCategorizationTable, "category_id", id)
				}
			}
			return nil
		},
	}
}

func budgetCategoryRows(sess *session) categoryRows {
	return categoryRows{
		sess:  sess,
		table: models.BudgetCategoryTable,
		rows:  func(t *tables) map[int64]models.Category { return t.budgetCategories },
		referenced: func(t *tables, id int64) error {
			for _, item := range t.budgetItems {
				if item.CategoryID == id {
					return foreignKey(models.BudgetItemTable, "category_id", id)
				}
			}
			return nil
		},
	}
}

func (c categoryRows) validate(rows map[int64]models.Category, m models.Category) error {
	if err := checkLengths(c.table, varchar("title", m.Title, models.TitleMaxLength)); err != nil {
		return err
	}
	if m.ParentID.Valid {
		if _, exists := rows[m.ParentID.Int64]; !exists {
			return foreignKey(c.table, "parent_id", m.ParentID.Int64)
		}
	}
	return nil
}

func (c categoryRows) save(m models.Category) (int64, error) {
	err := c.sess.write(func(t *tables) error {
		rows := c.rows(t)
		if err := c.validate(rows, m); err != nil {
			return err
		}
		m.ID = t.nextID(c.table)
		rows[m.ID] = m
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save %s row: %w", c.table, err)
	}
	return m.ID, nil
}

// update accepts any existing parent, including the row itself. Cycle checks belong to
// the caller.
func (c categoryRows) update(m models.Category) error {
	err := c.sess.write(func(t *tables) error {
		rows := c.rows(t)
		if _, exists := rows[m.ID]; !exists {
			return notFound(c.table, m.ID)
		}
		if err := c.validate(rows, m); err != nil {
			return err
		}
		rows[m.ID] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", c.table, m.ID, err)
	}
	return nil
}

func (c categoryRows) delete(id int64) error {
	err := c.sess.write(func(t *tables) error {
		rows := c.rows(t)
		if _, exists := rows[id]; !exists {
			return notFound(c.table, id)
		}
		for _, m := range rows {
			if m.ParentID.Valid && m.ParentID.Int64 == id && m.ID != id {
				return foreignKey(c.table, "parent_id", id)
			}
		}
		if err := c.referenced(t, id); err != nil {
			return err
		}
		delete(rows, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", c.table, id, err)
	}
	return nil
}

func (c categoryRows) find(id int64) (models.Category, error) {
	var m models.Category
	err := c.sess.read(func(t *tables) error {
		var exists bool
		if m, exists = c.rows(t)[id]; !exists {
			return notFound(c.table, id)
		}
		return nil
	})
	if err != nil {
		return m, fmt.Errorf("failed to find %s %d: %w", c.table, id, err)
	}
	return m, nil
}

// filter returns matching rows ordered by id.
func (c categoryRows) filter(keep func(m models.Category) bool) ([]models.Category, error) {
	var ms []models.Category
	err := c.sess.read(func(t *tables) error {
		for _, m := range c.rows(t) {
			if keep(m) {
				ms = append(ms, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].ID < ms[j].ID })
	return ms, nil
}

func (c categoryRows) children(parentID *int64) ([]models.Category, error) {
	return c.filter(func(m models.Category) bool {
		if parentID == nil {
			return !m.ParentID.Valid
		}
		return m.ParentID.Valid && m.ParentID.Int64 == *parentID
	})
}

func (c categoryRows) list() ([]models.Category, error) {
	return c.filter(func(models.Category) bool { return true })
}

type categoryRepository struct {
	rows categoryRows
}

func (r *categoryRepository) SaveTransactionCategory(ctx context.Context, category domain.TransactionCategory) (int64, error) {
	return r.rows.save(mapping.ToModelTransactionCategory(category))
}

func (r *categoryRepository) UpdateTransactionCategory(ctx context.Context, category domain.TransactionCategory) error {
	return r.rows.update(mapping.ToModelTransactionCategory(category))
}

func (r *categoryRepository) DeleteTransactionCategory(ctx context.Context, categoryID int64) error {
	return r.rows.delete(categoryID)
}

func (r *categoryRepository) FindTransactionCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error) {
	m, err := r.rows.find(categoryID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransactionCategory(m)
	return &d, nil
}

func (r *categoryRepository) ListTransactionCategories(ctx context.Context) ([]domain.TransactionCategory, error) {
	ms, err := r.rows.list()
	return toTransactionCategories(ms), err
}

func (r *categoryRepository) FindChildTransactionCategories(ctx context.Context, parentID *int64) ([]domain.TransactionCategory, error) {
	ms, err := r.rows.children(parentID)
	return toTransactionCategories(ms), err
}

func toTransactionCategories(ms []models.Category) []domain.TransactionCategory {
	ds := make([]domain.TransactionCategory, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainTransactionCategory(m)
	}
	return ds
}

type budgetCategoryRepository struct {
	rows categoryRows
}

func (r *budgetCategoryRepository) SaveBudgetCategory(ctx context.Context, category domain.BudgetCategory) (int64, error) {
	return r.rows.save(mapping.ToModelBudgetCategory(category))
}

func (r *budgetCategoryRepository) UpdateBudgetCategory(ctx context.Context, category domain.BudgetCategory) error {
	return r.rows.update(mapping.ToModelBudgetCategory(category))
}

func (r *budgetCategoryRepository) DeleteBudgetCategory(ctx context.Context, categoryID int64) error {
	return r.rows.delete(categoryID)
}

func (r *budgetCategoryRepository) FindBudgetCategoryByID(ctx context.Context, categoryID int64) (*domain.BudgetCategory, error) {
	m, err := r.rows.find(categoryID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBudgetCategory(m)
	return &d, nil
}

func (r *budgetCategoryRepository) ListBudgetCategories(ctx context.Context) ([]domain.BudgetCategory, error) {
	ms, err := r.rows.list()
	return toBudgetCategories(ms), err
}

func (r *budgetCategoryRepository) FindChildBudgetCategories(ctx context.Context, parentID *int64) ([]domain.BudgetCategory, error) {
	ms, err := r.rows.children(parentID)
	return toBudgetCategories(ms), err
}

func toBudgetCategories(ms []models.Category) []domain.BudgetCategory {
	ds := make([]domain.BudgetCategory, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainBudgetCategory(m)
	}
	return ds
}
