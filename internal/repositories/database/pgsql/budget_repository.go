package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a repository for budgets.
func newPgxBudgetRepository(db DBTX) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `id, title, start_date, end_date, currency_code`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(&m.ID, &m.Title, &m.StartDate, &m.EndDate, &m.CurrencyCode)
	return m, err
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (int64, error) {
	m := mapping.ToModelBudget(budget)
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO budgets (title, start_date, end_date, currency_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		m.Title, m.StartDate, m.EndDate, m.CurrencyCode,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save budget: %w", translateError(err, models.BudgetTable, m.CurrencyCode))
	}
	return id, nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	tag, err := r.DB.Exec(ctx, `
		UPDATE budgets SET title = $2, start_date = $3, end_date = $4, currency_code = $5
		WHERE id = $1;`,
		m.ID, m.Title, m.StartDate, m.EndDate, m.CurrencyCode,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", m.ID, translateError(err, models.BudgetTable, m.ID))
	}
	return notFoundIfNone(tag, models.BudgetTable, m.ID)
}

// DeleteBudget removes a budget. Items still belonging to it make this fail with a
// foreign key violation.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM budgets WHERE id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", budgetID, translateError(err, models.BudgetTable, budgetID))
	}
	return notFoundIfNone(tag, models.BudgetTable, budgetID)
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	m, err := scanBudget(r.DB.QueryRow(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = $1;`, budgetID))
	if err != nil {
		return nil, fmt.Errorf("failed to find budget %d: %w", budgetID, translateError(err, models.BudgetTable, budgetID))
	}
	d := mapping.ToDomainBudget(m)
	return &d, nil
}

func (r *PgxBudgetRepository) ListBudgetsByCurrency(ctx context.Context, currencyCode string) ([]domain.Budget, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE currency_code = $1 ORDER BY start_date, id;`, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets in %s: %w", currencyCode, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		return scanBudget(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainBudget(m)
	}
	return ds, nil
}

type PgxBudgetItemRepository struct {
	BaseRepository
}

// newPgxBudgetItemRepository creates a repository for budget line items.
func newPgxBudgetItemRepository(db DBTX) portsrepo.BudgetItemRepositoryFacade {
	return &PgxBudgetItemRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BudgetItemRepositoryFacade = (*PgxBudgetItemRepository)(nil)

const budgetItemColumns = `id, budget_id, category_id, title, notes, start_date, end_date, amount`

func scanBudgetItem(row pgx.Row) (models.BudgetItem, error) {
	var m models.BudgetItem
	err := row.Scan(&m.ID, &m.BudgetID, &m.CategoryID, &m.Title, &m.Notes, &m.StartDate, &m.EndDate, &m.Amount)
	return m, err
}

func (r *PgxBudgetItemRepository) SaveBudgetItem(ctx context.Context, item domain.BudgetItem) (int64, error) {
	m := mapping.ToModelBudgetItem(item)
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO budget_items (budget_id, category_id, title, notes, start_date, end_date, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`,
		m.BudgetID, m.CategoryID, m.Title, m.Notes, m.StartDate, m.EndDate, m.Amount,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save item for budget %d: %w", m.BudgetID, translateError(err, models.BudgetItemTable, m.BudgetID))
	}
	return id, nil
}

func (r *PgxBudgetItemRepository) UpdateBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	m := mapping.ToModelBudgetItem(item)
	tag, err := r.DB.Exec(ctx, `
		UPDATE budget_items
		SET budget_id = $2, category_id = $3, title = $4, notes = $5, start_date = $6, end_date = $7, amount = $8
		WHERE id = $1;`,
		m.ID, m.BudgetID, m.CategoryID, m.Title, m.Notes, m.StartDate, m.EndDate, m.Amount,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget item %d: %w", m.ID, translateError(err, models.BudgetItemTable, m.ID))
	}
	return notFoundIfNone(tag, models.BudgetItemTable, m.ID)
}

func (r *PgxBudgetItemRepository) DeleteBudgetItem(ctx context.Context, itemID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM budget_items WHERE id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete budget item %d: %w", itemID, translateError(err, models.BudgetItemTable, itemID))
	}
	return notFoundIfNone(tag, models.BudgetItemTable, itemID)
}

func (r *PgxBudgetItemRepository) FindBudgetItemByID(ctx context.Context, itemID int64) (*domain.BudgetItem, error) {
	m, err := scanBudgetItem(r.DB.QueryRow(ctx, `SELECT `+budgetItemColumns+` FROM budget_items WHERE id = $1;`, itemID))
	if err != nil {
		return nil, fmt.Errorf("failed to find budget item %d: %w", itemID, translateError(err, models.BudgetItemTable, itemID))
	}
	d := mapping.ToDomainBudgetItem(m)
	return &d, nil
}

func (r *PgxBudgetItemRepository) ListBudgetItemsByBudget(ctx context.Context, budgetID int64) ([]domain.BudgetItem, error) {
	return r.list(ctx, `SELECT `+budgetItemColumns+` FROM budget_items WHERE budget_id = $1 ORDER BY id;`, budgetID)
}

func (r *PgxBudgetItemRepository) ListBudgetItemsByCategory(ctx context.Context, categoryID int64) ([]domain.BudgetItem, error) {
	return r.list(ctx, `SELECT `+budgetItemColumns+` FROM budget_items WHERE category_id = $1 ORDER BY id;`, categoryID)
}

func (r *PgxBudgetItemRepository) list(ctx context.Context, query string, args ...any) ([]domain.BudgetItem, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget items: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BudgetItem, error) {
		return scanBudgetItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget items: %w", err)
	}
	ds := make([]domain.BudgetItem, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainBudgetItem(m)
	}
	return ds, nil
}
