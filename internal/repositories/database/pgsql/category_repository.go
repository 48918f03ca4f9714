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

// categoryTable holds the SQL shared by the two self-referencing category tables.
type categoryTable struct {
	BaseRepository
	table string
}

func (t *categoryTable) save(ctx context.Context, m models.Category) (int64, error) {
	var id int64
	query := fmt.Sprintf(`INSERT INTO %s (title, parent_id) VALUES ($1, $2) RETURNING id;`, t.table)
	if err := t.DB.QueryRow(ctx, query, m.Title, m.ParentID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to save %s row: %w", t.table, translateError(err, t.table, nullableValue(m.ParentID)))
	}
	return id, nil
}

func (t *categoryTable) update(ctx context.Context, m models.Category) error {
	query := fmt.Sprintf(`UPDATE %s SET title = $2, parent_id = $3 WHERE id = $1;`, t.table)
	tag, err := t.DB.Exec(ctx, query, m.ID, m.Title, m.ParentID)
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", t.table, m.ID, translateError(err, t.table, m.ID))
	}
	return notFoundIfNone(tag, t.table, m.ID)
}

func (t *categoryTable) delete(ctx context.Context, id int64) error {
	tag, err := t.DB.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1;`, t.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", t.table, id, translateError(err, t.table, id))
	}
	return notFoundIfNone(tag, t.table, id)
}

func (t *categoryTable) find(ctx context.Context, id int64) (models.Category, error) {
	var m models.Category
	query := fmt.Sprintf(`SELECT id, title, parent_id FROM %s WHERE id = $1;`, t.table)
	err := t.DB.QueryRow(ctx, query, id).Scan(&m.ID, &m.Title, &m.ParentID)
	if err != nil {
		return m, fmt.Errorf("failed to find %s %d: %w", t.table, id, translateError(err, t.table, id))
	}
	return m, nil
}

// children returns the rows whose parent is parentID, or the roots when it is nil.
func (t *categoryTable) children(ctx context.Context, parentID *int64) ([]models.Category, error) {
	if parentID == nil {
		return t.query(ctx, fmt.Sprintf(`SELECT id, title, parent_id FROM %s WHERE parent_id IS NULL ORDER BY id;`, t.table))
	}
	return t.query(ctx, fmt.Sprintf(`SELECT id, title, parent_id FROM %s WHERE parent_id = $1 ORDER BY id;`, t.table), *parentID)
}

func (t *categoryTable) list(ctx context.Context) ([]models.Category, error) {
	return t.query(ctx, fmt.Sprintf(`SELECT id, title, parent_id FROM %s ORDER BY id;`, t.table))
}

func (t *categoryTable) query(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := t.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.table, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var m models.Category
		err := row.Scan(&m.ID, &m.Title, &m.ParentID)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", t.table, err)
	}
	return ms, nil
}

type PgxCategoryRepository struct {
	rows categoryTable
}

// newPgxCategoryRepository creates a repository for the transaction category tree.
func newPgxCategoryRepository(db DBTX) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{rows: categoryTable{BaseRepository: BaseRepository{DB: db}, table: models.TransactionCategoryTable}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveTransactionCategory(ctx context.Context, category domain.TransactionCategory) (int64, error) {
	return r.rows.save(ctx, mapping.ToModelTransactionCategory(category))
}

func (r *PgxCategoryRepository) UpdateTransactionCategory(ctx context.Context, category domain.TransactionCategory) error {
	return r.rows.update(ctx, mapping.ToModelTransactionCategory(category))
}

func (r *PgxCategoryRepository) DeleteTransactionCategory(ctx context.Context, categoryID int64) error {
	return r.rows.delete(ctx, categoryID)
}

func (r *PgxCategoryRepository) FindTransactionCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error) {
	m, err := r.rows.find(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransactionCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) ListTransactionCategories(ctx context.Context) ([]domain.TransactionCategory, error) {
	ms, err := r.rows.list(ctx)
	if err != nil {
		return nil, err
	}
	return toTransactionCategories(ms), nil
}

func (r *PgxCategoryRepository) FindChildTransactionCategories(ctx context.Context, parentID *int64) ([]domain.TransactionCategory, error) {
	ms, err := r.rows.children(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return toTransactionCategories(ms), nil
}

func toTransactionCategories(ms []models.Category) []domain.TransactionCategory {
	ds := make([]domain.TransactionCategory, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainTransactionCategory(m)
	}
	return ds
}

type PgxBudgetCategoryRepository struct {
	rows categoryTable
}

// newPgxBudgetCategoryRepository creates a repository for the budget category tree.
func newPgxBudgetCategoryRepository(db DBTX) portsrepo.BudgetCategoryRepositoryFacade {
	return &PgxBudgetCategoryRepository{rows: categoryTable{BaseRepository: BaseRepository{DB: db}, table: models.BudgetCategoryTable}}
}

var _ portsrepo.BudgetCategoryRepositoryFacade = (*PgxBudgetCategoryRepository)(nil)

func (r *PgxBudgetCategoryRepository) SaveBudgetCategory(ctx context.Context, category domain.BudgetCategory) (int64, error) {
	return r.rows.save(ctx, mapping.ToModelBudgetCategory(category))
}

func (r *PgxBudgetCategoryRepository) UpdateBudgetCategory(ctx context.Context, category domain.BudgetCategory) error {
	return r.rows.update(ctx, mapping.ToModelBudgetCategory(category))
}

func (r *PgxBudgetCategoryRepository) DeleteBudgetCategory(ctx context.Context, categoryID int64) error {
	return r.rows.delete(ctx, categoryID)
}

func (r *PgxBudgetCategoryRepository) FindBudgetCategoryByID(ctx context.Context, categoryID int64) (*domain.BudgetCategory, error) {
	m, err := r.rows.find(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBudgetCategory(m)
	return &d, nil
}

func (r *PgxBudgetCategoryRepository) ListBudgetCategories(ctx context.Context) ([]domain.BudgetCategory, error) {
	ms, err := r.rows.list(ctx)
	if err != nil {
		return nil, err
	}
	return toBudgetCategories(ms), nil
}

func (r *PgxBudgetCategoryRepository) FindChildBudgetCategories(ctx context.Context, parentID *int64) ([]domain.BudgetCategory, error) {
	ms, err := r.rows.children(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return toBudgetCategories(ms), nil
}

func toBudgetCategories(ms []models.Category) []domain.BudgetCategory {
	ds := make([]domain.BudgetCategory, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainBudgetCategory(m)
	}
	return ds
}
