package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

type categorizationRepository struct {
	sess *session
}

func (r *categorizationRepository) SaveCategorization(ctx context.Context, c domain.TransactionCategorization) error {
	m := mapping.ToModelCategorization(c)
	key := categorizationKey{m.TransactionID, m.CategoryID}
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.transactions[m.TransactionID]; !exists {
			return foreignKey(models.TransactionCategorizationTable, "transaction_id", m.TransactionID)
		}
		if _, exists := t.categories[m.CategoryID]; !exists {
			return foreignKey(models.TransactionCategorizationTable, "category_id", m.CategoryID)
		}
		if _, exists := t.categorizations[key]; exists {
			return duplicateKey(models.TransactionCategorizationTable, "", key)
		}
		t.categorizations[key] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save categorization %s: %w", key, err)
	}
	return nil
}

func (r *categorizationRepository) UpdateCategorization(ctx context.Context, c domain.TransactionCategorization) error {
	m := mapping.ToModelCategorization(c)
	key := categorizationKey{m.TransactionID, m.CategoryID}
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.categorizations[key]; !exists {
			return notFound(models.TransactionCategorizationTable, key)
		}
		t.categorizations[key] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update categorization %s: %w", key, err)
	}
	return nil
}

func (r *categorizationRepository) DeleteCategorization(ctx context.Context, transactionID, categoryID int64) error {
	key := categorizationKey{transactionID, categoryID}
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.categorizations[key]; !exists {
			return notFound(models.TransactionCategorizationTable, key)
		}
		delete(t.categorizations, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete categorization %s: %w", key, err)
	}
	return nil
}

func (r *categorizationRepository) FindCategorization(ctx context.Context, transactionID, categoryID int64) (*domain.TransactionCategorization, error) {
	key := categorizationKey{transactionID, categoryID}
	var d domain.TransactionCategorization
	err := r.sess.read(func(t *tables) error {
		m, exists := t.categorizations[key]
		if !exists {
			return notFound(models.TransactionCategorizationTable, key)
		}
		d = mapping.ToDomainCategorization(m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find categorization %s: %w", key, err)
	}
	return &d, nil
}

func (r *categorizationRepository) ListCategorizationsByTransaction(ctx context.Context, transactionID int64) ([]domain.TransactionCategorization, error) {
	return r.filter(func(k categorizationKey) bool { return k.TransactionID == transactionID })
}

func (r *categorizationRepository) ListCategorizationsByCategory(ctx context.Context, categoryID int64) ([]domain.TransactionCategorization, error) {
	return r.filter(func(k categorizationKey) bool { return k.CategoryID == categoryID })
}

func (r *categorizationRepository) ListCategorizations(ctx context.Context) ([]domain.TransactionCategorization, error) {
	return r.filter(func(categorizationKey) bool { return true })
}

// filter returns matching splits ordered by transaction then category.
func (r *categorizationRepository) filter(keep func(k categorizationKey) bool) ([]domain.TransactionCategorization, error) {
	var ds []domain.TransactionCategorization
	err := r.sess.read(func(t *tables) error {
		for key, m := range t.categorizations {
			if keep(key) {
				ds = append(ds, mapping.ToDomainCategorization(m))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].TransactionID != ds[j].TransactionID {
			return ds[i].TransactionID < ds[j].TransactionID
		}
		return ds[i].CategoryID < ds[j].CategoryID
	})
	return ds, nil
}
