package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
)

type adjustmentRepository struct {
	sess *session
}

func validateAdjustment(m models.TransactionAdjustment) error {
	if !domain.AdjustmentType(m.Type).Valid() {
		return checkViolation(models.TransactionAdjustmentTable, "type", m.Type)
	}
	return checkLengths(models.TransactionAdjustmentTable, varchar("title", m.Title, models.TitleMaxLength))
}

func (r *adjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.TransactionAdjustment) (int64, error) {
	m, err := mapping.ToModelAdjustment(adjustment)
	if err != nil {
		return 0, fmt.Errorf("failed to save adjustment: %w", err)
	}
	err = r.sess.write(func(t *tables) error {
		if err := validateAdjustment(m); err != nil {
			return err
		}
		if _, exists := t.transactions[m.SourceTransactionID]; !exists {
			return foreignKey(models.TransactionAdjustmentTable, "source_transaction_id", m.SourceTransactionID)
		}
		if _, exists := t.transactions[m.DestinationTransactionID]; !exists {
			return foreignKey(models.TransactionAdjustmentTable, "destination_transaction_id", m.DestinationTransactionID)
		}
		m.ID = t.nextID(models.TransactionAdjustmentTable)
		t.adjustments[m.ID] = m
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", m.Type, err)
	}
	return m.ID, nil
}

// UpdateAdjustment replaces title, notes and subtype amounts. Legs stay as stored.
func (r *adjustmentRepository) UpdateAdjustment(ctx context.Context, adjustment domain.TransactionAdjustment) error {
	m, err := mapping.ToModelAdjustment(adjustment)
	if err != nil {
		return fmt.Errorf("failed to update adjustment: %w", err)
	}
	err = r.sess.write(func(t *tables) error {
		stored, exists := t.adjustments[m.ID]
		if !exists {
			return notFound(models.TransactionAdjustmentTable, m.ID)
		}
		if stored.Type != m.Type {
			return fmt.Errorf("%w: adjustment %d is a %s, not a %s", apperrors.ErrValidation, m.ID, stored.Type, m.Type)
		}
		if err := validateAdjustment(m); err != nil {
			return err
		}
		m.SourceTransactionID = stored.SourceTransactionID
		m.DestinationTransactionID = stored.DestinationTransactionID
		t.adjustments[m.ID] = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update adjustment %d: %w", m.ID, err)
	}
	return nil
}

func (r *adjustmentRepository) DeleteAdjustment(ctx context.Context, adjustmentID int64) error {
	err := r.sess.write(func(t *tables) error {
		if _, exists := t.adjustments[adjustmentID]; !exists {
			return notFound(models.TransactionAdjustmentTable, adjustmentID)
		}
		delete(t.adjustments, adjustmentID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete adjustment %d: %w", adjustmentID, err)
	}
	return nil
}

func (r *adjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID int64) (*domain.TransactionAdjustment, error) {
	var m models.TransactionAdjustment
	err := r.sess.read(func(t *tables) error {
		var exists bool
		if m, exists = t.adjustments[adjustmentID]; !exists {
			return notFound(models.TransactionAdjustmentTable, adjustmentID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find adjustment %d: %w", adjustmentID, err)
	}
	adj, err := mapping.ToDomainAdjustment(m)
	if err != nil {
		return nil, err
	}
	return &adj, nil
}

func (r *adjustmentRepository) FindAdjustmentsBySource(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error) {
	return r.filter(func(m models.TransactionAdjustment) bool { return m.SourceTransactionID == transactionID })
}

func (r *adjustmentRepository) FindAdjustmentsByDestination(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error) {
	return r.filter(func(m models.TransactionAdjustment) bool { return m.DestinationTransactionID == transactionID })
}

func (r *adjustmentRepository) filter(keep func(m models.TransactionAdjustment) bool) ([]domain.TransactionAdjustment, error) {
	var ms []models.TransactionAdjustment
	err := r.sess.read(func(t *tables) error {
		for _, m := range t.adjustments {
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
	return mapping.ToDomainAdjustmentSlice(ms)
}
