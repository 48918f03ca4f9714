package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckCategorizationBalance(t *testing.T) {
	txn := domain.AccountTransaction{ID: 10, TransactionAmount: -8000}
	split := func(category, amount int64) domain.TransactionCategorization {
		return domain.TransactionCategorization{TransactionID: 10, CategoryID: category, Amount: amount}
	}

	tests := []struct {
		name    string
		cs      []domain.TransactionCategorization
		wantErr error
	}{
		{name: "uncategorized"},
		{name: "single", cs: []domain.TransactionCategorization{split(1, -8000)}},
		{name: "groceries and household", cs: []domain.TransactionCategorization{split(1, -5000), split(2, -3000)}},
		{name: "refund inside split", cs: []domain.TransactionCategorization{split(1, -9000), split(2, 1000)}},
		{name: "short", cs: []domain.TransactionCategorization{split(1, -5000)}, wantErr: apperrors.ErrInvariant},
		{
			name:    "overflowing split",
			cs:      []domain.TransactionCategorization{split(1, math.MaxInt64), split(2, math.MaxInt64), split(3, -7998)},
			wantErr: apperrors.ErrInvariant,
		},
		{
			name:    "underflowing split",
			cs:      []domain.TransactionCategorization{split(1, math.MinInt64), split(2, math.MinInt64), split(3, -8000)},
			wantErr: apperrors.ErrInvariant,
		},
		{name: "category twice", cs: []domain.TransactionCategorization{split(1, -4000), split(1, -4000)}, wantErr: apperrors.ErrInvariant},
		{
			name:    "foreign transaction",
			cs:      []domain.TransactionCategorization{{TransactionID: 11, CategoryID: 1, Amount: -8000}},
			wantErr: apperrors.ErrInvariant,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.CheckCategorizationBalance(txn, tt.cs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSumCategorizations(t *testing.T) {
	sum, err := domain.SumCategorizations(nil)
	assert.NoError(t, err)
	assert.Zero(t, sum)

	sum, err = domain.SumCategorizations([]domain.TransactionCategorization{{Amount: 3}, {Amount: -5}})
	assert.NoError(t, err)
	assert.Equal(t, int64(-2), sum)

	sum, err = domain.SumCategorizations([]domain.TransactionCategorization{{Amount: math.MaxInt64}, {Amount: 1}, {Amount: -1}})
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), sum)

	sum, err = domain.SumCategorizations([]domain.TransactionCategorization{{Amount: math.MaxInt64}, {Amount: 1}})
	assert.ErrorIs(t, err, apperrors.ErrInvariant)
	assert.Equal(t, int64(math.MaxInt64), sum)

	sum, err = domain.SumCategorizations([]domain.TransactionCategorization{{Amount: math.MinInt64}, {Amount: -1}})
	assert.ErrorIs(t, err, apperrors.ErrInvariant)
	assert.Equal(t, int64(math.MinInt64), sum)
}
