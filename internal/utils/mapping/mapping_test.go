package mapping_test

import (
	"database/sql"
	"testing"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRoundTrip(t *testing.T) {
	for _, acc := range []domain.Account{
		{ID: 1, CurrencyCode: "USD"},
		{ID: 2, CurrencyCode: "USD", Details: domain.InstitutionAccount{Title: "Checking", NumberSuffix: "0042", MinimumValue: -100}},
		{ID: 3, CurrencyCode: "EUR", Details: domain.PersonalAccount{Holder: "Sam"}},
	} {
		m, err := mapping.ToModelAccount(acc)
		require.NoError(t, err)
		got, err := mapping.ToDomainAccount(m)
		require.NoError(t, err)
		assert.Equal(t, acc, got)
	}
}

func TestToModelAccount_PointerDetails(t *testing.T) {
	m, err := mapping.ToModelAccount(domain.Account{ID: 1, CurrencyCode: "USD", Details: &domain.PersonalAccount{Holder: "Alice"}})
	require.NoError(t, err)
	assert.Equal(t, string(domain.AccountTypePersonal), m.Type)
	assert.True(t, m.HasPersonal)
	assert.Equal(t, "Alice", m.Holder.String)

	got, err := mapping.ToDomainAccount(m)
	require.NoError(t, err)
	assert.Equal(t, domain.PersonalAccount{Holder: "Alice"}, got.Details)

	m, err = mapping.ToModelAccount(domain.Account{ID: 2, CurrencyCode: "USD", Details: &domain.InstitutionAccount{Title: "Checking", MinimumValue: -100}})
	require.NoError(t, err)
	assert.True(t, m.HasInstitution)
	assert.Equal(t, int64(-100), m.MinimumValue.Int64)

	_, err = mapping.ToModelAccount(domain.Account{ID: 3, CurrencyCode: "USD", Details: (*domain.PersonalAccount)(nil)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToDomainAccount_DiscriminatorMismatch(t *testing.T) {
	tests := []struct {
		name string
		row  models.Account
		want error
	}{
		{"institution without row", models.Account{ID: 1, Type: string(domain.AccountTypeInstitution)}, apperrors.ErrIntegrity},
		{"personal with institution row", models.Account{ID: 1, Type: string(domain.AccountTypePersonal), HasPersonal: true, HasInstitution: true}, apperrors.ErrIntegrity},
		{"base with subtype row", models.Account{ID: 1, Type: string(domain.AccountTypeBase), HasPersonal: true}, apperrors.ErrIntegrity},
		{"unknown type", models.Account{ID: 1, Type: "brokerage_account"}, apperrors.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapping.ToDomainAccount(tt.row)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdjustmentRoundTrip(t *testing.T) {
	for _, adj := range []domain.TransactionAdjustment{
		{ID: 1, SourceTransactionID: 10, DestinationTransactionID: 11, Title: "bare"},
		{ID: 2, SourceTransactionID: 10, DestinationTransactionID: 11, Details: domain.AccountTransactionAdjustment{Amount: 500}},
		{ID: 3, SourceTransactionID: 10, DestinationTransactionID: 12, Notes: "fx", Details: domain.CurrencyConversionAdjustment{SourceAmount: 110, DestinationAmount: 100}},
	} {
		m, err := mapping.ToModelAdjustment(adj)
		require.NoError(t, err)
		got, err := mapping.ToDomainAdjustment(m)
		require.NoError(t, err)
		assert.Equal(t, adj, got)
	}
}

func TestToModelAdjustment_PointerDetails(t *testing.T) {
	m, err := mapping.ToModelAdjustment(domain.TransactionAdjustment{ID: 1, Details: &domain.CurrencyConversionAdjustment{SourceAmount: 110, DestinationAmount: 100}})
	require.NoError(t, err)
	assert.Equal(t, string(domain.AdjustmentTypeCurrencyConversion), m.Type)
	assert.True(t, m.HasCurrencyConversion)

	got, err := mapping.ToDomainAdjustment(m)
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyConversionAdjustment{SourceAmount: 110, DestinationAmount: 100}, got.Details)

	_, err = mapping.ToModelAdjustment(domain.TransactionAdjustment{ID: 2, Details: (*domain.AccountTransactionAdjustment)(nil)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToDomainAdjustment_DiscriminatorMismatch(t *testing.T) {
	row := models.TransactionAdjustment{
		ID:                    1,
		Type:                  string(domain.AdjustmentTypeCurrencyConversion),
		HasAccountTransaction: true,
		Amount:                sql.NullInt64{Int64: 5, Valid: true},
	}
	_, err := mapping.ToDomainAdjustment(row)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	row.Type = "refund_adjustment"
	_, err = mapping.ToDomainAdjustment(row)
	assert.ErrorIs(t, err, apperrors.ErrTypeMismatch)
}
