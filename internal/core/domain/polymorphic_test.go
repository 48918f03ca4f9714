package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccountType(t *testing.T) {
	assert.Equal(t, domain.AccountTypeBase, domain.Account{}.Type())
	assert.Equal(t, domain.AccountTypeInstitution, domain.Account{Details: domain.InstitutionAccount{}}.Type())
	assert.Equal(t, domain.AccountTypePersonal, domain.Account{Details: domain.PersonalAccount{}}.Type())

	_, ok := domain.Account{Details: domain.PersonalAccount{}}.Institution()
	assert.False(t, ok)

	assert.True(t, domain.AccountTypePersonal.Valid())
	assert.False(t, domain.AccountType("savings_account").Valid())
}

func TestAdjustmentType(t *testing.T) {
	assert.Equal(t, domain.AdjustmentTypeBase, domain.TransactionAdjustment{}.Type())
	adj := domain.TransactionAdjustment{Details: domain.CurrencyConversionAdjustment{SourceAmount: 110, DestinationAmount: 100}}
	assert.Equal(t, domain.AdjustmentTypeCurrencyConversion, adj.Type())

	conv, ok := adj.CurrencyConversion()
	assert.True(t, ok)
	assert.Equal(t, int64(100), conv.DestinationAmount)
	_, ok = adj.AccountTransaction()
	assert.False(t, ok)

	assert.False(t, domain.AdjustmentType("").Valid())
}

func TestTransactionCursorBefore(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	cursor := domain.TransactionCursor{TransactionDate: d2, ID: 5}

	assert.True(t, cursor.Before(domain.AccountTransaction{TransactionDate: d1, ID: 9}))
	assert.True(t, cursor.Before(domain.AccountTransaction{TransactionDate: d2, ID: 4}))
	assert.False(t, cursor.Before(domain.AccountTransaction{TransactionDate: d2, ID: 5}))
	assert.False(t, cursor.Before(domain.AccountTransaction{TransactionDate: d2.AddDate(0, 0, 1), ID: 1}))
}
