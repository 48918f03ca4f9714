package utils_test

import (
	"testing"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	usd = domain.Currency{Code: "USD", DisplayFactor: 100}
	jpy = domain.Currency{Code: "JPY", DisplayFactor: 1}
	bhd = domain.Currency{Code: "BHD", DisplayFactor: 1000}
)

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		amount   int64
		currency domain.Currency
		want     string
	}{
		{-1500, usd, "-15.00"},
		{5, usd, "0.05"},
		{1500, jpy, "1500"},
		{1234567, bhd, "1234.567"},
		{0, domain.Currency{Code: "ZZZ"}, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.FormatMinorUnits(tt.amount, tt.currency), "%d %s", tt.amount, tt.currency.Code)
	}
}

func TestParseMinorUnits(t *testing.T) {
	got, err := utils.ParseMinorUnits("12.34", usd)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), got)

	got, err = utils.ParseMinorUnits("-0.5", usd)
	require.NoError(t, err)
	assert.Equal(t, int64(-50), got)

	got, err = utils.ParseMinorUnits("250", jpy)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got)

	_, err = utils.ParseMinorUnits("0.001", usd)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = utils.ParseMinorUnits("abc", usd)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = utils.ParseMinorUnits("99999999999999999999", usd)
	assert.ErrorIs(t, err, apperrors.ErrTypeMismatch)
}
