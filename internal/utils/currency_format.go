package utils

import (
	"fmt"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMinorUnits renders an integer minor-unit amount for display using the currency's
// display factor.
// Example: -1500 with USD (factor 100) returns "-15.00"
// Example: 1500 with JPY (factor 1) returns "1500"
// Example: 7 with a factor of 12 returns "0.5833333333333333"
func FormatMinorUnits(amount int64, currency domain.Currency) string {
	factor := displayFactor(currency)
	value := decimal.NewFromInt(amount).Div(decimal.NewFromInt(factor))
	if places, ok := decimalPlaces(factor); ok {
		return value.StringFixed(places)
	}
	return value.String()
}

// ParseMinorUnits converts a human amount such as "12.34" into minor units. Values finer
// than one minor unit are rejected rather than rounded.
func ParseMinorUnits(amount string, currency domain.Currency) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q: %v", apperrors.ErrValidation, amount, err)
	}
	scaled := d.Mul(decimal.NewFromInt(displayFactor(currency)))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: amount %q is finer than one minor unit of %s", apperrors.ErrValidation, amount, currency.Code)
	}
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount %q overflows minor units", apperrors.ErrTypeMismatch, amount)
	}
	return scaled.IntPart(), nil
}

func displayFactor(currency domain.Currency) int64 {
	if currency.DisplayFactor <= 0 {
		return 1
	}
	return int64(currency.DisplayFactor)
}

// decimalPlaces returns log10(factor) when factor is a power of ten.
func decimalPlaces(factor int64) (int32, bool) {
	var places int32
	for factor > 1 {
		if factor%10 != 0 {
			return 0, false
		}
		factor /= 10
		places++
	}
	return places, true
}
