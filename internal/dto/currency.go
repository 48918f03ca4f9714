package dto

import "github.com/SscSPs/nemo/internal/core/domain"

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode  string `json:"currencyCode" binding:"required,uppercase,len=3"`
	Title         string `json:"title" binding:"required"`
	Symbol        string `json:"symbol" binding:"omitempty,max=1"`
	LongSymbol    string `json:"longSymbol" binding:"omitempty,max=3"`
	DisplayFactor int32  `json:"displayFactor" binding:"required,gt=0"`
}

// UpdateCurrencyRequest changes the display attributes of a currency.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCurrencyRequest struct {
	Title         *string `json:"title"`
	Symbol        *string `json:"symbol" binding:"omitempty,max=1"`
	LongSymbol    *string `json:"longSymbol" binding:"omitempty,max=3"`
	DisplayFactor *int32  `json:"displayFactor" binding:"omitempty,gt=0"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string `json:"currencyCode"`
	Title         string `json:"title"`
	Symbol        string `json:"symbol"`
	LongSymbol    string `json:"longSymbol"`
	DisplayFactor int32  `json:"displayFactor"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.Code,
		Title:         curr.Title,
		Symbol:        curr.Symbol,
		LongSymbol:    curr.LongSymbol,
		DisplayFactor: curr.DisplayFactor,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
