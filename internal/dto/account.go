package dto

import "github.com/SscSPs/nemo/internal/core/domain"

// CreateInstitutionAccountRequest defines the data needed to open an account at an institution.
type CreateInstitutionAccountRequest struct {
	CurrencyCode     string `json:"currencyCode" binding:"required,len=3"`
	Title            string `json:"title" binding:"required,max=255"`
	NumberSuffix     string `json:"numberSuffix" binding:"omitempty,max=4"`
	InstitutionTitle string `json:"institutionTitle" binding:"omitempty,max=255"`
	MinimumValue     int64  `json:"minimumValue"`
}

// CreatePersonalAccountRequest defines the data needed for an account kept with a person.
type CreatePersonalAccountRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
	Holder       string `json:"holder" binding:"required,max=255"`
}

// UpdateAccountRequest defines the subtype fields allowed for updating an account.
// Institution fields apply only to institution accounts and Holder only to personal ones.
type UpdateAccountRequest struct {
	Title            *string `json:"title" binding:"omitempty,max=255"`
	NumberSuffix     *string `json:"numberSuffix" binding:"omitempty,max=4"`
	InstitutionTitle *string `json:"institutionTitle" binding:"omitempty,max=255"`
	MinimumValue     *int64  `json:"minimumValue"`
	Holder           *string `json:"holder" binding:"omitempty,max=255"`
}

// ListTransactionsParams holds the parameters for listing an account's transactions.
type ListTransactionsParams struct {
	Limit     int    `json:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken string `json:"nextToken"`
}

// ListTransactionsResponse is one page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []domain.AccountTransaction `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}
