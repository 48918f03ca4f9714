package services

import (
	"context"

	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/dto"
)

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccountsByCurrency(ctx context.Context, currencyCode string) ([]domain.Account, error)

	// ListTransactions pages through an account's transactions, newest first.
	ListTransactions(ctx context.Context, accountID int64, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// AccountWriterSvc defines write operations for accounts
type AccountWriterSvc interface {
	CreateInstitutionAccount(ctx context.Context, req dto.CreateInstitutionAccountRequest) (*domain.Account, error)
	CreatePersonalAccount(ctx context.Context, req dto.CreatePersonalAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
