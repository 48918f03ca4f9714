package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/dto"
	"github.com/SscSPs/nemo/internal/utils/pagination"
)

const defaultTransactionPageSize = 50

type accountService struct {
	BaseService
	store portsrepo.Store
}

// NewAccountService creates an account service over store.
func NewAccountService(store portsrepo.Store) portssvc.AccountSvcFacade {
	return &accountService{store: store}
}

func (s *accountService) CreateInstitutionAccount(ctx context.Context, req dto.CreateInstitutionAccountRequest) (*domain.Account, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.createAccount(ctx, domain.Account{
		CurrencyCode: req.CurrencyCode,
		Details: domain.InstitutionAccount{
			Title:            req.Title,
			NumberSuffix:     req.NumberSuffix,
			InstitutionTitle: req.InstitutionTitle,
			MinimumValue:     req.MinimumValue,
		},
	})
}

func (s *accountService) CreatePersonalAccount(ctx context.Context, req dto.CreatePersonalAccountRequest) (*domain.Account, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.createAccount(ctx, domain.Account{
		CurrencyCode: req.CurrencyCode,
		Details:      domain.PersonalAccount{Holder: req.Holder},
	})
}

func (s *accountService) createAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.CurrencyRepo.FindCurrencyByCode(ctx, account.CurrencyCode); err != nil {
			return fmt.Errorf("currency %s: %w", account.CurrencyCode, err)
		}
		id, err := repos.AccountRepo.SaveAccount(ctx, account)
		if err != nil {
			return err
		}
		account.ID = id
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account",
			slog.String("currency_code", account.CurrencyCode),
			slog.String("type", string(account.Type())))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	s.LogInfo(ctx, "Account created", slog.Int64("account_id", account.ID), slog.String("type", string(account.Type())))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.store.Repositories().AccountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) ListAccountsByCurrency(ctx context.Context, currencyCode string) ([]domain.Account, error) {
	accounts, err := s.store.Repositories().AccountRepo.ListAccountsByCurrency(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for %s: %w", currencyCode, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var updated *domain.Account
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		account, err := repos.AccountRepo.FindAccountByID(ctx, accountID)
		if err != nil {
			return err
		}
		if err := applyAccountUpdate(account, req); err != nil {
			return err
		}
		if err := repos.AccountRepo.UpdateAccount(ctx, *account); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to update account %d: %w", accountID, err)
	}
	return updated, nil
}

// applyAccountUpdate copies the requested fields onto the subtype. Fields that belong to
// another subtype are rejected.
func applyAccountUpdate(account *domain.Account, req dto.UpdateAccountRequest) error {
	institutionFields := req.Title != nil || req.NumberSuffix != nil || req.InstitutionTitle != nil || req.MinimumValue != nil
	switch d := account.Details.(type) {
	case domain.InstitutionAccount:
		if req.Holder != nil {
			return fmt.Errorf("%w: holder does not apply to an institution account", apperrors.ErrValidation)
		}
		if req.Title != nil {
			d.Title = *req.Title
		}
		if req.NumberSuffix != nil {
			d.NumberSuffix = *req.NumberSuffix
		}
		if req.InstitutionTitle != nil {
			d.InstitutionTitle = *req.InstitutionTitle
		}
		if req.MinimumValue != nil {
			d.MinimumValue = *req.MinimumValue
		}
		account.Details = d
	case domain.PersonalAccount:
		if institutionFields {
			return fmt.Errorf("%w: institution fields do not apply to a personal account", apperrors.ErrValidation)
		}
		if req.Holder != nil {
			d.Holder = *req.Holder
		}
		account.Details = d
	default:
		if institutionFields || req.Holder != nil {
			return fmt.Errorf("%w: account %d has no subtype fields", apperrors.ErrValidation, account.ID)
		}
	}
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := s.store.Repositories().AccountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return nil
}

func (s *accountService) ListTransactions(ctx context.Context, accountID int64, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := validateRequest(params); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	after, err := pagination.DecodeToken(params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	repos := s.store.Repositories()
	if _, err := repos.AccountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to list transactions of account %d: %w", accountID, err)
	}
	// One extra row tells whether another page exists.
	txns, err := repos.TransactionRepo.ListTransactionsByAccount(ctx, accountID, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions of account %d: %w", accountID, err)
	}

	resp := &dto.ListTransactionsResponse{Transactions: txns}
	if len(txns) > limit {
		resp.Transactions = txns[:limit]
		last := resp.Transactions[limit-1]
		token := pagination.EncodeCursor(domain.TransactionCursor{TransactionDate: last.TransactionDate, ID: last.ID})
		resp.NextToken = &token
	}
	if resp.Transactions == nil {
		resp.Transactions = []domain.AccountTransaction{}
	}
	return resp, nil
}
