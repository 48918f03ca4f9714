package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a currency service backed by repo.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	currency := domain.Currency{
		Code:          req.CurrencyCode,
		Title:         req.Title,
		Symbol:        req.Symbol,
		LongSymbol:    req.LongSymbol,
		DisplayFactor: req.DisplayFactor,
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}
	s.LogInfo(ctx, "Currency created", slog.String("currency_code", currency.Code))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency %s for update: %w", currencyCode, err)
	}
	if req.Title != nil {
		currency.Title = *req.Title
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.LongSymbol != nil {
		currency.LongSymbol = *req.LongSymbol
	}
	if req.DisplayFactor != nil {
		currency.DisplayFactor = *req.DisplayFactor
	}
	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency_code", currencyCode))
		return nil, fmt.Errorf("failed to update currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, currencyCode string) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyCode); err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.String("currency_code", currencyCode))
		return fmt.Errorf("failed to delete currency %s: %w", currencyCode, err)
	}
	return nil
}
