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
)

type adjustmentService struct {
	BaseService
	store portsrepo.Store
}

// NewAdjustmentService creates an adjustment service over store.
func NewAdjustmentService(store portsrepo.Store) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{store: store}
}

func (s *adjustmentService) LinkTransactions(ctx context.Context, req dto.LinkTransactionsRequest) (*domain.TransactionAdjustment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	adj := domain.TransactionAdjustment{
		SourceTransactionID:      req.SourceTransactionID,
		DestinationTransactionID: req.DestinationTransactionID,
		Title:                    req.Title,
		Notes:                    req.Notes,
		Details:                  domain.AccountTransactionAdjustment{Amount: req.Amount},
	}
	return s.link(ctx, adj, true)
}

func (s *adjustmentService) LinkConversion(ctx context.Context, req dto.LinkConversionRequest) (*domain.TransactionAdjustment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	adj := domain.TransactionAdjustment{
		SourceTransactionID:      req.SourceTransactionID,
		DestinationTransactionID: req.DestinationTransactionID,
		Title:                    req.Title,
		Notes:                    req.Notes,
		Details: domain.CurrencyConversionAdjustment{
			SourceAmount:      req.SourceAmount,
			DestinationAmount: req.DestinationAmount,
		},
	}
	return s.link(ctx, adj, false)
}

// link stores adj after checking that the currencies of its two legs are equal when
// sameCurrency is set and different otherwise.
func (s *adjustmentService) link(ctx context.Context, adj domain.TransactionAdjustment, sameCurrency bool) (*domain.TransactionAdjustment, error) {
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		from, err := legCurrency(ctx, repos, adj.SourceTransactionID)
		if err != nil {
			return fmt.Errorf("source leg: %w", err)
		}
		to, err := legCurrency(ctx, repos, adj.DestinationTransactionID)
		if err != nil {
			return fmt.Errorf("destination leg: %w", err)
		}
		if sameCurrency && from != to {
			return fmt.Errorf("%w: legs are in %s and %s, use a currency conversion", apperrors.ErrValidation, from, to)
		}
		if !sameCurrency && from == to {
			return fmt.Errorf("%w: both legs are in %s, use a same-currency adjustment", apperrors.ErrValidation, from)
		}
		id, err := repos.AdjustmentRepo.SaveAdjustment(ctx, adj)
		if err != nil {
			return err
		}
		adj.ID = id
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to link transactions",
			slog.Int64("source_transaction_id", adj.SourceTransactionID),
			slog.Int64("destination_transaction_id", adj.DestinationTransactionID),
			slog.String("type", string(adj.Type())))
		return nil, fmt.Errorf("failed to link transactions: %w", err)
	}
	s.LogInfo(ctx, "Adjustment recorded", slog.Int64("adjustment_id", adj.ID), slog.String("type", string(adj.Type())))
	return &adj, nil
}

// legCurrency resolves the currency a transaction is held in through its account.
func legCurrency(ctx context.Context, repos portsrepo.RepositoryProvider, transactionID int64) (string, error) {
	txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return "", err
	}
	account, err := repos.AccountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return "", err
	}
	return account.CurrencyCode, nil
}

func (s *adjustmentService) GetAdjustment(ctx context.Context, adjustmentID int64) (*domain.TransactionAdjustment, error) {
	adj, err := s.store.Repositories().AdjustmentRepo.FindAdjustmentByID(ctx, adjustmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get adjustment %d: %w", adjustmentID, err)
	}
	return adj, nil
}

func (s *adjustmentService) SourceTransaction(ctx context.Context, adjustmentID int64) (*domain.AccountTransaction, error) {
	return s.leg(ctx, adjustmentID, func(a *domain.TransactionAdjustment) int64 { return a.SourceTransactionID })
}

func (s *adjustmentService) DestinationTransaction(ctx context.Context, adjustmentID int64) (*domain.AccountTransaction, error) {
	return s.leg(ctx, adjustmentID, func(a *domain.TransactionAdjustment) int64 { return a.DestinationTransactionID })
}

func (s *adjustmentService) leg(ctx context.Context, adjustmentID int64, pick func(*domain.TransactionAdjustment) int64) (*domain.AccountTransaction, error) {
	var txn *domain.AccountTransaction
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		adj, err := repos.AdjustmentRepo.FindAdjustmentByID(ctx, adjustmentID)
		if err != nil {
			return err
		}
		txn, err = repos.TransactionRepo.FindTransactionByID(ctx, pick(adj))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve leg of adjustment %d: %w", adjustmentID, err)
	}
	return txn, nil
}

func (s *adjustmentService) AdjustmentsFrom(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error) {
	adjs, err := s.store.Repositories().AdjustmentRepo.FindAdjustmentsBySource(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments from %d: %w", transactionID, err)
	}
	if adjs == nil {
		return []domain.TransactionAdjustment{}, nil
	}
	return adjs, nil
}

func (s *adjustmentService) AdjustmentsInto(ctx context.Context, transactionID int64) ([]domain.TransactionAdjustment, error) {
	adjs, err := s.store.Repositories().AdjustmentRepo.FindAdjustmentsByDestination(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments into %d: %w", transactionID, err)
	}
	if adjs == nil {
		return []domain.TransactionAdjustment{}, nil
	}
	return adjs, nil
}

func (s *adjustmentService) DeleteAdjustment(ctx context.Context, adjustmentID int64) error {
	if err := s.store.Repositories().AdjustmentRepo.DeleteAdjustment(ctx, adjustmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete adjustment", slog.Int64("adjustment_id", adjustmentID))
		return fmt.Errorf("failed to delete adjustment %d: %w", adjustmentID, err)
	}
	return nil
}
