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

type transactionService struct {
	BaseService
	store portsrepo.Store
}

// NewTransactionService creates a transaction service over store.
func NewTransactionService(store portsrepo.Store) portssvc.TransactionSvcFacade {
	return &transactionService{store: store}
}

func (s *transactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.TransactionDetail, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	txn := domain.AccountTransaction{
		AccountID:              req.AccountID,
		Title:                  req.Title,
		TransactionDate:        req.TransactionDate,
		PostingDate:            req.PostingDate,
		Merchant:               req.Merchant,
		TransactionAmount:      req.TransactionAmount,
		GainOrLoss:             req.GainOrLoss,
		Instrument:             req.Instrument,
		TransactionDescription: req.TransactionDescription,
		AdjustmentDescription:  req.AdjustmentDescription,
	}

	var detail *domain.TransactionDetail
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		id, err := repos.TransactionRepo.SaveTransaction(ctx, txn)
		if err != nil {
			return err
		}
		txn.ID = id
		splits, err := saveSplit(ctx, repos, txn, req.Categorizations)
		if err != nil {
			return err
		}
		// Reload so the returned dates carry the stored precision.
		stored, err := repos.TransactionRepo.FindTransactionByID(ctx, id)
		if err != nil {
			return err
		}
		detail = &domain.TransactionDetail{
			Transaction:            *stored,
			Categorizations:        splits,
			Receipts:               []domain.Receipt{},
			SourceAdjustments:      []domain.TransactionAdjustment{},
			DestinationAdjustments: []domain.TransactionAdjustment{},
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction", slog.Int64("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", detail.Transaction.ID),
		slog.Int("categorizations", len(detail.Categorizations)))
	return detail, nil
}

// saveSplit checks that split balances txn and inserts it.
func saveSplit(ctx context.Context, repos portsrepo.RepositoryProvider, txn domain.AccountTransaction, split []dto.CategorizationRequest) ([]domain.TransactionCategorization, error) {
	cs := make([]domain.TransactionCategorization, 0, len(split))
	for _, c := range split {
		cs = append(cs, domain.TransactionCategorization{
			TransactionID: txn.ID,
			CategoryID:    c.CategoryID,
			Amount:        c.Amount,
			Notes:         c.Notes,
		})
	}
	if err := domain.CheckCategorizationBalance(txn, cs); err != nil {
		return nil, err
	}
	for _, c := range cs {
		if err := repos.CategorizationRepo.SaveCategorization(ctx, c); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID int64) (*domain.AccountTransaction, error) {
	txn, err := s.store.Repositories().TransactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) GetTransactionDetail(ctx context.Context, transactionID int64) (*domain.TransactionDetail, error) {
	var detail domain.TransactionDetail
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		detail.Transaction = *txn
		if detail.Categorizations, err = repos.CategorizationRepo.ListCategorizationsByTransaction(ctx, transactionID); err != nil {
			return err
		}
		if detail.Receipts, err = repos.ReceiptRepo.ListReceiptsByTransaction(ctx, transactionID); err != nil {
			return err
		}
		if detail.SourceAdjustments, err = repos.AdjustmentRepo.FindAdjustmentsBySource(ctx, transactionID); err != nil {
			return err
		}
		detail.DestinationAdjustments, err = repos.AdjustmentRepo.FindAdjustmentsByDestination(ctx, transactionID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %d: %w", transactionID, err)
	}
	return &detail, nil
}

func (s *transactionService) CheckBalance(ctx context.Context, transactionID int64) error {
	repos := s.store.Repositories()
	txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to check transaction %d: %w", transactionID, err)
	}
	cs, err := repos.CategorizationRepo.ListCategorizationsByTransaction(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to check transaction %d: %w", transactionID, err)
	}
	return domain.CheckCategorizationBalance(*txn, cs)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.AccountTransaction, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var updated *domain.AccountTransaction
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		applyTransactionUpdate(txn, req)
		if req.TransactionAmount != nil {
			cs, err := repos.CategorizationRepo.ListCategorizationsByTransaction(ctx, transactionID)
			if err != nil {
				return err
			}
			if err := domain.CheckCategorizationBalance(*txn, cs); err != nil {
				return err
			}
		}
		if err := repos.TransactionRepo.UpdateTransaction(ctx, *txn); err != nil {
			return err
		}
		updated, err = repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %d: %w", transactionID, err)
	}
	return updated, nil
}

func applyTransactionUpdate(txn *domain.AccountTransaction, req dto.UpdateTransactionRequest) {
	if req.Title != nil {
		txn.Title = *req.Title
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}
	if req.PostingDate != nil {
		txn.PostingDate = req.PostingDate
	}
	if req.Merchant != nil {
		txn.Merchant = *req.Merchant
	}
	if req.TransactionAmount != nil {
		txn.TransactionAmount = *req.TransactionAmount
	}
	if req.GainOrLoss != nil {
		txn.GainOrLoss = *req.GainOrLoss
	}
	if req.Instrument != nil {
		txn.Instrument = *req.Instrument
	}
	if req.TransactionDescription != nil {
		txn.TransactionDescription = *req.TransactionDescription
	}
	if req.AdjustmentDescription != nil {
		txn.AdjustmentDescription = *req.AdjustmentDescription
	}
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	if err := s.store.Repositories().TransactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return nil
}

func (s *transactionService) Categorize(ctx context.Context, transactionID int64, split []dto.CategorizationRequest) ([]domain.TransactionCategorization, error) {
	for i := range split {
		if err := validateRequest(split[i]); err != nil {
			return nil, err
		}
	}
	var saved []domain.TransactionCategorization
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		existing, err := repos.CategorizationRepo.ListCategorizationsByTransaction(ctx, transactionID)
		if err != nil {
			return err
		}
		for _, c := range existing {
			if err := repos.CategorizationRepo.DeleteCategorization(ctx, c.TransactionID, c.CategoryID); err != nil {
				return err
			}
		}
		saved, err = saveSplit(ctx, repos, *txn, split)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to categorize transaction", slog.Int64("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to categorize transaction %d: %w", transactionID, err)
	}
	return saved, nil
}

// RemoveCategorization drops one split. What remains must still balance, so in practice
// this removes a zero split or the last one.
func (s *transactionService) RemoveCategorization(ctx context.Context, transactionID, categoryID int64) error {
	err := s.store.Do(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := repos.CategorizationRepo.DeleteCategorization(ctx, transactionID, categoryID); err != nil {
			return err
		}
		txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		rest, err := repos.CategorizationRepo.ListCategorizationsByTransaction(ctx, transactionID)
		if err != nil {
			return err
		}
		return domain.CheckCategorizationBalance(*txn, rest)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to remove categorization",
			slog.Int64("transaction_id", transactionID),
			slog.Int64("category_id", categoryID))
		return fmt.Errorf("failed to remove categorization %d/%d: %w", transactionID, categoryID, err)
	}
	return nil
}
