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
	"github.com/gabriel-vasile/mimetype"
)

const (
	mimeJPEG = "image/jpeg"
	mimePDF  = "application/pdf"
)

type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepositoryFacade
}

// NewReceiptService creates a receipt service backed by repo.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade) portssvc.ReceiptSvcFacade {
	return &receiptService{receiptRepo: receiptRepo}
}

func (s *receiptService) AttachReceipt(ctx context.Context, req dto.AttachReceiptRequest) (*domain.Receipt, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkPayload("image_jpeg", req.ImageJPEG, mimeJPEG); err != nil {
		return nil, err
	}
	if err := checkPayload("image_pdf", req.ImagePDF, mimePDF); err != nil {
		return nil, err
	}
	receipt := domain.Receipt{
		TransactionID: req.TransactionID,
		ImageJPEG:     req.ImageJPEG,
		ImagePDF:      req.ImagePDF,
		Notes:         req.Notes,
	}
	id, err := s.receiptRepo.SaveReceipt(ctx, receipt)
	if err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.Int64("transaction_id", req.TransactionID))
		return nil, fmt.Errorf("failed to attach receipt: %w", err)
	}
	receipt.ID = id
	s.LogInfo(ctx, "Receipt attached",
		slog.Int64("receipt_id", id),
		slog.Int("jpeg_bytes", len(req.ImageJPEG)),
		slog.Int("pdf_bytes", len(req.ImagePDF)))
	return &receipt, nil
}

// checkPayload sniffs a non-empty payload and requires it to be of type want.
func checkPayload(column string, payload []byte, want string) error {
	if len(payload) == 0 {
		return nil
	}
	if got := mimetype.Detect(payload); !got.Is(want) {
		return fmt.Errorf("%w: %s holds %s, expected %s", apperrors.ErrValidation, column, got.String(), want)
	}
	return nil
}

func (s *receiptService) GetReceipt(ctx context.Context, receiptID int64) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %d: %w", receiptID, err)
	}
	return receipt, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, transactionID int64) ([]domain.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceiptsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts of transaction %d: %w", transactionID, err)
	}
	if receipts == nil {
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, receiptID int64) error {
	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID); err != nil {
		s.LogError(ctx, err, "Failed to delete receipt", slog.Int64("receipt_id", receiptID))
		return fmt.Errorf("failed to delete receipt %d: %w", receiptID, err)
	}
	return nil
}
