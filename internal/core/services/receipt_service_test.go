package services_test

import (
	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/dto"
)

var (
	jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
	pdfPayload  = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
)

func (s *LedgerServiceTestSuite) TestAttachReceipt_StoresPayloads() {
	s.currency("USD", 100)
	acc := s.bankAccount("USD")
	txn := s.record(acc.ID, day(2024, 5, 1), -2500).Transaction

	receipt, err := s.svc.Receipt.AttachReceipt(s.ctx, dto.AttachReceiptRequest{
		TransactionID: txn.ID,
		ImageJPEG:     jpegPayload,
		ImagePDF:      pdfPayload,
		Notes:         "paper copy",
	})
	s.Require().NoError(err)

	loaded, err := s.svc.Receipt.GetReceipt(s.ctx, receipt.ID)
	s.Require().NoError(err)
	s.Equal(jpegPayload, loaded.ImageJPEG)
	s.Equal(pdfPayload, loaded.ImagePDF)

	bare, err := s.svc.Receipt.AttachReceipt(s.ctx, dto.AttachReceiptRequest{TransactionID: txn.ID})
	s.Require().NoError(err)
	s.Nil(bare.ImageJPEG)

	list, err := s.svc.Receipt.ListReceipts(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Len(list, 2)

	s.NoError(s.svc.Receipt.DeleteReceipt(s.ctx, bare.ID))
	s.ErrorIs(s.svc.Receipt.DeleteReceipt(s.ctx, bare.ID), apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestAttachReceipt_RejectsWrongContent() {
	s.currency("USD", 100)
	acc := s.bankAccount("USD")
	txn := s.record(acc.ID, day(2024, 5, 1), -2500).Transaction

	_, err := s.svc.Receipt.AttachReceipt(s.ctx, dto.AttachReceiptRequest{TransactionID: txn.ID, ImageJPEG: pdfPayload})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Receipt.AttachReceipt(s.ctx, dto.AttachReceiptRequest{TransactionID: txn.ID, ImagePDF: jpegPayload})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Receipt.AttachReceipt(s.ctx, dto.AttachReceiptRequest{TransactionID: txn.ID + 10, ImageJPEG: jpegPayload})
	s.ErrorIs(err, apperrors.ErrForeignKey)
}
