package mapping

import (
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
)

// Payloads pass through untouched; a nil slice stays nil so it is stored as NULL.

func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ID:            d.ID,
		TransactionID: d.TransactionID,
		ImageJPEG:     d.ImageJPEG,
		ImagePDF:      d.ImagePDF,
		Notes:         NullString(d.Notes),
	}
}

func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ImageJPEG:     m.ImageJPEG,
		ImagePDF:      m.ImagePDF,
		Notes:         m.Notes.String,
	}
}
