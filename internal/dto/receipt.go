package dto

// AttachReceiptRequest carries the scanned evidence for a transaction. Either payload
// may be omitted.
type AttachReceiptRequest struct {
	TransactionID int64  `json:"transactionID" binding:"required"`
	ImageJPEG     []byte `json:"imageJPEG"`
	ImagePDF      []byte `json:"imagePDF"`
	Notes         string `json:"notes"`
}
