package domain

// Receipt stores the scanned evidence for a transaction. Both payloads are opaque and
// either may be nil.
type Receipt struct {
	ID            int64  `json:"id"`
	TransactionID int64  `json:"transactionID"` // FK -> account_transactions.id
	ImageJPEG     []byte `json:"imageJPEG,omitempty"`
	ImagePDF      []byte `json:"imagePDF,omitempty"`
	Notes         string `json:"notes"`
}
