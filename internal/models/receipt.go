package models

import "database/sql"

// Receipt is a row of the receipts table. A nil byte slice is stored as NULL.
type Receipt struct {
	ID            int64          `db:"id"`
	TransactionID int64          `db:"transaction_id"`
	ImageJPEG     []byte         `db:"image_jpeg"`
	ImagePDF      []byte         `db:"image_pdf"`
	Notes         sql.NullString `db:"notes"`
}
