package models

import (
	"database/sql"
	"time"
)

// AccountTransaction is a row of the account_transactions table.
type AccountTransaction struct {
	ID                     int64          `db:"id"`
	AccountID              int64          `db:"account_id"`
	Title                  sql.NullString `db:"title"`
	TransactionDate        time.Time      `db:"transaction_date"`
	PostingDate            sql.NullTime   `db:"posting_date"`
	Merchant               sql.NullString `db:"merchant"`
	TransactionAmount      int64          `db:"transaction_amount"`
	GainOrLoss             int64          `db:"gain_or_loss"`
	Instrument             sql.NullString `db:"instrument"`
	TransactionDescription sql.NullString `db:"transaction_description"`
	AdjustmentDescription  sql.NullString `db:"adjustment_description"`
}
