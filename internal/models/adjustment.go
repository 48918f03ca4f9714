package models

import "database/sql"

// TransactionAdjustment is a row of transaction_adjustments joined with both subtype tables.
type TransactionAdjustment struct {
	ID                       int64          `db:"id"`
	SourceTransactionID      int64          `db:"source_transaction_id"`
	DestinationTransactionID int64          `db:"destination_transaction_id"`
	Title                    sql.NullString `db:"title"`
	Notes                    sql.NullString `db:"notes"`
	Type                     string         `db:"type"`

	HasAccountTransaction bool          `db:"has_account_transaction"`
	Amount                sql.NullInt64 `db:"amount"`

	HasCurrencyConversion bool          `db:"has_currency_conversion"`
	SourceAmount          sql.NullInt64 `db:"source_amount"`
	DestinationAmount     sql.NullInt64 `db:"destination_amount"`
}
