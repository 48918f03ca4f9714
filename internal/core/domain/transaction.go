package domain

import "time"

// AccountTransaction is a single movement on an account. Amounts are signed minor units.
type AccountTransaction struct {
	ID                     int64      `json:"id"`
	AccountID              int64      `json:"accountID"` // FK -> accounts.id
	Title                  string     `json:"title"`
	TransactionDate        time.Time  `json:"transactionDate"`
	PostingDate            *time.Time `json:"postingDate,omitempty"` // nil while pending
	Merchant               string     `json:"merchant"`
	TransactionAmount      int64      `json:"transactionAmount"`
	GainOrLoss             int64      `json:"gainOrLoss"`
	Instrument             string     `json:"instrument"`
	TransactionDescription string     `json:"transactionDescription"`
	AdjustmentDescription  string     `json:"adjustmentDescription"`
}

// TransactionCursor marks a position in an account's transaction listing, which is
// ordered newest first by (transaction date, id).
type TransactionCursor struct {
	TransactionDate time.Time
	ID              int64
}

// Before reports whether txn sorts after the cursor in newest-first order.
func (c TransactionCursor) Before(txn AccountTransaction) bool {
	if txn.TransactionDate.Equal(c.TransactionDate) {
		return txn.ID < c.ID
	}
	return txn.TransactionDate.Before(c.TransactionDate)
}

// TransactionDetail is a transaction together with the rows that hang off it.
type TransactionDetail struct {
	Transaction            AccountTransaction          `json:"transaction"`
	Categorizations        []TransactionCategorization `json:"categorizations"`
	Receipts               []Receipt                   `json:"receipts"`
	SourceAdjustments      []TransactionAdjustment     `json:"sourceAdjustments"`
	DestinationAdjustments []TransactionAdjustment     `json:"destinationAdjustments"`
}
