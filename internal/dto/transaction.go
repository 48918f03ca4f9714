package dto

import "time"

// CategorizationRequest assigns part of a transaction's amount to a category.
type CategorizationRequest struct {
	CategoryID int64  `json:"categoryID" binding:"required"`
	Amount     int64  `json:"amount"`
	Notes      string `json:"notes"`
}

// RecordTransactionRequest defines a transaction together with its optional split.
// When Categorizations is not empty the amounts must add up to TransactionAmount.
type RecordTransactionRequest struct {
	AccountID              int64                   `json:"accountID" binding:"required"`
	Title                  string                  `json:"title" binding:"omitempty,max=255"`
	TransactionDate        time.Time               `json:"transactionDate" binding:"required"`
	PostingDate            *time.Time              `json:"postingDate"`
	Merchant               string                  `json:"merchant" binding:"omitempty,max=255"`
	TransactionAmount      int64                   `json:"transactionAmount"`
	GainOrLoss             int64                   `json:"gainOrLoss"`
	Instrument             string                  `json:"instrument" binding:"omitempty,max=255"`
	TransactionDescription string                  `json:"transactionDescription"`
	AdjustmentDescription  string                  `json:"adjustmentDescription"`
	Categorizations        []CategorizationRequest `json:"categorizations" binding:"dive"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	Title                  *string    `json:"title" binding:"omitempty,max=255"`
	TransactionDate        *time.Time `json:"transactionDate"`
	PostingDate            *time.Time `json:"postingDate"`
	Merchant               *string    `json:"merchant" binding:"omitempty,max=255"`
	TransactionAmount      *int64     `json:"transactionAmount"`
	GainOrLoss             *int64     `json:"gainOrLoss"`
	Instrument             *string    `json:"instrument" binding:"omitempty,max=255"`
	TransactionDescription *string    `json:"transactionDescription"`
	AdjustmentDescription  *string    `json:"adjustmentDescription"`
}
