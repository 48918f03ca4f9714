package dto

// LinkTransactionsRequest links two transactions held in the same currency.
type LinkTransactionsRequest struct {
	SourceTransactionID      int64  `json:"sourceTransactionID" binding:"required"`
	DestinationTransactionID int64  `json:"destinationTransactionID" binding:"required,nefield=SourceTransactionID"`
	Title                    string `json:"title" binding:"omitempty,max=255"`
	Notes                    string `json:"notes"`
	Amount                   int64  `json:"amount"`
}

// LinkConversionRequest links two transactions held in different currencies. Each leg
// carries its own amount in its own currency.
type LinkConversionRequest struct {
	SourceTransactionID      int64  `json:"sourceTransactionID" binding:"required"`
	DestinationTransactionID int64  `json:"destinationTransactionID" binding:"required,nefield=SourceTransactionID"`
	Title                    string `json:"title" binding:"omitempty,max=255"`
	Notes                    string `json:"notes"`
	SourceAmount             int64  `json:"sourceAmount"`
	DestinationAmount        int64  `json:"destinationAmount"`
}
