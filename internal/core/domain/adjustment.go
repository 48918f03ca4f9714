package domain

// AdjustmentType is the polymorphic discriminator stored on every adjustment row.
type AdjustmentType string

const (
	AdjustmentTypeBase               AdjustmentType = "transaction_adjustment"
	AdjustmentTypeAccountTransaction AdjustmentType = "account_transaction_adjustment"
	AdjustmentTypeCurrencyConversion AdjustmentType = "currency_conversion_adjustment"
)

// Valid reports whether t is one of the known discriminator values.
func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentTypeBase, AdjustmentTypeAccountTransaction, AdjustmentTypeCurrencyConversion:
		return true
	}
	return false
}

// AdjustmentDetails is the subtype view of a TransactionAdjustment. It is implemented
// only by AccountTransactionAdjustment and CurrencyConversionAdjustment.
type AdjustmentDetails interface {
	AdjustmentType() AdjustmentType
	adjustmentDetails()
}

// AccountTransactionAdjustment links two transactions in the same currency.
type AccountTransactionAdjustment struct {
	Amount int64 `json:"amount"`
}

func (AccountTransactionAdjustment) AdjustmentType() AdjustmentType {
	return AdjustmentTypeAccountTransaction
}
func (AccountTransactionAdjustment) adjustmentDetails() {}

// CurrencyConversionAdjustment links two transactions in different currencies. The legs
// are independent because rates and fees make them differ.
type CurrencyConversionAdjustment struct {
	SourceAmount      int64 `json:"sourceAmount"`
	DestinationAmount int64 `json:"destinationAmount"`
}

func (CurrencyConversionAdjustment) AdjustmentType() AdjustmentType {
	return AdjustmentTypeCurrencyConversion
}
func (CurrencyConversionAdjustment) adjustmentDetails() {}

// TransactionAdjustment links a source transaction to a destination transaction.
// Details is nil for a bare base adjustment.
type TransactionAdjustment struct {
	ID                       int64             `json:"id"`
	SourceTransactionID      int64             `json:"sourceTransactionID"`      // FK -> account_transactions.id
	DestinationTransactionID int64             `json:"destinationTransactionID"` // FK -> account_transactions.id
	Title                    string            `json:"title"`
	Notes                    string            `json:"notes"`
	Details                  AdjustmentDetails `json:"details,omitempty"`
}

// Type returns the discriminator for the adjustment's subtype.
func (a TransactionAdjustment) Type() AdjustmentType {
	if a.Details == nil {
		return AdjustmentTypeBase
	}
	return a.Details.AdjustmentType()
}

// AccountTransaction returns the same-currency view if this is one.
func (a TransactionAdjustment) AccountTransaction() (AccountTransactionAdjustment, bool) {
	d, ok := a.Details.(AccountTransactionAdjustment)
	return d, ok
}

// CurrencyConversion returns the cross-currency view if this is one.
func (a TransactionAdjustment) CurrencyConversion() (CurrencyConversionAdjustment, bool) {
	d, ok := a.Details.(CurrencyConversionAdjustment)
	return d, ok
}
