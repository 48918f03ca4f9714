package models

// Table names of the ledger schema.
const (
	CurrencyTable                     = "currencies"
	AccountTable                      = "accounts"
	InstitutionAccountTable           = "institution_accounts"
	PersonalAccountTable              = "personal_accounts"
	TransactionCategoryTable          = "transaction_categories"
	AccountTransactionTable           = "account_transactions"
	TransactionAdjustmentTable        = "transaction_adjustments"
	AccountTransactionAdjustmentTable = "account_transaction_adjustments"
	CurrencyConversionAdjustmentTable = "currency_conversion_adjustments"
	TransactionCategorizationTable    = "transaction_categorizations"
	ReceiptTable                      = "receipts"
	BudgetCategoryTable               = "budget_categories"
	BudgetTable                       = "budgets"
	BudgetItemTable                   = "budget_items"
)

// Column length limits declared by the schema.
const (
	CurrencyCodeLength    = 3
	SymbolMaxLength       = 1
	LongSymbolMaxLength   = 3
	NumberSuffixMaxLength = 4
	TitleMaxLength        = 255
)
