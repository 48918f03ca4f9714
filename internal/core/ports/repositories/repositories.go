package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Inside a unit of work every field is bound to the same transaction.
type RepositoryProvider struct {
	CurrencyRepo       CurrencyRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	TransactionRepo    TransactionRepositoryFacade
	CategoryRepo       CategoryRepositoryFacade
	BudgetCategoryRepo BudgetCategoryRepositoryFacade
	CategorizationRepo CategorizationRepositoryFacade
	AdjustmentRepo     AdjustmentRepositoryFacade
	ReceiptRepo        ReceiptRepositoryFacade
	BudgetRepo         BudgetRepositoryFacade
	BudgetItemRepo     BudgetItemRepositoryFacade
}
