package services

import (
	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
)

// Container holds all the services and manages their dependencies
type Container struct {
	Currency    portssvc.CurrencySvcFacade
	Account     portssvc.AccountSvcFacade
	Transaction portssvc.TransactionSvcFacade
	Category    portssvc.CategorySvcFacade
	Adjustment  portssvc.AdjustmentSvcFacade
	Receipt     portssvc.ReceiptSvcFacade
	Budget      portssvc.BudgetSvcFacade
	Verifier    portssvc.LedgerVerifierSvc
}

// NewContainer wires every service to store.
func NewContainer(store portsrepo.Store) *Container {
	repos := store.Repositories()
	return &Container{
		Currency:    NewCurrencyService(repos.CurrencyRepo),
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
		Category:    NewCategoryService(store),
		Adjustment:  NewAdjustmentService(store),
		Receipt:     NewReceiptService(repos.ReceiptRepo),
		Budget:      NewBudgetService(store),
		Verifier:    NewLedgerVerifier(store),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade    = (*currencyService)(nil)
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.CategorySvcFacade    = (*categoryService)(nil)
	_ portssvc.AdjustmentSvcFacade  = (*adjustmentService)(nil)
	_ portssvc.ReceiptSvcFacade     = (*receiptService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.LedgerVerifierSvc    = (*ledgerVerifier)(nil)

	_ portssvc.CategoryTreeSvc[domain.TransactionCategory] = (*categoryTreeService[domain.TransactionCategory])(nil)
	_ portssvc.CategoryTreeSvc[domain.BudgetCategory]      = (*categoryTreeService[domain.BudgetCategory])(nil)
)
