package domain

import "time"

// Budget is a spending plan for a period in one currency.
type Budget struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	CurrencyCode string    `json:"currencyCode"` // FK -> currencies.iso4217_code
}

// BudgetItem is one planned amount within a budget, filed under a budget category.
// A nil start or end date means the item follows the budget's own window.
type BudgetItem struct {
	ID         int64      `json:"id"`
	BudgetID   int64      `json:"budgetID"`   // FK -> budgets.id
	CategoryID int64      `json:"categoryID"` // FK -> budget_categories.id
	Title      string     `json:"title"`
	Notes      string     `json:"notes"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Amount     int64      `json:"amount"`
}

// BudgetDetail is a budget with its line items.
type BudgetDetail struct {
	Budget Budget       `json:"budget"`
	Items  []BudgetItem `json:"items"`
}
