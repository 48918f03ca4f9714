package dto

import "time"

// CreateBudgetRequest defines a spending plan for a period.
type CreateBudgetRequest struct {
	Title        string    `json:"title" binding:"required,max=255"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
	CurrencyCode string    `json:"currencyCode" binding:"required,len=3"`
}

// AddBudgetItemRequest defines one planned amount. Amount is written in major units of
// the budget's currency, e.g. "150.00".
type AddBudgetItemRequest struct {
	BudgetID   int64      `json:"budgetID" binding:"required"`
	CategoryID int64      `json:"categoryID" binding:"required"`
	Title      string     `json:"title" binding:"omitempty,max=255"`
	Notes      string     `json:"notes"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	Amount     string     `json:"amount" binding:"required,numeric"`
}

// UpdateBudgetItemRequest defines the data allowed for updating a budget item.
type UpdateBudgetItemRequest struct {
	CategoryID *int64     `json:"categoryID"`
	Title      *string    `json:"title" binding:"omitempty,max=255"`
	Notes      *string    `json:"notes"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	Amount     *string    `json:"amount" binding:"omitempty,numeric"`
}
