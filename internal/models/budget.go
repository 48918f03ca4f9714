package models

import (
	"database/sql"
	"time"
)

// Budget is a row of the budgets table.
type Budget struct {
	ID           int64          `db:"id"`
	Title        sql.NullString `db:"title"`
	StartDate    time.Time      `db:"start_date"`
	EndDate      time.Time      `db:"end_date"`
	CurrencyCode string         `db:"currency_code"`
}

// BudgetItem is a row of the budget_items table.
type BudgetItem struct {
	ID         int64          `db:"id"`
	BudgetID   int64          `db:"budget_id"`
	CategoryID int64          `db:"category_id"`
	Title      sql.NullString `db:"title"`
	Notes      sql.NullString `db:"notes"`
	StartDate  sql.NullTime   `db:"start_date"`
	EndDate    sql.NullTime   `db:"end_date"`
	Amount     int64          `db:"amount"`
}
