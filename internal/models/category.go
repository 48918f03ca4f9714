package models

import "database/sql"

// Category is a row of either self-referencing category table
// (transaction_categories or budget_categories); both share this shape.
type Category struct {
	ID       int64          `db:"id"`
	Title    sql.NullString `db:"title"`
	ParentID sql.NullInt64  `db:"parent_id"`
}

// TransactionCategorization is a row of the transaction_categorizations table.
type TransactionCategorization struct {
	TransactionID int64          `db:"transaction_id"`
	CategoryID    int64          `db:"category_id"`
	Amount        int64          `db:"amount"`
	Notes         sql.NullString `db:"notes"`
}
