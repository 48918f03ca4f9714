package domain

// TransactionCategory is a node in the transaction category tree. Root categories
// have a nil ParentID.
type TransactionCategory struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ParentID *int64 `json:"parentID,omitempty"` // Nullable FK -> transaction_categories.id
}

func (c TransactionCategory) NodeID() int64        { return c.ID }
func (c TransactionCategory) ParentNodeID() *int64 { return c.ParentID }

// BudgetCategory is a node in the budget category tree.
type BudgetCategory struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ParentID *int64 `json:"parentID,omitempty"` // Nullable FK -> budget_categories.id
}

func (c BudgetCategory) NodeID() int64        { return c.ID }
func (c BudgetCategory) ParentNodeID() *int64 { return c.ParentID }
