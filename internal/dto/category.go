package dto

// CreateCategoryRequest defines a node in either category tree.
type CreateCategoryRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	ParentID *int64 `json:"parentID"`
}
