package mapping

import (
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
)

func ToModelTransactionCategory(d domain.TransactionCategory) models.Category {
	return models.Category{ID: d.ID, Title: NullString(d.Title), ParentID: NullInt64(d.ParentID)}
}

func ToDomainTransactionCategory(m models.Category) domain.TransactionCategory {
	return domain.TransactionCategory{ID: m.ID, Title: m.Title.String, ParentID: Int64Ptr(m.ParentID)}
}

func ToModelBudgetCategory(d domain.BudgetCategory) models.Category {
	return models.Category{ID: d.ID, Title: NullString(d.Title), ParentID: NullInt64(d.ParentID)}
}

func ToDomainBudgetCategory(m models.Category) domain.BudgetCategory {
	return domain.BudgetCategory{ID: m.ID, Title: m.Title.String, ParentID: Int64Ptr(m.ParentID)}
}

func ToModelCategorization(d domain.TransactionCategorization) models.TransactionCategorization {
	return models.TransactionCategorization{
		TransactionID: d.TransactionID,
		CategoryID:    d.CategoryID,
		Amount:        d.Amount,
		Notes:         NullString(d.Notes),
	}
}

func ToDomainCategorization(m models.TransactionCategorization) domain.TransactionCategorization {
	return domain.TransactionCategorization{
		TransactionID: m.TransactionID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		Notes:         m.Notes.String,
	}
}
