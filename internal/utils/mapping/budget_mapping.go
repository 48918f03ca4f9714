package mapping

import (
	"github.com/SscSPs/nemo/internal/core/domain"
	"github.com/SscSPs/nemo/internal/models"
)

func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		ID:           d.ID,
		Title:        NullString(d.Title),
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		CurrencyCode: d.CurrencyCode,
	}
}

func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		ID:           m.ID,
		Title:        m.Title.String,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		CurrencyCode: m.CurrencyCode,
	}
}

func ToModelBudgetItem(d domain.BudgetItem) models.BudgetItem {
	return models.BudgetItem{
		ID:         d.ID,
		BudgetID:   d.BudgetID,
		CategoryID: d.CategoryID,
		Title:      NullString(d.Title),
		Notes:      NullString(d.Notes),
		StartDate:  NullTime(d.StartDate),
		EndDate:    NullTime(d.EndDate),
		Amount:     d.Amount,
	}
}

func ToDomainBudgetItem(m models.BudgetItem) domain.BudgetItem {
	return domain.BudgetItem{
		ID:         m.ID,
		BudgetID:   m.BudgetID,
		CategoryID: m.CategoryID,
		Title:      m.Title.String,
		Notes:      m.Notes.String,
		StartDate:  TimePtr(m.StartDate),
		EndDate:    TimePtr(m.EndDate),
		Amount:     m.Amount,
	}
}
