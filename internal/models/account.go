package models

import "database/sql"

// Account is a row of the accounts table joined with both subtype tables.
// The Has* flags record whether the LEFT JOIN found a subtype row.
type Account struct {
	ID           int64  `db:"id"`
	CurrencyCode string `db:"currency_code"`
	Type         string `db:"type"`

	HasInstitution   bool           `db:"has_institution"`
	Title            sql.NullString `db:"title"`
	NumberSuffix     sql.NullString `db:"number_suffix"`
	InstitutionTitle sql.NullString `db:"institution_title"`
	MinimumValue     sql.NullInt64  `db:"minimum_value"`

	HasPersonal bool           `db:"has_personal"`
	Holder      sql.NullString `db:"holder"`
}
