package models

import "database/sql"

// Currency is a row of the currencies table.
type Currency struct {
	ISO4217Code   string         `db:"iso4217_code"`
	Title         sql.NullString `db:"title"`
	Symbol        sql.NullString `db:"symbol"`
	LongSymbol    sql.NullString `db:"long_symbol"`
	DisplayFactor int32          `db:"display_factor"`
}
