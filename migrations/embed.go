// Package migrations embeds the SQL files that define the ledger schema.
package migrations

import "embed"

// FS holds the golang-migrate up/down files, named <version>_<title>.<up|down>.sql.
//
//go:embed *.sql
var FS embed.FS
