// Command nemo manages the nemo ledger database: schema migrations, currencies and
// consistency checks.
package main

import (
	"os"
)

func main() {
	a := &app{openStore: openPostgresStore}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
