package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/core/services"
	"github.com/spf13/cobra"
)

var errLedgerDirty = errors.New("ledger has invariant violations")

func newVerifyCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check category trees and categorization sums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd, func(ctx context.Context, svc *services.Container) error {
				report, err := svc.Verifier.Verify(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if err := enc.Encode(report); err != nil {
						return err
					}
				} else {
					printReport(cmd.OutOrStdout(), report)
				}
				if !report.Clean() {
					return errLedgerDirty
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func printReport(w io.Writer, r *portssvc.LedgerReport) {
	if r.Clean() {
		fmt.Fprintln(w, "ledger ok")
		return
	}
	for _, issue := range r.TransactionCategoryIssues {
		fmt.Fprintf(w, "transaction categories: %s\n", issue)
	}
	for _, issue := range r.BudgetCategoryIssues {
		fmt.Fprintf(w, "budget categories: %s\n", issue)
	}
	for _, u := range r.Unbalanced {
		fmt.Fprintf(w, "transaction %d: categorized %s %s of %s %s\n",
			u.TransactionID, u.CategorizedDisplay, u.CurrencyCode, u.TransactionDisplay, u.CurrencyCode)
	}
}
