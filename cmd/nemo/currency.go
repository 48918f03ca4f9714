package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/nemo/internal/core/services"
	"github.com/SscSPs/nemo/internal/dto"
	"github.com/spf13/cobra"
)

func newCurrencyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Manage currencies",
	}

	var req dto.CreateCurrencyRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd, func(ctx context.Context, svc *services.Container) error {
				c, err := svc.Currency.CreateCurrency(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", c.Code, c.Title)
				return nil
			})
		},
	}
	add.Flags().StringVar(&req.CurrencyCode, "code", "", "ISO-4217 code, e.g. USD")
	add.Flags().StringVar(&req.Title, "title", "", "display name")
	add.Flags().StringVar(&req.Symbol, "symbol", "", "one character symbol")
	add.Flags().StringVar(&req.LongSymbol, "long-symbol", "", "symbol of up to three characters")
	add.Flags().Int32Var(&req.DisplayFactor, "factor", 100, "minor units per major unit")
	_ = add.MarkFlagRequired("code")
	_ = add.MarkFlagRequired("title")

	list := &cobra.Command{
		Use:   "list",
		Short: "List currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd, func(ctx context.Context, svc *services.Container) error {
				currencies, err := svc.Currency.ListCurrencies(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CODE\tTITLE\tSYMBOL\tLONG\tFACTOR")
				for _, c := range currencies {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", c.Code, c.Title, c.Symbol, c.LongSymbol, c.DisplayFactor)
				}
				return w.Flush()
			})
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
