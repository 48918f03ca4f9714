package main

import (
	"errors"
	"fmt"

	"github.com/SscSPs/nemo/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded schema migrations",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if a.cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL is not set")
			}
			return nil
		},
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RunMigrations(cmd.Context(), a.cfg.DatabaseURL)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations; all of them unless --steps is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RollbackMigrations(cmd.Context(), a.cfg.DatabaseURL, steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 0, "number of migrations to roll back (0 = all)")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := database.MigrationVersion(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			switch {
			case status.None:
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
			case status.Dirty:
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty)\n", status.Version)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "version %d\n", status.Version)
			}
			return nil
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}
