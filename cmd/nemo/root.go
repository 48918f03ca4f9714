package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/core/services"
	"github.com/SscSPs/nemo/internal/platform/config"
	"github.com/SscSPs/nemo/internal/platform/logging"
	"github.com/SscSPs/nemo/internal/repositories/database/pgsql"
	"github.com/SscSPs/nemo/pkg/database"
	"github.com/spf13/cobra"
)

// storeOpener returns a ready store and a func that releases it.
type storeOpener func(ctx context.Context, cfg *config.Config) (portsrepo.Store, func(), error)

// app is the state shared by all commands once the root pre-run has finished.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	openStore storeOpener
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "nemo",
		Short:        "Manage the nemo personal finance ledger",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			slog.SetDefault(a.logger)
			cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
			return nil
		},
	}
	root.AddCommand(newMigrateCmd(a), newCurrencyCmd(a), newVerifyCmd(a))
	return root
}

// withServices opens the store, optionally migrating first, and hands fn the services.
func (a *app) withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *services.Container) error) error {
	ctx := cmd.Context()
	if a.cfg.MigrateOnStart {
		if err := database.RunMigrations(ctx, a.cfg.DatabaseURL); err != nil {
			return err
		}
	}
	store, release, err := a.openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx, services.NewContainer(store))
}

func openPostgresStore(ctx context.Context, cfg *config.Config) (portsrepo.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, errors.New("PGSQL_URL is not set")
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:       cfg.DBMaxConns,
		ConnectTimeout: cfg.DBConnectTimeout,
		Ping:           cfg.EnableDBCheck,
	})
	if err != nil {
		return nil, nil, err
	}
	return pgsql.NewStore(pool), func() { database.ClosePgxPool(ctx, pool) }, nil
}
