package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/nemo/internal/platform/logging"
	"github.com/SscSPs/nemo/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrationStatus is the schema version recorded by golang-migrate.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// None is set when no migration has ever been applied.
	None bool
}

// newMigrator opens a database/sql connection through the pgx stdlib driver and binds it
// to the migrations embedded in the binary. Closing the migrator closes the connection.
func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return nil, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return nil, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("could not read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}

func closeMigrator(logger *slog.Logger, m *migrate.Migrate) error {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
	}
	return errors.Join(sourceErr, dbErr)
}

// RunMigrations applies every pending up migration.
func RunMigrations(ctx context.Context, databaseURL string) (err error) {
	logger := logging.FromContext(ctx)
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeMigrator(logger, m)) }()

	logger.Info("Running database migrations...")
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No new migrations to apply.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully.")
	return nil
}

// RollbackMigrations reverts the given number of applied migrations. steps <= 0 reverts
// all of them.
func RollbackMigrations(ctx context.Context, databaseURL string, steps int) (err error) {
	logger := logging.FromContext(ctx)
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeMigrator(logger, m)) }()

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No migrations to roll back.")
			return nil
		}
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	logger.Info("Database migrations rolled back.", slog.Int("steps", steps))
	return nil
}

// MigrationVersion reports the currently applied schema version.
func MigrationVersion(ctx context.Context, databaseURL string) (status MigrationStatus, err error) {
	logger := logging.FromContext(ctx)
	m, err := newMigrator(databaseURL)
	if err != nil {
		return status, err
	}
	defer func() { err = errors.Join(err, closeMigrator(logger, m)) }()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{None: true}, nil
	}
	if err != nil {
		return status, fmt.Errorf("failed to read migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}
