package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrationDirection selects which way migrations are applied.
type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

// RunMigrations applies migrations found at migrationsPath (e.g. "file://migrations").
// For MigrateDown, steps > 0 rolls back that many migrations and steps <= 0 rolls back all.
// Having nothing to apply is not an error.
func RunMigrations(logger *slog.Logger, databaseURL, migrationsPath string, direction MigrationDirection, steps int) error {
	logger.Info("Running database migrations...", slog.String("direction", string(direction)), slog.String("path", migrationsPath))

	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	switch {
	case direction == MigrateUp:
		err = m.Up()
	case direction == MigrateDown && steps > 0:
		err = m.Steps(-steps)
	case direction == MigrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	noChange := errors.Is(err, migrate.ErrNoChange)
	if err != nil && !noChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Surface source and database errors from closing the migrate instance.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if noChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
