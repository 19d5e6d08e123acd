// Package migrations applies the order store schema with golang-migrate.
// The SQL files are embedded so the binary carries its own schema.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed sql/*.sql
var files embed.FS

// Up applies every pending migration. An up-to-date schema is not an error.
//
// Example:
//
//	if err := migrations.Up(cfg.Database.DSN()); err != nil {
//	    return fmt.Errorf("migrate: %w", err)
//	}
func Up(dsn string) error {
	return run(dsn, func(m *migrate.Migrate) error { return m.Up() })
}

// Down reverts every applied migration.
func Down(dsn string) error {
	return run(dsn, func(m *migrate.Migrate) error { return m.Down() })
}

// Version reports the applied schema version. Version 0 means nothing is applied.
func Version(dsn string) (version uint, dirty bool, err error) {
	err = run(dsn, func(m *migrate.Migrate) error {
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			version, dirty = 0, false
			return nil
		}
		return err
	})
	return version, dirty, err
}

func run(dsn string, step func(m *migrate.Migrate) error) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	source, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	driver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to initialize migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migration instance: %w", err)
	}
	defer m.Close()

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
