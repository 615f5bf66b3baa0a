package database

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrationSet selects which service schema to apply.
type MigrationSet string

const (
	MigrationsProposals MigrationSet = "proposals"
	MigrationsHirings   MigrationSet = "hirings"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies every pending migration of set. Each set keeps its own
// version table so both services may share one database.
func RunMigrations(connString string, set MigrationSet) error {
	src, err := iofs.New(migrationsFS, "migrations/"+string(set))
	if err != nil {
		return fmt.Errorf("open migrations %s: %w", set, err)
	}

	dbURL, err := withMigrationsTable(connString, "schema_migrations_"+string(set))
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			log.Printf("[database][migrate] close failed set=%s err=%v", set, err)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Printf("[database][migrate] no change set=%s", set)
			return nil
		}
		return fmt.Errorf("migrate up %s: %w", set, err)
	}
	log.Printf("[database][migrate] applied set=%s", set)
	return nil
}

func withMigrationsTable(connString, table string) (string, error) {
	u, err := url.Parse(connString)
	if err != nil {
		return "", fmt.Errorf("invalid postgres url: %w", err)
	}
	q := u.Query()
	q.Set("x-migrations-table", table)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
