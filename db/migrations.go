package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/db/types"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
	migrate "github.com/rubenv/sql-migrate"
)

// RunMigrations runs the migrations on the sqlite DB at the given path,
// creating the DB if it doesn't exist yet.
func RunMigrations(dbPath string, migrations []types.Migration) error {
	db, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer db.Close()
	return RunMigrationsDB(log.WithFields("module", "db"), db, migrations)
}

// RunMigrationsDB runs the migrations on an already opened DB.
func RunMigrationsDB(logger *log.Logger, db *sql.DB, migrations []types.Migration) error {
	source := &migrate.MemoryMigrationSource{}
	for _, m := range migrations {
		parsed, err := migrate.ParseMigration(m.ID, strings.NewReader(m.SQL))
		if err != nil {
			return fmt.Errorf("error parsing migration %s: %w", m.ID, err)
		}
		source.Migrations = append(source.Migrations, parsed)
	}

	nMigrations, err := migrate.Exec(db, "sqlite3", source, migrate.Up)
	if err != nil {
		return fmt.Errorf("error executing migration %w", err)
	}

	logger.Infof("successfully ran %d migrations", nMigrations)
	return nil
}
