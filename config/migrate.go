package config

import (
	"database/sql"
	"errors"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

// MustMigrate applies the migrations found under dir of source. Each service
// keeps its own version table so they can share one database.
func MustMigrate(db *sql.DB, source fs.FS, dir, table string) {
	if err := Migrate(db, source, dir, table); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}
}

func Migrate(db *sql.DB, source fs.FS, dir, table string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: table})
	if err != nil {
		return err
	}

	src, err := iofs.New(source, dir)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	logrus.WithField("table", table).Info("migrations applied")
	return nil
}
