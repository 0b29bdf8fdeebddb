package migrator

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

type Migrator struct {
	db *sql.DB
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

func (m *Migrator) Up() error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrator.Up: %w", err)
	}
	if err := goose.Up(m.db, migrationsDir); err != nil {
		return fmt.Errorf("migrator.Up: %w", err)
	}
	return nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
