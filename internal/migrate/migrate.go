// internal/migrate/migrate.go
package migrate

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Migrator applies the feed schema to Postgres. Migrations are ordered
// and idempotent; each applied version is recorded so reruns skip work
// already done.
type Migrator struct {
	DB *sql.DB
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db}
}

// Open connects to Postgres using a lib/pq DSN and verifies the
// connection before returning.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

type migration struct {
	version     int
	description string
	statements  string
}

var migrations = []migration{
	{
		version:     1,
		description: "extensions and collation",
		statements: `
		CREATE EXTENSION IF NOT EXISTS citext;
		CREATE EXTENSION IF NOT EXISTS pgcrypto;
		`,
	},
	{
		version:     2,
		description: "subunits and employees",
		statements: `
		CREATE TABLE IF NOT EXISTS subunits (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			address TEXT NOT NULL DEFAULT '',
			leader_id UUID NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			email CITEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email CITEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			subunit_id UUID NOT NULL REFERENCES subunits(id),
			fired BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_employees_subunit ON employees(subunit_id);
		`,
	},
	{
		version:     3,
		description: "posts and attachments",
		statements: `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'under_consideration',
			author_id UUID NOT NULL REFERENCES employees(id),
			approved_by_id UUID REFERENCES employees(id),
			created_on TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			published_on TIMESTAMPTZ,
			archived_on TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_posts_status ON posts(status);
		CREATE INDEX IF NOT EXISTS idx_posts_type_status ON posts(type, status);
		CREATE INDEX IF NOT EXISTS idx_posts_published_on ON posts(published_on);
		CREATE INDEX IF NOT EXISTS idx_posts_archived_on ON posts(archived_on);

		CREATE TABLE IF NOT EXISTS attachments (
			id UUID PRIMARY KEY,
			author_id UUID NOT NULL REFERENCES employees(id),
			post_id UUID REFERENCES posts(id),
			filename TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_attachments_post ON attachments(post_id);
		CREATE INDEX IF NOT EXISTS idx_attachments_author ON attachments(author_id);
		`,
	},
}

// InitializeSchema creates the bookkeeping table for applied versions.
func (m *Migrator) InitializeSchema() error {
	_, err := m.DB.Exec(`
	CREATE TABLE IF NOT EXISTS schema_versions (
		id SERIAL PRIMARY KEY,
		version INT NOT NULL,
		description TEXT,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	return err
}

// GetCurrentVersion reports the highest applied migration version.
func (m *Migrator) GetCurrentVersion() (int, error) {
	var version int
	err := m.DB.QueryRow(`
		SELECT COALESCE(MAX(version), 0) FROM schema_versions
	`).Scan(&version)
	return version, err
}

// ApplyAll runs every migration newer than the current version, each
// inside its own transaction.
func (m *Migrator) ApplyAll() (int, error) {
	if err := m.InitializeSchema(); err != nil {
		return 0, fmt.Errorf("initializing schema bookkeeping: %w", err)
	}

	current, err := m.GetCurrentVersion()
	if err != nil {
		return 0, fmt.Errorf("reading current version: %w", err)
	}

	applied := 0
	for _, mig := range migrations {
		if mig.version <= current {
			continue
		}
		if err := m.applyOne(mig); err != nil {
			return applied, fmt.Errorf("migration %d (%s): %w", mig.version, mig.description, err)
		}
		applied++
	}
	return applied, nil
}

func (m *Migrator) applyOne(mig migration) error {
	tx, err := m.DB.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if _, err := tx.Exec(mig.statements); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`
		INSERT INTO schema_versions (version, description) VALUES ($1, $2)
	`, mig.version, mig.description); err != nil {
		tx.Rollback()
		return fmt.Errorf("recording version: %w", err)
	}
	return tx.Commit()
}
