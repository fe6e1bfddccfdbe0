package database

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db    *sqlx.DB
	files fs.FS
}

// NewMigrationManager creates a migration manager over the embedded migrations
func NewMigrationManager(db *sqlx.DB) *MigrationManager {
	sub, _ := fs.Sub(migrationFiles, "migrations")
	return &MigrationManager{
		db:    db,
		files: sub,
	}
}

// InitMigrationsTable creates the migrations tracking table
func (m *MigrationManager) InitMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := m.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// GetAppliedMigrations returns a list of applied migration versions
func (m *MigrationManager) GetAppliedMigrations() (map[int]bool, error) {
	var versions []int
	if err := m.db.Select(&versions, "SELECT version FROM migrations ORDER BY version"); err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}

	applied := make(map[int]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	return applied, nil
}

// LoadMigrations loads migration files, sorted by version
func (m *MigrationManager) LoadMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		// Parse version from filename (e.g., "001_create_daily_counts.sql")
		var version int
		var name string
		if _, err := fmt.Sscanf(entry.Name(), "%d_%s", &version, &name); err != nil {
			log.Printf("Warning: skipping migration file with invalid name: %s", entry.Name())
			continue
		}

		content, err := fs.ReadFile(m.files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// ApplyMigration applies a single migration
func (m *MigrationManager) ApplyMigration(migration Migration) error {
	err := Transaction(m.db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(migration.SQL); err != nil {
			return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
		}

		record := tx.Rebind("INSERT INTO migrations (version, name) VALUES (?, ?)")
		if _, err := tx.Exec(record, migration.Version, migration.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Applied migration %d: %s", migration.Version, migration.Name)
	return nil
}

// RunMigrations runs all pending migrations
func (m *MigrationManager) RunMigrations() error {
	if err := m.InitMigrationsTable(); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		return err
	}

	migrations, err := m.LoadMigrations()
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}

		if err := m.ApplyMigration(migration); err != nil {
			return err
		}
	}

	log.Println("All migrations applied successfully")
	return nil
}
