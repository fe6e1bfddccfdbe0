package database

import (
	"fmt"
	"log"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	db   *sqlx.DB
	once sync.Once
)

// Config holds database configuration
type Config struct {
	Driver string // sqlite or postgres
	Path   string // sqlite file path or postgres DSN
}

// Open opens a connection and applies driver-specific settings
func Open(cfg Config) (*sqlx.DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := sqlx.Open(driver, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)

	if driver == DriverSQLite {
		// Enable WAL mode for better concurrency
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable WAL: %w", err)
		}
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// Init initializes the shared database connection and runs migrations
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		db, err = Open(cfg)
		if err != nil {
			return
		}

		if err = NewMigrationManager(db).RunMigrations(); err != nil {
			return
		}

		log.Printf("Database initialized successfully: %s (%s)", cfg.Path, db.DriverName())
	})

	return err
}

// GetDB returns the database instance
func GetDB() *sqlx.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Transaction executes a function within a database transaction
func Transaction(conn *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := conn.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
