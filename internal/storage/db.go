// Package storage provides database access for the flight performance
// dataset. The local mode uses an embedded SQLite file; deployments with
// an existing flight_performance database connect over Postgres.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB wraps the database connection and provides access to repositories.
type DB struct {
	conn   *sql.DB
	driver string
}

// Config holds database configuration settings.
type Config struct {
	// Driver selects the backing store: "sqlite" or "postgres".
	Driver string

	// Path is the file path to the SQLite database.
	// Use ":memory:" for an in-memory database (useful for testing).
	// Ignored for Postgres.
	Path string

	// DSN is the Postgres connection string. Ignored for SQLite.
	DSN string

	// MaxOpenConns sets the maximum number of open connections.
	// Default: 25
	MaxOpenConns int

	// MaxIdleConns sets the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// ConnMaxLifetime sets how long a connection may be reused.
	// Default: 5 minutes
	ConnMaxLifetime time.Duration

	// BusyTimeout sets how long to wait when the SQLite database is
	// locked. Default: 5 seconds
	BusyTimeout time.Duration

	// AutoMigrate runs pending schema migrations on Open. Only
	// supported for SQLite; Postgres deployments are assumed to be
	// provisioned with the dataset already.
	AutoMigrate bool
}

// DefaultConfig returns a SQLite Config with sensible default values.
func DefaultConfig(path string) *Config {
	return &Config{
		Driver:          DriverSQLite,
		Path:            path,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		BusyTimeout:     5 * time.Second,
	}
}

// Open creates a new database connection with the given configuration.
func Open(config *Config) (*DB, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Driver {
	case DriverSQLite, "":
		return openSQLite(config)
	case DriverPostgres:
		return openPostgres(config)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

func openSQLite(config *Config) (*DB, error) {
	if config.Path != ":memory:" {
		dir := filepath.Dir(config.Path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	if config.AutoMigrate && config.Path != ":memory:" {
		if err := runMigrations(config.Path); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on",
		config.Path,
		config.BusyTimeout.Milliseconds(),
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return finishOpen(conn, config, DriverSQLite)
}

func openPostgres(config *Config) (*DB, error) {
	if config.DSN == "" {
		return nil, fmt.Errorf("postgres driver requires a DSN")
	}

	conn, err := sql.Open("pgx", config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return finishOpen(conn, config, DriverPostgres)
}

func finishOpen(conn *sql.DB, config *Config, driver string) (*DB, error) {
	conn.SetMaxOpenConns(config.MaxOpenConns)
	conn.SetMaxIdleConns(config.MaxIdleConns)
	conn.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := conn.Ping(); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to close database after ping error: %w (original error: %v)", closeErr, err)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn: conn, driver: driver}, nil
}

func runMigrations(path string) error {
	mgr, err := NewMigrationManager(path)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}

	if err := mgr.Up(); err != nil {
		if closeErr := mgr.Close(); closeErr != nil {
			return fmt.Errorf("failed to close migration manager after error: %w (original error: %v)", closeErr, err)
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return mgr.Close()
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Conn returns the underlying sql.DB connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Driver returns the driver name the connection was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Ping verifies the database connection is alive.
func (db *DB) Ping() error {
	return db.conn.Ping()
}
