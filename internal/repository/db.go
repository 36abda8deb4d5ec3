package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed", "error", err)
	}

	return db, nil
}

// MySQLSettings stores settings in a MySQL table.
type MySQLSettings struct {
	db *sql.DB
}

// NewMySQLSettings creates the settings table if needed.
func NewMySQLSettings(ctx context.Context, db *sql.DB) (*MySQLSettings, error) {
	query := `CREATE TABLE IF NOT EXISTS settings (
		k VARCHAR(64) NOT NULL PRIMARY KEY,
		v MEDIUMBLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("creating settings table: %w", err)
	}
	return &MySQLSettings{db: db}, nil
}

// Get returns the value stored under key.
func (s *MySQLSettings) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT v FROM settings WHERE k = ?`

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put upserts value under key.
func (s *MySQLSettings) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO settings (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

// Close closes the connection pool.
func (s *MySQLSettings) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
