package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vytor/kanaflash/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// SQLiteStore is a KeyValueStore backed by a single sqlite table.
type SQLiteStore struct {
	db  *sql.DB
	log *logger.Logger
}

// OpenSQLite opens (or creates) the database at path and applies migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	log := logger.Default().WithPrefix("storage")

	dsn := path
	if !strings.Contains(path, "?") {
		dsn = fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", path)
	}
	log.Info("opening database: %s", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	s := &SQLiteStore{db: sqlDB, log: log}
	if err := s.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("database ready")
	return s, nil
}

// NewSQLiteStore wraps an already migrated database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, log: logger.Default().WithPrefix("storage")}
}

// DB exposes the underlying handle for health checks.
func (s *SQLiteStore) DB() *sql.DB { return s.db }

func (s *SQLiteStore) applyMigrations(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		version := entry.Name()
		var v string
		err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_migrations WHERE version = ?`, version).Scan(&v)
		if err == nil {
			s.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		s.log.Info("applying migration: %s", version)
		if _, err := s.db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return err
		}
	}
	return nil
}

// MigrationSQL returns the embedded migration scripts in order. Used by test
// helpers that build an in-memory database.
func MigrationSQL() ([]string, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		b, err := migrationsFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, string(b))
	}
	return out, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("storage")

	query, args, err := sqlBuilder.Select("value").From("kv_store").Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("key not found: %s", key)
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("failed to get key %s: %v", key, err)
		return nil, err
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx).WithPrefix("storage")
	log.Debug("setting key %s (%d bytes)", key, len(value))

	query, args, err := sqlBuilder.Insert("kv_store").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to set key %s: %v", key, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query, args, err := sqlBuilder.Delete("kv_store").Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("storage").Error("failed to delete key %s: %v", key, err)
	}
	return err
}

func (s *SQLiteStore) Close() error {
	s.log.Debug("closing database connection")
	return s.db.Close()
}
