package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/store"
)

// SQLiteStore keeps each record as a JSON document keyed by its identifier.
// Properties also carry city and price columns for ad-hoc queries.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS properties (
  id TEXT PRIMARY KEY,
  city TEXT NOT NULL,
  price REAL NOT NULL,
  record_json TEXT NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city);`,
		`CREATE INDEX IF NOT EXISTS idx_properties_price ON properties(price);`,
		`CREATE TABLE IF NOT EXISTS clients (
  id TEXT PRIMARY KEY,
  record_json TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS agents (
  id TEXT PRIMARY KEY,
  record_json TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS transactions (
  id TEXT PRIMARY KEY,
  record_json TEXT NOT NULL
);`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Save replaces the database contents with snap in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, snap store.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"properties", "clients", "agents", "transactions"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO properties (id, city, price, record_json)
VALUES (?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range snap.Properties {
		doc, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal property %s: %w", p.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, p.ID, p.City, p.Price, string(doc)); err != nil {
			return fmt.Errorf("insert property %s: %w", p.ID, err)
		}
	}

	if err := insertDocs(ctx, tx, "clients", snap.Clients, func(c domain.Client) string { return c.ID }); err != nil {
		return err
	}
	if err := insertDocs(ctx, tx, "agents", snap.Agents, func(a domain.Agent) string { return a.ID }); err != nil {
		return err
	}
	if err := insertDocs(ctx, tx, "transactions", snap.Transactions, func(t domain.Transaction) string { return t.ID }); err != nil {
		return err
	}
	return tx.Commit()
}

// Load reads every table back in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot
	var err error
	if snap.Properties, err = selectDocs[domain.Property](ctx, s.db, "properties"); err != nil {
		return store.Snapshot{}, err
	}
	if snap.Clients, err = selectDocs[domain.Client](ctx, s.db, "clients"); err != nil {
		return store.Snapshot{}, err
	}
	if snap.Agents, err = selectDocs[domain.Agent](ctx, s.db, "agents"); err != nil {
		return store.Snapshot{}, err
	}
	if snap.Transactions, err = selectDocs[domain.Transaction](ctx, s.db, "transactions"); err != nil {
		return store.Snapshot{}, err
	}
	return snap, nil
}

func insertDocs[T any](ctx context.Context, tx *sql.Tx, table string, items []T, id func(T) string) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+table+` (id, record_json) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		doc, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", table, id(it), err)
		}
		if _, err := stmt.ExecContext(ctx, id(it), string(doc)); err != nil {
			return fmt.Errorf("insert %s %s: %w", table, id(it), err)
		}
	}
	return nil
}

func selectDocs[T any](ctx context.Context, db *sql.DB, table string) ([]T, error) {
	rows, err := db.QueryContext(ctx, `SELECT record_json FROM `+table+` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			return nil, fmt.Errorf("unmarshal %s row: %w", table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
