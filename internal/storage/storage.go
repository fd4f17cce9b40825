// Package storage persists store snapshots between runs. Two backends exist:
// a directory of JSON files and a SQLite database. Both save and load a
// complete store.Snapshot; neither is consulted while the process runs.
package storage

import (
	"context"
	"fmt"

	"github.com/denisok6893-rgb/real-estate-manager/internal/store"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Persister interface {
	Load(ctx context.Context) (store.Snapshot, error)
	Save(ctx context.Context, snap store.Snapshot) error
	Close() error
}

// Open returns the persister for backend. dataDir is used by the JSON backend,
// sqlitePath by the SQLite one.
func Open(backend, dataDir, sqlitePath string) (Persister, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONDir(dataDir), nil
	case BackendSQLite:
		s, err := OpenSQLite(sqlitePath)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureSchema(context.Background()); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// LoadInto restores the persisted snapshot into st.
func LoadInto(ctx context.Context, p Persister, st *store.Store) error {
	snap, err := p.Load(ctx)
	if err != nil {
		return err
	}
	if err := st.Restore(snap); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	return nil
}
