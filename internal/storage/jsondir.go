package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/store"
)

const (
	propertiesFile   = "properties.json"
	clientsFile      = "clients.json"
	agentsFile       = "agents.json"
	transactionsFile = "transactions.json"
)

// JSONDir keeps one JSON array file per collection inside Dir. Saves are
// serialized; each file is replaced through its own temp file.
type JSONDir struct {
	Dir string

	mu sync.Mutex
}

func NewJSONDir(dir string) *JSONDir { return &JSONDir{Dir: dir} }

// Load reads every collection file. A missing file is an empty collection.
func (j *JSONDir) Load(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot
	steps := []struct {
		name string
		dst  any
	}{
		{propertiesFile, &snap.Properties},
		{clientsFile, &snap.Clients},
		{agentsFile, &snap.Agents},
		{transactionsFile, &snap.Transactions},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return store.Snapshot{}, err
		}
		if err := readJSON(filepath.Join(j.Dir, s.name), s.dst); err != nil {
			return store.Snapshot{}, err
		}
	}
	return snap, nil
}

// Save writes every collection file, replacing each one atomically.
func (j *JSONDir) Save(ctx context.Context, snap store.Snapshot) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(j.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	steps := []struct {
		name string
		src  any
	}{
		{propertiesFile, nonNil(snap.Properties)},
		{clientsFile, nonNil(snap.Clients)},
		{agentsFile, nonNil(snap.Agents)},
		{transactionsFile, nonNil(snap.Transactions)},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(j.Dir, s.name), s.src); err != nil {
			return err
		}
	}
	return nil
}

func (j *JSONDir) Close() error { return nil }

// LoadPropertiesFromFile reads a JSON array of properties, as produced by the
// JSON backend, for bulk import.
func LoadPropertiesFromFile(path string) ([]domain.Property, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read properties file: %w", err)
	}

	var props []domain.Property
	if err := json.Unmarshal(b, &props); err != nil {
		return nil, fmt.Errorf("unmarshal properties: %w", err)
	}
	return props, nil
}

func readJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", filepath.Base(path), err)
	}
	tmp := f.Name()
	if _, err := f.Write(append(b, '\n')); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
