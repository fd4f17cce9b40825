package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/denisok6893-rgb/real-estate-manager/internal/config"
	"github.com/denisok6893-rgb/real-estate-manager/internal/matching"
	"github.com/denisok6893-rgb/real-estate-manager/internal/storage"
	"github.com/denisok6893-rgb/real-estate-manager/internal/store"
)

// app is the loaded state every command works against: config, the store
// restored from the configured backend, and the persister to write it back.
type app struct {
	cfg       *config.Config
	store     *store.Store
	persister storage.Persister
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	p, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DataDir, cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}
	st := store.New()
	if err := storage.LoadInto(ctx, p, st); err != nil {
		_ = p.Close()
		return nil, err
	}
	return &app{cfg: cfg, store: st, persister: p}, nil
}

func (a *app) engine() *matching.Engine { return matching.NewEngine(a.cfg.Matching) }

func (a *app) save(ctx context.Context) error {
	if err := a.persister.Save(ctx, a.store.Snapshot()); err != nil {
		return fmt.Errorf("saving data: %w", err)
	}
	return nil
}

func (a *app) Close() error { return a.persister.Close() }

var titler = cases.Title(language.English)

// enumInput normalizes user-typed enum text ("for sale") to its display form.
func enumInput(s string) string {
	return titler.String(strings.TrimSpace(s))
}

// parsePairs splits repeated key=value flags into a map.
func parsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		out[strings.TrimSpace(k)] = v
	}
	return out, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
