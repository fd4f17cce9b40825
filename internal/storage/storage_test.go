package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/store"
)

func seeded(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	if err := store.SeedSample(st); err != nil {
		t.Fatalf("SeedSample: %v", err)
	}
	if _, err := st.AddAgent(domain.Agent{FirstName: "Ann", LastName: "Agent", CommissionRate: 0.03}); err != nil {
		t.Fatalf("AddAgent: %v", err)
	}
	if _, err := st.AddTransaction(domain.Transaction{
		PropertyID: "PROP0001",
		ClientID:   "CLI0001",
		AgentID:    "AGT0001",
		Type:       domain.TxnSale,
		Amount:     740000,
		Commission: 22200,
		Status:     domain.TxnPending,
	}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	return st
}

func roundTrip(t *testing.T, p Persister) {
	t.Helper()
	ctx := context.Background()
	want := seeded(t).Snapshot()

	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", got, want)
	}

	restored := store.New()
	if err := LoadInto(ctx, p, restored); err != nil {
		t.Fatalf("LoadInto: %v", err)
	}
	next := domain.NewListingTemplate(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	next.Address, next.City = "9 Pine Rd", "Boston"
	id, err := restored.AddProperty(next)
	if err != nil {
		t.Fatalf("AddProperty after restore: %v", err)
	}
	if id != "PROP0003" {
		t.Fatalf("id after restore=%s want=PROP0003", id)
	}
}

func TestJSONDirRoundTrip(t *testing.T) {
	roundTrip(t, NewJSONDir(filepath.Join(t.TempDir(), "data")))
}

func TestJSONDirMissingFilesAreEmpty(t *testing.T) {
	snap, err := NewJSONDir(t.TempDir()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Properties)+len(snap.Clients)+len(snap.Agents)+len(snap.Transactions) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestJSONDirRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, clientsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewJSONDir(dir).Load(context.Background()); err == nil {
		t.Fatalf("expected error for corrupt clients.json")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	p, err := Open(BackendSQLite, "", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()
	roundTrip(t, p)

	// Saving again replaces rather than appends.
	ctx := context.Background()
	if err := p.Save(ctx, seeded(t).Snapshot()); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	snap, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Properties) != 2 || len(snap.Transactions) != 1 {
		t.Fatalf("rows: properties=%d transactions=%d want=2,1", len(snap.Properties), len(snap.Transactions))
	}
}

func TestLoadPropertiesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")
	body := `[{"address":"1 Elm St","city":"Austin","property_type":"Land","status":"For Sale","price":120000}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	props, err := LoadPropertiesFromFile(path)
	if err != nil {
		t.Fatalf("LoadPropertiesFromFile: %v", err)
	}
	if len(props) != 1 || props[0].Type != domain.TypeLand || props[0].Status != domain.StatusForSale {
		t.Fatalf("props=%+v", props)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("postgres", "", ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestJSONDirConcurrentSaves(t *testing.T) {
	dir := t.TempDir()
	j := NewJSONDir(dir)
	snap := seeded(t).Snapshot()

	errs := make([]error, 20)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = j.Save(context.Background(), snap)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
	got, err := j.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Fatalf("got=%+v want=%+v", got, snap)
	}
}
