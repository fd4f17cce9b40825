package matching

import (
	"fmt"
	"testing"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

func buyer(t *testing.T, id string, budget float64, prefs map[string]any) domain.Client {
	t.Helper()
	p, err := domain.ParsePreferences(prefs)
	if err != nil {
		t.Fatalf("ParsePreferences: %v", err)
	}
	return domain.Client{ID: id, FirstName: "John", LastName: "Doe", Type: domain.ClientBuyer, Budget: budget, Preferences: p}
}

func listing(id, city string, typ domain.PropertyType, status domain.PropertyStatus, price float64, beds int) domain.Property {
	return domain.Property{ID: id, Address: id + " St", City: city, Type: typ, Status: status, Price: price, Bedrooms: beds}
}

func TestScoreExample(t *testing.T) {
	e := NewEngine(DefaultWeights())
	c := buyer(t, "CLI0001", 800000, map[string]any{"property_type": "Residential", "bedrooms": 3, "city": "New York"})
	p := listing("PROP0001", "New York", domain.TypeResidential, domain.StatusForSale, 750000, 3)

	got := e.ScoreProperties(c, []domain.Property{p})
	if len(got) != 1 {
		t.Fatalf("results=%d want=1", len(got))
	}
	if got[0].Score != 75 {
		t.Fatalf("score=%d want=75", got[0].Score)
	}
	if len(got[0].Reasons) != 3 {
		t.Fatalf("reasons=%d want=3", len(got[0].Reasons))
	}
	if got[0].Reasons[0].Type != "property_type" || got[0].Reasons[0].Impact != 30 {
		t.Fatalf("first reason=%+v", got[0].Reasons[0])
	}
}

func TestAffordabilityGate(t *testing.T) {
	e := NewEngine(DefaultWeights())
	c := buyer(t, "CLI0001", 800000, map[string]any{
		"property_type": "Residential", "bedrooms": 1, "city": "york", "max_price": 5000000,
	})

	atGate := listing("PROP0001", "New York", domain.TypeResidential, domain.StatusForSale, 880000, 3)
	overGate := listing("PROP0002", "New York", domain.TypeResidential, domain.StatusForSale, 880001, 3)

	got := e.ScoreProperties(c, []domain.Property{atGate, overGate})
	if len(got) != 1 || got[0].Property.ID != "PROP0001" {
		t.Fatalf("got=%v", got)
	}
	if got[0].Score != 100 {
		t.Fatalf("score=%d want=100", got[0].Score)
	}
}

func TestAvailabilityAndThreshold(t *testing.T) {
	e := NewEngine(DefaultWeights())
	c := buyer(t, "CLI0001", 1000000, map[string]any{"property_type": "Residential", "bedrooms": 3, "city": "Austin"})

	props := []domain.Property{
		listing("PROP0001", "Austin", domain.TypeResidential, domain.StatusSold, 100, 3),
		listing("PROP0002", "Austin", domain.TypeResidential, domain.StatusForRent, 100, 3),
		listing("PROP0003", "Austin", domain.TypeResidential, domain.StatusPending, 100, 3),
		// 30 points only: below threshold.
		listing("PROP0004", "Dallas", domain.TypeResidential, domain.StatusForSale, 100, 1),
		// 25 + 20 = 45: accepted.
		listing("PROP0005", "Austin", domain.TypeCommercial, domain.StatusForSale, 100, 5),
	}

	got := e.ScoreProperties(c, props)
	if len(got) != 2 {
		t.Fatalf("results=%d want=2: %v", len(got), got)
	}
	if got[0].Property.ID != "PROP0003" || got[0].Score != 75 {
		t.Fatalf("first=%s/%d", got[0].Property.ID, got[0].Score)
	}
	if got[1].Property.ID != "PROP0005" || got[1].Score != 45 {
		t.Fatalf("second=%s/%d", got[1].Property.ID, got[1].Score)
	}
}

func TestTopFiveStableOrder(t *testing.T) {
	e := NewEngine(DefaultWeights())
	c := buyer(t, "CLI0001", 1000000, map[string]any{"property_type": "Residential", "city": "Boston", "max_price": 500000})

	var props []domain.Property
	for i := 1; i <= 8; i++ {
		price := 400000.0
		if i%2 == 0 {
			price = 600000 // loses the max_price points
		}
		props = append(props, listing(fmt.Sprintf("PROP%04d", i), "Boston", domain.TypeResidential, domain.StatusForSale, price, 2))
	}

	got := e.ScoreProperties(c, props)
	if len(got) != 5 {
		t.Fatalf("results=%d want=5", len(got))
	}
	want := []string{"PROP0001", "PROP0003", "PROP0005", "PROP0007", "PROP0002"}
	for i, r := range got {
		if r.Property.ID != want[i] {
			t.Fatalf("position %d: got=%s want=%s", i, r.Property.ID, want[i])
		}
		if i > 0 && r.Score > got[i-1].Score {
			t.Fatalf("scores increase at %d", i)
		}
	}
}

func TestMatchClients(t *testing.T) {
	e := NewEngine(DefaultWeights())
	clients := []domain.Client{
		buyer(t, "CLI0001", 800000, map[string]any{"property_type": "Residential", "bedrooms": 3, "city": "New York"}),
		{ID: "CLI0002", FirstName: "Sam", LastName: "Seller", Type: domain.ClientSeller, Budget: 800000},
		buyer(t, "CLI0003", 100, map[string]any{"city": "New York"}),
	}
	props := []domain.Property{listing("PROP0001", "New York", domain.TypeResidential, domain.StatusForSale, 750000, 3)}

	m := e.MatchClients(clients, props)
	if _, ok := m["CLI0002"]; ok {
		t.Fatalf("non-buyer present in matches")
	}
	if len(m["CLI0001"]) != 1 {
		t.Fatalf("CLI0001 matches=%d want=1", len(m["CLI0001"]))
	}
	res, ok := m["CLI0003"]
	if !ok || len(res) != 0 {
		t.Fatalf("CLI0003 should be present with no matches, got %v (present=%v)", res, ok)
	}

	empty := e.MatchClients(clients, nil)
	if len(empty) != 2 || len(empty["CLI0001"]) != 0 {
		t.Fatalf("empty property set: %v", empty)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
	bad := []func(*Weights){
		func(w *Weights) { w.City = -1 },
		func(w *Weights) { w.Threshold = 101 },
		func(w *Weights) { w.BudgetSlack = 0.9 },
		func(w *Weights) { w.Limit = 0 },
	}
	for i, mutate := range bad {
		w := DefaultWeights()
		mutate(&w)
		if err := w.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
