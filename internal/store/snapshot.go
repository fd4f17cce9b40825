package store

import (
	"fmt"
	"strings"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

// Snapshot is the serialisable state of a Store, each collection in
// insertion order.
type Snapshot struct {
	Properties   []domain.Property    `json:"properties"`
	Clients      []domain.Client      `json:"clients"`
	Agents       []domain.Agent       `json:"agents"`
	Transactions []domain.Transaction `json:"transactions"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Properties:   s.properties.list(domain.Property.Clone),
		Clients:      s.clients.list(domain.Client.Clone),
		Agents:       s.agents.list(domain.Agent.Clone),
		Transactions: s.transactions.list(domain.Transaction.Clone),
	}
}

// Restore replaces the store contents with snap. Every record is validated and
// identifiers must be present and unique per collection; on error the store
// is left unchanged.
func (s *Store) Restore(snap Snapshot) error {
	properties := newCollection[domain.Property](domain.KindProperty)
	for _, p := range snap.Properties {
		if err := restoreOne(properties, p.ID, p.Clone(), p.Validate); err != nil {
			return err
		}
	}
	clients := newCollection[domain.Client](domain.KindClient)
	for _, c := range snap.Clients {
		if err := restoreOne(clients, c.ID, c.Clone(), c.Validate); err != nil {
			return err
		}
	}
	agents := newCollection[domain.Agent](domain.KindAgent)
	for _, a := range snap.Agents {
		if err := restoreOne(agents, a.ID, a.Clone(), a.Validate); err != nil {
			return err
		}
	}
	transactions := newCollection[domain.Transaction](domain.KindTransaction)
	for _, t := range snap.Transactions {
		if err := restoreOne(transactions, t.ID, t, t.Validate); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = properties
	s.clients = clients
	s.agents = agents
	s.transactions = transactions
	return nil
}

func restoreOne[T any](c *collection[T], id string, v T, validate func() error) error {
	if strings.TrimSpace(id) == "" {
		return &domain.ValidationError{Field: string(c.kind) + " id", Reason: "is required"}
	}
	if _, exists := c.items[id]; exists {
		return &domain.ValidationError{Field: string(c.kind) + " id", Value: id, Reason: "duplicate identifier"}
	}
	if err := validate(); err != nil {
		return fmt.Errorf("%s %s: %w", c.kind, id, err)
	}
	c.put(id, v)
	return nil
}
