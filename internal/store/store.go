// Package store holds the in-memory entity collections. A Store owns every
// record it holds: values go in and come out as copies, and mutation happens
// only through Store methods. Writers are serialized so identifier assignment
// stays unique and monotonic when the HTTP layer calls in concurrently.
package store

import (
	"fmt"
	"sync"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	properties   *collection[domain.Property]
	clients      *collection[domain.Client]
	agents       *collection[domain.Agent]
	transactions *collection[domain.Transaction]
}

func New() *Store {
	return &Store{
		properties:   newCollection[domain.Property](domain.KindProperty),
		clients:      newCollection[domain.Client](domain.KindClient),
		agents:       newCollection[domain.Agent](domain.KindAgent),
		transactions: newCollection[domain.Transaction](domain.KindTransaction),
	}
}

// AddProperty validates p, assigns the next PROP identifier and stores a copy.
// Any identifier already set on p is ignored.
func (s *Store) AddProperty(p domain.Property) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.properties.nextID()
	s.properties.put(p.ID, p.Clone())
	return p.ID, nil
}

func (s *Store) Property(id string) (domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, err := s.properties.get(id)
	if err != nil {
		return domain.Property{}, err
	}
	return p.Clone(), nil
}

// Properties returns copies of all properties in insertion order.
func (s *Store) Properties() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.properties.list(domain.Property.Clone)
}

func (s *Store) UpdatePropertyStatus(id string, status domain.PropertyStatus) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "status", Value: status.String(), Reason: "not a defined value"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.properties.update(id, func(p *domain.Property) { p.Status = status })
}

func (s *Store) AddClient(c domain.Client) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.clients.nextID()
	s.clients.put(c.ID, c.Clone())
	return c.ID, nil
}

func (s *Store) Client(id string) (domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.clients.get(id)
	if err != nil {
		return domain.Client{}, err
	}
	return c.Clone(), nil
}

func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients.list(domain.Client.Clone)
}

func (s *Store) AddAgent(a domain.Agent) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.agents.nextID()
	s.agents.put(a.ID, a.Clone())
	return a.ID, nil
}

func (s *Store) Agent(id string) (domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, err := s.agents.get(id)
	if err != nil {
		return domain.Agent{}, err
	}
	return a.Clone(), nil
}

func (s *Store) Agents() []domain.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agents.list(domain.Agent.Clone)
}

func (s *Store) AddTransaction(t domain.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.transactions.nextID()
	s.transactions.put(t.ID, t)
	return t.ID, nil
}

func (s *Store) Transaction(id string) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.get(id)
}

func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.list(domain.Transaction.Clone)
}

func (s *Store) UpdateTransactionStatus(id string, status domain.TransactionStatus) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "transaction_status", Value: status.String(), Reason: "not a defined value"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactions.update(id, func(t *domain.Transaction) { t.Status = status })
}

// Len reports the number of records of the given kind.
func (s *Store) Len(kind domain.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch kind {
	case domain.KindProperty:
		return len(s.properties.order)
	case domain.KindClient:
		return len(s.clients.order)
	case domain.KindAgent:
		return len(s.agents.order)
	case domain.KindTransaction:
		return len(s.transactions.order)
	}
	return 0
}

type collection[T any] struct {
	kind  domain.Kind
	items map[string]T
	order []string
}

func newCollection[T any](kind domain.Kind) *collection[T] {
	return &collection[T]{kind: kind, items: make(map[string]T)}
}

// nextID derives the identifier from the collection size. A restored snapshot
// may contain gaps, so taken identifiers are skipped.
func (c *collection[T]) nextID() string {
	for n := len(c.order) + 1; ; n++ {
		id := fmt.Sprintf("%s%04d", c.kind.Prefix(), n)
		if _, taken := c.items[id]; !taken {
			return id
		}
	}
}

func (c *collection[T]) put(id string, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) get(id string) (T, error) {
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, &domain.NotFoundError{Kind: c.kind, ID: id}
	}
	return v, nil
}

func (c *collection[T]) update(id string, fn func(*T)) error {
	v, ok := c.items[id]
	if !ok {
		return &domain.NotFoundError{Kind: c.kind, ID: id}
	}
	fn(&v)
	c.items[id] = v
	return nil
}

func (c *collection[T]) list(clone func(T) T) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.items[id]))
	}
	return out
}
