package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/finance"
	"github.com/denisok6893-rgb/real-estate-manager/internal/search"
)

// handleClientsList filters clients by field criteria; name matches a
// substring of the full name.
func (s *Server) handleClientsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria, err := criteriaFromQuery(q, search.ClientNumeric, "limit", "offset", "name")
	if err != nil {
		writeError(w, err)
		return
	}
	clients, err := search.ClientFields.Filter(s.Store.Clients(), criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	clients = search.ClientsByName(clients, q.Get("name"))
	writeJSON(w, http.StatusOK, paginate(r, clients))
}

func (s *Server) handleClientsCreate(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if !decodeJSON(w, r, &c) {
		return
	}
	id, err := s.Store.AddClient(c)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.persist(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.Store.Client(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleClientGet(w http.ResponseWriter, r *http.Request) {
	c, err := s.Store.Client(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleClientMatches(w http.ResponseWriter, r *http.Request) {
	c, err := s.Store.Client(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if c.Type != domain.ClientBuyer {
		writeError(w, &domain.ValidationError{Field: "client_type", Value: c.Type.String(), Reason: "only buyers are matched"})
		return
	}
	writeJSON(w, http.StatusOK, MatchResponse{Results: s.Engine.ScoreProperties(c, s.Store.Properties())})
}

func (s *Server) handleAgentsList(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query(), search.Numeric[domain.Agent]{
		"commission_rate": func(a domain.Agent) float64 { return a.CommissionRate },
		"total_sales":     func(a domain.Agent) float64 { return a.TotalSales },
	}, "limit", "offset")
	if err != nil {
		writeError(w, err)
		return
	}
	agents, err := search.AgentFields.Filter(s.Store.Agents(), criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paginate(r, agents))
}

func (s *Server) handleAgentsCreate(w http.ResponseWriter, r *http.Request) {
	var a domain.Agent
	if !decodeJSON(w, r, &a) {
		return
	}
	id, err := s.Store.AddAgent(a)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.persist(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.Store.Agent(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleAgentGet(w http.ResponseWriter, r *http.Request) {
	a, err := s.Store.Agent(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleTransactionsList(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query(), search.Numeric[domain.Transaction]{
		"amount":     func(t domain.Transaction) float64 { return t.Amount },
		"commission": func(t domain.Transaction) float64 { return t.Commission },
	}, "limit", "offset")
	if err != nil {
		writeError(w, err)
		return
	}
	txns, err := search.TransactionFields.Filter(s.Store.Transactions(), criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paginate(r, txns))
}

// handleTransactionsCreate records a transaction. A missing date defaults to
// today and a zero commission is derived from the agent's rate when the agent
// is known.
func (s *Server) handleTransactionsCreate(w http.ResponseWriter, r *http.Request) {
	var t domain.Transaction
	if !decodeJSON(w, r, &t) {
		return
	}
	if t.Date.IsZero() {
		t.Date = domain.DateOf(time.Now())
	}
	if t.AgentID != "" {
		agent, err := s.Store.Agent(t.AgentID)
		switch {
		case err == nil:
			if err := finance.ApplyCommission(&t, agent); err != nil {
				writeError(w, err)
				return
			}
		case !errors.Is(err, domain.ErrNotFound):
			writeError(w, err)
			return
		}
	}

	id, err := s.Store.AddTransaction(t)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.persist(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.Store.Transaction(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleTransactionGet(w http.ResponseWriter, r *http.Request) {
	t, err := s.Store.Transaction(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

type transactionStatusRequest struct {
	Status domain.TransactionStatus `json:"status"`
}

func (s *Server) handleTransactionStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req transactionStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.Store.UpdateTransactionStatus(id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	if err := s.persist(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	t, err := s.Store.Transaction(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
