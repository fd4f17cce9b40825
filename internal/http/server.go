package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/matching"
	"github.com/denisok6893-rgb/real-estate-manager/internal/search"
	"github.com/denisok6893-rgb/real-estate-manager/internal/store"
)

// Saver persists the store after each successful write. Optional.
type Saver interface {
	Save(ctx context.Context, snap store.Snapshot) error
}

type Server struct {
	Store  *store.Store
	Engine *matching.Engine
	Saver  Saver

	// saveMu orders snapshot+save pairs so a stale snapshot never lands
	// on disk after a newer one.
	saveMu sync.Mutex
}

func NewServer(st *store.Store, engine *matching.Engine, saver Saver) *Server {
	if engine == nil {
		engine = matching.NewEngine(matching.DefaultWeights())
	}
	return &Server{Store: st, Engine: engine, Saver: saver}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/properties", s.handlePropertiesList).Methods(http.MethodGet)
	r.HandleFunc("/properties", s.handlePropertiesCreate).Methods(http.MethodPost)
	r.HandleFunc("/properties/template", s.handlePropertyTemplate).Methods(http.MethodGet)
	r.HandleFunc("/properties/{id}", s.handlePropertyGet).Methods(http.MethodGet)
	r.HandleFunc("/properties/{id}/status", s.handlePropertyStatus).Methods(http.MethodPut)
	r.HandleFunc("/properties/{id}/valuation", s.handlePropertyValuation).Methods(http.MethodGet)

	r.HandleFunc("/clients", s.handleClientsList).Methods(http.MethodGet)
	r.HandleFunc("/clients", s.handleClientsCreate).Methods(http.MethodPost)
	r.HandleFunc("/clients/{id}", s.handleClientGet).Methods(http.MethodGet)
	r.HandleFunc("/clients/{id}/matches", s.handleClientMatches).Methods(http.MethodGet)

	r.HandleFunc("/agents", s.handleAgentsList).Methods(http.MethodGet)
	r.HandleFunc("/agents", s.handleAgentsCreate).Methods(http.MethodPost)
	r.HandleFunc("/agents/{id}", s.handleAgentGet).Methods(http.MethodGet)

	r.HandleFunc("/transactions", s.handleTransactionsList).Methods(http.MethodGet)
	r.HandleFunc("/transactions", s.handleTransactionsCreate).Methods(http.MethodPost)
	r.HandleFunc("/transactions/{id}", s.handleTransactionGet).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id}/status", s.handleTransactionStatus).Methods(http.MethodPut)

	r.HandleFunc("/match", s.handleMatch).Methods(http.MethodGet)
	r.HandleFunc("/mortgage", s.handleMortgage).Methods(http.MethodPost)
	r.HandleFunc("/market", s.handleMarket).Methods(http.MethodGet)
	r.HandleFunc("/report.csv", s.handleReport).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListResponse is the paginated envelope for collection endpoints.
type ListResponse[T any] struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
	Items  []T `json:"items"`
}

func paginate[T any](r *http.Request, all []T) ListResponse[T] {
	limit, offset := parseLimitOffset(r, 20, 0)

	total := len(all)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)

	items := make([]T, 0, end-offset)
	items = append(items, all[offset:end]...)
	return ListResponse[T]{Limit: limit, Offset: offset, Total: total, Items: items}
}

// persist hands the current snapshot to the Saver, if one is configured.
func (s *Server) persist(ctx context.Context) error {
	if s.Saver == nil {
		return nil
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.Saver.Save(ctx, s.Store.Snapshot())
}

// criteriaFromQuery turns query parameters into search criteria, skipping
// the reserved ones.
func criteriaFromQuery[T any](q url.Values, numeric search.Numeric[T], reserved ...string) (search.Criteria, error) {
	raw := make(map[string]string, len(q))
	for key, vals := range q {
		if len(vals) == 0 || slices.Contains(reserved, key) {
			continue
		}
		raw[key] = vals[0]
	}
	return search.ParseCriteria(raw, numeric)
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, &domain.ValidationError{Field: key, Value: v, Reason: "must be a number"}
	}
	return &f, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json", "message": err.Error()})
		return false
	}
	return true
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain error kinds onto status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid", "message": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
	}
}
