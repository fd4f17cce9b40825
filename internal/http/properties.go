package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/finance"
	"github.com/denisok6893-rgb/real-estate-manager/internal/report"
	"github.com/denisok6893-rgb/real-estate-manager/internal/search"
)

// handlePropertiesList searches properties. Any property field can be passed
// as a query parameter; min_price and max_price bound the price inclusively.
func (s *Server) handlePropertiesList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria, err := criteriaFromQuery(q, search.PropertyNumeric, "limit", "offset", "min_price", "max_price")
	if err != nil {
		writeError(w, err)
		return
	}
	query := search.Query{Criteria: criteria}

	lo, err := optionalFloat(q, "min_price")
	if err != nil {
		writeError(w, err)
		return
	}
	hi, err := optionalFloat(q, "max_price")
	if err != nil {
		writeError(w, err)
		return
	}
	if lo != nil || hi != nil {
		rng := search.NewRange(lo, hi)
		query.RangeField, query.Range = "price", &rng
	}

	props, err := search.Properties(s.Store.Properties(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paginate(r, props))
}

func (s *Server) handlePropertiesCreate(w http.ResponseWriter, r *http.Request) {
	var p domain.Property
	if !decodeJSON(w, r, &p) {
		return
	}
	id, err := s.Store.AddProperty(p)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.persist(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.Store.Property(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handlePropertyTemplate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.NewListingTemplate(time.Now()))
}

func (s *Server) handlePropertyGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.Store.Property(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type propertyStatusRequest struct {
	Status domain.PropertyStatus `json:"status"`
}

func (s *Server) handlePropertyStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req propertyStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.Store.UpdatePropertyStatus(id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	if err := s.persist(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.Store.Property(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type ValuationResponse struct {
	PropertyID     string   `json:"property_id"`
	ListPrice      float64  `json:"list_price"`
	EstimatedValue float64  `json:"estimated_value"`
	Comparables    []string `json:"comparables"`
}

func (s *Server) handlePropertyValuation(w http.ResponseWriter, r *http.Request) {
	subject, err := s.Store.Property(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	comps := search.Comparables(subject, s.Store.Properties())
	ids := make([]string, 0, len(comps))
	for _, c := range comps {
		ids = append(ids, c.ID)
	}
	writeJSON(w, http.StatusOK, ValuationResponse{
		PropertyID:     subject.ID,
		ListPrice:      subject.Price,
		EstimatedValue: finance.EstimateValue(subject, comps),
		Comparables:    ids,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="property_report.csv"`)
	if err := report.WriteProperties(w, s.Store.Properties()); err != nil {
		log.Printf("write report: %v", err)
	}
}
