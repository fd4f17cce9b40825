package httpapi

import (
	"net/http"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/finance"
	"github.com/denisok6893-rgb/real-estate-manager/internal/matching"
)

type MatchResponse struct {
	Results []domain.ScoreResult `json:"results"`
}

type MatchAllResponse struct {
	Matches matching.Matches `json:"matches"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	m := s.Engine.MatchClients(s.Store.Clients(), s.Store.Properties())
	writeJSON(w, http.StatusOK, MatchAllResponse{Matches: m})
}

type MortgageRequest struct {
	Price       float64 `json:"price"`
	DownPayment float64 `json:"down_payment"`
	Rate        float64 `json:"interest_rate"`
	Years       int     `json:"years"`
}

// handleMortgage takes either an explicit price or a property_id query
// parameter whose listing price is used instead.
func (s *Server) handleMortgage(w http.ResponseWriter, r *http.Request) {
	var req MortgageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if id := r.URL.Query().Get("property_id"); id != "" {
		p, err := s.Store.Property(id)
		if err != nil {
			writeError(w, err)
			return
		}
		req.Price = p.Price
	}
	m, err := finance.CalculateMortgage(req.Price, req.DownPayment, req.Rate, req.Years)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type MarketResponse struct {
	HasData bool                 `json:"has_data"`
	Stats   *finance.MarketStats `json:"stats,omitempty"`
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	stats, ok := finance.AnalyzeMarket(s.Store.Properties())
	if !ok {
		writeJSON(w, http.StatusOK, MarketResponse{HasData: false})
		return
	}
	writeJSON(w, http.StatusOK, MarketResponse{HasData: true, Stats: &stats})
}
