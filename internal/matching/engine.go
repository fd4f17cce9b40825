package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

func (e *Engine) Weights() Weights { return e.weights }

// Matches maps a buyer's client ID to its ranked properties.
type Matches map[string][]domain.ScoreResult

// MatchClients ranks available properties for every buyer. Clients of other
// types are left out of the result entirely.
func (e *Engine) MatchClients(clients []domain.Client, properties []domain.Property) Matches {
	out := make(Matches)
	for _, c := range clients {
		if c.Type != domain.ClientBuyer {
			continue
		}
		out[c.ID] = e.ScoreProperties(c, properties)
	}
	return out
}

// ScoreProperties applies the availability and budget filters, scores what is
// left, drops scores under the threshold and returns the top results. Equal
// scores keep the order of properties.
func (e *Engine) ScoreProperties(client domain.Client, properties []domain.Property) []domain.ScoreResult {
	out := []domain.ScoreResult{}

	for _, p := range properties {
		if !e.passesHardFilters(client, p) {
			continue
		}
		score, reasons := e.scoreOne(client.Preferences, p)
		if score < e.weights.Threshold {
			continue
		}
		out = append(out, domain.ScoreResult{
			Property: p,
			Score:    score,
			Reasons:  reasons,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	limit := e.weights.Limit
	if limit <= 0 {
		limit = 5
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (e *Engine) passesHardFilters(client domain.Client, p domain.Property) bool {
	if !p.Status.Available() {
		return false
	}
	return p.Price <= client.Budget*e.weights.BudgetSlack
}

func (e *Engine) scoreOne(prefs domain.Preferences, p domain.Property) (int, []domain.ScoreReason) {
	var score int
	var reasons []domain.ScoreReason

	add := func(key string, points int, msg string) {
		score += points
		reasons = append(reasons, domain.ScoreReason{Type: key, Message: msg, Impact: points})
	}

	if prefs.PropertyType != nil && *prefs.PropertyType == p.Type {
		add(domain.PrefPropertyType, e.weights.PropertyType, fmt.Sprintf("property type: %s", p.Type))
	}
	if prefs.Bedrooms != nil && p.Bedrooms >= *prefs.Bedrooms {
		add(domain.PrefBedrooms, e.weights.Bedrooms, fmt.Sprintf("bedrooms: %d, wanted at least %d", p.Bedrooms, *prefs.Bedrooms))
	}
	if prefs.City != nil && strings.Contains(strings.ToLower(p.City), strings.ToLower(*prefs.City)) {
		add(domain.PrefCity, e.weights.City, fmt.Sprintf("city: %s", p.City))
	}
	if prefs.MaxPrice != nil && p.Price <= *prefs.MaxPrice {
		add(domain.PrefMaxPrice, e.weights.MaxPrice, fmt.Sprintf("price within %.2f", *prefs.MaxPrice))
	}

	return score, reasons
}
