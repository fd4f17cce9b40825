package finance

import (
	"slices"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

type TypeStats struct {
	Type         domain.PropertyType `json:"property_type"`
	Count        int                 `json:"count"`
	AveragePrice float64             `json:"average_price"`
}

type MarketStats struct {
	Total        int         `json:"total_properties"`
	AveragePrice float64     `json:"average_price"`
	MinPrice     float64     `json:"min_price"`
	MaxPrice     float64     `json:"max_price"`
	ByType       []TypeStats `json:"by_type"`
}

// AnalyzeMarket aggregates prices per property type and overall. ok is false
// when there is nothing to aggregate.
func AnalyzeMarket(props []domain.Property) (stats MarketStats, ok bool) {
	if len(props) == 0 {
		return MarketStats{}, false
	}

	sums := make(map[domain.PropertyType]float64)
	counts := make(map[domain.PropertyType]int)
	var order []domain.PropertyType

	var total float64
	stats.MinPrice, stats.MaxPrice = props[0].Price, props[0].Price
	for _, p := range props {
		if _, seen := counts[p.Type]; !seen {
			order = append(order, p.Type)
		}
		sums[p.Type] += p.Price
		counts[p.Type]++

		total += p.Price
		stats.MinPrice = min(stats.MinPrice, p.Price)
		stats.MaxPrice = max(stats.MaxPrice, p.Price)
	}

	stats.Total = len(props)
	stats.AveragePrice = total / float64(len(props))
	stats.ByType = make([]TypeStats, 0, len(order))
	for _, t := range order {
		stats.ByType = append(stats.ByType, TypeStats{
			Type:         t,
			Count:        counts[t],
			AveragePrice: sums[t] / float64(counts[t]),
		})
	}
	return stats, true
}

var valueFeatures = []string{"Garage", "Pool", "Renovated"}

// EstimateValue prices a property from comparable sales: the mean comp price
// plus 5% of the subject's own price for each premium feature it has.
// Without comps the subject's price is returned unchanged.
func EstimateValue(subject domain.Property, comps []domain.Property) float64 {
	if len(comps) == 0 {
		return subject.Price
	}
	var sum float64
	for _, c := range comps {
		sum += c.Price
	}
	value := sum / float64(len(comps))
	for _, f := range valueFeatures {
		if slices.Contains(subject.Features, f) {
			value += subject.Price * 0.05
		}
	}
	return value
}
