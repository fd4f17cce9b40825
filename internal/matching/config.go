package matching

import "fmt"

// Weights defines the points awarded per satisfied preference and the rules
// that gate and trim the ranking.
type Weights struct {
	PropertyType int     `yaml:"property_type" json:"property_type"`
	Bedrooms     int     `yaml:"bedrooms" json:"bedrooms"`
	City         int     `yaml:"city" json:"city"`
	MaxPrice     int     `yaml:"max_price" json:"max_price"`
	Threshold    int     `yaml:"threshold" json:"threshold"`
	BudgetSlack  float64 `yaml:"budget_slack" json:"budget_slack"`
	Limit        int     `yaml:"limit" json:"limit"`
}

// DefaultWeights returns the standard 30/25/20/15 scheme with a 40 point
// threshold, 10% budget slack and five results per buyer.
func DefaultWeights() Weights {
	return Weights{
		PropertyType: 30,
		Bedrooms:     25,
		City:         20,
		MaxPrice:     15,
		Threshold:    40,
		BudgetSlack:  1.10,
		Limit:        5,
	}
}

func (w Weights) Validate() error {
	for name, v := range map[string]int{
		"property_type": w.PropertyType,
		"bedrooms":      w.Bedrooms,
		"city":          w.City,
		"max_price":     w.MaxPrice,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %d", name, v)
		}
	}
	if w.Threshold < 0 || w.Threshold > 100 {
		return fmt.Errorf("threshold must be within 0..100, got %d", w.Threshold)
	}
	if w.BudgetSlack < 1 {
		return fmt.Errorf("budget slack must be at least 1, got %v", w.BudgetSlack)
	}
	if w.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", w.Limit)
	}
	return nil
}
