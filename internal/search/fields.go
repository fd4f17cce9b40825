package search

import "github.com/denisok6893-rgb/real-estate-manager/internal/domain"

// Fields maps the searchable field names of one entity kind to accessors.
// Accessors return string, bool, a number, or a domain.Enum.
type Fields[T any] map[string]func(T) any

// Numeric maps the range-filterable fields of one entity kind.
type Numeric[T any] map[string]func(T) float64

var PropertyFields = Fields[domain.Property]{
	"property_id":   func(p domain.Property) any { return p.ID },
	"address":       func(p domain.Property) any { return p.Address },
	"city":          func(p domain.Property) any { return p.City },
	"state":         func(p domain.Property) any { return p.State },
	"zip_code":      func(p domain.Property) any { return p.ZipCode },
	"property_type": func(p domain.Property) any { return p.Type },
	"status":        func(p domain.Property) any { return p.Status },
	"price":         func(p domain.Property) any { return p.Price },
	"bedrooms":      func(p domain.Property) any { return p.Bedrooms },
	"bathrooms":     func(p domain.Property) any { return p.Bathrooms },
	"square_feet":   func(p domain.Property) any { return p.SquareFeet },
	"year_built":    func(p domain.Property) any { return p.YearBuilt },
	"description":   func(p domain.Property) any { return p.Description },
	"listing_date":  func(p domain.Property) any { return p.ListingDate.String() },
	"agent_id":      func(p domain.Property) any { return p.AgentID },
}

var PropertyNumeric = Numeric[domain.Property]{
	"price":       func(p domain.Property) float64 { return p.Price },
	"bedrooms":    func(p domain.Property) float64 { return float64(p.Bedrooms) },
	"bathrooms":   func(p domain.Property) float64 { return p.Bathrooms },
	"square_feet": func(p domain.Property) float64 { return float64(p.SquareFeet) },
	"year_built":  func(p domain.Property) float64 { return float64(p.YearBuilt) },
}

var ClientFields = Fields[domain.Client]{
	"client_id":   func(c domain.Client) any { return c.ID },
	"first_name":  func(c domain.Client) any { return c.FirstName },
	"last_name":   func(c domain.Client) any { return c.LastName },
	"email":       func(c domain.Client) any { return c.Email },
	"phone":       func(c domain.Client) any { return c.Phone },
	"client_type": func(c domain.Client) any { return c.Type },
	"budget":      func(c domain.Client) any { return c.Budget },
	"notes":       func(c domain.Client) any { return c.Notes },
}

var ClientNumeric = Numeric[domain.Client]{
	"budget": func(c domain.Client) float64 { return c.Budget },
}

var AgentFields = Fields[domain.Agent]{
	"agent_id":        func(a domain.Agent) any { return a.ID },
	"first_name":      func(a domain.Agent) any { return a.FirstName },
	"last_name":       func(a domain.Agent) any { return a.LastName },
	"email":           func(a domain.Agent) any { return a.Email },
	"phone":           func(a domain.Agent) any { return a.Phone },
	"commission_rate": func(a domain.Agent) any { return a.CommissionRate },
	"total_sales":     func(a domain.Agent) any { return a.TotalSales },
}

var TransactionFields = Fields[domain.Transaction]{
	"transaction_id":   func(t domain.Transaction) any { return t.ID },
	"property_id":      func(t domain.Transaction) any { return t.PropertyID },
	"client_id":        func(t domain.Transaction) any { return t.ClientID },
	"agent_id":         func(t domain.Transaction) any { return t.AgentID },
	"transaction_type": func(t domain.Transaction) any { return t.Type },
	"amount":           func(t domain.Transaction) any { return t.Amount },
	"date":             func(t domain.Transaction) any { return t.Date.String() },
	"commission":       func(t domain.Transaction) any { return t.Commission },
	"status":           func(t domain.Transaction) any { return t.Status },
}
