package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Kind names an entity collection and the prefix of its identifiers.
type Kind string

const (
	KindProperty    Kind = "property"
	KindClient      Kind = "client"
	KindAgent       Kind = "agent"
	KindTransaction Kind = "transaction"
)

func (k Kind) Prefix() string {
	switch k {
	case KindProperty:
		return "PROP"
	case KindClient:
		return "CLI"
	case KindAgent:
		return "AGT"
	case KindTransaction:
		return "TXN"
	}
	return strings.ToUpper(string(k))
}

// Property is a listing. AgentID is a weak reference: the agent may not exist.
type Property struct {
	ID          string         `json:"property_id"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zip_code"`
	Type        PropertyType   `json:"property_type"`
	Status      PropertyStatus `json:"status"`
	Price       float64        `json:"price"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	SquareFeet  int            `json:"square_feet"`
	YearBuilt   int            `json:"year_built"`
	Description string         `json:"description"`
	ListingDate Date           `json:"listing_date"`
	Features    []string       `json:"features"`
	AgentID     string         `json:"agent_id,omitempty"`
}

func (p Property) Validate() error {
	if strings.TrimSpace(p.Address) == "" {
		return required("address")
	}
	if strings.TrimSpace(p.City) == "" {
		return required("city")
	}
	if !p.Type.Valid() {
		return invalid("property_type", p.Type.String(), "not a defined value")
	}
	if !p.Status.Valid() {
		return invalid("status", p.Status.String(), "not a defined value")
	}
	if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return invalid("price", p.Price, "must be a non-negative number")
	}
	if p.Bedrooms < 0 {
		return invalid("bedrooms", p.Bedrooms, "must be non-negative")
	}
	if p.Bathrooms < 0 || math.IsInf(p.Bathrooms, 0) || p.Bathrooms*2 != math.Trunc(p.Bathrooms*2) {
		return invalid("bathrooms", p.Bathrooms, "must be a non-negative multiple of 0.5")
	}
	if p.SquareFeet < 0 {
		return invalid("square_feet", p.SquareFeet, "must be non-negative")
	}
	return nil
}

func (p Property) Clone() Property {
	p.Features = slices.Clone(p.Features)
	return p
}

type Client struct {
	ID                   string      `json:"client_id"`
	FirstName            string      `json:"first_name"`
	LastName             string      `json:"last_name"`
	Email                string      `json:"email"`
	Phone                string      `json:"phone"`
	Type                 ClientType  `json:"client_type"`
	Budget               float64     `json:"budget"`
	Preferences          Preferences `json:"preferences"`
	InterestedProperties []string    `json:"interested_properties"`
	Notes                string      `json:"notes"`
}

func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return required("first_name")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return required("last_name")
	}
	if !c.Type.Valid() {
		return invalid("client_type", c.Type.String(), "not a defined value")
	}
	if c.Budget < 0 || math.IsNaN(c.Budget) || math.IsInf(c.Budget, 0) {
		return invalid("budget", c.Budget, "must be a non-negative number")
	}
	return c.Preferences.Validate()
}

func (c Client) Clone() Client {
	c.Preferences = c.Preferences.Clone()
	c.InterestedProperties = slices.Clone(c.InterestedProperties)
	return c
}

type Agent struct {
	ID                 string   `json:"agent_id"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	CommissionRate     float64  `json:"commission_rate"`
	TotalSales         float64  `json:"total_sales"`
	AssignedProperties []string `json:"assigned_properties"`
}

func (a Agent) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" {
		return required("first_name")
	}
	if strings.TrimSpace(a.LastName) == "" {
		return required("last_name")
	}
	if a.CommissionRate < 0 || a.CommissionRate > 1 || math.IsNaN(a.CommissionRate) {
		return invalid("commission_rate", a.CommissionRate, "must be a fraction in [0,1]")
	}
	if a.TotalSales < 0 {
		return invalid("total_sales", a.TotalSales, "must be non-negative")
	}
	return nil
}

func (a Agent) Clone() Agent {
	a.AssignedProperties = slices.Clone(a.AssignedProperties)
	return a
}

// Transaction links a property, client and agent by identifier only.
type Transaction struct {
	ID         string            `json:"transaction_id"`
	PropertyID string            `json:"property_id"`
	ClientID   string            `json:"client_id"`
	AgentID    string            `json:"agent_id"`
	Type       TransactionType   `json:"transaction_type"`
	Amount     float64           `json:"amount"`
	Date       Date              `json:"date"`
	Commission float64           `json:"commission"`
	Status     TransactionStatus `json:"status"`
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.PropertyID) == "" {
		return required("property_id")
	}
	if strings.TrimSpace(t.ClientID) == "" {
		return required("client_id")
	}
	if !t.Type.Valid() {
		return invalid("transaction_type", t.Type.String(), "not a defined value")
	}
	if !t.Status.Valid() {
		return invalid("transaction_status", t.Status.String(), "not a defined value")
	}
	if t.Amount < 0 || math.IsNaN(t.Amount) {
		return invalid("amount", t.Amount, "must be non-negative")
	}
	if t.Commission < 0 || math.IsNaN(t.Commission) {
		return invalid("commission", t.Commission, "must be non-negative")
	}
	return nil
}

func (t Transaction) Clone() Transaction { return t }

// NewListingTemplate returns a blank residential listing dated today.
func NewListingTemplate(now time.Time) Property {
	return Property{
		Type:        TypeResidential,
		Status:      StatusForSale,
		ListingDate: DateOf(now),
		Features:    []string{},
	}
}

type ScoreResult struct {
	Property Property      `json:"property"`
	Score    int           `json:"match_score"`
	Reasons  []ScoreReason `json:"reasons"`
}

type ScoreReason struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Impact  int    `json:"impact"`
}
