package search

import (
	"math"
	"strings"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// NewRange builds a range from optional bounds; a missing min is 0 and a
// missing max is +Inf.
func NewRange(lo, hi *float64) Range {
	r := Range{Min: 0, Max: math.Inf(1)}
	if lo != nil {
		r.Min = *lo
	}
	if hi != nil {
		r.Max = *hi
	}
	return r
}

func (r Range) Contains(v float64) bool { return r.Min <= v && v <= r.Max }

// FilterByRange keeps records whose field lies within r, in input order.
func (n Numeric[T]) FilterByRange(records []T, field string, r Range) ([]T, error) {
	get, ok := n[field]
	if !ok {
		return nil, &domain.ValidationError{Field: field, Reason: "is not a numeric field"}
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if r.Contains(get(rec)) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Query is a criteria search optionally narrowed by a range on one numeric
// field. The ranged field must not also appear in Criteria.
type Query struct {
	Criteria   Criteria
	RangeField string
	Range      *Range
}

// Properties runs q over props: criteria first, then the range.
func Properties(props []domain.Property, q Query) ([]domain.Property, error) {
	out, err := PropertyFields.Filter(props, q.Criteria)
	if err != nil {
		return nil, err
	}
	if q.Range == nil {
		return out, nil
	}
	field := q.RangeField
	if field == "" {
		field = "price"
	}
	if _, dup := q.Criteria[field]; dup {
		return nil, &domain.ValidationError{Field: field, Reason: "cannot be both a criterion and a range"}
	}
	return PropertyNumeric.FilterByRange(out, field, *q.Range)
}

// ClientsByName matches a case-insensitive substring of "first last".
func ClientsByName(clients []domain.Client, name string) []domain.Client {
	if strings.TrimSpace(name) == "" {
		return clients
	}
	needle := strings.ToLower(name)
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.FirstName+" "+c.LastName), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Comparables returns the other properties of the same type in the same city,
// the comp set used for valuation.
func Comparables(subject domain.Property, props []domain.Property) []domain.Property {
	out := make([]domain.Property, 0)
	c := Criteria{"property_type": subject.Type, "city": subject.City}
	for _, p := range props {
		if p.ID == subject.ID {
			continue
		}
		if PropertyFields.Match(p, c) {
			out = append(out, p)
		}
	}
	return out
}
