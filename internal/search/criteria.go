// Package search filters entity collections by field criteria and numeric
// ranges. Field lookup goes through closed accessor tables, one per entity
// kind, so an unsupported field is reported instead of silently ignored.
package search

import (
	"strconv"
	"strings"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

// Criteria maps field names to expected scalar values.
type Criteria map[string]any

// Validate rejects unknown field names and non-scalar expected values.
func (f Fields[T]) Validate(c Criteria) error {
	for field, expected := range c {
		if _, ok := f[field]; !ok {
			return &domain.ValidationError{Field: field, Reason: "is not a searchable field"}
		}
		if _, ok := scalar(expected); !ok {
			return &domain.ValidationError{Field: field, Value: expected, Reason: "expected value must be a string, number or boolean"}
		}
	}
	return nil
}

// Match reports whether rec satisfies every criterion. Strings match by
// case-insensitive substring, everything else by equality. Empty criteria
// match every record.
func (f Fields[T]) Match(rec T, c Criteria) bool {
	for field, expected := range c {
		get, ok := f[field]
		if !ok {
			return false
		}
		if !equivalent(get(rec), expected) {
			return false
		}
	}
	return true
}

// Filter validates c and returns the matching records in input order.
func (f Fields[T]) Filter(records []T, c Criteria) ([]T, error) {
	if err := f.Validate(c); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if f.Match(rec, c) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func equivalent(actual, expected any) bool {
	a, ok := scalar(actual)
	if !ok {
		return false
	}
	e, ok := scalar(expected)
	if !ok {
		return false
	}
	if as, ok := a.(string); ok {
		if es, ok := e.(string); ok {
			return strings.Contains(strings.ToLower(as), strings.ToLower(es))
		}
	}
	return a == e
}

// scalar unwraps enums to their display string and widens numbers to float64
// so an int criterion equals a float attribute of the same value.
func scalar(v any) (any, bool) {
	switch x := v.(type) {
	case string, bool:
		return x, true
	case domain.Enum:
		return x.String(), true
	}
	if f, ok := domain.ToFloat(v); ok {
		return f, true
	}
	return nil, false
}

// ParseCriteria converts textual field=value pairs, as they arrive from a
// query string or command line, into Criteria. Values of fields listed in
// numeric must parse as numbers; everything else stays a string.
func ParseCriteria[T any](raw map[string]string, numeric Numeric[T]) (Criteria, error) {
	c := make(Criteria, len(raw))
	for field, v := range raw {
		v = strings.TrimSpace(v)
		if _, ok := numeric[field]; ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, &domain.ValidationError{Field: field, Value: v, Reason: "must be a number"}
			}
			c[field] = f
			continue
		}
		c[field] = v
	}
	return c, nil
}
