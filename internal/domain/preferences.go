package domain

import (
	"encoding/json"
	"maps"
	"math"
)

const (
	PrefPropertyType = "property_type"
	PrefBedrooms     = "bedrooms"
	PrefCity         = "city"
	PrefMaxPrice     = "max_price"
)

// Preferences is the parsed form of a client's preference mapping. Keys the
// scoring engine does not recognize are kept in Extra untouched.
type Preferences struct {
	PropertyType *PropertyType
	Bedrooms     *int
	City         *string
	MaxPrice     *float64
	Extra        map[string]any
}

// ParsePreferences converts a raw mapping into typed preferences. A value whose
// type does not fit its key fails with a ValidationError; nil and empty-string
// values are treated as absent.
func ParsePreferences(raw map[string]any) (Preferences, error) {
	var p Preferences
	for key, v := range raw {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		switch key {
		case PrefPropertyType:
			var t PropertyType
			switch x := v.(type) {
			case PropertyType:
				t = x
			case string:
				parsed, err := ParsePropertyType(x)
				if err != nil {
					return Preferences{}, invalid("preferences.property_type", x, "unknown property type")
				}
				t = parsed
			default:
				return Preferences{}, invalid("preferences.property_type", v, "must be a string")
			}
			p.PropertyType = &t
		case PrefBedrooms:
			f, ok := ToFloat(v)
			if !ok || f != math.Trunc(f) {
				return Preferences{}, invalid("preferences.bedrooms", v, "must be a whole number")
			}
			if f < math.MinInt32 || f > math.MaxInt32 {
				return Preferences{}, invalid("preferences.bedrooms", v, "is out of range")
			}
			n := int(f)
			p.Bedrooms = &n
		case PrefCity:
			s, ok := v.(string)
			if !ok {
				return Preferences{}, invalid("preferences.city", v, "must be a string")
			}
			p.City = &s
		case PrefMaxPrice:
			f, ok := ToFloat(v)
			if !ok {
				return Preferences{}, invalid("preferences.max_price", v, "must be a number")
			}
			p.MaxPrice = &f
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[key] = v
		}
	}
	if err := p.Validate(); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

func (p Preferences) Validate() error {
	if p.PropertyType != nil && !p.PropertyType.Valid() {
		return invalid("preferences.property_type", p.PropertyType.String(), "not a defined value")
	}
	if p.Bedrooms != nil && *p.Bedrooms < 0 {
		return invalid("preferences.bedrooms", *p.Bedrooms, "must be non-negative")
	}
	if p.MaxPrice != nil && (*p.MaxPrice < 0 || math.IsNaN(*p.MaxPrice)) {
		return invalid("preferences.max_price", *p.MaxPrice, "must be non-negative")
	}
	return nil
}

// Map returns the flat mapping form used by persistence and the API.
func (p Preferences) Map() map[string]any {
	out := make(map[string]any, len(p.Extra)+4)
	maps.Copy(out, p.Extra)
	if p.PropertyType != nil {
		out[PrefPropertyType] = p.PropertyType.String()
	}
	if p.Bedrooms != nil {
		out[PrefBedrooms] = *p.Bedrooms
	}
	if p.City != nil {
		out[PrefCity] = *p.City
	}
	if p.MaxPrice != nil {
		out[PrefMaxPrice] = *p.MaxPrice
	}
	return out
}

func (p Preferences) Clone() Preferences {
	var out Preferences
	if p.PropertyType != nil {
		v := *p.PropertyType
		out.PropertyType = &v
	}
	if p.Bedrooms != nil {
		v := *p.Bedrooms
		out.Bedrooms = &v
	}
	if p.City != nil {
		v := *p.City
		out.City = &v
	}
	if p.MaxPrice != nil {
		v := *p.MaxPrice
		out.MaxPrice = &v
	}
	if p.Extra != nil {
		out.Extra = maps.Clone(p.Extra)
	}
	return out
}

func (p Preferences) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

func (p *Preferences) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParsePreferences(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ToFloat reports the numeric value of v for any Go or JSON number type.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
