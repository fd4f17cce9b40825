package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseEnums(t *testing.T) {
	t.Run("display strings round trip", func(t *testing.T) {
		for _, s := range []string{"For Sale", "For Rent", "Sold", "Rented", "Pending"} {
			st, err := ParsePropertyStatus(s)
			if err != nil {
				t.Fatalf("ParsePropertyStatus(%q): %v", s, err)
			}
			if st.String() != s {
				t.Fatalf("String()=%q want=%q", st.String(), s)
			}
		}
		for _, s := range []string{"Residential", "Commercial", "Land", "Industrial"} {
			pt, err := ParsePropertyType(s)
			if err != nil || pt.String() != s {
				t.Fatalf("ParsePropertyType(%q)=%v,%v", s, pt, err)
			}
		}
	})

	t.Run("unknown values fail with validation error", func(t *testing.T) {
		cases := []func() error{
			func() error { _, err := ParsePropertyType("Castle"); return err },
			func() error { _, err := ParsePropertyType("residential"); return err },
			func() error { _, err := ParsePropertyStatus(""); return err },
			func() error { _, err := ParseClientType("Investor"); return err },
			func() error { _, err := ParseTransactionType("Lease"); return err },
			func() error { _, err := ParseTransactionStatus("Done"); return err },
		}
		for i, fn := range cases {
			err := fn()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("case %d: err=%v want ErrValidation", i, err)
			}
		}
	})

	t.Run("zero value does not marshal", func(t *testing.T) {
		if _, err := json.Marshal(struct{ S PropertyStatus }{}); err == nil {
			t.Fatalf("expected error marshaling zero status")
		}
	})

	t.Run("availability", func(t *testing.T) {
		if !StatusForSale.Available() || !StatusPending.Available() {
			t.Fatalf("For Sale and Pending must be available")
		}
		if StatusSold.Available() || StatusForRent.Available() {
			t.Fatalf("Sold and For Rent must not be available")
		}
	})
}

func TestPropertyJSON(t *testing.T) {
	in := `{"property_id":"PROP0001","address":"123 Main St","city":"New York","state":"NY","zip_code":"10001",
		"property_type":"Residential","status":"For Sale","price":750000,"bedrooms":3,"bathrooms":2.5,
		"square_feet":2200,"year_built":2010,"description":"Beautiful modern townhouse",
		"listing_date":"2024-01-15","features":["Garage","Garden","Pool"]}`

	var p Property
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Type != TypeResidential || p.Status != StatusForSale {
		t.Fatalf("enums=%v/%v", p.Type, p.Status)
	}
	if p.ListingDate != (Date{Year: 2024, Month: time.January, Day: 15}) {
		t.Fatalf("listing_date=%v", p.ListingDate)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if back["status"] != "For Sale" || back["property_type"] != "Residential" {
		t.Fatalf("enums not serialized as display strings: %v", back)
	}
	if _, ok := back["agent_id"]; ok {
		t.Fatalf("empty agent_id should be omitted")
	}

	bad := `{"address":"x","city":"y","property_type":"Castle","status":"For Sale"}`
	if err := json.Unmarshal([]byte(bad), &p); !errors.Is(err, ErrValidation) {
		t.Fatalf("err=%v want ErrValidation", err)
	}
}

func TestPropertyValidate(t *testing.T) {
	valid := Property{Address: "1 A St", City: "Austin", Type: TypeLand, Status: StatusForSale, Price: 10, Bathrooms: 1.5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid property: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Property)
		field  string
	}{
		{"missing address", func(p *Property) { p.Address = " " }, "address"},
		{"missing city", func(p *Property) { p.City = "" }, "city"},
		{"zero type", func(p *Property) { p.Type = 0 }, "property_type"},
		{"out of set status", func(p *Property) { p.Status = 42 }, "status"},
		{"negative price", func(p *Property) { p.Price = -1 }, "price"},
		{"negative bedrooms", func(p *Property) { p.Bedrooms = -1 }, "bedrooms"},
		{"quarter bathroom", func(p *Property) { p.Bathrooms = 1.25 }, "bathrooms"},
		{"infinite bathrooms", func(p *Property) { p.Bathrooms = math.Inf(1) }, "bathrooms"},
		{"negative area", func(p *Property) { p.SquareFeet = -5 }, "square_feet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			var ve *ValidationError
			if err := p.Validate(); !errors.As(err, &ve) {
				t.Fatalf("err=%v want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Fatalf("field=%q want=%q", ve.Field, tt.field)
			}
		})
	}
}

func TestParsePreferences(t *testing.T) {
	t.Run("recognized and extra keys", func(t *testing.T) {
		p, err := ParsePreferences(map[string]any{
			"property_type": "Residential",
			"bedrooms":      3.0,
			"city":          "New York",
			"max_price":     900000,
			"garden":        true,
		})
		if err != nil {
			t.Fatalf("ParsePreferences: %v", err)
		}
		if *p.PropertyType != TypeResidential || *p.Bedrooms != 3 || *p.City != "New York" || *p.MaxPrice != 900000 {
			t.Fatalf("parsed=%+v", p)
		}
		if p.Extra["garden"] != true {
			t.Fatalf("extra=%v", p.Extra)
		}
	})

	t.Run("type mismatches fail fast", func(t *testing.T) {
		bad := []map[string]any{
			{"bedrooms": "three"},
			{"bedrooms": 2.5},
			{"max_price": "cheap"},
			{"city": 12},
			{"property_type": "Castle"},
			{"property_type": 1},
			{"bedrooms": -1},
		}
		for _, raw := range bad {
			if _, err := ParsePreferences(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("ParsePreferences(%v) err=%v want ErrValidation", raw, err)
			}
		}
	})

	t.Run("huge bedrooms reports the given value", func(t *testing.T) {
		_, err := ParsePreferences(map[string]any{"bedrooms": 1e20})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("err=%v want *ValidationError", err)
		}
		if ve.Field != "preferences.bedrooms" || ve.Value != 1e20 {
			t.Fatalf("field=%q value=%v want preferences.bedrooms 1e+20", ve.Field, ve.Value)
		}
	})

	t.Run("empty values are absent", func(t *testing.T) {
		p, err := ParsePreferences(map[string]any{"property_type": "", "city": nil})
		if err != nil {
			t.Fatalf("ParsePreferences: %v", err)
		}
		if p.PropertyType != nil || p.City != nil {
			t.Fatalf("expected absent preferences, got %+v", p)
		}
	})

	t.Run("json round trip", func(t *testing.T) {
		var c Client
		in := `{"first_name":"John","last_name":"Doe","client_type":"Buyer","budget":800000,
			"preferences":{"property_type":"Residential","bedrooms":3,"city":"New York"}}`
		if err := json.Unmarshal([]byte(in), &c); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		b, err := json.Marshal(c.Preferences)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"bedrooms":3,"city":"New York","property_type":"Residential"}`
		if string(b) != want {
			t.Fatalf("got=%s want=%s", b, want)
		}
	})

	t.Run("bad preference rejects client decode", func(t *testing.T) {
		var c Client
		in := `{"first_name":"A","last_name":"B","client_type":"Buyer","preferences":{"bedrooms":"lots"}}`
		if err := json.Unmarshal([]byte(in), &c); !errors.Is(err, ErrValidation) {
			t.Fatalf("err=%v want ErrValidation", err)
		}
	})
}

func TestKindPrefix(t *testing.T) {
	want := map[Kind]string{KindProperty: "PROP", KindClient: "CLI", KindAgent: "AGT", KindTransaction: "TXN"}
	for k, p := range want {
		if k.Prefix() != p {
			t.Fatalf("%s prefix=%q want=%q", k, k.Prefix(), p)
		}
	}
}

func TestListingTemplate(t *testing.T) {
	now := time.Date(2024, time.March, 9, 15, 0, 0, 0, time.UTC)
	p := NewListingTemplate(now)
	if p.Type != TypeResidential || p.Status != StatusForSale {
		t.Fatalf("template enums=%v/%v", p.Type, p.Status)
	}
	if p.ListingDate.String() != "2024-03-09" {
		t.Fatalf("listing_date=%s", p.ListingDate)
	}
}
