package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

func TestFormatting(t *testing.T) {
	if got := Money(750000); got != "$750,000.00" {
		t.Fatalf("Money=%q want=%q", got, "$750,000.00")
	}
	if got := Money(5000.5); got != "$5,000.50" {
		t.Fatalf("Money=%q want=%q", got, "$5,000.50")
	}
	if got := Number(2200); got != "2,200" {
		t.Fatalf("Number=%q want=%q", got, "2,200")
	}
	if got := Number(950); got != "950" {
		t.Fatalf("Number=%q want=%q", got, "950")
	}
}

func TestWriteProperties(t *testing.T) {
	props := []domain.Property{{
		ID:         "PROP0001",
		Address:    "123 Main St, Apt 4",
		City:       "New York",
		Type:       domain.TypeResidential,
		Status:     domain.StatusForSale,
		Price:      750000,
		Bedrooms:   3,
		Bathrooms:  2.5,
		SquareFeet: 2200,
	}}

	var buf bytes.Buffer
	if err := WriteProperties(&buf, props); err != nil {
		t.Fatalf("WriteProperties: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d want=2", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][8] != "Square Feet" {
		t.Fatalf("header=%v", rows[0])
	}
	want := []string{"PROP0001", "123 Main St, Apt 4", "New York", "Residential", "For Sale", "$750,000.00", "3", "2.5", "2,200"}
	for i := range want {
		if rows[1][i] != want[i] {
			t.Fatalf("column %d: got=%q want=%q", i, rows[1][i], want[i])
		}
	}
}

func TestWritePropertiesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteProperties(&buf, nil); err != nil {
		t.Fatalf("WriteProperties: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows=%d want=1 (header only)", len(rows))
	}
}
