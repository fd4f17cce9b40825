// Package report renders store contents for people: a CSV listing extract
// with US currency and thousands formatting.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

var header = []string{"ID", "Address", "City", "Type", "Status", "Price", "Bedrooms", "Bathrooms", "Square Feet"}

var printer = message.NewPrinter(language.AmericanEnglish)

// Money formats an amount as dollars with thousands separators, e.g. $750,000.00.
func Money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Number formats an integer with thousands separators.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// WriteProperties writes one CSV row per property, preceded by a header row.
func WriteProperties(w io.Writer, props []domain.Property) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, p := range props {
		row := []string{
			p.ID,
			p.Address,
			p.City,
			p.Type.String(),
			p.Status.String(),
			Money(p.Price),
			strconv.Itoa(p.Bedrooms),
			strconv.FormatFloat(p.Bathrooms, 'f', 1, 64),
			Number(p.SquareFeet),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write report row %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
