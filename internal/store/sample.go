package store

import (
	"time"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

// SeedSample adds the demo listings and buyer used for first runs.
func SeedSample(s *Store) error {
	residential := domain.TypeResidential

	props := []domain.Property{
		{
			Address:     "123 Main St",
			City:        "New York",
			State:       "NY",
			ZipCode:     "10001",
			Type:        residential,
			Status:      domain.StatusForSale,
			Price:       750000,
			Bedrooms:    3,
			Bathrooms:   2.5,
			SquareFeet:  2200,
			YearBuilt:   2010,
			Description: "Beautiful modern townhouse",
			ListingDate: domain.Date{Year: 2024, Month: time.January, Day: 15},
			Features:    []string{"Garage", "Garden", "Pool"},
		},
		{
			Address:     "456 Oak Ave",
			City:        "Los Angeles",
			State:       "CA",
			ZipCode:     "90001",
			Type:        domain.TypeCommercial,
			Status:      domain.StatusForRent,
			Price:       5000,
			Bedrooms:    0,
			Bathrooms:   2,
			SquareFeet:  1500,
			YearBuilt:   2015,
			Description: "Prime commercial space",
			ListingDate: domain.Date{Year: 2024, Month: time.January, Day: 10},
			Features:    []string{"Parking", "Security", "AC"},
		},
	}
	var firstID string
	for _, p := range props {
		id, err := s.AddProperty(p)
		if err != nil {
			return err
		}
		if firstID == "" {
			firstID = id
		}
	}

	bedrooms, city := 3, "New York"
	_, err := s.AddClient(domain.Client{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "555-0101",
		Type:      domain.ClientBuyer,
		Budget:    800000,
		Preferences: domain.Preferences{
			PropertyType: &residential,
			Bedrooms:     &bedrooms,
			City:         &city,
		},
		InterestedProperties: []string{firstID},
		Notes:                "Looking for family home",
	})
	return err
}
