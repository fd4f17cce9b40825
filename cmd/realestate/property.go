package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/finance"
	"github.com/denisok6893-rgb/real-estate-manager/internal/report"
	"github.com/denisok6893-rgb/real-estate-manager/internal/search"
	"github.com/denisok6893-rgb/real-estate-manager/internal/storage"
)

func propertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Add, look up and search property listings",
	}
	cmd.AddCommand(propertyAddCmd())
	cmd.AddCommand(propertyGetCmd())
	cmd.AddCommand(propertySearchCmd())
	cmd.AddCommand(propertyStatusCmd())
	cmd.AddCommand(propertyImportCmd())
	cmd.AddCommand(propertyTemplateCmd())
	cmd.AddCommand(propertyValueCmd())
	return cmd
}

func propertyAddCmd() *cobra.Command {
	p := domain.NewListingTemplate(time.Now())
	var propType, status, listed string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if p.Type, err = domain.ParsePropertyType(enumInput(propType)); err != nil {
				return err
			}
			if p.Status, err = domain.ParsePropertyStatus(enumInput(status)); err != nil {
				return err
			}
			if listed != "" {
				if p.ListingDate, err = domain.ParseDate(listed); err != nil {
					return err
				}
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := a.store.AddProperty(p)
			if err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Property added with ID: %s\n", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Address, "address", "", "Street address")
	f.StringVar(&p.City, "city", "", "City")
	f.StringVar(&p.State, "state", "", "State")
	f.StringVar(&p.ZipCode, "zip", "", "ZIP code")
	f.StringVar(&propType, "type", domain.TypeResidential.String(), "Residential, Commercial, Land or Industrial")
	f.StringVar(&status, "status", domain.StatusForSale.String(), "For Sale, For Rent, Sold, Rented or Pending")
	f.Float64Var(&p.Price, "price", 0, "Asking price")
	f.IntVar(&p.Bedrooms, "bedrooms", 0, "Bedrooms")
	f.Float64Var(&p.Bathrooms, "bathrooms", 0, "Bathrooms, in steps of 0.5")
	f.IntVar(&p.SquareFeet, "sqft", 0, "Square feet")
	f.IntVar(&p.YearBuilt, "year-built", 0, "Year built")
	f.StringVar(&p.Description, "description", "", "Description")
	f.StringVar(&listed, "listed", "", "Listing date (YYYY-MM-DD), defaults to today")
	f.StringSliceVar(&p.Features, "feature", nil, "Feature, repeatable")
	f.StringVar(&p.AgentID, "agent", "", "Listing agent ID")
	return cmd
}

func propertyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.store.Property(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func propertySearchCmd() *cobra.Command {
	var where []string
	var minPrice, maxPrice float64
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties by field values and price range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parsePairs(where)
			if err != nil {
				return err
			}
			criteria, err := search.ParseCriteria(raw, search.PropertyNumeric)
			if err != nil {
				return err
			}
			q := search.Query{Criteria: criteria}
			if cmd.Flags().Changed("min-price") || cmd.Flags().Changed("max-price") {
				var lo, hi *float64
				if cmd.Flags().Changed("min-price") {
					lo = &minPrice
				}
				if cmd.Flags().Changed("max-price") {
					hi = &maxPrice
				}
				r := search.NewRange(lo, hi)
				q.RangeField, q.Range = "price", &r
			}

			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			props, err := search.Properties(a.store.Properties(), q)
			if err != nil {
				return err
			}
			if len(props) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No properties found.")
				return nil
			}
			for _, p := range props {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %s - %s (%s)\n", p.ID, p.Address, p.City, report.Money(p.Price), p.Status)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&where, "where", nil, "Field criterion as field=value, repeatable")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "Minimum price, inclusive")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Maximum price, inclusive")
	return cmd
}

func propertyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a property's listing status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParsePropertyStatus(enumInput(args[1]))
			if err != nil {
				return err
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.UpdatePropertyStatus(args[0], status); err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Property %s is now %s\n", args[0], status)
			return nil
		},
	}
}

func propertyImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Add every property from a JSON array file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := storage.LoadPropertiesFromFile(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			for i, p := range props {
				if _, err := a.store.AddProperty(p); err != nil {
					return fmt.Errorf("property %d: %w", i, err)
				}
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d properties.\n", len(props))
			return nil
		},
	}
}

func propertyTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a blank listing to fill in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), domain.NewListingTemplate(time.Now()))
		},
	}
}

func propertyValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value <id>",
		Short: "Estimate a property's value from comparable listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			subject, err := a.store.Property(args[0])
			if err != nil {
				return err
			}
			comps := search.Comparables(subject, a.store.Properties())
			fmt.Fprintf(cmd.OutOrStdout(), "List price:      %s\n", report.Money(subject.Price))
			fmt.Fprintf(cmd.OutOrStdout(), "Comparables:     %d\n", len(comps))
			fmt.Fprintf(cmd.OutOrStdout(), "Estimated value: %s\n", report.Money(finance.EstimateValue(subject, comps)))
			return nil
		},
	}
}
