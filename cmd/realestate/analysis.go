package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/finance"
	"github.com/denisok6893-rgb/real-estate-manager/internal/report"
)

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match",
		Short: "Rank available properties for every buyer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			clients := a.store.Clients()
			matches := a.engine().MatchClients(clients, a.store.Properties())
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No buyers to match.")
				return nil
			}
			for _, c := range clients {
				results, ok := matches[c.ID]
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s):\n", c.FullName(), c.ID)
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "  no matching properties")
					continue
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s, %s - %s [score %d]\n",
						r.Property.ID, r.Property.Address, r.Property.City, report.Money(r.Property.Price), r.Score)
				}
			}
			return nil
		},
	}
}

func mortgageCmd() *cobra.Command {
	var price, down, rate float64
	var years int
	var propertyID string
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Calculate monthly payment and total interest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if propertyID != "" {
				a, err := openApp(context.Background())
				if err != nil {
					return err
				}
				p, err := a.store.Property(propertyID)
				_ = a.Close()
				if err != nil {
					return err
				}
				price = p.Price
			}

			m, err := finance.CalculateMortgage(price, down, rate, years)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loan amount:     %s\n", report.Money(m.LoanAmount))
			fmt.Fprintf(cmd.OutOrStdout(), "Monthly payment: %s\n", report.Money(m.MonthlyPayment))
			fmt.Fprintf(cmd.OutOrStdout(), "Total payment:   %s\n", report.Money(m.TotalPayment))
			fmt.Fprintf(cmd.OutOrStdout(), "Total interest:  %s\n", report.Money(m.TotalInterest))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&price, "price", 0, "Purchase price")
	f.StringVar(&propertyID, "property", "", "Use this property's price")
	f.Float64Var(&down, "down", 0, "Down payment")
	f.Float64Var(&rate, "rate", 0, "Annual interest rate in percent")
	f.IntVar(&years, "years", 30, "Loan term in years")
	return cmd
}

func marketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show price statistics by property type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			stats, ok := finance.AnalyzeMarket(a.store.Properties())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No properties to analyze.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total properties: %d\n", stats.Total)
			fmt.Fprintf(cmd.OutOrStdout(), "Average price:    %s\n", report.Money(stats.AveragePrice))
			fmt.Fprintf(cmd.OutOrStdout(), "Price range:      %s - %s\n", report.Money(stats.MinPrice), report.Money(stats.MaxPrice))
			for _, t := range stats.ByType {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %3d listed, average %s\n", t.Type, t.Count, report.Money(t.AveragePrice))
			}
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the property report as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			if out == "-" {
				return report.WriteProperties(cmd.OutOrStdout(), a.store.Properties())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := report.WriteProperties(f, a.store.Properties()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d properties)\n", out, a.store.Len(domain.KindProperty))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "property_report.csv", "Output file, or - for stdout")
	return cmd
}
