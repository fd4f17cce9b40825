package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/report"
	"github.com/denisok6893-rgb/real-estate-manager/internal/search"
)

func clientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Add, look up and search clients",
	}
	cmd.AddCommand(clientAddCmd())
	cmd.AddCommand(clientGetCmd())
	cmd.AddCommand(clientSearchCmd())
	return cmd
}

func clientAddCmd() *cobra.Command {
	var c domain.Client
	var clientType string
	var prefs []string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if c.Type, err = domain.ParseClientType(enumInput(clientType)); err != nil {
				return err
			}
			raw, err := parsePairs(prefs)
			if err != nil {
				return err
			}
			if c.Preferences, err = preferencesFromFlags(raw); err != nil {
				return err
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := a.store.AddClient(c)
			if err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client added with ID: %s\n", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&c.FirstName, "first-name", "", "First name")
	f.StringVar(&c.LastName, "last-name", "", "Last name")
	f.StringVar(&c.Email, "email", "", "Email")
	f.StringVar(&c.Phone, "phone", "", "Phone")
	f.StringVar(&clientType, "type", domain.ClientBuyer.String(), "Buyer, Seller, Tenant or Landlord")
	f.Float64Var(&c.Budget, "budget", 0, "Budget")
	f.StringArrayVar(&prefs, "pref", nil, "Preference as key=value (property_type, bedrooms, city, max_price), repeatable")
	f.StringSliceVar(&c.InterestedProperties, "interested", nil, "Property ID of interest, repeatable")
	f.StringVar(&c.Notes, "notes", "", "Notes")
	return cmd
}

// preferencesFromFlags types the textual preference values the way the JSON
// form would carry them before handing them to the domain parser.
func preferencesFromFlags(raw map[string]string) (domain.Preferences, error) {
	typed := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case domain.PrefBedrooms, domain.PrefMaxPrice:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return domain.Preferences{}, &domain.ValidationError{Field: "preferences." + k, Value: v, Reason: "must be a number"}
			}
			typed[k] = f
		case domain.PrefPropertyType:
			typed[k] = enumInput(v)
		default:
			typed[k] = v
		}
	}
	return domain.ParsePreferences(typed)
}

func clientGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := a.store.Client(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
}

func clientSearchCmd() *cobra.Command {
	var name string
	var where []string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search clients by name or field values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parsePairs(where)
			if err != nil {
				return err
			}
			criteria, err := search.ParseCriteria(raw, search.ClientNumeric)
			if err != nil {
				return err
			}

			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			clients, err := search.ClientFields.Filter(a.store.Clients(), criteria)
			if err != nil {
				return err
			}
			clients = search.ClientsByName(clients, name)
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No clients found.")
				return nil
			}
			for _, c := range clients {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s) - budget %s\n", c.ID, c.FullName(), c.Type, report.Money(c.Budget))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Substring of the client's full name")
	cmd.Flags().StringArrayVar(&where, "where", nil, "Field criterion as field=value, repeatable")
	return cmd
}
