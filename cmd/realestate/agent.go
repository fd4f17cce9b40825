package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/report"
)

func agentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents",
	}
	cmd.AddCommand(agentAddCmd())
	cmd.AddCommand(agentGetCmd())
	cmd.AddCommand(agentListCmd())
	return cmd
}

func agentAddCmd() *cobra.Command {
	var ag domain.Agent
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := a.store.AddAgent(ag)
			if err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Agent added with ID: %s\n", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&ag.FirstName, "first-name", "", "First name")
	f.StringVar(&ag.LastName, "last-name", "", "Last name")
	f.StringVar(&ag.Email, "email", "", "Email")
	f.StringVar(&ag.Phone, "phone", "", "Phone")
	f.Float64Var(&ag.CommissionRate, "commission-rate", 0.03, "Commission as a fraction of the sale amount")
	f.StringSliceVar(&ag.AssignedProperties, "property", nil, "Assigned property ID, repeatable")
	return cmd
}

func agentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			ag, err := a.store.Agent(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ag)
		},
	}
}

func agentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			agents := a.store.Agents()
			if len(agents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No agents found.")
				return nil
			}
			for _, ag := range agents {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s - %.1f%% commission, sales %s\n",
					ag.ID, ag.FirstName, ag.LastName, ag.CommissionRate*100, report.Money(ag.TotalSales))
			}
			return nil
		},
	}
}
