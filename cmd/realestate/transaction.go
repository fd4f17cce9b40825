package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/finance"
	"github.com/denisok6893-rgb/real-estate-manager/internal/report"
)

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"txn"},
		Short:   "Record and track sales and rentals",
	}
	cmd.AddCommand(transactionAddCmd())
	cmd.AddCommand(transactionGetCmd())
	cmd.AddCommand(transactionStatusCmd())
	return cmd
}

func transactionAddCmd() *cobra.Command {
	var t domain.Transaction
	var txnType, status, date string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if t.Type, err = domain.ParseTransactionType(enumInput(txnType)); err != nil {
				return err
			}
			if t.Status, err = domain.ParseTransactionStatus(enumInput(status)); err != nil {
				return err
			}
			t.Date = domain.DateOf(time.Now())
			if date != "" {
				if t.Date, err = domain.ParseDate(date); err != nil {
					return err
				}
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if t.AgentID != "" {
				agent, err := a.store.Agent(t.AgentID)
				switch {
				case err == nil:
					if err := finance.ApplyCommission(&t, agent); err != nil {
						return err
					}
				case !errors.Is(err, domain.ErrNotFound):
					return err
				}
			}

			id, err := a.store.AddTransaction(t)
			if err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction recorded with ID: %s (commission %s)\n", id, report.Money(t.Commission))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&t.PropertyID, "property", "", "Property ID")
	f.StringVar(&t.ClientID, "client", "", "Client ID")
	f.StringVar(&t.AgentID, "agent", "", "Agent ID")
	f.StringVar(&txnType, "type", domain.TxnSale.String(), "Sale or Rent")
	f.Float64Var(&t.Amount, "amount", 0, "Transaction amount")
	f.Float64Var(&t.Commission, "commission", 0, "Commission; derived from the agent's rate when zero")
	f.StringVar(&status, "status", domain.TxnPending.String(), "Completed, Pending or Cancelled")
	f.StringVar(&date, "date", "", "Date (YYYY-MM-DD), defaults to today")
	return cmd
}

func transactionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer a.Close()

			t, err := a.store.Transaction(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}
}

func transactionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a transaction's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseTransactionStatus(enumInput(args[1]))
			if err != nil {
				return err
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.UpdateTransactionStatus(args[0], status); err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s is now %s\n", args[0], status)
			return nil
		},
	}
}
