package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
	"github.com/denisok6893-rgb/real-estate-manager/internal/store"
)

func seedCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample listings and buyer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.store.Len(domain.KindProperty) > 0 && !force {
				return fmt.Errorf("store already has %d properties; use --force to add the samples anyway", a.store.Len(domain.KindProperty))
			}
			if err := store.SeedSample(a.store); err != nil {
				return err
			}
			if err := a.save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sample data loaded.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Seed even if data exists")
	return cmd
}
