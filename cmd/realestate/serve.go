package main

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	httpapi "github.com/denisok6893-rgb/real-estate-manager/internal/http"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func runServe(addr string) error {
	a, err := openApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()

	if addr == "" {
		addr = a.cfg.Server.Address
	}
	srv := httpapi.NewServer(a.store, a.engine(), a.persister)

	log.Printf("storage backend: %s", a.cfg.Storage.Backend)
	log.Printf("API listening on %s", addr)
	return http.ListenAndServe(addr, srv.Routes())
}
