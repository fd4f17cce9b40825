package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "realestate",
		Short: "Manage property listings, clients and buyer matching",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "realestate.yaml", "Path to the YAML config file")

	root.AddCommand(serveCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(propertyCmd())
	root.AddCommand(clientCmd())
	root.AddCommand(agentCmd())
	root.AddCommand(transactionCmd())
	root.AddCommand(matchCmd())
	root.AddCommand(mortgageCmd())
	root.AddCommand(marketCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
