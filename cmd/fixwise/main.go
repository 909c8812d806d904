package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixwise/internal/interfaces/cli/migrate"
	"fixwise/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixwise",
		Short: "Fixwise - maintenance ticketing platform",
		Long:  `Fixwise is a multi-tenant maintenance ticketing platform connecting organizations with maintenance vendors.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
