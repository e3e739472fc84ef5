package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/statsboard/internal/interfaces/cli/server"
	"github.com/orris-inc/statsboard/internal/interfaces/cli/token"
	"github.com/orris-inc/statsboard/internal/interfaces/cli/upstreamstub"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statsboard",
		Short: "Statsboard - admin statistics dashboard",
		Long:  `Statsboard serves the admin statistics dashboard backed by the console API, plus local development helpers.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		upstreamstub.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
