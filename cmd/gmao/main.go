package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mif-gmao/gmao/internal/interfaces/cli/bootstrap"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/generate"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/interventions"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/migrate"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/seed"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/server"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/token"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	opts := &bootstrap.Options{}

	rootCmd := &cobra.Command{
		Use:          "gmao",
		Short:        "GMAO - maintenance intervention management",
		Long:         `GMAO tracks maintenance interventions through their lifecycle and generates preventive work from plannings.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "", "Server mode override (debug, release, test)")

	rootCmd.AddCommand(
		server.NewCommand(opts, version),
		migrate.NewCommand(opts),
		generate.NewCommand(opts, version),
		seed.NewCommand(opts),
		interventions.NewCommand(opts),
		token.NewCommand(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
